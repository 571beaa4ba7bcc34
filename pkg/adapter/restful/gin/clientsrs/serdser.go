package clientsrs

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/serdser"
	"github.com/rentautos/rentaweb/pkg/core/model"
)

type rawClientCreateReq struct {
	FirstName      string    `json:"first_name" binding:"required"`
	LastName       string    `json:"last_name" binding:"required"`
	DocumentType   string    `json:"document_type" binding:"required,oneof=passport dni cedula"`
	DocumentNumber string    `json:"document_number" binding:"required"`
	Nationality    string    `json:"nationality" binding:"required"`
	Address        string    `json:"address" binding:"required"`
	Phone          string    `json:"phone" binding:"required"`
	Email          string    `json:"email" binding:"required,email"`
	BirthDate      time.Time `json:"birth_date" binding:"required"`
}

func (rs *resource) DserCreateClientReq(c *gin.Context) *model.Client {
	req := &rawClientCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Client{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DocumentType:   model.DocumentType(req.DocumentType),
		DocumentNumber: req.DocumentNumber,
		Nationality:    req.Nationality,
		Address:        req.Address,
		Phone:          req.Phone,
		Email:          req.Email,
		BirthDate:      req.BirthDate,
	}
}

type rawClientUpdateReq struct {
	FirstName      *string    `json:"first_name"`
	LastName       *string    `json:"last_name"`
	DocumentType   *string    `json:"document_type" binding:"omitempty,oneof=passport dni cedula"`
	DocumentNumber *string    `json:"document_number"`
	Nationality    *string    `json:"nationality"`
	Address        *string    `json:"address"`
	Phone          *string    `json:"phone"`
	Email          *string    `json:"email" binding:"omitempty,email"`
	BirthDate      *time.Time `json:"birth_date"`
}

type clientUpdateReq struct {
	ClientID uuid.UUID
	Patch    model.ClientPatch
}

func (rs *resource) DserUpdateClientReq(c *gin.Context) *clientUpdateReq {
	clid, ok := dserClientID(c)
	if !ok {
		return nil
	}
	req := &rawClientUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	val := &clientUpdateReq{
		ClientID: clid,
		Patch: model.ClientPatch{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			DocumentNumber: req.DocumentNumber,
			Nationality:    req.Nationality,
			Address:        req.Address,
			Phone:          req.Phone,
			Email:          req.Email,
			BirthDate:      req.BirthDate,
		},
	}
	if req.DocumentType != nil {
		dt := model.DocumentType(*req.DocumentType)
		val.Patch.DocumentType = &dt
	}
	return val
}

func dserClientID(c *gin.Context) (uuid.UUID, bool) {
	clid, err := uuid.Parse(c.Param("clid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "clid", "Path param clid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return clid, true
}
