package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/serdser"
	"github.com/rentautos/rentaweb/pkg/core/model"
)

type rawCarCreateReq struct {
	Make    string  `json:"make" binding:"required"`
	Model   string  `json:"model" binding:"required"`
	Year    int     `json:"year" binding:"required,min=1900"`
	Mileage int     `json:"mileage" binding:"min=0"`
	Color   string  `json:"color" binding:"required"`
	AC      *bool   `json:"air_conditioning" binding:"required"`
	Seats   int     `json:"passengers" binding:"required,min=1"`
	Gearbox string  `json:"gearbox" binding:"required,oneof=manual automatic"`
	Price   float64 `json:"price" binding:"required,gt=0"`
}

func (rs *resource) DserCreateCarReq(c *gin.Context) *model.Car {
	req := &rawCarCreateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return &model.Car{
		Make:    req.Make,
		Model:   req.Model,
		Year:    req.Year,
		Mileage: req.Mileage,
		Color:   req.Color,
		AC:      *req.AC,
		Seats:   req.Seats,
		Gearbox: model.Gearbox(req.Gearbox),
		Price:   req.Price,
	}
}

type rawCarUpdateReq struct {
	Make    *string  `json:"make"`
	Model   *string  `json:"model"`
	Year    *int     `json:"year" binding:"omitempty,min=1900"`
	Mileage *int     `json:"mileage" binding:"omitempty,min=0"`
	Color   *string  `json:"color"`
	AC      *bool    `json:"air_conditioning"`
	Seats   *int     `json:"passengers" binding:"omitempty,min=1"`
	Gearbox *string  `json:"gearbox" binding:"omitempty,oneof=manual automatic"`
	Price   *float64 `json:"price" binding:"omitempty,gt=0"`
}

type carUpdateReq struct {
	CarID uuid.UUID
	Patch model.CarPatch
}

func (rs *resource) DserUpdateCarReq(c *gin.Context) *carUpdateReq {
	cid, ok := dserCarID(c)
	if !ok {
		return nil
	}
	req := &rawCarUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	val := &carUpdateReq{
		CarID: cid,
		Patch: model.CarPatch{
			Make:    req.Make,
			Model:   req.Model,
			Year:    req.Year,
			Mileage: req.Mileage,
			Color:   req.Color,
			AC:      req.AC,
			Seats:   req.Seats,
			Price:   req.Price,
		},
	}
	if req.Gearbox != nil {
		g := model.Gearbox(*req.Gearbox)
		val.Patch.Gearbox = &g
	}
	return val
}

func dserCarID(c *gin.Context) (uuid.UUID, bool) {
	cid, err := uuid.Parse(c.Param("cid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "cid", "Path param cid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return cid, true
}
