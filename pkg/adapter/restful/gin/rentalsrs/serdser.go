package rentalsrs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/serdser"
)

type rawTransactionReq struct {
	CarID      string    `json:"carId" binding:"required,uuid4"`
	ClientID   string    `json:"clientId" binding:"required,uuid4"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	FinishDate time.Time `json:"finish_date" binding:"required"`
}

type transactionCreateReq struct {
	CarID      uuid.UUID
	ClientID   uuid.UUID
	StartDate  time.Time
	FinishDate time.Time
}

type transactionUpdateReq struct {
	TransactionID uuid.UUID
	transactionCreateReq
}

func (rs *resource) DserCreateTransactionReq(c *gin.Context) *transactionCreateReq {
	req := &rawTransactionReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	return req.validated(c)
}

func (rs *resource) DserUpdateTransactionReq(c *gin.Context) *transactionUpdateReq {
	tid, ok := dserTransactionID(c)
	if !ok {
		return nil
	}
	req := &rawTransactionReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	val := req.validated(c)
	if val == nil {
		return nil
	}
	return &transactionUpdateReq{
		TransactionID:        tid,
		transactionCreateReq: *val,
	}
}

func (req *rawTransactionReq) validated(c *gin.Context) *transactionCreateReq {
	val := &transactionCreateReq{
		StartDate:  req.StartDate,
		FinishDate: req.FinishDate,
	}
	var errs map[string][]string
	var err error
	val.CarID, err = uuid.Parse(req.CarID)
	serdser.Assert(&errs, err == nil, "carId", "Field carId is not UUID.")
	val.ClientID, err = uuid.Parse(req.ClientID)
	serdser.Assert(&errs, err == nil, "clientId", "Field clientId is not UUID.")
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

func dserTransactionID(c *gin.Context) (uuid.UUID, bool) {
	tid, err := uuid.Parse(c.Param("tid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "tid", "Path param tid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return uuid.Nil, false
	}
	return tid, true
}

func dserActiveFlag(c *gin.Context) (activeOnly, ok bool) {
	q := c.Query("active")
	if q == "" {
		return false, true
	}
	activeOnly, err := strconv.ParseBool(q)
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "active", "Query param active is not boolean.")
		c.JSON(http.StatusBadRequest, errs)
		return false, false
	}
	return activeOnly, true
}
