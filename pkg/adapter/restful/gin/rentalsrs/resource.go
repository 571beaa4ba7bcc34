// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentalsrs realizes the rental transactions resource, allowing
// the rental lifecycle REST APIs to be accepted and delegated to the
// rentals use case respectively.
package rentalsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/serdser"
	"github.com/rentautos/rentaweb/pkg/core/usecase/rentalsuc"
)

type resource struct {
	rentals *rentalsuc.UseCase
}

// Register instantiates a resource adapting the rentals use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/rentaweb/v1/transactions
//     in order to book a car for a client over a date range,
//  2. GET request to /api/rentaweb/v1/transactions[?active=true]
//     in order to list transactions with their details expanded,
//  3. GET request to /api/rentaweb/v1/transactions/:tid
//     in order to fetch one transaction with its details,
//  4. PUT request to /api/rentaweb/v1/transactions/:tid
//     in order to rewrite the booked car, client, and date range, and
//  5. PATCH request to /api/rentaweb/v1/transactions/:tid
//     in order to finish an active rental.
func Register(r *gin.RouterGroup, rentals *rentalsuc.UseCase) {
	rs := &resource{rentals: rentals}
	r.POST("transactions", rs.CreateTransaction)
	r.GET("transactions", rs.ListTransactions)
	r.GET("transactions/:tid", rs.GetTransaction)
	r.PUT("transactions/:tid", rs.UpdateTransaction)
	r.PATCH("transactions/:tid", rs.FinishTransaction)
}

func (rs *resource) CreateTransaction(c *gin.Context) {
	req := rs.DserCreateTransactionReq(c)
	if req == nil {
		return
	}
	t, err := rs.rentals.Create(
		c, req.CarID, req.ClientID, req.StartDate, req.FinishDate,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (rs *resource) ListTransactions(c *gin.Context) {
	activeOnly, ok := dserActiveFlag(c)
	if !ok {
		return
	}
	ts, err := rs.rentals.List(c, activeOnly)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

func (rs *resource) GetTransaction(c *gin.Context) {
	tid, ok := dserTransactionID(c)
	if !ok {
		return
	}
	t, err := rs.rentals.Get(c, tid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (rs *resource) UpdateTransaction(c *gin.Context) {
	req := rs.DserUpdateTransactionReq(c)
	if req == nil {
		return
	}
	t, err := rs.rentals.Update(
		c, req.TransactionID,
		req.CarID, req.ClientID, req.StartDate, req.FinishDate,
	)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (rs *resource) FinishTransaction(c *gin.Context) {
	tid, ok := dserTransactionID(c)
	if !ok {
		return
	}
	t, err := rs.rentals.Finish(c, tid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
