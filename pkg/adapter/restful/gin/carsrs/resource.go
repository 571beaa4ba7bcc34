// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsrs realizes the cars resource, allowing the fleet
// manipulation REST APIs to be accepted and delegated to the cars
// use cases respectively.
package carsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/serdser"
	"github.com/rentautos/rentaweb/pkg/core/usecase/carsuc"
)

type resource struct {
	cars *carsuc.UseCase
}

// Register instantiates a resource adapting the cars use case instance
// with the relevant REST APIs including:
//  1. POST request to /api/rentaweb/v1/cars
//     in order to register a car in the fleet,
//  2. GET request to /api/rentaweb/v1/cars
//     in order to list the non-deleted cars,
//  3. GET request to /api/rentaweb/v1/cars/:cid
//     in order to fetch one car,
//  4. PATCH request to /api/rentaweb/v1/cars/:cid
//     in order to update some fields of a car, and
//  5. DELETE request to /api/rentaweb/v1/cars/:cid
//     in order to soft-delete a car.
func Register(r *gin.RouterGroup, cars *carsuc.UseCase) {
	rs := &resource{cars: cars}
	r.POST("cars", rs.CreateCar)
	r.GET("cars", rs.ListCars)
	r.GET("cars/:cid", rs.GetCar)
	r.PATCH("cars/:cid", rs.UpdateCar)
	r.DELETE("cars/:cid", rs.DeleteCar)
}

func (rs *resource) CreateCar(c *gin.Context) {
	car := rs.DserCreateCarReq(c)
	if car == nil {
		return
	}
	created, err := rs.cars.Create(c, *car)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rs *resource) ListCars(c *gin.Context) {
	cars, err := rs.cars.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cars)
}

func (rs *resource) GetCar(c *gin.Context) {
	cid, ok := dserCarID(c)
	if !ok {
		return
	}
	car, err := rs.cars.Get(c, cid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) UpdateCar(c *gin.Context) {
	req := rs.DserUpdateCarReq(c)
	if req == nil {
		return
	}
	car, err := rs.cars.Update(c, req.CarID, req.Patch)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}

func (rs *resource) DeleteCar(c *gin.Context) {
	cid, ok := dserCarID(c)
	if !ok {
		return
	}
	car, err := rs.cars.Delete(c, cid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, car)
}
