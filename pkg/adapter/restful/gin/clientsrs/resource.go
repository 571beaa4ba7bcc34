// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsrs realizes the clients resource, allowing the roster
// manipulation REST APIs to be accepted and delegated to the clients
// use cases respectively.
package clientsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/serdser"
	"github.com/rentautos/rentaweb/pkg/core/usecase/clientsuc"
)

type resource struct {
	clients *clientsuc.UseCase
}

// Register instantiates a resource adapting the clients use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/rentaweb/v1/clients
//     in order to register a client,
//  2. GET request to /api/rentaweb/v1/clients
//     in order to list the non-deleted clients,
//  3. GET request to /api/rentaweb/v1/clients/:clid
//     in order to fetch one client,
//  4. PATCH request to /api/rentaweb/v1/clients/:clid
//     in order to update some fields of a client, and
//  5. DELETE request to /api/rentaweb/v1/clients/:clid
//     in order to soft-delete a client.
func Register(r *gin.RouterGroup, clients *clientsuc.UseCase) {
	rs := &resource{clients: clients}
	r.POST("clients", rs.CreateClient)
	r.GET("clients", rs.ListClients)
	r.GET("clients/:clid", rs.GetClient)
	r.PATCH("clients/:clid", rs.UpdateClient)
	r.DELETE("clients/:clid", rs.DeleteClient)
}

func (rs *resource) CreateClient(c *gin.Context) {
	client := rs.DserCreateClientReq(c)
	if client == nil {
		return
	}
	created, err := rs.clients.Create(c, *client)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rs *resource) ListClients(c *gin.Context) {
	clients, err := rs.clients.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (rs *resource) GetClient(c *gin.Context) {
	clid, ok := dserClientID(c)
	if !ok {
		return
	}
	client, err := rs.clients.Get(c, clid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (rs *resource) UpdateClient(c *gin.Context) {
	req := rs.DserUpdateClientReq(c)
	if req == nil {
		return
	}
	client, err := rs.clients.Update(c, req.ClientID, req.Patch)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (rs *resource) DeleteClient(c *gin.Context) {
	clid, ok := dserClientID(c)
	if !ok {
		return
	}
	client, err := rs.clients.Delete(c, clid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}
