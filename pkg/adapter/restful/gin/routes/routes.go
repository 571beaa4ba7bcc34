// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rentautos/rentaweb/pkg/adapter/db/postgres/carsrp"
	"github.com/rentautos/rentaweb/pkg/adapter/db/postgres/clientsrp"
	"github.com/rentautos/rentaweb/pkg/adapter/db/postgres/rentalsrp"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/carsrs"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/clientsrs"
	"github.com/rentautos/rentaweb/pkg/adapter/restful/gin/rentalsrs"
	"github.com/rentautos/rentaweb/pkg/core/repo"
	"github.com/rentautos/rentaweb/pkg/core/usecase/carsuc"
	"github.com/rentautos/rentaweb/pkg/core/usecase/clientsuc"
	"github.com/rentautos/rentaweb/pkg/core/usecase/rentalsuc"
)

// Register instantiates the repositories and use cases. The p
// connections pool is passed to the use case instances, so they may
// acquire/release connections and transactions on demand. These
// connections/transactions will be passed to the repositories later in
// order to run relevant queries on them and accomplish those use cases.
// Each use case package is named like carsuc and each repository
// package is named like carsrp.
// Register also instantiates a series of "resource" structs, from
// packages which are named like carsrs, in order to adapt the use case
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
func Register(e *gin.Engine, p repo.Pool) {
	carsRepo := carsrp.New()
	clientsRepo := clientsrp.New()
	rentalsRepo := rentalsrp.New()

	cars := carsuc.New(p, carsRepo)
	clients := clientsuc.New(p, clientsRepo)
	rentals := rentalsuc.New(p, carsRepo, clientsRepo, rentalsRepo)

	r := e.Group("/api/rentaweb/v1")
	carsrs.Register(r, cars)
	clientsrs.Register(r, clients)
	rentalsrs.Register(r, rentals)
}
