// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// The json tags describe how entities are serialized for web clients;
// the database-specific structs (with their gorm tags and the actual
// column names) are kept in the adapter layer repository packages.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Car models a rentable car of the fleet.
// The IsRented flag is owned exclusively by the rentals use case; no
// other code path may flip it. It is true if and only if exactly one
// active rental transaction references this car.
type Car struct {
	ID        uuid.UUID `json:"id"`
	Make      string    `json:"make"`
	Model     string    `json:"model"`
	Year      int       `json:"year"`
	Mileage   int       `json:"mileage"` // odometer, in kilometers
	Color     string    `json:"color"`
	AC        bool      `json:"air_conditioning"`
	Seats     int       `json:"passengers"` // passenger capacity
	Gearbox   Gearbox   `json:"gearbox"`
	Price     float64   `json:"price"` // per-day rental rate
	IsRented  bool      `json:"is_rented"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CarPatch describes a partial update of a car. Nil fields are left
// unchanged, so only the supplied fields are written back.
// The availability and soft-delete flags are deliberately absent; they
// have dedicated transitions and may not be patched directly.
type CarPatch struct {
	Make    *string
	Model   *string
	Year    *int
	Mileage *int
	Color   *string
	AC      *bool
	Seats   *int
	Gearbox *Gearbox
	Price   *float64
}
