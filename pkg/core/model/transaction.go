// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction models a rental transaction linking one car and one
// client over a date range. It is created in the active state and
// leaves it exclusively through the finish operation, which is
// terminal; the record itself is retained forever.
//
// PricePerDay is a snapshot of the car rate taken at booking (or
// re-taken at update) time and is never recomputed retroactively when
// the car price changes later. TotalPrice is always
// PricePerDay multiplied by the real-valued day count of the range.
//
// IsDeleted is kept for schema and wire parity with older deployments;
// no transition sets it.
type Transaction struct {
	ID          uuid.UUID `json:"id"`
	CarID       uuid.UUID `json:"carId"`
	ClientID    uuid.UUID `json:"clientId"`
	StartDate   time.Time `json:"start_date"`
	FinishDate  time.Time `json:"finish_date"`
	PricePerDay float64   `json:"price_per_day"`
	TotalPrice  float64   `json:"total_price"`
	IsActive    bool      `json:"is_active"`
	IsDeleted   bool      `json:"is_deleted"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionUpdate carries the full set of rewritable transaction
// fields together with the re-derived pricing. All fields are written
// back unconditionally by the update operation.
type TransactionUpdate struct {
	CarID       uuid.UUID
	ClientID    uuid.UUID
	StartDate   time.Time
	FinishDate  time.Time
	PricePerDay float64
	TotalPrice  float64
}

// RentalDetails expands a transaction with the referenced car and
// client records for display.
type RentalDetails struct {
	Transaction
	Car    Car    `json:"car"`
	Client Client `json:"client"`
}

// DaysOfRental returns the length of the [start, finish] range in days
// as a real-valued quantity, so 36 hours yield 1.5 days. A negative
// result means finish precedes start.
func DaysOfRental(start, finish time.Time) float64 {
	return finish.Sub(start).Hours() / 24
}
