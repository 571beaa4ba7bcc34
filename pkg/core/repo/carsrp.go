// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/core/model"
)

type CarsConnQueryer interface {
	CarsQueryer
}

type CarsTxQueryer interface {
	CarsQueryer
}

// CarsQueryer queries and mutates the car records.
//
// FindAvailable keeps the availability contract in one place: it
// resolves a car only when it exists, is not soft-deleted, and is not
// rented, reporting NotFound otherwise.
//
// Acquire grants rental exclusivity through a conditional update which
// flips IsRented to true only if it is currently false on a non-deleted
// car; when the condition matches zero rows (another operation won the
// race) it reports Conflict and the surrounding transaction must be
// rolled back. Release unconditionally clears the flag.
type CarsQueryer interface {
	Insert(ctx context.Context, car *model.Car) (*model.Car, error)
	List(ctx context.Context) ([]model.Car, error)
	Find(ctx context.Context, carID uuid.UUID) (*model.Car, error)
	FindAvailable(ctx context.Context, carID uuid.UUID) (*model.Car, error)
	Patch(ctx context.Context, carID uuid.UUID, p model.CarPatch) (*model.Car, error)
	SoftDelete(ctx context.Context, carID uuid.UUID) (*model.Car, error)
	Acquire(ctx context.Context, carID uuid.UUID) error
	Release(ctx context.Context, carID uuid.UUID) error
}

type Cars interface {
	Conn(Conn) CarsConnQueryer
	Tx(Tx) CarsTxQueryer
}
