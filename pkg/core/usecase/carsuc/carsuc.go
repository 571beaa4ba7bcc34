// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package carsuc contains the cars use case which owns the car records
// of the fleet: creating, listing, fetching, patching, and
// soft-deleting them. The availability flag of a car is out of its
// reach; only the rentals use case may flip it.
package carsuc

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/core/cerr"
	"github.com/rentautos/rentaweb/pkg/core/model"
	"github.com/rentautos/rentaweb/pkg/core/repo"
)

// UseCase represents a cars use case. It holds a database connection
// pool and the cars repository instance (to be guided with the pool).
type UseCase struct {
	pool   repo.Pool
	carsrp repo.Cars
}

// New instantiates a cars use case.
func New(p repo.Pool, c repo.Cars) *UseCase {
	return &UseCase{pool: p, carsrp: c}
}

// Create registers the given car in the fleet, assigning a fresh id
// and reporting it as unrented and undeleted.
func (cars *UseCase) Create(ctx context.Context, car model.Car) (created *model.Car, err error) {
	if err := car.Gearbox.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	car.ID = uuid.New()
	car.IsRented = false
	car.IsDeleted = false
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		created, err = cars.carsrp.Conn(c).Insert(ctx, &car)
		return err
	})
	if err != nil {
		created = nil
	}
	return
}

// List returns the non-deleted cars, most-recently-updated first.
func (cars *UseCase) List(ctx context.Context) (cs []model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cs, err = cars.carsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		cs = nil
	}
	return
}

// Get returns the cid car. Soft-deleted cars are still resolvable by
// their id; only listings and availability checks exclude them.
func (cars *UseCase) Get(ctx context.Context, cid uuid.UUID) (car *model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		car, err = cars.carsrp.Conn(c).Find(ctx, cid)
		return err
	})
	if err != nil {
		car = nil
	}
	return
}

// Update applies the supplied fields of p to the cid car, leaving the
// rest unchanged, and returns the updated car.
func (cars *UseCase) Update(ctx context.Context, cid uuid.UUID, p model.CarPatch) (car *model.Car, err error) {
	if p.Gearbox != nil {
		if err := p.Gearbox.Validate(); err != nil {
			return nil, cerr.BadRequest(
				fmt.Errorf("gearbox: %w", err),
			)
		}
	}
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		car, err = cars.carsrp.Conn(c).Patch(ctx, cid, p)
		return err
	})
	if err != nil {
		car = nil
	}
	return
}

// Delete soft-deletes the cid car, excluding it from listings and
// availability checks while retaining the record.
func (cars *UseCase) Delete(ctx context.Context, cid uuid.UUID) (car *model.Car, err error) {
	err = cars.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		car, err = cars.carsrp.Conn(c).SoftDelete(ctx, cid)
		return err
	})
	if err != nil {
		car = nil
	}
	return
}
