// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package carsuc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/core/cerr"
	"github.com/rentautos/rentaweb/pkg/core/model"
	"github.com/rentautos/rentaweb/pkg/core/repo"
	"github.com/rentautos/rentaweb/pkg/core/usecase/carsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type store map[uuid.UUID]model.Car

type fakePool struct {
	s store
}

func (p *fakePool) Conn(ctx context.Context, h repo.ConnHandler) error {
	return h(ctx, &fakeConn{s: p.s})
}

type fakeConn struct {
	s store
}

func (c *fakeConn) Exec(context.Context, string, ...any) (int64, error) {
	panic("raw Exec is not expected in these tests")
}

func (c *fakeConn) Query(context.Context, string, ...any) (repo.Rows, error) {
	panic("raw Query is not expected in these tests")
}

func (c *fakeConn) IsConn() {}

func (c *fakeConn) Tx(ctx context.Context, h repo.TxHandler) error {
	panic("cars use case is not expected to open a transaction")
}

type fakeCars struct{}

func (fakeCars) Conn(c repo.Conn) repo.CarsConnQueryer {
	return queryer{s: c.(*fakeConn).s}
}

func (fakeCars) Tx(tx repo.Tx) repo.CarsTxQueryer {
	panic("cars use case is not expected to open a transaction")
}

type queryer struct {
	s store
}

func notFound() error {
	return cerr.NotFound(errors.New("expected one row, but got 0"))
}

func (q queryer) Insert(_ context.Context, car *model.Car) (*model.Car, error) {
	q.s[car.ID] = *car
	c := *car
	return &c, nil
}

func (q queryer) List(context.Context) ([]model.Car, error) {
	var cs []model.Car
	for _, c := range q.s {
		if !c.IsDeleted {
			cs = append(cs, c)
		}
	}
	return cs, nil
}

func (q queryer) Find(_ context.Context, cid uuid.UUID) (*model.Car, error) {
	c, ok := q.s[cid]
	if !ok {
		return nil, notFound()
	}
	return &c, nil
}

func (q queryer) FindAvailable(_ context.Context, cid uuid.UUID) (*model.Car, error) {
	c, ok := q.s[cid]
	if !ok || c.IsDeleted || c.IsRented {
		return nil, notFound()
	}
	return &c, nil
}

func (q queryer) Patch(_ context.Context, cid uuid.UUID, p model.CarPatch) (*model.Car, error) {
	c, ok := q.s[cid]
	if !ok {
		return nil, notFound()
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Price != nil {
		c.Price = *p.Price
	}
	if p.Gearbox != nil {
		c.Gearbox = *p.Gearbox
	}
	q.s[cid] = c
	return &c, nil
}

func (q queryer) SoftDelete(_ context.Context, cid uuid.UUID) (*model.Car, error) {
	c, ok := q.s[cid]
	if !ok {
		return nil, notFound()
	}
	c.IsDeleted = true
	q.s[cid] = c
	return &c, nil
}

func (q queryer) Acquire(context.Context, uuid.UUID) error {
	panic("cars use case may not acquire cars")
}

func (q queryer) Release(context.Context, uuid.UUID) error {
	panic("cars use case may not release cars")
}

func newUseCase() (*carsuc.UseCase, store) {
	s := make(store)
	return carsuc.New(&fakePool{s: s}, fakeCars{}), s
}

func validCar() model.Car {
	return model.Car{
		Make:    "Toyota",
		Model:   "Corolla",
		Year:    2019,
		Mileage: 52000,
		Color:   "white",
		AC:      true,
		Seats:   5,
		Gearbox: model.GearboxManual,
		Price:   75,
	}
}

func TestCreateAssignsFreshID(t *testing.T) {
	uc, s := newUseCase()
	created, err := uc.Create(context.Background(), validCar())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.IsRented)
	assert.Contains(t, s, created.ID)
}

func TestCreateIgnoresClientFlags(t *testing.T) {
	uc, _ := newUseCase()
	car := validCar()
	car.IsRented = true
	car.IsDeleted = true
	created, err := uc.Create(context.Background(), car)
	require.NoError(t, err)
	assert.False(t, created.IsRented, "flags may not be set by clients")
	assert.False(t, created.IsDeleted)
}

func TestCreateRejectsUnknownGearbox(t *testing.T) {
	uc, _ := newUseCase()
	car := validCar()
	car.Gearbox = "semi-automatic"
	_, err := uc.Create(context.Background(), car)
	require.Error(t, err)
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 400, ce.HTTPStatusCode)
}

func TestUpdatePatchesSuppliedFields(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, validCar())
	require.NoError(t, err)

	color := "red"
	price := 90.0
	updated, err := uc.Update(ctx, created.ID, model.CarPatch{
		Color: &color,
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "red", updated.Color)
	assert.Equal(t, 90.0, updated.Price)
	assert.Equal(t, created.Make, updated.Make, "unsupplied fields stay")
}

func TestDeleteExcludesFromListing(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, validCar())
	require.NoError(t, err)

	_, err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)

	cars, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, cars)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err, "deleted cars remain resolvable by id")
	assert.True(t, got.IsDeleted)
}
