// Package carsrp realizes the cars repository: the car records table
// queries, including the availability contract (find-available plus
// the conditional acquire) which the rentals use case relies on.
package carsrp

import (
	"context"

	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/adapter/db/postgres"
	"github.com/rentautos/rentaweb/pkg/core/model"
	"github.com/rentautos/rentaweb/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

type connQueryer struct {
	*postgres.Conn
}

func (cars *Repo) Conn(c repo.Conn) repo.CarsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, car *model.Car) (*model.Car, error) {
	return Insert(ctx, cq.Conn, car)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Car, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Find(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return Find(ctx, cq.Conn, carID)
}

func (cq connQueryer) FindAvailable(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return FindAvailable(ctx, cq.Conn, carID)
}

func (cq connQueryer) Patch(ctx context.Context, carID uuid.UUID, p model.CarPatch) (*model.Car, error) {
	return Patch(ctx, cq.Conn, carID, p)
}

func (cq connQueryer) SoftDelete(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return SoftDelete(ctx, cq.Conn, carID)
}

func (cq connQueryer) Acquire(ctx context.Context, carID uuid.UUID) error {
	return Acquire(ctx, cq.Conn, carID)
}

func (cq connQueryer) Release(ctx context.Context, carID uuid.UUID) error {
	return Release(ctx, cq.Conn, carID)
}

type txQueryer struct {
	*postgres.Tx
}

func (cars *Repo) Tx(tx repo.Tx) repo.CarsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, car *model.Car) (*model.Car, error) {
	return Insert(ctx, tq.Tx, car)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Car, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Find(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return Find(ctx, tq.Tx, carID)
}

func (tq txQueryer) FindAvailable(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return FindAvailable(ctx, tq.Tx, carID)
}

func (tq txQueryer) Patch(ctx context.Context, carID uuid.UUID, p model.CarPatch) (*model.Car, error) {
	return Patch(ctx, tq.Tx, carID, p)
}

func (tq txQueryer) SoftDelete(ctx context.Context, carID uuid.UUID) (*model.Car, error) {
	return SoftDelete(ctx, tq.Tx, carID)
}

func (tq txQueryer) Acquire(ctx context.Context, carID uuid.UUID) error {
	return Acquire(ctx, tq.Tx, carID)
}

func (tq txQueryer) Release(ctx context.Context, carID uuid.UUID) error {
	return Release(ctx, tq.Tx, carID)
}
