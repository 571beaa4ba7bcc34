// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentalsrp realizes the rental transactions repository. It
// owns the transactions table and joins in the referenced car and
// client rows where the read contract asks for the expanded view.
package rentalsrp

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

func (rentals *Repo) Conn(c repo.Conn) repo.RentalsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	return Insert(ctx, cq.Conn, t)
}

func (cq connQueryer) Find(ctx context.Context, transactionID uuid.UUID) (*model.Transaction, error) {
	return Find(ctx, cq.Conn, transactionID)
}

func (cq connQueryer) FindDetailed(ctx context.Context, transactionID uuid.UUID) (*model.RentalDetails, error) {
	return FindDetailed(ctx, cq.Conn, transactionID)
}

func (cq connQueryer) List(ctx context.Context, activeOnly bool) ([]model.RentalDetails, error) {
	return List(ctx, cq.Conn, activeOnly)
}

func (cq connQueryer) Update(ctx context.Context, transactionID uuid.UUID, u model.TransactionUpdate) (*model.Transaction, error) {
	return Update(ctx, cq.Conn, transactionID, u)
}

func (cq connQueryer) Finish(ctx context.Context, transactionID uuid.UUID) (*model.Transaction, error) {
	return Finish(ctx, cq.Conn, transactionID)
}

type txQueryer struct {
	*postgres.Tx
}

func (rentals *Repo) Tx(tx repo.Tx) repo.RentalsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	return Insert(ctx, tq.Tx, t)
}

func (tq txQueryer) Find(ctx context.Context, transactionID uuid.UUID) (*model.Transaction, error) {
	return Find(ctx, tq.Tx, transactionID)
}

func (tq txQueryer) FindDetailed(ctx context.Context, transactionID uuid.UUID) (*model.RentalDetails, error) {
	return FindDetailed(ctx, tq.Tx, transactionID)
}

func (tq txQueryer) List(ctx context.Context, activeOnly bool) ([]model.RentalDetails, error) {
	return List(ctx, tq.Tx, activeOnly)
}

func (tq txQueryer) Update(ctx context.Context, transactionID uuid.UUID, u model.TransactionUpdate) (*model.Transaction, error) {
	return Update(ctx, tq.Tx, transactionID, u)
}

func (tq txQueryer) Finish(ctx context.Context, transactionID uuid.UUID) (*model.Transaction, error) {
	return Finish(ctx, tq.Tx, transactionID)
}
