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

type RentalsConnQueryer interface {
	RentalsQueryer
}

type RentalsTxQueryer interface {
	RentalsQueryer
}

// RentalsQueryer queries and mutates the rental transaction records.
// List orders active transactions first and most-recently-updated
// first; List and FindDetailed expand the referenced car and client.
// Finish flips IsActive to false and is the only write path out of the
// active state.
type RentalsQueryer interface {
	Insert(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	Find(ctx context.Context, transactionID uuid.UUID) (*model.Transaction, error)
	FindDetailed(ctx context.Context, transactionID uuid.UUID) (*model.RentalDetails, error)
	List(ctx context.Context, activeOnly bool) ([]model.RentalDetails, error)
	Update(ctx context.Context, transactionID uuid.UUID, u model.TransactionUpdate) (*model.Transaction, error)
	Finish(ctx context.Context, transactionID uuid.UUID) (*model.Transaction, error)
}

type Rentals interface {
	Conn(Conn) RentalsConnQueryer
	Tx(Tx) RentalsTxQueryer
}
