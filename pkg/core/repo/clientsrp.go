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

type ClientsConnQueryer interface {
	ClientsQueryer
}

type ClientsTxQueryer interface {
	ClientsQueryer
}

// ClientsQueryer queries and mutates the client records. It has the
// same contract shape as CarsQueryer over the IsRenting flag, with one
// addition: FindByEmail looks a client up by email among the
// non-deleted clients (email uniqueness is scoped to them).
type ClientsQueryer interface {
	Insert(ctx context.Context, client *model.Client) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Find(ctx context.Context, clientID uuid.UUID) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	FindAvailable(ctx context.Context, clientID uuid.UUID) (*model.Client, error)
	Patch(ctx context.Context, clientID uuid.UUID, p model.ClientPatch) (*model.Client, error)
	SoftDelete(ctx context.Context, clientID uuid.UUID) (*model.Client, error)
	Acquire(ctx context.Context, clientID uuid.UUID) error
	Release(ctx context.Context, clientID uuid.UUID) error
}

type Clients interface {
	Conn(Conn) ClientsConnQueryer
	Tx(Tx) ClientsTxQueryer
}
