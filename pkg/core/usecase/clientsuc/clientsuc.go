// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package clientsuc contains the clients use case which owns the
// client roster records. It mirrors the cars use case with one extra
// rule: an email may be used by at most one non-deleted client.
// The renting flag of a client is owned by the rentals use case.
package clientsuc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/core/cerr"
	"github.com/rentautos/rentaweb/pkg/core/model"
	"github.com/rentautos/rentaweb/pkg/core/repo"
)

// UseCase represents a clients use case. It holds a database
// connection pool and the clients repository instance.
type UseCase struct {
	pool      repo.Pool
	clientsrp repo.Clients
}

// New instantiates a clients use case.
func New(p repo.Pool, c repo.Clients) *UseCase {
	return &UseCase{pool: p, clientsrp: c}
}

// Create registers the given client, assigning a fresh id. The email
// uniqueness check and the insertion run in one transaction, so two
// concurrent registrations of the same email cannot both pass.
func (clients *UseCase) Create(ctx context.Context, client model.Client) (created *model.Client, err error) {
	if err := client.DocumentType.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	client.ID = uuid.New()
	client.IsRenting = false
	client.IsDeleted = false
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := clients.clientsrp.Tx(tx)
			_, err := q.FindByEmail(ctx, client.Email)
			switch {
			case err == nil:
				return cerr.BadRequest(
					errors.New("email already registered"),
				)
			case !isNotFound(err):
				return fmt.Errorf(
					"looking up email %q: %w", client.Email, err,
				)
			}
			created, err = q.Insert(ctx, &client)
			return err
		})
	})
	if err != nil {
		created = nil
	}
	return
}

// List returns the non-deleted clients, most-recently-updated first.
func (clients *UseCase) List(ctx context.Context) (cs []model.Client, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		cs, err = clients.clientsrp.Conn(c).List(ctx)
		return err
	})
	if err != nil {
		cs = nil
	}
	return
}

// Get returns the cid client, soft-deleted or not.
func (clients *UseCase) Get(ctx context.Context, cid uuid.UUID) (client *model.Client, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		client, err = clients.clientsrp.Conn(c).Find(ctx, cid)
		return err
	})
	if err != nil {
		client = nil
	}
	return
}

// Update applies the supplied fields of p to the cid client, leaving
// the rest unchanged, and returns the updated client.
func (clients *UseCase) Update(ctx context.Context, cid uuid.UUID, p model.ClientPatch) (client *model.Client, err error) {
	if p.DocumentType != nil {
		if err := p.DocumentType.Validate(); err != nil {
			return nil, cerr.BadRequest(
				fmt.Errorf("document_type: %w", err),
			)
		}
	}
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		client, err = clients.clientsrp.Conn(c).Patch(ctx, cid, p)
		return err
	})
	if err != nil {
		client = nil
	}
	return
}

// Delete soft-deletes the cid client. Its email becomes reusable by
// new registrations since uniqueness only spans non-deleted clients.
func (clients *UseCase) Delete(ctx context.Context, cid uuid.UUID) (client *model.Client, err error) {
	err = clients.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		client, err = clients.clientsrp.Conn(c).SoftDelete(ctx, cid)
		return err
	})
	if err != nil {
		client = nil
	}
	return
}

func isNotFound(err error) bool {
	var ce *cerr.Error
	return errors.As(err, &ce) && ce.HTTPStatusCode == http.StatusNotFound
}
