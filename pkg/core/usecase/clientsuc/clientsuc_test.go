// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package clientsuc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/core/cerr"
	"github.com/rentautos/rentaweb/pkg/core/model"
	"github.com/rentautos/rentaweb/pkg/core/repo"
	"github.com/rentautos/rentaweb/pkg/core/usecase/clientsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type store map[uuid.UUID]model.Client

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
	snapshot := make(store, len(c.s))
	for k, v := range c.s {
		snapshot[k] = v
	}
	if err := h(ctx, &fakeTx{s: snapshot}); err != nil {
		return err
	}
	for k := range c.s {
		delete(c.s, k)
	}
	for k, v := range snapshot {
		c.s[k] = v
	}
	return nil
}

type fakeTx struct {
	s store
}

func (t *fakeTx) Exec(context.Context, string, ...any) (int64, error) {
	panic("raw Exec is not expected in these tests")
}

func (t *fakeTx) Query(context.Context, string, ...any) (repo.Rows, error) {
	panic("raw Query is not expected in these tests")
}

func (t *fakeTx) IsTx() {}

type fakeClients struct{}

func (fakeClients) Conn(c repo.Conn) repo.ClientsConnQueryer {
	return queryer{s: c.(*fakeConn).s}
}

func (fakeClients) Tx(tx repo.Tx) repo.ClientsTxQueryer {
	return queryer{s: tx.(*fakeTx).s}
}

type queryer struct {
	s store
}

func notFound() error {
	return cerr.NotFound(errors.New("expected one row, but got 0"))
}

func (q queryer) Insert(_ context.Context, client *model.Client) (*model.Client, error) {
	q.s[client.ID] = *client
	c := *client
	return &c, nil
}

func (q queryer) List(context.Context) ([]model.Client, error) {
	var cs []model.Client
	for _, c := range q.s {
		if !c.IsDeleted {
			cs = append(cs, c)
		}
	}
	return cs, nil
}

func (q queryer) Find(_ context.Context, clid uuid.UUID) (*model.Client, error) {
	c, ok := q.s[clid]
	if !ok {
		return nil, notFound()
	}
	return &c, nil
}

func (q queryer) FindByEmail(_ context.Context, email string) (*model.Client, error) {
	for _, c := range q.s {
		if c.Email == email && !c.IsDeleted {
			return &c, nil
		}
	}
	return nil, notFound()
}

func (q queryer) FindAvailable(_ context.Context, clid uuid.UUID) (*model.Client, error) {
	c, ok := q.s[clid]
	if !ok || c.IsDeleted || c.IsRenting {
		return nil, notFound()
	}
	return &c, nil
}

func (q queryer) Patch(_ context.Context, clid uuid.UUID, p model.ClientPatch) (*model.Client, error) {
	c, ok := q.s[clid]
	if !ok {
		return nil, notFound()
	}
	if p.FirstName != nil {
		c.FirstName = *p.FirstName
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	q.s[clid] = c
	return &c, nil
}

func (q queryer) SoftDelete(_ context.Context, clid uuid.UUID) (*model.Client, error) {
	c, ok := q.s[clid]
	if !ok {
		return nil, notFound()
	}
	c.IsDeleted = true
	q.s[clid] = c
	return &c, nil
}

func (q queryer) Acquire(_ context.Context, clid uuid.UUID) error {
	c := q.s[clid]
	c.IsRenting = true
	q.s[clid] = c
	return nil
}

func (q queryer) Release(_ context.Context, clid uuid.UUID) error {
	c := q.s[clid]
	c.IsRenting = false
	q.s[clid] = c
	return nil
}

func newUseCase() (*clientsuc.UseCase, store) {
	s := make(store)
	return clientsuc.New(&fakePool{s: s}, fakeClients{}), s
}

func validClient(email string) model.Client {
	return model.Client{
		FirstName:      "Ana",
		LastName:       "Gomez",
		DocumentType:   model.DocumentPassport,
		DocumentNumber: "X1234567",
		Nationality:    "AR",
		Address:        "Av. Siempreviva 742",
		Phone:          "+54-11-5555-0000",
		Email:          email,
	}
}

func TestCreateAssignsFreshID(t *testing.T) {
	uc, s := newUseCase()
	created, err := uc.Create(
		context.Background(), validClient("ana@example.com"),
	)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.IsRenting)
	assert.Contains(t, s, created.ID)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	uc, s := newUseCase()
	ctx := context.Background()
	_, err := uc.Create(ctx, validClient("ana@example.com"))
	require.NoError(t, err)

	_, err = uc.Create(ctx, validClient("ana@example.com"))
	require.Error(t, err)
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 400, ce.HTTPStatusCode)
	assert.ErrorContains(t, err, "email already registered")
	assert.Len(t, s, 1, "rejected registration must not insert")
}

func TestCreateRejectsUnknownDocumentType(t *testing.T) {
	uc, _ := newUseCase()
	client := validClient("ana@example.com")
	client.DocumentType = "driver-license"
	_, err := uc.Create(context.Background(), client)
	require.Error(t, err)
	var ce *cerr.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 400, ce.HTTPStatusCode)
}

func TestDeleteFreesEmail(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, validClient("ana@example.com"))
	require.NoError(t, err)

	_, err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)

	again, err := uc.Create(ctx, validClient("ana@example.com"))
	require.NoError(
		t, err, "a soft-deleted client must not hold its email",
	)
	assert.NotEqual(t, created.ID, again.ID)
}

func TestUpdatePatchesSuppliedFields(t *testing.T) {
	uc, _ := newUseCase()
	ctx := context.Background()
	created, err := uc.Create(ctx, validClient("ana@example.com"))
	require.NoError(t, err)

	name := "Eva"
	updated, err := uc.Update(
		ctx, created.ID, model.ClientPatch{FirstName: &name},
	)
	require.NoError(t, err)
	assert.Equal(t, "Eva", updated.FirstName)
	assert.Equal(t, created.Email, updated.Email, "unsupplied fields stay")
}
