// Package clientsrp realizes the clients repository: the client
// records table queries, the email lookup backing the uniqueness rule,
// and the availability contract over the renting flag.
package clientsrp

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

func (clients *Repo) Conn(c repo.Conn) repo.ClientsConnQueryer {
	cc := c.(*postgres.Conn)
	return connQueryer{Conn: cc}
}

func (cq connQueryer) Insert(ctx context.Context, client *model.Client) (*model.Client, error) {
	return Insert(ctx, cq.Conn, client)
}

func (cq connQueryer) List(ctx context.Context) ([]model.Client, error) {
	return List(ctx, cq.Conn)
}

func (cq connQueryer) Find(ctx context.Context, clientID uuid.UUID) (*model.Client, error) {
	return Find(ctx, cq.Conn, clientID)
}

func (cq connQueryer) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	return FindByEmail(ctx, cq.Conn, email)
}

func (cq connQueryer) FindAvailable(ctx context.Context, clientID uuid.UUID) (*model.Client, error) {
	return FindAvailable(ctx, cq.Conn, clientID)
}

func (cq connQueryer) Patch(ctx context.Context, clientID uuid.UUID, p model.ClientPatch) (*model.Client, error) {
	return Patch(ctx, cq.Conn, clientID, p)
}

func (cq connQueryer) SoftDelete(ctx context.Context, clientID uuid.UUID) (*model.Client, error) {
	return SoftDelete(ctx, cq.Conn, clientID)
}

func (cq connQueryer) Acquire(ctx context.Context, clientID uuid.UUID) error {
	return Acquire(ctx, cq.Conn, clientID)
}

func (cq connQueryer) Release(ctx context.Context, clientID uuid.UUID) error {
	return Release(ctx, cq.Conn, clientID)
}

type txQueryer struct {
	*postgres.Tx
}

func (clients *Repo) Tx(tx repo.Tx) repo.ClientsTxQueryer {
	tt := tx.(*postgres.Tx)
	return txQueryer{Tx: tt}
}

func (tq txQueryer) Insert(ctx context.Context, client *model.Client) (*model.Client, error) {
	return Insert(ctx, tq.Tx, client)
}

func (tq txQueryer) List(ctx context.Context) ([]model.Client, error) {
	return List(ctx, tq.Tx)
}

func (tq txQueryer) Find(ctx context.Context, clientID uuid.UUID) (*model.Client, error) {
	return Find(ctx, tq.Tx, clientID)
}

func (tq txQueryer) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	return FindByEmail(ctx, tq.Tx, email)
}

func (tq txQueryer) FindAvailable(ctx context.Context, clientID uuid.UUID) (*model.Client, error) {
	return FindAvailable(ctx, tq.Tx, clientID)
}

func (tq txQueryer) Patch(ctx context.Context, clientID uuid.UUID, p model.ClientPatch) (*model.Client, error) {
	return Patch(ctx, tq.Tx, clientID, p)
}

func (tq txQueryer) SoftDelete(ctx context.Context, clientID uuid.UUID) (*model.Client, error) {
	return SoftDelete(ctx, tq.Tx, clientID)
}

func (tq txQueryer) Acquire(ctx context.Context, clientID uuid.UUID) error {
	return Acquire(ctx, tq.Tx, clientID)
}

func (tq txQueryer) Release(ctx context.Context, clientID uuid.UUID) error {
	return Release(ctx, tq.Tx, clientID)
}
