// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package rentalsuc contains the rentals use case: the rental
// transaction lifecycle manager. It validates car/client eligibility,
// computes and freezes pricing, and mutates the availability state of
// a car, a client, and a transaction as one atomic unit.
//
// Every mutating operation runs inside a single database transaction
// and every exclusivity grant is a conditional update, so two
// interleaved operations can never commit the same car or client into
// two active rentals; the loser observes a Conflict error and its
// whole unit rolls back.
package rentalsuc

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/core/cerr"
	"github.com/rentautos/rentaweb/pkg/core/log"
	"github.com/rentautos/rentaweb/pkg/core/model"
	"github.com/rentautos/rentaweb/pkg/core/repo"
)

// UseCase represents the rentals use case. It holds a database
// connection pool and the three repository instances it coordinates.
type UseCase struct {
	pool      repo.Pool
	carsrp    repo.Cars
	clientsrp repo.Clients
	rentalsrp repo.Rentals
}

// New instantiates a rentals use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
func New(
	p repo.Pool, cars repo.Cars, clients repo.Clients, rentals repo.Rentals,
) *UseCase {
	return &UseCase{
		pool:      p,
		carsrp:    cars,
		clientsrp: clients,
		rentalsrp: rentals,
	}
}

// Create books the cid car for the clid client over the [start,
// finish] range. The car and client must be available (existing,
// not deleted, not committed to another rental) and the range must
// span at least one day; day counts are real-valued, so 36 hours
// count as 1.5 days. The per-day price is snapshotted from the car
// at this moment and never recomputed retroactively.
// The transaction insert and both availability flips commit together
// or not at all.
func (r *UseCase) Create(
	ctx context.Context,
	cid, clid uuid.UUID,
	start, finish time.Time,
) (t *model.Transaction, err error) {
	err = r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			cars := r.carsrp.Tx(tx)
			clients := r.clientsrp.Tx(tx)
			car, err := cars.FindAvailable(ctx, cid)
			if err != nil {
				return cerr.BadRequest(
					fmt.Errorf("not a valid car: %w", err),
				)
			}
			client, err := clients.FindAvailable(ctx, clid)
			if err != nil {
				return cerr.BadRequest(
					fmt.Errorf("not a valid client: %w", err),
				)
			}
			days := model.DaysOfRental(start, finish)
			if days < 1 {
				return cerr.BadRequest(fmt.Errorf(
					"finish_date must be at least one day"+
						" after start_date, got %v days", days,
				))
			}
			t, err = r.rentalsrp.Tx(tx).Insert(ctx, &model.Transaction{
				ID:          uuid.New(),
				CarID:       car.ID,
				ClientID:    client.ID,
				StartDate:   start,
				FinishDate:  finish,
				PricePerDay: car.Price,
				TotalPrice:  car.Price * days,
				IsActive:    true,
			})
			if err != nil {
				return fmt.Errorf("inserting transaction: %w", err)
			}
			if err := cars.Acquire(ctx, car.ID); err != nil {
				return fmt.Errorf("acquiring car: %w", err)
			}
			if err := clients.Acquire(ctx, client.ID); err != nil {
				return fmt.Errorf("acquiring client: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		t = nil
		return
	}
	log.Debug(
		ctx, "booked rental transaction",
		log.ID("tid", t.ID), log.ID("cid", cid), log.ID("clid", clid),
	)
	return
}

// Update rewrites the tid transaction with the given car, client, and
// date range. A changed client (or car) must be available; the
// previous holder is released and the new one is acquired within the
// same atomic unit, keeping exactly one active link per entity. The
// availability flags are only flipped while the transaction is active;
// rewriting a finished transaction never re-rents the old or new
// entities. The per-day price is re-snapshotted from the (possibly
// new) car at update time, abandoning the price frozen at booking.
//
// Unlike Create, a zero-length range is accepted and only a negative
// one is rejected. The discrepancy is inherited from the reference
// behavior of this service and is kept until a product decision
// unifies the two rules.
func (r *UseCase) Update(
	ctx context.Context,
	tid, cid, clid uuid.UUID,
	start, finish time.Time,
) (t *model.Transaction, err error) {
	err = r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			cars := r.carsrp.Tx(tx)
			clients := r.clientsrp.Tx(tx)
			rentals := r.rentalsrp.Tx(tx)
			cur, err := rentals.Find(ctx, tid)
			if err != nil {
				return err
			}
			if !cur.IsActive {
				log.Warn(
					ctx, "rewriting a finished transaction",
					log.ID("tid", tid),
				)
			}
			clientChanged := clid != cur.ClientID
			if clientChanged {
				if _, err := clients.FindAvailable(ctx, clid); err != nil {
					return cerr.NotFound(fmt.Errorf(
						"client not found or is already renting a car: %w",
						err,
					))
				}
			}
			carChanged := cid != cur.CarID
			var pricePerDay float64
			if carChanged {
				car, err := cars.FindAvailable(ctx, cid)
				if err != nil {
					return cerr.NotFound(fmt.Errorf(
						"car not found or is already rented: %w", err,
					))
				}
				pricePerDay = car.Price
			} else {
				car, err := cars.Find(ctx, cid)
				if err != nil {
					return fmt.Errorf("fetching current car: %w", err)
				}
				pricePerDay = car.Price
			}
			days := model.DaysOfRental(start, finish)
			if days < 0 {
				return cerr.BadRequest(fmt.Errorf(
					"finish_date must not precede start_date,"+
						" got %v days", days,
				))
			}
			t, err = rentals.Update(ctx, tid, model.TransactionUpdate{
				CarID:       cid,
				ClientID:    clid,
				StartDate:   start,
				FinishDate:  finish,
				PricePerDay: pricePerDay,
				TotalPrice:  pricePerDay * days,
			})
			if err != nil {
				return fmt.Errorf("updating transaction: %w", err)
			}
			if cur.IsActive && clientChanged {
				if err := clients.Release(ctx, cur.ClientID); err != nil {
					return fmt.Errorf("releasing old client: %w", err)
				}
				if err := clients.Acquire(ctx, clid); err != nil {
					return fmt.Errorf("acquiring new client: %w", err)
				}
			}
			if cur.IsActive && carChanged {
				if err := cars.Release(ctx, cur.CarID); err != nil {
					return fmt.Errorf("releasing old car: %w", err)
				}
				if err := cars.Acquire(ctx, cid); err != nil {
					return fmt.Errorf("acquiring new car: %w", err)
				}
			}
			return nil
		})
	})
	if err != nil {
		t = nil
	}
	return
}

// Finish terminates the tid transaction: the car and client are
// released and the transaction leaves the active state, all in one
// atomic unit. Finishing an already finished transaction is rejected,
// so a stale re-finish cannot clear flags owned by a newer rental.
func (r *UseCase) Finish(ctx context.Context, tid uuid.UUID) (t *model.Transaction, err error) {
	err = r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			rentals := r.rentalsrp.Tx(tx)
			cur, err := rentals.Find(ctx, tid)
			if err != nil {
				return err
			}
			if !cur.IsActive {
				return cerr.BadRequest(fmt.Errorf(
					"transaction %s is already finished", tid,
				))
			}
			if err := r.carsrp.Tx(tx).Release(ctx, cur.CarID); err != nil {
				return fmt.Errorf("releasing car: %w", err)
			}
			err = r.clientsrp.Tx(tx).Release(ctx, cur.ClientID)
			if err != nil {
				return fmt.Errorf("releasing client: %w", err)
			}
			t, err = rentals.Finish(ctx, tid)
			return err
		})
	})
	if err != nil {
		t = nil
	}
	return
}

// List returns rental transactions with their car and client details
// expanded, active transactions first and most-recently-updated first.
// With activeOnly, finished transactions are omitted.
func (r *UseCase) List(ctx context.Context, activeOnly bool) (ts []model.RentalDetails, err error) {
	err = r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		ts, err = r.rentalsrp.Conn(c).List(ctx, activeOnly)
		return err
	})
	if err != nil {
		ts = nil
	}
	return
}

// Get returns the tid transaction with its car and client details.
func (r *UseCase) Get(ctx context.Context, tid uuid.UUID) (t *model.RentalDetails, err error) {
	err = r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		t, err = r.rentalsrp.Conn(c).FindDetailed(ctx, tid)
		return err
	})
	if err != nil {
		t = nil
	}
	return
}
