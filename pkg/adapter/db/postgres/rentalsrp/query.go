// Copyright (c) 2024 The Rentaweb Authors
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package rentalsrp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rentautos/rentaweb/pkg/adapter/db/postgres"
	"github.com/rentautos/rentaweb/pkg/core/cerr"
	"github.com/rentautos/rentaweb/pkg/core/model"
	"gorm.io/gorm/clause"
)

// gCar and gClient mirror the owning repositories' table mappings just
// far enough to preload the expanded rental views.
type gCar struct {
	CID       uuid.UUID `gorm:"primaryKey;type:uuid;column:cid"`
	Make      string
	Model     string
	Year      int
	Mileage   int `gorm:"column:km"`
	Color     string
	AC        bool `gorm:"column:ac"`
	Seats     int  `gorm:"column:passengers"`
	Gearbox   string
	Price     float64
	IsRented  bool
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (gc *gCar) TableName() string {
	return "cars"
}

func (gc *gCar) toModel() *model.Car {
	return &model.Car{
		ID:        gc.CID,
		Make:      gc.Make,
		Model:     gc.Model,
		Year:      gc.Year,
		Mileage:   gc.Mileage,
		Color:     gc.Color,
		AC:        gc.AC,
		Seats:     gc.Seats,
		Gearbox:   model.Gearbox(gc.Gearbox),
		Price:     gc.Price,
		IsRented:  gc.IsRented,
		IsDeleted: gc.IsDeleted,
		CreatedAt: gc.CreatedAt,
		UpdatedAt: gc.UpdatedAt,
	}
}

type gClient struct {
	CLID           uuid.UUID `gorm:"primaryKey;type:uuid;column:clid"`
	FirstName      string
	LastName       string
	DocumentType   string
	DocumentNumber string
	Nationality    string
	Address        string
	Phone          string
	Email          string
	BirthDate      time.Time
	IsRenting      bool
	IsDeleted      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (gc *gClient) TableName() string {
	return "clients"
}

func (gc *gClient) Model() *model.Client {
	return &model.Client{
		ID:             gc.CLID,
		FirstName:      gc.FirstName,
		LastName:       gc.LastName,
		DocumentType:   model.DocumentType(gc.DocumentType),
		DocumentNumber: gc.DocumentNumber,
		Nationality:    gc.Nationality,
		Address:        gc.Address,
		Phone:          gc.Phone,
		Email:          gc.Email,
		BirthDate:      gc.BirthDate,
		IsRenting:      gc.IsRenting,
		IsDeleted:      gc.IsDeleted,
		CreatedAt:      gc.CreatedAt,
		UpdatedAt:      gc.UpdatedAt,
	}
}

type gTransaction struct {
	TID         uuid.UUID `gorm:"primaryKey;type:uuid;column:tid"`
	CarID       uuid.UUID `gorm:"type:uuid;column:cid"`
	ClientID    uuid.UUID `gorm:"type:uuid;column:clid"`
	StartDate   time.Time
	FinishDate  time.Time
	PricePerDay float64
	TotalPrice  float64
	IsActive    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Car         gCar    `gorm:"foreignKey:CarID;references:CID"`
	Client      gClient `gorm:"foreignKey:ClientID;references:CLID"`
}

func (gt *gTransaction) TableName() string {
	return "transactions"
}

func (gt *gTransaction) Model() *model.Transaction {
	return &model.Transaction{
		ID:          gt.TID,
		CarID:       gt.CarID,
		ClientID:    gt.ClientID,
		StartDate:   gt.StartDate,
		FinishDate:  gt.FinishDate,
		PricePerDay: gt.PricePerDay,
		TotalPrice:  gt.TotalPrice,
		IsActive:    gt.IsActive,
		IsDeleted:   gt.IsDeleted,
		CreatedAt:   gt.CreatedAt,
		UpdatedAt:   gt.UpdatedAt,
	}
}

func (gt *gTransaction) Details() *model.RentalDetails {
	return &model.RentalDetails{
		Transaction: *gt.Model(),
		Car:         *gt.Car.toModel(),
		Client:      *gt.Client.Model(),
	}
}

func toGorm(t *model.Transaction) *gTransaction {
	return &gTransaction{
		TID:         t.ID,
		CarID:       t.CarID,
		ClientID:    t.ClientID,
		StartDate:   t.StartDate,
		FinishDate:  t.FinishDate,
		PricePerDay: t.PricePerDay,
		TotalPrice:  t.TotalPrice,
		IsActive:    t.IsActive,
		IsDeleted:   t.IsDeleted,
	}
}

func Insert[Q postgres.Queryer](ctx context.Context, q Q, t *model.Transaction) (*model.Transaction, error) {
	gt := toGorm(t)
	res := q.GORM(ctx).Omit("Car", "Client").Create(gt)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gt.Model(), nil
}

func Find[Q postgres.Queryer](ctx context.Context, q Q, transactionID uuid.UUID) (*model.Transaction, error) {
	var gts []gTransaction
	res := q.GORM(ctx).Where("tid=?", transactionID).Limit(1).Find(&gts)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gts); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gts[0].Model(), nil
}

func FindDetailed[Q postgres.Queryer](ctx context.Context, q Q, transactionID uuid.UUID) (*model.RentalDetails, error) {
	var gts []gTransaction
	res := q.GORM(ctx).Preload("Car").Preload("Client").
		Where("tid=?", transactionID).Limit(1).Find(&gts)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gts); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gts[0].Details(), nil
}

// List reports transactions with their car and client expanded, active
// ones first and most recently updated first within each group. With
// activeOnly, finished transactions are left out entirely.
func List[Q postgres.Queryer](ctx context.Context, q Q, activeOnly bool) ([]model.RentalDetails, error) {
	gdb := q.GORM(ctx).Preload("Car").Preload("Client").
		Order("is_active DESC, updated_at DESC")
	if activeOnly {
		gdb = gdb.Where("is_active")
	}
	var gts []gTransaction
	res := gdb.Find(&gts)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	rentals := make([]model.RentalDetails, 0, len(gts))
	for i := range gts {
		rentals = append(rentals, *gts[i].Details())
	}
	return rentals, nil
}

// Update rewrites the rebookable fields as one row-wide assignment; the
// columns are selected explicitly so zero values overwrite too.
func Update[Q postgres.Queryer](ctx context.Context, q Q, transactionID uuid.UUID, u model.TransactionUpdate) (*model.Transaction, error) {
	return updateWhere(
		ctx, q,
		[]string{
			"cid", "clid", "start_date", "finish_date",
			"price_per_day", "total_price",
		},
		gTransaction{
			CarID:       u.CarID,
			ClientID:    u.ClientID,
			StartDate:   u.StartDate,
			FinishDate:  u.FinishDate,
			PricePerDay: u.PricePerDay,
			TotalPrice:  u.TotalPrice,
		},
		"tid=?", transactionID,
	)
}

func Finish[Q postgres.Queryer](ctx context.Context, q Q, transactionID uuid.UUID) (*model.Transaction, error) {
	return updateWhere(
		ctx, q, []string{"is_active"}, gTransaction{IsActive: false},
		"tid=?", transactionID,
	)
}

func updateWhere[Q postgres.Queryer](
	ctx context.Context, q Q,
	cols []string, val gTransaction,
	cond string, args ...any,
) (*model.Transaction, error) {
	var gts []gTransaction
	res := q.GORM(ctx).Model(&gts).Clauses(clause.Returning{}).
		Select(cols).Where(cond, args...).Updates(val)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gts); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gts[0].Model(), nil
}
