package carsrp

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

func toGorm(car *model.Car) *gCar {
	return &gCar{
		CID:       car.ID,
		Make:      car.Make,
		Model:     car.Model,
		Year:      car.Year,
		Mileage:   car.Mileage,
		Color:     car.Color,
		AC:        car.AC,
		Seats:     car.Seats,
		Gearbox:   string(car.Gearbox),
		Price:     car.Price,
		IsRented:  car.IsRented,
		IsDeleted: car.IsDeleted,
	}
}

func Insert[Q postgres.Queryer](ctx context.Context, q Q, car *model.Car) (*model.Car, error) {
	gc := toGorm(car)
	res := q.GORM(ctx).Create(gc)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gc.toModel(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Car, error) {
	var gcs []gCar
	res := q.GORM(ctx).Where("NOT is_deleted").
		Order("updated_at DESC").Find(&gcs)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	cars := make([]model.Car, 0, len(gcs))
	for i := range gcs {
		cars = append(cars, *gcs[i].toModel())
	}
	return cars, nil
}

func Find[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) (*model.Car, error) {
	return findWhere(ctx, q, "cid=?", carID)
}

func FindAvailable[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) (*model.Car, error) {
	return findWhere(
		ctx, q, "cid=? AND NOT is_deleted AND NOT is_rented", carID,
	)
}

func findWhere[Q postgres.Queryer](ctx context.Context, q Q, cond string, args ...any) (*model.Car, error) {
	var gcs []gCar
	res := q.GORM(ctx).Where(cond, args...).Limit(1).Find(&gcs)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gcs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gcs[0].toModel(), nil
}

func Patch[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID, p model.CarPatch) (*model.Car, error) {
	cols := make([]string, 0, 9)
	val := gCar{}
	if p.Make != nil {
		cols, val.Make = append(cols, "make"), *p.Make
	}
	if p.Model != nil {
		cols, val.Model = append(cols, "model"), *p.Model
	}
	if p.Year != nil {
		cols, val.Year = append(cols, "year"), *p.Year
	}
	if p.Mileage != nil {
		cols, val.Mileage = append(cols, "km"), *p.Mileage
	}
	if p.Color != nil {
		cols, val.Color = append(cols, "color"), *p.Color
	}
	if p.AC != nil {
		cols, val.AC = append(cols, "ac"), *p.AC
	}
	if p.Seats != nil {
		cols, val.Seats = append(cols, "passengers"), *p.Seats
	}
	if p.Gearbox != nil {
		cols, val.Gearbox = append(cols, "gearbox"), string(*p.Gearbox)
	}
	if p.Price != nil {
		cols, val.Price = append(cols, "price"), *p.Price
	}
	if len(cols) == 0 {
		return Find(ctx, q, carID)
	}
	return updateWhere(ctx, q, cols, val, "cid=?", carID)
}

func SoftDelete[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) (*model.Car, error) {
	return updateWhere(
		ctx, q, []string{"is_deleted"}, gCar{IsDeleted: true},
		"cid=?", carID,
	)
}

// Acquire grants rental exclusivity over the carID car. The flag flip
// is guarded on the current availability state, so of two interleaved
// acquires only one can match the row; the loser observes a Conflict.
func Acquire[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) error {
	var gcs []gCar
	res := q.GORM(ctx).Model(&gcs).Clauses(clause.Returning{}).
		Select("is_rented").
		Where("cid=? AND NOT is_deleted AND NOT is_rented", carID).
		Updates(gCar{IsRented: true})
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if len(gcs) != 1 {
		return cerr.Conflict(
			fmt.Errorf("car %s is not available anymore", carID),
		)
	}
	return nil
}

func Release[Q postgres.Queryer](ctx context.Context, q Q, carID uuid.UUID) error {
	_, err := updateWhere(
		ctx, q, []string{"is_rented"}, gCar{IsRented: false},
		"cid=?", carID,
	)
	return err
}

func updateWhere[Q postgres.Queryer](
	ctx context.Context, q Q,
	cols []string, val gCar,
	cond string, args ...any,
) (*model.Car, error) {
	var gcs []gCar
	res := q.GORM(ctx).Model(&gcs).Clauses(clause.Returning{}).
		Select(cols).Where(cond, args...).Updates(val)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gcs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gcs[0].toModel(), nil
}
