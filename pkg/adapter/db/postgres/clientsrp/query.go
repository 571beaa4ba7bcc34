package clientsrp

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

func toGorm(client *model.Client) *gClient {
	return &gClient{
		CLID:           client.ID,
		FirstName:      client.FirstName,
		LastName:       client.LastName,
		DocumentType:   string(client.DocumentType),
		DocumentNumber: client.DocumentNumber,
		Nationality:    client.Nationality,
		Address:        client.Address,
		Phone:          client.Phone,
		Email:          client.Email,
		BirthDate:      client.BirthDate,
		IsRenting:      client.IsRenting,
		IsDeleted:      client.IsDeleted,
	}
}

func Insert[Q postgres.Queryer](ctx context.Context, q Q, client *model.Client) (*model.Client, error) {
	gc := toGorm(client)
	res := q.GORM(ctx).Create(gc)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("insert: %w", err)
	}
	return gc.Model(), nil
}

func List[Q postgres.Queryer](ctx context.Context, q Q) ([]model.Client, error) {
	var gcs []gClient
	res := q.GORM(ctx).Where("NOT is_deleted").
		Order("updated_at DESC").Find(&gcs)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	clients := make([]model.Client, 0, len(gcs))
	for i := range gcs {
		clients = append(clients, *gcs[i].Model())
	}
	return clients, nil
}

func Find[Q postgres.Queryer](ctx context.Context, q Q, clientID uuid.UUID) (*model.Client, error) {
	return findWhere(ctx, q, "clid=?", clientID)
}

// FindByEmail resolves a non-deleted client by email; soft-deleted
// clients do not hold their email against new registrations.
func FindByEmail[Q postgres.Queryer](ctx context.Context, q Q, email string) (*model.Client, error) {
	return findWhere(ctx, q, "email=? AND NOT is_deleted", email)
}

func FindAvailable[Q postgres.Queryer](ctx context.Context, q Q, clientID uuid.UUID) (*model.Client, error) {
	return findWhere(
		ctx, q, "clid=? AND NOT is_deleted AND NOT is_renting", clientID,
	)
}

func findWhere[Q postgres.Queryer](ctx context.Context, q Q, cond string, args ...any) (*model.Client, error) {
	var gcs []gClient
	res := q.GORM(ctx).Where(cond, args...).Limit(1).Find(&gcs)
	if err := res.Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gcs); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gcs[0].Model(), nil
}

func Patch[Q postgres.Queryer](ctx context.Context, q Q, clientID uuid.UUID, p model.ClientPatch) (*model.Client, error) {
	cols := make([]string, 0, 9)
	val := gClient{}
	if p.FirstName != nil {
		cols, val.FirstName = append(cols, "first_name"), *p.FirstName
	}
	if p.LastName != nil {
		cols, val.LastName = append(cols, "last_name"), *p.LastName
	}
	if p.DocumentType != nil {
		cols = append(cols, "document_type")
		val.DocumentType = string(*p.DocumentType)
	}
	if p.DocumentNumber != nil {
		cols = append(cols, "document_number")
		val.DocumentNumber = *p.DocumentNumber
	}
	if p.Nationality != nil {
		cols, val.Nationality = append(cols, "nationality"), *p.Nationality
	}
	if p.Address != nil {
		cols, val.Address = append(cols, "address"), *p.Address
	}
	if p.Phone != nil {
		cols, val.Phone = append(cols, "phone"), *p.Phone
	}
	if p.Email != nil {
		cols, val.Email = append(cols, "email"), *p.Email
	}
	if p.BirthDate != nil {
		cols, val.BirthDate = append(cols, "birth_date"), *p.BirthDate
	}
	if len(cols) == 0 {
		return Find(ctx, q, clientID)
	}
	return updateWhere(ctx, q, cols, val, "clid=?", clientID)
}

func SoftDelete[Q postgres.Queryer](ctx context.Context, q Q, clientID uuid.UUID) (*model.Client, error) {
	return updateWhere(
		ctx, q, []string{"is_deleted"}, gClient{IsDeleted: true},
		"clid=?", clientID,
	)
}

// Acquire grants rental exclusivity over the clientID client; see the
// carsrp.Acquire doc for the conditional update contract.
func Acquire[Q postgres.Queryer](ctx context.Context, q Q, clientID uuid.UUID) error {
	var gcs []gClient
	res := q.GORM(ctx).Model(&gcs).Clauses(clause.Returning{}).
		Select("is_renting").
		Where("clid=? AND NOT is_deleted AND NOT is_renting", clientID).
		Updates(gClient{IsRenting: true})
	if err := res.Error; err != nil {
		return fmt.Errorf("query: %w", err)
	}
	if len(gcs) != 1 {
		return cerr.Conflict(
			fmt.Errorf("client %s is not available anymore", clientID),
		)
	}
	return nil
}

func Release[Q postgres.Queryer](ctx context.Context, q Q, clientID uuid.UUID) error {
	_, err := updateWhere(
		ctx, q, []string{"is_renting"}, gClient{IsRenting: false},
		"clid=?", clientID,
	)
	return err
}

func updateWhere[Q postgres.Queryer](
	ctx context.Context, q Q,
	cols []string, val gClient,
	cond string, args ...any,
) (*model.Client, error) {
	var gcs []gClient
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
	return gcs[0].Model(), nil
}
