// Package address implements the Address repository using PostgreSQL.
// An organization has at most one address (unique organization_id).
package address

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/registry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/registry-backend/internal/domain"
)

const table = "addresses"

var (
	columns = []string{
		"id", "organization_id", "country", "region", "city",
		"street", "house_number", "apartment", "latitude", "longitude",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")

	filterable = []string{
		"id", "organization_id", "country", "region", "city",
		"street", "house_number", "apartment",
	}

	writable = []string{
		"organization_id", "country", "region", "city",
		"street", "house_number", "apartment", "latitude", "longitude",
	}
)

type row struct {
	ID             int64    `db:"id"`
	OrganizationID int64    `db:"organization_id"`
	Country        string   `db:"country"`
	Region         string   `db:"region"`
	City           string   `db:"city"`
	Street         string   `db:"street"`
	HouseNumber    string   `db:"house_number"`
	Apartment      string   `db:"apartment"`
	Latitude       *float64 `db:"latitude"`
	Longitude      *float64 `db:"longitude"`
}

func (r row) toDomain() domain.Address {
	return domain.Address{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Country:        r.Country,
		Region:         r.Region,
		City:           r.City,
		Street:         r.Street,
		HouseNumber:    r.HouseNumber,
		Apartment:      r.Apartment,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
}

func toDomainList(rows []row) []domain.Address {
	out := make([]domain.Address, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out
}

// Repo provides address persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new address repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns the address with the given id, or nil when absent.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, fmt.Sprintf("get address %d", id))
}

// GetByOrganizationID returns the address of an organization, or nil when it has none.
func (r *Repo) GetByOrganizationID(ctx context.Context, orgID int64) (*domain.Address, error) {
	return r.getOne(ctx, squirrel.Eq{"organization_id": orgID}, fmt.Sprintf("get address of organization %d", orgID))
}

// GetByOrganizationIDs returns the addresses of several organizations at once.
// Organizations without an address are simply missing from the result.
func (r *Repo) GetByOrganizationIDs(ctx context.Context, orgIDs []int64) ([]domain.Address, error) {
	if len(orgIDs) == 0 {
		return []domain.Address{}, nil
	}

	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"organization_id": orgIDs}).
		OrderBy("organization_id")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("get addresses by organization ids: %w", err)
	}
	return toDomainList(rows), nil
}

// GetByFilter returns every address matching all recognized keys of filter,
// ordered by id. An empty result is an empty slice.
func (r *Repo) GetByFilter(ctx context.Context, filter domain.Fields) ([]domain.Address, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("id")
	if eq := postgres.Pick(filter, filterable); len(eq) > 0 {
		q = q.Where(squirrel.Eq(eq))
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("get addresses by filter: %w", err)
	}
	return toDomainList(rows), nil
}

// GetAll returns every address ordered by id.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Address, error) {
	return r.GetByFilter(ctx, nil)
}

// Create inserts an address from the recognized keys of fields.
func (r *Repo) Create(ctx context.Context, fields domain.Fields) (*domain.Address, error) {
	values := postgres.Pick(fields, writable)
	if len(values) == 0 {
		return nil, fmt.Errorf("create address: no columns to insert")
	}

	q := postgres.Builder().Insert(table).SetMap(values).Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	if got == nil {
		return nil, fmt.Errorf("create address: no row returned")
	}
	a := got.toDomain()
	return &a, nil
}

// Update overwrites the recognized keys of fields. Returns nil when the
// address does not exist; with no recognized keys the current row is returned.
func (r *Repo) Update(ctx context.Context, id int64, fields domain.Fields) (*domain.Address, error) {
	set := postgres.Pick(fields, writable)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder().Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("update address %d: %w", id, err)
	}
	if got == nil {
		return nil, nil
	}
	a := got.toDomain()
	return &a, nil
}

// Delete removes the address. Deleting a missing id is a no-op.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Address, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(where)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if got == nil {
		return nil, nil
	}
	a := got.toDomain()
	return &a, nil
}
