// Package organization implements the Organization repository using PostgreSQL.
package organization

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/registry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/registry-backend/internal/domain"
)

const table = "organizations"

var (
	columns   = []string{"id", "name", "phone", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")

	// filterable is the allow-list for GetByFilter.
	filterable = []string{"id", "name", "phone"}

	// writable is the allow-list for Create and Update.
	writable = []string{"name", "phone"}
)

type row struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Organization {
	return &domain.Organization{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides organization persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new organization repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the organization with the given id, or nil when absent.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("get organization %d: %w", id, err)
	}
	if got == nil {
		return nil, nil
	}
	return got.toDomain(), nil
}

// GetByFilter returns the first organization (lowest id) matching all
// recognized keys of filter, or nil when none matches.
func (r *Repo) GetByFilter(ctx context.Context, filter domain.Fields) (*domain.Organization, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("id").Limit(1)
	if eq := postgres.Pick(filter, filterable); len(eq) > 0 {
		q = q.Where(squirrel.Eq(eq))
	}

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("get organization by filter: %w", err)
	}
	if got == nil {
		return nil, nil
	}
	return got.toDomain(), nil
}

// GetAll returns every organization ordered by id.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Organization, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("id")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	out := make([]domain.Organization, len(rows))
	for i, rw := range rows {
		out[i] = *rw.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an organization from the recognized keys of fields.
// A duplicate name surfaces as a unique violation (see postgres.IsUniqueViolation).
func (r *Repo) Create(ctx context.Context, fields domain.Fields) (*domain.Organization, error) {
	values := postgres.Pick(fields, writable)
	if len(values) == 0 {
		return nil, fmt.Errorf("create organization: no columns to insert")
	}

	q := postgres.Builder().Insert(table).SetMap(values).Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("create organization: %w", err)
	}
	if got == nil {
		return nil, fmt.Errorf("create organization: no row returned")
	}
	return got.toDomain(), nil
}

// Update overwrites the recognized keys of fields and returns the new row.
// Returns nil when the organization does not exist. With no recognized keys
// the current row is returned unchanged.
func (r *Repo) Update(ctx context.Context, id int64, fields domain.Fields) (*domain.Organization, error) {
	set := postgres.Pick(fields, writable)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder().Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("update organization %d: %w", id, err)
	}
	if got == nil {
		return nil, nil
	}
	return got.toDomain(), nil
}

// Delete removes the organization. Its address and activity go with it
// (ON DELETE CASCADE). Deleting a missing id is a no-op.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return fmt.Errorf("delete organization %d: %w", id, err)
	}
	return nil
}
