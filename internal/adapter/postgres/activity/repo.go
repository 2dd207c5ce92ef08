// Package activity implements the Activity repository using PostgreSQL.
// Activities form a tree through parent_id; children are always queried,
// never stored on the parent.
package activity

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/registry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/registry-backend/internal/domain"
)

const table = "activities"

var (
	columns   = []string{"id", "organization_id", "name", "parent_id"}
	returning = "RETURNING " + strings.Join(columns, ", ")

	filterable = []string{"id", "organization_id", "name", "parent_id"}
	writable   = []string{"organization_id", "name", "parent_id"}
)

type row struct {
	ID             int64  `db:"id"`
	OrganizationID *int64 `db:"organization_id"`
	Name           string `db:"name"`
	ParentID       *int64 `db:"parent_id"`
}

func (r row) toDomain() domain.Activity {
	return domain.Activity{
		ID:             r.ID,
		OrganizationID: r.OrganizationID,
		Name:           r.Name,
		ParentID:       r.ParentID,
	}
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the activity with the given id, or nil when absent.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Activity, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, fmt.Sprintf("get activity %d", id))
}

// GetByOrganizationID returns the activity of an organization, or nil when it has none.
func (r *Repo) GetByOrganizationID(ctx context.Context, orgID int64) (*domain.Activity, error) {
	return r.getOne(ctx, squirrel.Eq{"organization_id": orgID}, fmt.Sprintf("get activity of organization %d", orgID))
}

// GetByOrganizationIDs returns the activities of several organizations at once.
func (r *Repo) GetByOrganizationIDs(ctx context.Context, orgIDs []int64) ([]domain.Activity, error) {
	if len(orgIDs) == 0 {
		return []domain.Activity{}, nil
	}
	return r.list(ctx, squirrel.Eq{"organization_id": orgIDs}, "get activities by organization ids")
}

// GetByFilter returns every activity matching all recognized keys of filter.
// A nil parent_id value matches root activities (parent_id IS NULL).
func (r *Repo) GetByFilter(ctx context.Context, filter domain.Fields) ([]domain.Activity, error) {
	return r.list(ctx, squirrel.Eq(postgres.Pick(filter, filterable)), "get activities by filter")
}

// GetAll returns every activity ordered by id.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Activity, error) {
	return r.list(ctx, nil, "list activities")
}

// GetChildren returns the direct children of parentID ordered by id.
func (r *Repo) GetChildren(ctx context.Context, parentID int64) ([]domain.Activity, error) {
	return r.list(ctx, squirrel.Eq{"parent_id": parentID}, fmt.Sprintf("get children of activity %d", parentID))
}

// GetChildrenByParentIDs returns the direct children of every given parent,
// ordered by parent_id then id. Callers group by ParentID.
func (r *Repo) GetChildrenByParentIDs(ctx context.Context, parentIDs []int64) ([]domain.Activity, error) {
	if len(parentIDs) == 0 {
		return []domain.Activity{}, nil
	}

	q := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Eq{"parent_id": parentIDs}).
		OrderBy("parent_id", "id")

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("get children by parent ids: %w", err)
	}
	return toDomainList(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an activity from the recognized keys of fields.
func (r *Repo) Create(ctx context.Context, fields domain.Fields) (*domain.Activity, error) {
	values := postgres.Pick(fields, writable)
	if len(values) == 0 {
		return nil, fmt.Errorf("create activity: no columns to insert")
	}

	q := postgres.Builder().Insert(table).SetMap(values).Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}
	if got == nil {
		return nil, fmt.Errorf("create activity: no row returned")
	}
	a := got.toDomain()
	return &a, nil
}

// Update overwrites the recognized keys of fields. Returns nil when the
// activity does not exist; with no recognized keys the current row is returned.
func (r *Repo) Update(ctx context.Context, id int64, fields domain.Fields) (*domain.Activity, error) {
	set := postgres.Pick(fields, writable)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder().Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("update activity %d: %w", id, err)
	}
	if got == nil {
		return nil, nil
	}
	a := got.toDomain()
	return &a, nil
}

// Delete removes the activity. Its children are kept and become roots
// (ON DELETE SET NULL). Deleting a missing id is a no-op.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return fmt.Errorf("delete activity %d: %w", id, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Activity, error) {
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

func (r *Repo) list(ctx context.Context, where squirrel.Eq, op string) ([]domain.Activity, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("id")
	if len(where) > 0 {
		q = q.Where(where)
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return toDomainList(rows), nil
}

func toDomainList(rows []row) []domain.Activity {
	out := make([]domain.Activity, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out
}
