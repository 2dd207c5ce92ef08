// Package incident implements the Incident repository using PostgreSQL.
package incident

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/registry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/registry-backend/internal/domain"
)

const table = "incidents"

var (
	columns   = []string{"id", "text", "status", "author", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")

	filterable = []string{"id", "status", "author"}

	// id and created_at are never taken from the caller.
	writable = []string{"text", "status", "author"}
)

type row struct {
	ID        uuid.UUID `db:"id"`
	Text      string    `db:"text"`
	Status    string    `db:"status"`
	Author    string    `db:"author"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Incident {
	return domain.Incident{
		ID:        r.ID,
		Text:      r.Text,
		Status:    domain.IncidentStatus(r.Status),
		Author:    domain.IncidentAuthor(r.Author),
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides incident persistence backed by PostgreSQL.
type Repo struct {
	db    postgres.Querier
	newID func() uuid.UUID
}

// New creates a new incident repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db, newID: uuid.New}
}

// GetByID returns the incident with the given id, or nil when absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Incident, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("get incident %s: %w", id, err)
	}
	if got == nil {
		return nil, nil
	}
	inc := got.toDomain()
	return &inc, nil
}

// GetByFilter returns every incident matching all recognized keys of filter,
// oldest first.
func (r *Repo) GetByFilter(ctx context.Context, filter domain.Fields) ([]domain.Incident, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("created_at", "id")
	if eq := postgres.Pick(normalize(filter), filterable); len(eq) > 0 {
		q = q.Where(squirrel.Eq(eq))
	}

	rows, err := postgres.Select[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("get incidents by filter: %w", err)
	}

	out := make([]domain.Incident, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// GetAll returns every incident, oldest first.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Incident, error) {
	return r.GetByFilter(ctx, nil)
}

// Create inserts an incident with a freshly generated id. Status defaults to
// created when fields does not carry one.
func (r *Repo) Create(ctx context.Context, fields domain.Fields) (*domain.Incident, error) {
	values := postgres.Pick(normalize(fields), writable)
	if _, ok := values["status"]; !ok {
		values["status"] = domain.IncidentStatusCreated.String()
	}
	values["id"] = r.newID()

	q := postgres.Builder().Insert(table).SetMap(values).Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("create incident: %w", err)
	}
	if got == nil {
		return nil, fmt.Errorf("create incident: no row returned")
	}
	inc := got.toDomain()
	return &inc, nil
}

// Update overwrites the recognized keys of fields. Returns nil when the
// incident does not exist; with no recognized keys the current row is returned.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, fields domain.Fields) (*domain.Incident, error) {
	set := postgres.Pick(normalize(fields), writable)
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	q := postgres.Builder().Update(table).SetMap(set).Where(squirrel.Eq{"id": id}).Suffix(returning)

	got, err := postgres.Get[row](ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return nil, fmt.Errorf("update incident %s: %w", id, err)
	}
	if got == nil {
		return nil, nil
	}
	inc := got.toDomain()
	return &inc, nil
}

// Delete removes the incident. Deleting a missing id is a no-op.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q); err != nil {
		return fmt.Errorf("delete incident %s: %w", id, err)
	}
	return nil
}

// normalize turns enum values into their string form so that the driver
// sends plain text.
func normalize(f domain.Fields) domain.Fields {
	out := make(domain.Fields, len(f))
	for k, v := range f {
		switch tv := v.(type) {
		case domain.IncidentStatus:
			out[k] = tv.String()
		case domain.IncidentAuthor:
			out[k] = tv.String()
		default:
			out[k] = v
		}
	}
	return out
}
