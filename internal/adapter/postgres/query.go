package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Builder returns a squirrel statement builder using PostgreSQL placeholders.
func Builder() squirrel.StatementBuilderType {
	return psql
}

// Pick copies the keys of f that appear in allowed. Unknown keys are dropped.
// The result is never nil.
func Pick(f domain.Fields, allowed []string) map[string]any {
	out := make(map[string]any, len(f))
	for _, col := range allowed {
		if v, ok := f[col]; ok {
			out[col] = v
		}
	}
	return out
}

// Get runs the query and scans a single row into T.
// Returns nil, nil when the query yields no rows.
func Get[T any](ctx context.Context, q Querier, b squirrel.Sqlizer) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst T
	if err := pgxscan.Get(ctx, q, &dst, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &dst, nil
}

// Select runs the query and scans all rows into a slice of T.
// The result is empty, never nil, when there are no rows.
func Select[T any](ctx context.Context, q Querier, b squirrel.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	dst := make([]T, 0)
	if err := pgxscan.Select(ctx, q, &dst, query, args...); err != nil {
		return nil, err
	}
	return dst, nil
}

// Exec runs a statement that returns no rows and reports the affected row count.
func Exec(ctx context.Context, q Querier, b squirrel.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
