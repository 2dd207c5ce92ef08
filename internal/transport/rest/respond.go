package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

// txRunner runs fn inside a single database transaction.
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// inTx runs fn in a transaction and returns its result. The result is the
// zero value whenever the transaction was rolled back.
func inTx[T any](ctx context.Context, tx txRunner, fn func(ctx context.Context) (T, error)) (T, error) {
	var out T
	err := tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		out, err = fn(ctx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

type validator interface {
	Validate() error
}

// decodeInput reads a JSON body into T and validates it.
func decodeInput[T validator](r *http.Request) (T, error) {
	var in T
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, domain.NewValidationError("body", "invalid JSON")
	}
	if err := in.Validate(); err != nil {
		return in, err
	}
	return in, nil
}

// parseID reads a positive integer path value.
func parseID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}

// parseIncidentID reads the incident UUID path value. A malformed id can never
// name an existing incident, so it is reported as not found.
func parseIncidentID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewNotFoundError(domain.EntityIncident, raw)
	}
	return id, nil
}

func queryString(q url.Values, key string) *string {
	if !q.Has(key) {
		return nil
	}
	v := strings.TrimSpace(q.Get(key))
	return &v
}

func queryInt(q url.Values, key string) (*int64, error) {
	if !q.Has(key) {
		return nil, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(q.Get(key)), 10, 64)
	if err != nil || v <= 0 {
		return nil, domain.NewValidationError(key, "must be a positive integer")
	}
	return &v, nil
}

func queryBool(q url.Values, key string) (bool, error) {
	if !q.Has(key) {
		return false, nil
	}
	v, err := strconv.ParseBool(q.Get(key))
	if err != nil {
		return false, domain.NewValidationError(key, "must be a boolean")
	}
	return v, nil
}

type errorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// handleError maps service and validation errors to HTTP responses.
// Unexpected errors are logged and answered with a generic message.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
	)
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Error(), Details: verr.Errors})
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		log.ErrorContext(r.Context(), "operation failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "operation failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
