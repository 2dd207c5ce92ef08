package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/registry-backend/internal/domain"
	"github.com/heartmarshall/registry-backend/internal/service/activity"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type activityService interface {
	Get(ctx context.Context, id int64) (view.Activity, error)
	Find(ctx context.Context, filter activity.Filter) ([]view.Activity, error)
	List(ctx context.Context) ([]view.Activity, error)
	Children(ctx context.Context, id int64) ([]view.Activity, error)
	Create(ctx context.Context, input activity.CreateInput) (view.Activity, error)
	Update(ctx context.Context, id int64, input activity.UpdateInput) (view.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityHandler serves /api/v1/activities.
type ActivityHandler struct {
	svc activityService
	tx  txRunner
	log *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, tx txRunner, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{svc: svc, tx: tx, log: logger.With("handler", "activity")}
}

// Register mounts the activity routes on mux.
func (h *ActivityHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/activities", h.List)
	mux.HandleFunc("POST /api/v1/activities", h.Create)
	mux.HandleFunc("GET /api/v1/activities/{id}", h.Get)
	mux.HandleFunc("GET /api/v1/activities/{id}/children", h.Children)
	mux.HandleFunc("PATCH /api/v1/activities/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/activities/{id}", h.Delete)
}

// List handles GET /activities?name=&organization_id=&parent_id=&roots=.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := activityFilter(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	acts, err := inTx(r.Context(), h.tx, func(ctx context.Context) ([]view.Activity, error) {
		if filter == (activity.Filter{}) {
			return h.svc.List(ctx)
		}
		return h.svc.Find(ctx, filter)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, acts)
}

// Get handles GET /activities/{id}.
func (h *ActivityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	act, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Activity, error) {
		return h.svc.Get(ctx, id)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, act)
}

// Children handles GET /activities/{id}/children.
func (h *ActivityHandler) Children(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	children, err := inTx(r.Context(), h.tx, func(ctx context.Context) ([]view.Activity, error) {
		return h.svc.Children(ctx, id)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, children)
}

// Create handles POST /activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput[activity.CreateInput](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	act, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Activity, error) {
		return h.svc.Create(ctx, input)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, act)
}

// Update handles PATCH /activities/{id}.
func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := decodeInput[activity.UpdateInput](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if input.ParentID != nil && *input.ParentID == id {
		handleError(w, r, h.log, domain.NewValidationError("parent_id", "activity cannot be its own parent"))
		return
	}

	act, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Activity, error) {
		return h.svc.Update(ctx, id, input)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, act)
}

// Delete handles DELETE /activities/{id}. Children of the deleted
// activity become roots.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.tx.RunInTx(r.Context(), func(ctx context.Context) error {
		return h.svc.Delete(ctx, id)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func activityFilter(r *http.Request) (activity.Filter, error) {
	q := r.URL.Query()

	orgID, err := queryInt(q, "organization_id")
	if err != nil {
		return activity.Filter{}, err
	}
	parentID, err := queryInt(q, "parent_id")
	if err != nil {
		return activity.Filter{}, err
	}
	roots, err := queryBool(q, "roots")
	if err != nil {
		return activity.Filter{}, err
	}
	if roots && parentID != nil {
		return activity.Filter{}, domain.NewValidationError("roots", "cannot be combined with parent_id")
	}

	return activity.Filter{
		Name:           queryString(q, "name"),
		OrganizationID: orgID,
		ParentID:       parentID,
		RootsOnly:      roots,
	}, nil
}
