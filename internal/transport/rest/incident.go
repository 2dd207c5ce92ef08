package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/registry-backend/internal/domain"
	"github.com/heartmarshall/registry-backend/internal/service/incident"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type incidentService interface {
	Get(ctx context.Context, id uuid.UUID) (view.Incident, error)
	ListByStatus(ctx context.Context, status domain.IncidentStatus) ([]view.Incident, error)
	List(ctx context.Context) ([]view.Incident, error)
	Create(ctx context.Context, input incident.CreateInput) (view.Incident, error)
	Update(ctx context.Context, id uuid.UUID, input incident.UpdateInput) (view.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IncidentHandler serves /api/v1/incidents.
type IncidentHandler struct {
	svc incidentService
	tx  txRunner
	log *slog.Logger
}

// NewIncidentHandler creates an IncidentHandler.
func NewIncidentHandler(svc incidentService, tx txRunner, logger *slog.Logger) *IncidentHandler {
	return &IncidentHandler{svc: svc, tx: tx, log: logger.With("handler", "incident")}
}

// Register mounts the incident routes on mux.
func (h *IncidentHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/incidents", h.List)
	mux.HandleFunc("POST /api/v1/incidents", h.Create)
	mux.HandleFunc("GET /api/v1/incidents/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/incidents/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/incidents/{id}", h.Delete)
}

// List handles GET /incidents[?status=].
func (h *IncidentHandler) List(w http.ResponseWriter, r *http.Request) {
	status := queryString(r.URL.Query(), "status")
	if status != nil && !domain.IncidentStatus(*status).IsValid() {
		handleError(w, r, h.log, domain.NewValidationError("status", "must be one of: created, checked, in work, closed"))
		return
	}

	incs, err := inTx(r.Context(), h.tx, func(ctx context.Context) ([]view.Incident, error) {
		if status == nil {
			return h.svc.List(ctx)
		}
		return h.svc.ListByStatus(ctx, domain.IncidentStatus(*status))
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, incs)
}

// Get handles GET /incidents/{id}.
func (h *IncidentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIncidentID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	inc, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Incident, error) {
		return h.svc.Get(ctx, id)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, inc)
}

// Create handles POST /incidents.
func (h *IncidentHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput[incident.CreateInput](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	inc, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Incident, error) {
		return h.svc.Create(ctx, input)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, inc)
}

// Update handles PATCH /incidents/{id}.
func (h *IncidentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIncidentID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := decodeInput[incident.UpdateInput](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	inc, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Incident, error) {
		return h.svc.Update(ctx, id, input)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, inc)
}

// Delete handles DELETE /incidents/{id}.
func (h *IncidentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIncidentID(r)
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
