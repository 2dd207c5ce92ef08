package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/registry-backend/internal/service/organization"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type organizationService interface {
	Get(ctx context.Context, id int64) (view.Organization, error)
	GetByName(ctx context.Context, name string) (view.Organization, error)
	List(ctx context.Context) ([]view.Organization, error)
	Create(ctx context.Context, input organization.CreateInput) (view.Organization, error)
	Update(ctx context.Context, id int64, input organization.UpdateInput) (view.Organization, error)
	Delete(ctx context.Context, id int64) error
}

// OrganizationHandler serves /api/v1/organizations.
type OrganizationHandler struct {
	svc organizationService
	tx  txRunner
	log *slog.Logger
}

// NewOrganizationHandler creates an OrganizationHandler.
func NewOrganizationHandler(svc organizationService, tx txRunner, logger *slog.Logger) *OrganizationHandler {
	return &OrganizationHandler{svc: svc, tx: tx, log: logger.With("handler", "organization")}
}

// Register mounts the organization routes on mux.
func (h *OrganizationHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/organizations", h.List)
	mux.HandleFunc("POST /api/v1/organizations", h.Create)
	mux.HandleFunc("GET /api/v1/organizations/{id}", h.Get)
	mux.HandleFunc("GET /api/v1/organizations/name/{name}", h.GetByName)
	mux.HandleFunc("PATCH /api/v1/organizations/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/organizations/{id}", h.Delete)
}

// List handles GET /organizations.
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	orgs, err := inTx(r.Context(), h.tx, h.svc.List)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, orgs)
}

// Get handles GET /organizations/{id}.
func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	org, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Organization, error) {
		return h.svc.Get(ctx, id)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

// GetByName handles GET /organizations/name/{name}.
func (h *OrganizationHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	org, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Organization, error) {
		return h.svc.GetByName(ctx, name)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

// Create handles POST /organizations.
func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput[organization.CreateInput](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	org, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Organization, error) {
		return h.svc.Create(ctx, input)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, org)
}

// Update handles PATCH /organizations/{id}.
func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := decodeInput[organization.UpdateInput](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	org, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Organization, error) {
		return h.svc.Update(ctx, id, input)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, org)
}

// Delete handles DELETE /organizations/{id}.
func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
