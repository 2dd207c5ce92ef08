package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/registry-backend/internal/service/address"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type addressService interface {
	Get(ctx context.Context, id int64) (view.Address, error)
	Find(ctx context.Context, filter address.Filter) ([]view.Address, error)
	List(ctx context.Context) ([]view.Address, error)
	Create(ctx context.Context, input address.CreateInput) (view.Address, error)
	Update(ctx context.Context, id int64, input address.UpdateInput) (view.Address, error)
	Delete(ctx context.Context, id int64) error
}

// AddressHandler serves /api/v1/addresses.
type AddressHandler struct {
	svc addressService
	tx  txRunner
	log *slog.Logger
}

// NewAddressHandler creates an AddressHandler.
func NewAddressHandler(svc addressService, tx txRunner, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{svc: svc, tx: tx, log: logger.With("handler", "address")}
}

// Register mounts the address routes on mux.
func (h *AddressHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/addresses", h.List)
	mux.HandleFunc("POST /api/v1/addresses", h.Create)
	mux.HandleFunc("GET /api/v1/addresses/{id}", h.Get)
	mux.HandleFunc("PATCH /api/v1/addresses/{id}", h.Update)
	mux.HandleFunc("DELETE /api/v1/addresses/{id}", h.Delete)
}

// List handles GET /addresses. Any of organization_id, country, region,
// city, street, house_number and apartment narrows the result.
func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := addressFilter(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	addrs, err := inTx(r.Context(), h.tx, func(ctx context.Context) ([]view.Address, error) {
		if filter == (address.Filter{}) {
			return h.svc.List(ctx)
		}
		return h.svc.Find(ctx, filter)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, addrs)
}

// Get handles GET /addresses/{id}.
func (h *AddressHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	addr, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Address, error) {
		return h.svc.Get(ctx, id)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

// Create handles POST /addresses.
func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput[address.CreateInput](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	addr, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Address, error) {
		return h.svc.Create(ctx, input)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, addr)
}

// Update handles PATCH /addresses/{id}.
func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	input, err := decodeInput[address.UpdateInput](r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	addr, err := inTx(r.Context(), h.tx, func(ctx context.Context) (view.Address, error) {
		return h.svc.Update(ctx, id, input)
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

// Delete handles DELETE /addresses/{id}.
func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func addressFilter(r *http.Request) (address.Filter, error) {
	q := r.URL.Query()

	orgID, err := queryInt(q, "organization_id")
	if err != nil {
		return address.Filter{}, err
	}

	return address.Filter{
		OrganizationID: orgID,
		Country:        queryString(q, "country"),
		Region:         queryString(q, "region"),
		City:           queryString(q, "city"),
		Street:         queryString(q, "street"),
		HouseNumber:    queryString(q, "house_number"),
		Apartment:      queryString(q, "apartment"),
	}, nil
}
