package incident

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/registry-backend/internal/domain"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type incidentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Incident, error)
	GetByFilter(ctx context.Context, filter domain.Fields) ([]domain.Incident, error)
	GetAll(ctx context.Context) ([]domain.Incident, error)
	Create(ctx context.Context, fields domain.Fields) (*domain.Incident, error)
	Update(ctx context.Context, id uuid.UUID, fields domain.Fields) (*domain.Incident, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides incident tracking operations.
type Service struct {
	incidents incidentRepo
	log       *slog.Logger
}

// NewService creates a new Incident service.
func NewService(log *slog.Logger, incidents incidentRepo) *Service {
	return &Service{
		incidents: incidents,
		log:       log.With("service", "incident"),
	}
}

// Get returns a single incident by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (view.Incident, error) {
	inc, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return view.Incident{}, fmt.Errorf("get incident: %w", err)
	}
	if inc == nil {
		return view.Incident{}, domain.NewNotFoundError(domain.EntityIncident, id)
	}
	return view.NewIncident(*inc), nil
}

// ListByStatus returns the incidents in the given status, oldest first.
func (s *Service) ListByStatus(ctx context.Context, status domain.IncidentStatus) ([]view.Incident, error) {
	incs, err := s.incidents.GetByFilter(ctx, domain.Fields{"status": status.String()})
	if err != nil {
		return nil, fmt.Errorf("list incidents by status: %w", err)
	}
	return toViews(incs), nil
}

// List returns every incident, oldest first.
func (s *Service) List(ctx context.Context) ([]view.Incident, error) {
	incs, err := s.incidents.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	return toViews(incs), nil
}

// Create registers a new incident in status created.
func (s *Service) Create(ctx context.Context, input CreateInput) (view.Incident, error) {
	inc, err := s.incidents.Create(ctx, input.fields())
	if err != nil {
		return view.Incident{}, fmt.Errorf("create incident: %w", err)
	}

	s.log.InfoContext(ctx, "incident created",
		slog.String("incident_id", inc.ID.String()),
		slog.String("author", inc.Author.String()),
	)

	return view.NewIncident(*inc), nil
}

// Update changes the provided fields of an existing incident.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (view.Incident, error) {
	existing, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return view.Incident{}, fmt.Errorf("get incident: %w", err)
	}
	if existing == nil {
		return view.Incident{}, domain.NewNotFoundError(domain.EntityIncident, id)
	}

	updated, err := s.incidents.Update(ctx, id, input.fields())
	if err != nil {
		return view.Incident{}, fmt.Errorf("update incident: %w", err)
	}
	if updated == nil {
		return view.Incident{}, domain.NewNotFoundError(domain.EntityIncident, id)
	}

	attrs := []any{slog.String("incident_id", id.String())}
	if updated.Status != existing.Status {
		attrs = append(attrs,
			slog.String("status_from", existing.Status.String()),
			slog.String("status_to", updated.Status.String()),
		)
	}
	s.log.InfoContext(ctx, "incident updated", attrs...)

	return view.NewIncident(*updated), nil
}

// Delete removes an incident.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.incidents.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get incident: %w", err)
	}
	if existing == nil {
		return domain.NewNotFoundError(domain.EntityIncident, id)
	}

	if err := s.incidents.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete incident: %w", err)
	}

	s.log.InfoContext(ctx, "incident deleted", slog.String("incident_id", id.String()))
	return nil
}

func toViews(incs []domain.Incident) []view.Incident {
	out := make([]view.Incident, len(incs))
	for i, inc := range incs {
		out[i] = view.NewIncident(inc)
	}
	return out
}
