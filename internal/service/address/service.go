package address

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/registry-backend/internal/domain"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type addressRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	GetByOrganizationID(ctx context.Context, orgID int64) (*domain.Address, error)
	GetByFilter(ctx context.Context, filter domain.Fields) ([]domain.Address, error)
	GetAll(ctx context.Context) ([]domain.Address, error)
	Create(ctx context.Context, fields domain.Fields) (*domain.Address, error)
	Update(ctx context.Context, id int64, fields domain.Fields) (*domain.Address, error)
	Delete(ctx context.Context, id int64) error
}

type organizationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
}

// Service provides address operations.
type Service struct {
	addresses addressRepo
	orgs      organizationRepo
	log       *slog.Logger
}

// NewService creates a new Address service.
func NewService(log *slog.Logger, addresses addressRepo, orgs organizationRepo) *Service {
	return &Service{
		addresses: addresses,
		orgs:      orgs,
		log:       log.With("service", "address"),
	}
}

// Get returns a single address by id.
func (s *Service) Get(ctx context.Context, id int64) (view.Address, error) {
	addr, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		return view.Address{}, fmt.Errorf("get address: %w", err)
	}
	if addr == nil {
		return view.Address{}, domain.NewNotFoundError(domain.EntityAddress, id)
	}
	return view.NewAddress(*addr), nil
}

// Find returns every address matching the filter. No match is an empty list.
func (s *Service) Find(ctx context.Context, filter Filter) ([]view.Address, error) {
	addrs, err := s.addresses.GetByFilter(ctx, filter.fields())
	if err != nil {
		return nil, fmt.Errorf("find addresses: %w", err)
	}
	return toViews(addrs), nil
}

// List returns every address ordered by id.
func (s *Service) List(ctx context.Context) ([]view.Address, error) {
	addrs, err := s.addresses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return toViews(addrs), nil
}

// Create attaches a new address to an organization. The organization must
// exist and must not have an address yet.
func (s *Service) Create(ctx context.Context, input CreateInput) (view.Address, error) {
	if err := s.checkOrganization(ctx, input.OrganizationID, 0); err != nil {
		return view.Address{}, err
	}

	addr, err := s.addresses.Create(ctx, input.fields())
	if err != nil {
		return view.Address{}, fmt.Errorf("create address: %w", err)
	}

	s.log.InfoContext(ctx, "address created",
		slog.Int64("address_id", addr.ID),
		slog.Int64("organization_id", addr.OrganizationID),
	)

	return view.NewAddress(*addr), nil
}

// Update changes the provided fields of an existing address.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (view.Address, error) {
	existing, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		return view.Address{}, fmt.Errorf("get address: %w", err)
	}
	if existing == nil {
		return view.Address{}, domain.NewNotFoundError(domain.EntityAddress, id)
	}

	if input.OrganizationID != nil && *input.OrganizationID != existing.OrganizationID {
		if err := s.checkOrganization(ctx, *input.OrganizationID, id); err != nil {
			return view.Address{}, err
		}
	}

	updated, err := s.addresses.Update(ctx, id, input.fields())
	if err != nil {
		return view.Address{}, fmt.Errorf("update address: %w", err)
	}
	if updated == nil {
		return view.Address{}, domain.NewNotFoundError(domain.EntityAddress, id)
	}

	s.log.InfoContext(ctx, "address updated", slog.Int64("address_id", id))

	return view.NewAddress(*updated), nil
}

// Delete removes an address.
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get address: %w", err)
	}
	if existing == nil {
		return domain.NewNotFoundError(domain.EntityAddress, id)
	}

	if err := s.addresses.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}

	s.log.InfoContext(ctx, "address deleted", slog.Int64("address_id", id))
	return nil
}

// checkOrganization verifies that orgID exists and has no address other than self.
func (s *Service) checkOrganization(ctx context.Context, orgID, self int64) error {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return fmt.Errorf("get organization: %w", err)
	}
	if org == nil {
		return domain.NewNotFoundError(domain.EntityOrganization, orgID)
	}

	taken, err := s.addresses.GetByOrganizationID(ctx, orgID)
	if err != nil {
		return fmt.Errorf("get address of organization: %w", err)
	}
	if taken != nil && taken.ID != self {
		return domain.NewValidationError("organization_id", "organization already has an address")
	}
	return nil
}

func toViews(addrs []domain.Address) []view.Address {
	out := make([]view.Address, len(addrs))
	for i, a := range addrs {
		out[i] = view.NewAddress(a)
	}
	return out
}
