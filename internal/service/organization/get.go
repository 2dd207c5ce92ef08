package organization

import (
	"context"
	"fmt"

	"github.com/heartmarshall/registry-backend/internal/domain"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

// Get returns a single organization by id.
func (s *Service) Get(ctx context.Context, id int64) (view.Organization, error) {
	org, err := s.orgs.GetByID(ctx, id)
	if err != nil {
		return view.Organization{}, fmt.Errorf("get organization: %w", err)
	}
	if org == nil {
		return view.Organization{}, domain.NewNotFoundError(domain.EntityOrganization, id)
	}

	return s.toView(ctx, *org)
}

// GetByName returns the organization with exactly the given name.
func (s *Service) GetByName(ctx context.Context, name string) (view.Organization, error) {
	org, err := s.orgs.GetByFilter(ctx, domain.Fields{"name": name})
	if err != nil {
		return view.Organization{}, fmt.Errorf("get organization by name: %w", err)
	}
	if org == nil {
		return view.Organization{}, domain.NewNotFoundError(domain.EntityOrganization, name)
	}

	return s.toView(ctx, *org)
}

// List returns every organization ordered by id.
func (s *Service) List(ctx context.Context) ([]view.Organization, error) {
	orgs, err := s.orgs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}

	return s.toViews(ctx, orgs)
}
