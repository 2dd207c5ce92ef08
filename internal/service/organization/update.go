package organization

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/registry-backend/internal/domain"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

// Update changes the provided fields of an existing organization.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (view.Organization, error) {
	existing, err := s.orgs.GetByID(ctx, id)
	if err != nil {
		return view.Organization{}, fmt.Errorf("get organization: %w", err)
	}
	if existing == nil {
		return view.Organization{}, domain.NewNotFoundError(domain.EntityOrganization, id)
	}

	updated, err := s.orgs.Update(ctx, id, input.fields())
	if err != nil {
		return view.Organization{}, fmt.Errorf("update organization: %w", err)
	}
	if updated == nil {
		// Deleted concurrently between the check and the write.
		return view.Organization{}, domain.NewNotFoundError(domain.EntityOrganization, id)
	}

	s.log.InfoContext(ctx, "organization updated", slog.Int64("organization_id", id))

	return s.toView(ctx, *updated)
}
