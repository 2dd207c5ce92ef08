package organization

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

// Delete removes an organization together with its address and activity.
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.orgs.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get organization: %w", err)
	}
	if existing == nil {
		return domain.NewNotFoundError(domain.EntityOrganization, id)
	}

	if err := s.orgs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}

	s.log.InfoContext(ctx, "organization deleted", slog.Int64("organization_id", id))
	return nil
}
