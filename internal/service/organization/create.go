package organization

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/registry-backend/internal/service/view"
)

// Create registers a new organization. The input must already be validated.
// A taken name is reported by the storage layer as a unique violation.
func (s *Service) Create(ctx context.Context, input CreateInput) (view.Organization, error) {
	org, err := s.orgs.Create(ctx, input.fields())
	if err != nil {
		return view.Organization{}, fmt.Errorf("create organization: %w", err)
	}

	s.log.InfoContext(ctx, "organization created",
		slog.Int64("organization_id", org.ID),
		slog.String("name", org.Name),
	)

	return view.NewOrganization(*org, nil, nil), nil
}
