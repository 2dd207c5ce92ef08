package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/registry-backend/internal/domain"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type activityRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	GetByOrganizationID(ctx context.Context, orgID int64) (*domain.Activity, error)
	GetByFilter(ctx context.Context, filter domain.Fields) ([]domain.Activity, error)
	GetAll(ctx context.Context) ([]domain.Activity, error)
	GetChildren(ctx context.Context, parentID int64) ([]domain.Activity, error)
	GetChildrenByParentIDs(ctx context.Context, parentIDs []int64) ([]domain.Activity, error)
	Create(ctx context.Context, fields domain.Fields) (*domain.Activity, error)
	Update(ctx context.Context, id int64, fields domain.Fields) (*domain.Activity, error)
	Delete(ctx context.Context, id int64) error
}

type organizationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
}

// maxTreeDepth bounds the ancestor walk used for cycle detection.
const maxTreeDepth = 1000

// Service provides operations on the activity tree.
type Service struct {
	activities activityRepo
	orgs       organizationRepo
	log        *slog.Logger
}

// NewService creates a new Activity service.
func NewService(log *slog.Logger, activities activityRepo, orgs organizationRepo) *Service {
	return &Service{
		activities: activities,
		orgs:       orgs,
		log:        log.With("service", "activity"),
	}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Get returns an activity with its direct children.
func (s *Service) Get(ctx context.Context, id int64) (view.Activity, error) {
	act, err := s.mustGet(ctx, id)
	if err != nil {
		return view.Activity{}, err
	}

	children, err := s.activities.GetChildren(ctx, id)
	if err != nil {
		return view.Activity{}, fmt.Errorf("get activity children: %w", err)
	}
	return view.NewActivity(*act, children), nil
}

// Find returns every activity matching the filter. No match is an empty list.
func (s *Service) Find(ctx context.Context, filter Filter) ([]view.Activity, error) {
	acts, err := s.activities.GetByFilter(ctx, filter.fields())
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	return s.toViews(ctx, acts)
}

// List returns every activity ordered by id.
func (s *Service) List(ctx context.Context) ([]view.Activity, error) {
	acts, err := s.activities.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return s.toViews(ctx, acts)
}

// Children returns the direct children of an activity.
func (s *Service) Children(ctx context.Context, id int64) ([]view.Activity, error) {
	if _, err := s.mustGet(ctx, id); err != nil {
		return nil, err
	}

	children, err := s.activities.GetChildren(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity children: %w", err)
	}
	return s.toViews(ctx, children)
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create adds an activity. A referenced parent or organization must exist,
// and an organization can carry only one activity.
func (s *Service) Create(ctx context.Context, input CreateInput) (view.Activity, error) {
	if input.ParentID != nil {
		if _, err := s.mustGet(ctx, *input.ParentID); err != nil {
			return view.Activity{}, err
		}
	}
	if input.OrganizationID != nil {
		if err := s.checkOrganization(ctx, *input.OrganizationID, 0); err != nil {
			return view.Activity{}, err
		}
	}

	act, err := s.activities.Create(ctx, input.fields())
	if err != nil {
		return view.Activity{}, fmt.Errorf("create activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity created",
		slog.Int64("activity_id", act.ID),
		slog.String("name", act.Name),
	)

	return view.NewActivity(*act, nil), nil
}

// Update changes the provided fields of an existing activity. Re-parenting
// is refused when it would put the activity under itself.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (view.Activity, error) {
	existing, err := s.mustGet(ctx, id)
	if err != nil {
		return view.Activity{}, err
	}

	if input.ParentID != nil {
		if err := s.checkParent(ctx, id, *input.ParentID); err != nil {
			return view.Activity{}, err
		}
	}
	if input.OrganizationID != nil &&
		(existing.OrganizationID == nil || *existing.OrganizationID != *input.OrganizationID) {
		if err := s.checkOrganization(ctx, *input.OrganizationID, id); err != nil {
			return view.Activity{}, err
		}
	}

	updated, err := s.activities.Update(ctx, id, input.fields())
	if err != nil {
		return view.Activity{}, fmt.Errorf("update activity: %w", err)
	}
	if updated == nil {
		return view.Activity{}, domain.NewNotFoundError(domain.EntityActivity, id)
	}

	children, err := s.activities.GetChildren(ctx, id)
	if err != nil {
		return view.Activity{}, fmt.Errorf("get activity children: %w", err)
	}

	s.log.InfoContext(ctx, "activity updated", slog.Int64("activity_id", id))

	return view.NewActivity(*updated, children), nil
}

// Delete removes an activity. Its children become roots.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.mustGet(ctx, id); err != nil {
		return err
	}

	if err := s.activities.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.log.InfoContext(ctx, "activity deleted", slog.Int64("activity_id", id))
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *Service) mustGet(ctx context.Context, id int64) (*domain.Activity, error) {
	act, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	if act == nil {
		return nil, domain.NewNotFoundError(domain.EntityActivity, id)
	}
	return act, nil
}

// checkParent walks up from parentID and fails if it reaches id.
func (s *Service) checkParent(ctx context.Context, id, parentID int64) error {
	if parentID == id {
		return domain.NewValidationError("parent_id", "activity cannot be its own parent")
	}

	cur := parentID
	for depth := 0; depth < maxTreeDepth; depth++ {
		node, err := s.mustGet(ctx, cur)
		if err != nil {
			return err
		}
		if node.ParentID == nil {
			return nil
		}
		if *node.ParentID == id {
			return domain.NewValidationError("parent_id", "activity cannot be moved under its own descendant")
		}
		cur = *node.ParentID
	}
	return domain.NewValidationError("parent_id", "activity tree is too deep")
}

// checkOrganization verifies that orgID exists and carries no activity other than self.
func (s *Service) checkOrganization(ctx context.Context, orgID, self int64) error {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return fmt.Errorf("get organization: %w", err)
	}
	if org == nil {
		return domain.NewNotFoundError(domain.EntityOrganization, orgID)
	}

	taken, err := s.activities.GetByOrganizationID(ctx, orgID)
	if err != nil {
		return fmt.Errorf("get activity of organization: %w", err)
	}
	if taken != nil && taken.ID != self {
		return domain.NewValidationError("organization_id", "organization already has an activity")
	}
	return nil
}

// toViews attaches direct children to every activity with one batch query.
func (s *Service) toViews(ctx context.Context, acts []domain.Activity) ([]view.Activity, error) {
	out := make([]view.Activity, len(acts))
	if len(acts) == 0 {
		return out, nil
	}

	ids := make([]int64, len(acts))
	for i, a := range acts {
		ids[i] = a.ID
	}

	children, err := s.activities.GetChildrenByParentIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get activity children: %w", err)
	}

	byParent := make(map[int64][]domain.Activity, len(acts))
	for _, c := range children {
		if c.ParentID != nil {
			byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
		}
	}

	for i, a := range acts {
		out[i] = view.NewActivity(a, byParent[a.ID])
	}
	return out, nil
}
