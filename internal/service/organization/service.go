package organization

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/registry-backend/internal/domain"
	"github.com/heartmarshall/registry-backend/internal/service/view"
)

type organizationRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Organization, error)
	GetByFilter(ctx context.Context, filter domain.Fields) (*domain.Organization, error)
	GetAll(ctx context.Context) ([]domain.Organization, error)
	Create(ctx context.Context, fields domain.Fields) (*domain.Organization, error)
	Update(ctx context.Context, id int64, fields domain.Fields) (*domain.Organization, error)
	Delete(ctx context.Context, id int64) error
}

type addressRepo interface {
	GetByOrganizationIDs(ctx context.Context, orgIDs []int64) ([]domain.Address, error)
}

type activityRepo interface {
	GetByOrganizationIDs(ctx context.Context, orgIDs []int64) ([]domain.Activity, error)
	GetChildrenByParentIDs(ctx context.Context, parentIDs []int64) ([]domain.Activity, error)
}

// Service provides organization operations. Results embed the address and
// activity of each organization.
type Service struct {
	orgs       organizationRepo
	addresses  addressRepo
	activities activityRepo
	log        *slog.Logger
}

// NewService creates a new Organization service.
func NewService(
	log *slog.Logger,
	orgs organizationRepo,
	addresses addressRepo,
	activities activityRepo,
) *Service {
	return &Service{
		orgs:       orgs,
		addresses:  addresses,
		activities: activities,
		log:        log.With("service", "organization"),
	}
}

// toView loads the sub-resources of a single organization.
func (s *Service) toView(ctx context.Context, org domain.Organization) (view.Organization, error) {
	views, err := s.toViews(ctx, []domain.Organization{org})
	if err != nil {
		return view.Organization{}, err
	}
	return views[0], nil
}

// toViews loads the sub-resources of all organizations with a fixed number
// of queries regardless of len(orgs).
func (s *Service) toViews(ctx context.Context, orgs []domain.Organization) ([]view.Organization, error) {
	out := make([]view.Organization, len(orgs))
	if len(orgs) == 0 {
		return out, nil
	}

	ids := make([]int64, len(orgs))
	for i, o := range orgs {
		ids[i] = o.ID
	}

	addrs, err := s.addresses.GetByOrganizationIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load addresses: %w", err)
	}
	acts, err := s.activities.GetByOrganizationIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}

	actIDs := make([]int64, len(acts))
	for i, a := range acts {
		actIDs[i] = a.ID
	}
	children, err := s.activities.GetChildrenByParentIDs(ctx, actIDs)
	if err != nil {
		return nil, fmt.Errorf("load activity children: %w", err)
	}

	childrenByParent := make(map[int64][]domain.Activity, len(acts))
	for _, c := range children {
		if c.ParentID != nil {
			childrenByParent[*c.ParentID] = append(childrenByParent[*c.ParentID], c)
		}
	}

	addrByOrg := make(map[int64]view.Address, len(addrs))
	for _, a := range addrs {
		addrByOrg[a.OrganizationID] = view.NewAddress(a)
	}
	actByOrg := make(map[int64]view.Activity, len(acts))
	for _, a := range acts {
		if a.OrganizationID != nil {
			actByOrg[*a.OrganizationID] = view.NewActivity(a, childrenByParent[a.ID])
		}
	}

	for i, o := range orgs {
		var addr *view.Address
		if a, ok := addrByOrg[o.ID]; ok {
			addr = &a
		}
		var act *view.Activity
		if a, ok := actByOrg[o.ID]; ok {
			act = &a
		}
		out[i] = view.NewOrganization(o, addr, act)
	}
	return out, nil
}
