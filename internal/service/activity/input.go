package activity

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

const maxNameLength = 100

// CreateInput holds the parameters for creating an activity.
type CreateInput struct {
	Name           string `json:"name"`
	OrganizationID *int64 `json:"organization_id"`
	ParentID       *int64 `json:"parent_id"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validateRef("organization_id", i.OrganizationID)...)
	errs = append(errs, validateRef("parent_id", i.ParentID)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) fields() domain.Fields {
	f := domain.Fields{"name": strings.TrimSpace(i.Name)}
	if i.OrganizationID != nil {
		f["organization_id"] = *i.OrganizationID
	}
	if i.ParentID != nil {
		f["parent_id"] = *i.ParentID
	}
	return f
}

// UpdateInput holds the parameters for updating an activity.
// Nil fields are left unchanged. DetachParent makes the activity a root;
// DetachOrganization unlinks it from its organization.
type UpdateInput struct {
	Name               *string `json:"name"`
	OrganizationID     *int64  `json:"organization_id"`
	ParentID           *int64  `json:"parent_id"`
	DetachParent       bool    `json:"detach_parent"`
	DetachOrganization bool    `json:"detach_organization"`
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.OrganizationID == nil && i.ParentID == nil && !i.DetachParent && !i.DetachOrganization {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	errs = append(errs, validateRef("organization_id", i.OrganizationID)...)
	errs = append(errs, validateRef("parent_id", i.ParentID)...)
	if i.ParentID != nil && i.DetachParent {
		errs = append(errs, domain.FieldError{Field: "detach_parent", Message: "cannot be combined with parent_id"})
	}
	if i.OrganizationID != nil && i.DetachOrganization {
		errs = append(errs, domain.FieldError{Field: "detach_organization", Message: "cannot be combined with organization_id"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) fields() domain.Fields {
	f := domain.Fields{}
	if i.Name != nil {
		f["name"] = strings.TrimSpace(*i.Name)
	}
	if i.OrganizationID != nil {
		f["organization_id"] = *i.OrganizationID
	}
	if i.ParentID != nil {
		f["parent_id"] = *i.ParentID
	}
	if i.DetachParent {
		f["parent_id"] = nil
	}
	if i.DetachOrganization {
		f["organization_id"] = nil
	}
	return f
}

// Filter selects activities by exact field values. Nil fields are ignored.
// RootsOnly restricts the result to activities without a parent.
type Filter struct {
	Name           *string
	OrganizationID *int64
	ParentID       *int64
	RootsOnly      bool
}

func (f Filter) fields() domain.Fields {
	out := domain.Fields{}
	if f.Name != nil {
		out["name"] = strings.TrimSpace(*f.Name)
	}
	if f.OrganizationID != nil {
		out["organization_id"] = *f.OrganizationID
	}
	if f.ParentID != nil {
		out["parent_id"] = *f.ParentID
	}
	if f.RootsOnly {
		out["parent_id"] = nil
	}
	return out
}

func validateName(name string) []domain.FieldError {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	switch {
	case n == 0:
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case n > maxNameLength:
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}

func validateRef(field string, id *int64) []domain.FieldError {
	if id != nil && *id <= 0 {
		return []domain.FieldError{{Field: field, Message: "must be positive"}}
	}
	return nil
}
