package incident

import (
	"strings"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

// CreateInput holds the parameters for reporting an incident.
// The id and status are assigned by the server.
type CreateInput struct {
	Text   string                `json:"text"`
	Author domain.IncidentAuthor `json:"author"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if !i.Author.IsValid() {
		errs = append(errs, domain.FieldError{Field: "author", Message: "must be one of: operator, monitoring, partner"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) fields() domain.Fields {
	return domain.Fields{
		"text":   strings.TrimSpace(i.Text),
		"author": i.Author.String(),
	}
}

// UpdateInput holds the parameters for updating an incident.
// Nil fields are left unchanged.
type UpdateInput struct {
	Text   *string                `json:"text"`
	Status *domain.IncidentStatus `json:"status"`
	Author *domain.IncidentAuthor `json:"author"`
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == nil && i.Status == nil && i.Author == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be one of: created, checked, in work, closed"})
	}
	if i.Author != nil && !i.Author.IsValid() {
		errs = append(errs, domain.FieldError{Field: "author", Message: "must be one of: operator, monitoring, partner"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) fields() domain.Fields {
	f := domain.Fields{}
	if i.Text != nil {
		f["text"] = strings.TrimSpace(*i.Text)
	}
	if i.Status != nil {
		f["status"] = i.Status.String()
	}
	if i.Author != nil {
		f["author"] = i.Author.String()
	}
	return f
}
