package organization

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

const minNameLength = 3

// phonePattern accepts Russian-style numbers such as "+7 (900) 123-45-67",
// "8 800 555 35 35" or "9001234567".
var phonePattern = regexp.MustCompile(`^(\+7|7|8)?[\s\-]?\(?\d{3}\)?[\s\-]?\d{3}[\s\-]?\d{2}[\s\-]?\d{2}`)

// CreateInput holds the parameters for creating an organization.
type CreateInput struct {
	Name   string   `json:"name"`
	Phones []string `json:"phone"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	errs = append(errs, validatePhones(i.Phones)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) fields() domain.Fields {
	return domain.Fields{
		"name":  strings.TrimSpace(i.Name),
		"phone": joinPhones(i.Phones),
	}
}

// UpdateInput holds the parameters for updating an organization.
// Nil fields are left unchanged.
type UpdateInput struct {
	Name   *string   `json:"name"`
	Phones *[]string `json:"phone"`
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Phones == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Phones != nil {
		errs = append(errs, validatePhones(*i.Phones)...)
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
	if i.Phones != nil {
		f["phone"] = joinPhones(*i.Phones)
	}
	return f
}

func validateName(name string) []domain.FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < minNameLength {
		return []domain.FieldError{{Field: "name", Message: "min 3 characters"}}
	}
	return nil
}

func validatePhones(phones []string) []domain.FieldError {
	var errs []domain.FieldError
	for _, p := range phones {
		p = strings.TrimSpace(p)
		if !phonePattern.MatchString(p) {
			errs = append(errs, domain.FieldError{Field: "phone", Message: "invalid phone number: " + p})
			continue
		}
		if strings.Contains(p, domain.PhoneSeparator) {
			errs = append(errs, domain.FieldError{Field: "phone", Message: "must not contain " + domain.PhoneSeparator})
		}
	}
	return errs
}

func joinPhones(phones []string) string {
	trimmed := make([]string, 0, len(phones))
	for _, p := range phones {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return domain.JoinPhones(trimmed)
}
