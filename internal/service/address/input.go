package address

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

// Column limits of the addresses table.
const (
	maxPlaceLength    = 100 // country, region, city
	maxStreetLength   = 200
	maxBuildingLength = 20 // house_number, apartment
	maxAbsLatitude    = 90.0
	maxAbsLongitude   = 180.0
)

// CreateInput holds the parameters for creating an address.
type CreateInput struct {
	OrganizationID int64    `json:"organization_id"`
	Country        string   `json:"country"`
	Region         string   `json:"region"`
	City           string   `json:"city"`
	Street         string   `json:"street"`
	HouseNumber    string   `json:"house_number"`
	Apartment      string   `json:"apartment"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.OrganizationID <= 0 {
		errs = append(errs, domain.FieldError{Field: "organization_id", Message: "required"})
	}
	errs = append(errs, checkText(&i.Country, &i.Region, &i.City, &i.Street, &i.HouseNumber, &i.Apartment)...)
	errs = append(errs, checkCoordinates(i.Latitude, i.Longitude)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) fields() domain.Fields {
	f := domain.Fields{
		"organization_id": i.OrganizationID,
		"country":         strings.TrimSpace(i.Country),
		"region":          strings.TrimSpace(i.Region),
		"city":            strings.TrimSpace(i.City),
		"street":          strings.TrimSpace(i.Street),
		"house_number":    strings.TrimSpace(i.HouseNumber),
		"apartment":       strings.TrimSpace(i.Apartment),
	}
	if i.Latitude != nil {
		f["latitude"] = *i.Latitude
	}
	if i.Longitude != nil {
		f["longitude"] = *i.Longitude
	}
	return f
}

// UpdateInput holds the parameters for updating an address.
// Nil fields are left unchanged.
type UpdateInput struct {
	OrganizationID *int64   `json:"organization_id"`
	Country        *string  `json:"country"`
	Region         *string  `json:"region"`
	City           *string  `json:"city"`
	Street         *string  `json:"street"`
	HouseNumber    *string  `json:"house_number"`
	Apartment      *string  `json:"apartment"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if len(i.fields()) == 0 {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.OrganizationID != nil && *i.OrganizationID <= 0 {
		errs = append(errs, domain.FieldError{Field: "organization_id", Message: "must be positive"})
	}
	errs = append(errs, checkText(i.Country, i.Region, i.City, i.Street, i.HouseNumber, i.Apartment)...)
	errs = append(errs, checkCoordinates(i.Latitude, i.Longitude)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i UpdateInput) fields() domain.Fields {
	f := domain.Fields{}
	if i.OrganizationID != nil {
		f["organization_id"] = *i.OrganizationID
	}
	setTrimmed(f, "country", i.Country)
	setTrimmed(f, "region", i.Region)
	setTrimmed(f, "city", i.City)
	setTrimmed(f, "street", i.Street)
	setTrimmed(f, "house_number", i.HouseNumber)
	setTrimmed(f, "apartment", i.Apartment)
	if i.Latitude != nil {
		f["latitude"] = *i.Latitude
	}
	if i.Longitude != nil {
		f["longitude"] = *i.Longitude
	}
	return f
}

// Filter selects addresses by exact field values. Nil fields are ignored.
type Filter struct {
	OrganizationID *int64
	Country        *string
	Region         *string
	City           *string
	Street         *string
	HouseNumber    *string
	Apartment      *string
}

func (f Filter) fields() domain.Fields {
	out := domain.Fields{}
	if f.OrganizationID != nil {
		out["organization_id"] = *f.OrganizationID
	}
	setTrimmed(out, "country", f.Country)
	setTrimmed(out, "region", f.Region)
	setTrimmed(out, "city", f.City)
	setTrimmed(out, "street", f.Street)
	setTrimmed(out, "house_number", f.HouseNumber)
	setTrimmed(out, "apartment", f.Apartment)
	return out
}

func setTrimmed(f domain.Fields, key string, v *string) {
	if v != nil {
		f[key] = strings.TrimSpace(*v)
	}
}

// checkText validates country, region, city, street, house number and
// apartment in that order. Nil values are skipped.
func checkText(country, region, city, street, house, apartment *string) []domain.FieldError {
	limits := []struct {
		field string
		value *string
		max   int
	}{
		{"country", country, maxPlaceLength},
		{"region", region, maxPlaceLength},
		{"city", city, maxPlaceLength},
		{"street", street, maxStreetLength},
		{"house_number", house, maxBuildingLength},
		{"apartment", apartment, maxBuildingLength},
	}

	var errs []domain.FieldError
	for _, l := range limits {
		if l.value != nil && utf8.RuneCountInString(strings.TrimSpace(*l.value)) > l.max {
			errs = append(errs, domain.FieldError{Field: l.field, Message: fmt.Sprintf("max %d characters", l.max)})
		}
	}
	return errs
}

func checkCoordinates(lat, lon *float64) []domain.FieldError {
	var errs []domain.FieldError
	if lat != nil && (*lat < -maxAbsLatitude || *lat > maxAbsLatitude) {
		errs = append(errs, domain.FieldError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if lon != nil && (*lon < -maxAbsLongitude || *lon > maxAbsLongitude) {
		errs = append(errs, domain.FieldError{Field: "longitude", Message: "must be between -180 and 180"})
	}
	return errs
}
