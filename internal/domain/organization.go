package domain

import (
	"strconv"
	"strings"
	"time"
)

// PhoneSeparator joins the phone numbers of an organization into one column.
const PhoneSeparator = ";"

// Organization is a registered company.
type Organization struct {
	ID        int64
	Name      string
	Phone     string // numbers joined by PhoneSeparator
	CreatedAt time.Time
}

// Phones splits the stored phone column into separate numbers.
// An empty column yields an empty (non-nil) slice.
func (o Organization) Phones() []string {
	if o.Phone == "" {
		return []string{}
	}
	return strings.Split(o.Phone, PhoneSeparator)
}

// JoinPhones is the inverse of Organization.Phones.
func JoinPhones(phones []string) string {
	return strings.Join(phones, PhoneSeparator)
}

// Address is the postal location of an organization. An organization has at
// most one address.
type Address struct {
	ID             int64
	OrganizationID int64
	Country        string
	Region         string
	City           string
	Street         string
	HouseNumber    string
	Apartment      string
	Latitude       *float64
	Longitude      *float64
}

// Geo renders the coordinate pair as "<lat> x <lon>".
// Returns an empty string unless both coordinates are set.
func (a Address) Geo() string {
	if a.Latitude == nil || a.Longitude == nil {
		return ""
	}
	return strconv.FormatFloat(*a.Latitude, 'f', -1, 64) + " x " + strconv.FormatFloat(*a.Longitude, 'f', -1, 64)
}

// Activity is a node in the activity tree. Children are not held by the
// parent; they are looked up by ParentID.
type Activity struct {
	ID             int64
	OrganizationID *int64
	Name           string
	ParentID       *int64
}
