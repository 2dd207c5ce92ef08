// Package view holds the JSON output shapes returned by the services.
package view

import (
	"encoding/json"
	"time"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

// TimeLayout is the rendering of incident timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// Organization is the public shape of an organization with its embedded
// sub-resources. A missing address or activity renders as "".
type Organization struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     []string  `json:"phone"`
	Address   *Address  `json:"-"`
	Activity  *Activity `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (o Organization) MarshalJSON() ([]byte, error) {
	type plain Organization
	out := struct {
		plain
		Address  any `json:"address"`
		Activity any `json:"activity"`
	}{plain: plain(o), Address: "", Activity: ""}

	if o.Address != nil {
		out.Address = o.Address
	}
	if o.Activity != nil {
		out.Activity = o.Activity
	}
	return json.Marshal(out)
}

// NewOrganization builds the view. addr and act may be nil.
func NewOrganization(o domain.Organization, addr *Address, act *Activity) Organization {
	return Organization{
		ID:        o.ID,
		Name:      o.Name,
		Phone:     o.Phones(),
		Address:   addr,
		Activity:  act,
		CreatedAt: o.CreatedAt,
	}
}

// Address is the public shape of an address. Geo is "<lat> x <lon>" or ""
// when coordinates are unknown.
type Address struct {
	ID             int64    `json:"id"`
	OrganizationID int64    `json:"organization_id"`
	Country        string   `json:"country"`
	Region         string   `json:"region"`
	City           string   `json:"city"`
	Street         string   `json:"street"`
	HouseNumber    string   `json:"house_number"`
	Apartment      string   `json:"apartment"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Geo            string   `json:"geo"`
}

func NewAddress(a domain.Address) Address {
	return Address{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		Country:        a.Country,
		Region:         a.Region,
		City:           a.City,
		Street:         a.Street,
		HouseNumber:    a.HouseNumber,
		Apartment:      a.Apartment,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		Geo:            a.Geo(),
	}
}

// ActivityRef is the short form of an activity used in children lists.
type ActivityRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Activity is the public shape of an activity with its direct children.
type Activity struct {
	ID             int64         `json:"id"`
	OrganizationID *int64        `json:"organization_id"`
	Name           string        `json:"name"`
	ParentID       *int64        `json:"parent_id"`
	Children       []ActivityRef `json:"children"`
}

// NewActivity builds the view from an activity and its direct children.
func NewActivity(a domain.Activity, children []domain.Activity) Activity {
	refs := make([]ActivityRef, len(children))
	for i, c := range children {
		refs[i] = ActivityRef{ID: c.ID, Name: c.Name}
	}
	return Activity{
		ID:             a.ID,
		OrganizationID: a.OrganizationID,
		Name:           a.Name,
		ParentID:       a.ParentID,
		Children:       refs,
	}
}

// Incident is the public shape of an incident.
type Incident struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Status    string `json:"status"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

func NewIncident(i domain.Incident) Incident {
	return Incident{
		ID:        i.ID.String(),
		Text:      i.Text,
		Status:    i.Status.String(),
		Author:    i.Author.String(),
		CreatedAt: i.CreatedAt.UTC().Format(TimeLayout),
	}
}
