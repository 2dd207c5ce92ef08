package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/registry-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedOrganization inserts an organization with a unique name and one phone number.
func SeedOrganization(t *testing.T, pool *pgxpool.Pool) domain.Organization {
	t.Helper()

	org := domain.Organization{
		Name:  "Test Org " + uniqueSuffix(),
		Phone: "+7 900 000-00-00",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO organizations (name, phone) VALUES ($1, $2) RETURNING id, created_at`,
		org.Name, org.Phone,
	).Scan(&org.ID, &org.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedOrganization: %v", err)
	}

	return org
}

// SeedAddress inserts an address with coordinates for the given organization.
func SeedAddress(t *testing.T, pool *pgxpool.Pool, orgID int64) domain.Address {
	t.Helper()

	lat, lon := 55.7558, 37.6173
	addr := domain.Address{
		OrganizationID: orgID,
		Country:        "Russia",
		Region:         "Moscow",
		City:           "Moscow",
		Street:         "Tverskaya " + uniqueSuffix(),
		HouseNumber:    "1",
		Latitude:       &lat,
		Longitude:      &lon,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO addresses (organization_id, country, region, city, street, house_number, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		addr.OrganizationID, addr.Country, addr.Region, addr.City, addr.Street, addr.HouseNumber, lat, lon,
	).Scan(&addr.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAddress: %v", err)
	}

	return addr
}

// SeedActivity inserts an activity. orgID and parentID may be nil.
func SeedActivity(t *testing.T, pool *pgxpool.Pool, name string, orgID, parentID *int64) domain.Activity {
	t.Helper()

	act := domain.Activity{Name: name, OrganizationID: orgID, ParentID: parentID}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO activities (organization_id, name, parent_id) VALUES ($1, $2, $3) RETURNING id`,
		orgID, name, parentID,
	).Scan(&act.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedActivity: %v", err)
	}

	return act
}

// SeedIncident inserts an incident with the given status.
func SeedIncident(t *testing.T, pool *pgxpool.Pool, status domain.IncidentStatus) domain.Incident {
	t.Helper()

	inc := domain.Incident{
		ID:        uuid.New(),
		Text:      "incident " + uniqueSuffix(),
		Status:    status,
		Author:    domain.IncidentAuthorMonitoring,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO incidents (id, text, status, author, created_at) VALUES ($1, $2, $3, $4, $5)`,
		inc.ID, inc.Text, string(inc.Status), string(inc.Author), inc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIncident: %v", err)
	}

	return inc
}
