package domain

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus is the processing state of an incident.
type IncidentStatus string

const (
	IncidentStatusCreated IncidentStatus = "created"
	IncidentStatusChecked IncidentStatus = "checked"
	IncidentStatusInWork  IncidentStatus = "in work"
	IncidentStatusClosed  IncidentStatus = "closed"
)

func (s IncidentStatus) String() string { return string(s) }

func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusCreated, IncidentStatusChecked, IncidentStatusInWork, IncidentStatusClosed:
		return true
	}
	return false
}

// IncidentAuthor is the source that reported an incident.
type IncidentAuthor string

const (
	IncidentAuthorOperator   IncidentAuthor = "operator"
	IncidentAuthorMonitoring IncidentAuthor = "monitoring"
	IncidentAuthorPartner    IncidentAuthor = "partner"
)

func (a IncidentAuthor) String() string { return string(a) }

func (a IncidentAuthor) IsValid() bool {
	switch a {
	case IncidentAuthorOperator, IncidentAuthorMonitoring, IncidentAuthorPartner:
		return true
	}
	return false
}

// Incident is a tracked operational problem. ID is generated by the server
// and never changes.
type Incident struct {
	ID        uuid.UUID
	Text      string
	Status    IncidentStatus
	Author    IncidentAuthor
	CreatedAt time.Time
}
