package domain

import "time"

// IncidentStatus represents the lifecycle state of an incident
// Values match the estado column of the incidencias table
type IncidentStatus string

const (
	IncidentOpen       IncidentStatus = "abierta"
	IncidentInProgress IncidentStatus = "en_progreso"
	IncidentResolved   IncidentStatus = "resuelta"
	IncidentClosed     IncidentStatus = "cerrada"
)

// Incident represents a reported problem with a space. Its lifecycle is
// independent from reservations, though a block may be applied for it.
type Incident struct {
	ID          int64
	SpaceID     int64
	Kind        string
	Description string
	Status      IncidentStatus
	ReportedBy  int64
	ResolvedBy  *int64
	Solution    *string
	ReportedAt  time.Time
	ResolvedAt  *time.Time
}

// CanBeResolved returns true if the incident may transition to resuelta
func (i *Incident) CanBeResolved() bool {
	return i.Status == IncidentOpen || i.Status == IncidentInProgress
}

// CanBeClosed returns true if the incident may transition to cerrada
func (i *Incident) CanBeClosed() bool {
	return i.Status == IncidentResolved
}

// CanBeBlocked returns true if a maintenance block may still be applied
func (i *Incident) CanBeBlocked() bool {
	return i.Status == IncidentOpen || i.Status == IncidentInProgress
}

// IsTerminal returns true if no further transition is permitted
func (i *Incident) IsTerminal() bool {
	return i.Status == IncidentClosed
}

// IncidentFilter narrows incident listings
type IncidentFilter struct {
	SpaceID *int64
	Status  *IncidentStatus
}
