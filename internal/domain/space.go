package domain

import "time"

// SpaceKind represents the kind of bookable space
// Values match the tipo column of the espacios table
type SpaceKind string

const (
	SpaceRoom  SpaceKind = "sala"
	SpaceCourt SpaceKind = "cancha"
)

// Space represents a bookable room or court. Spaces are referenced, never
// owned, by reservations; deactivation is a soft delete.
type Space struct {
	ID          int64
	Name        string
	Kind        SpaceKind
	Capacity    int
	Location    string
	Description *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBookable returns true if new reservations may target the space
func (s *Space) IsBookable() bool {
	return s.Active
}

// ValidSpaceKind reports whether the value is a known space kind
func ValidSpaceKind(kind SpaceKind) bool {
	return kind == SpaceRoom || kind == SpaceCourt
}

// SpaceFilter narrows space listings
type SpaceFilter struct {
	Kind            *SpaceKind
	IncludeInactive bool
}
