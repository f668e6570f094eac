package domain

import (
	"time"

	"github.com/m04kA/UDP-ReservationService/pkg/types"
)

// ReservationPolicy represents the singleton policy record (configuraciones).
// Read-only to the booking workflow; mutated only by administrators.
type ReservationPolicy struct {
	ID                    int64
	AdvanceWindowDays     int              // dias_anticipacion
	MaxActiveReservations int              // max_reservas_activas
	MaxDurationHours      int              // max_horas_duracion
	OpeningTime           types.TimeString // hora_apertura
	ClosingTime           types.TimeString // hora_cierre
	UpdatedAt             time.Time
}

// MaxDuration returns the maximum reservation length as a time.Duration
func (p *ReservationPolicy) MaxDuration() time.Duration {
	return time.Duration(p.MaxDurationHours) * time.Hour
}

// HasAdvanceLimit returns true if there is a limit on how far ahead a
// reservation may be requested
func (p *ReservationPolicy) HasAdvanceLimit() bool {
	return p.AdvanceWindowDays > 0
}
