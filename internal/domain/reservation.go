package domain

import "time"

// ReservationStatus represents the status of a reservation
// Values match the estado column of the reservas table (Spanish, legacy schema)
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pendiente"
	StatusApproved  ReservationStatus = "aprobada"
	StatusRejected  ReservationStatus = "rechazada"
	StatusCancelled ReservationStatus = "cancelada"
	StatusBlock     ReservationStatus = "bloqueo"
)

// ReservationKind distinguishes normal bookings from administrative holds
type ReservationKind string

const (
	KindNormal   ReservationKind = "normal"
	KindBlock    ReservationKind = "bloqueo"
	KindIncident ReservationKind = "incidencia"
)

// Reservation represents a time-bounded claim on a Space by a User
type Reservation struct {
	ID      int64
	UserID  int64
	SpaceID int64
	Start   time.Time
	End     time.Time
	Status  ReservationStatus
	Kind    ReservationKind

	Reason          *string
	RejectionReason *string

	// Recurrence pattern is stored verbatim; no expansion is performed
	Recurring         bool
	RecurrencePattern *string

	ApprovedBy *int64
	ApprovedAt *time.Time

	RequestedAt time.Time
	UpdatedAt   time.Time
}

// IsBlocking returns true if the reservation removes availability for its slot
func (r *Reservation) IsBlocking() bool {
	return r.Status == StatusApproved || r.Status == StatusBlock
}

// IsActive returns true if the reservation counts against the per-user limit
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

// IsTerminal returns true if no further status transition is permitted
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusRejected || r.Status == StatusCancelled
}

// CanBeDecided returns true if the reservation may be approved or rejected
func (r *Reservation) CanBeDecided() bool {
	return r.Status == StatusPending
}

// CanBeCancelled returns true if the reservation may be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

// CanTransitionTo reports whether the one-way state machine permits the move.
// pendiente -> {aprobada, rechazada, cancelada}; aprobada -> cancelada.
// bloqueo is created terminal and only removed by deletion, never transitioned.
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusCancelled
	case StatusApproved:
		return next == StatusCancelled
	default:
		return false
	}
}

// Overlaps reports whether two half-open intervals [aStart,aEnd) and
// [bStart,bEnd) share at least one instant. Touching boundaries do not overlap:
// a reservation ending at 10:00 never conflicts with one starting at 10:00.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// BlockingStatuses список статусов, которые занимают слот
// Используется при проверке доступности пространства
var BlockingStatuses = []ReservationStatus{
	StatusApproved,
	StatusBlock,
}

// ActiveStatuses список статусов, учитываемых в лимите активных резервов пользователя
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusApproved,
}
