package models

import (
	"errors"
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// GetUserReservationsRequest запрос на получение резерваций пользователя
type GetUserReservationsRequest struct {
	ActorID int64   `json:"-"`
	UserID  int64   `json:"userId"`
	Status  *string `json:"status,omitempty"`
}

// RejectReservationRequest запрос на отклонение заявки
type RejectReservationRequest struct {
	ActorID       int64  `json:"-"`
	ReservationID int64  `json:"-"`
	Reason        string `json:"reason"`
}

// CancelReservationRequest запрос на отмену резервации
type CancelReservationRequest struct {
	ActorID       int64   `json:"-"`
	ReservationID int64   `json:"-"`
	Reason        *string `json:"reason,omitempty"`
}

// GetSpaceCalendarRequest запрос занятости пространства за период
type GetSpaceCalendarRequest struct {
	SpaceID int64     `json:"-"`
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
}

// Response модели

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID                int64   `json:"id"`
	UserID            int64   `json:"userId"`
	SpaceID           int64   `json:"spaceId"`
	Start             string  `json:"start"`
	End               string  `json:"end"`
	Status            string  `json:"status"`
	Kind              string  `json:"kind"`
	Reason            *string `json:"reason,omitempty"`
	RejectionReason   *string `json:"rejectionReason,omitempty"`
	Recurring         bool    `json:"recurring"`
	RecurrencePattern *string `json:"recurrencePattern,omitempty"`
	ApprovedBy        *int64  `json:"approvedBy,omitempty"`
	ApprovedAt        *string `json:"approvedAt,omitempty"`
	RequestedAt       string  `json:"requestedAt"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	Total        int                    `json:"total"`
}

// CalendarEntryResponse занятый интервал в календаре пространства
type CalendarEntryResponse struct {
	ReservationID int64  `json:"reservationId"`
	Start         string `json:"start"`
	End           string `json:"end"`
	Status        string `json:"status"`
	Kind          string `json:"kind"`
}

// CalendarResponse ответ с календарем занятости пространства
type CalendarResponse struct {
	SpaceID int64                    `json:"spaceId"`
	From    string                   `json:"from"`
	To      string                   `json:"to"`
	Entries []*CalendarEntryResponse `json:"entries"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	resp := &ReservationResponse{
		ID:                r.ID,
		UserID:            r.UserID,
		SpaceID:           r.SpaceID,
		Start:             r.Start.Format(domain.DateTimeFormat),
		End:               r.End.Format(domain.DateTimeFormat),
		Status:            string(r.Status),
		Kind:              string(r.Kind),
		Reason:            r.Reason,
		RejectionReason:   r.RejectionReason,
		Recurring:         r.Recurring,
		RecurrencePattern: r.RecurrencePattern,
		ApprovedBy:        r.ApprovedBy,
		RequestedAt:       r.RequestedAt.Format(domain.DateTimeFormat),
	}

	if r.ApprovedAt != nil {
		approvedAt := r.ApprovedAt.Format(domain.DateTimeFormat)
		resp.ApprovedAt = &approvedAt
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]*ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out, Total: len(out)}
}

// FromDomainCalendar конвертирует занятые интервалы в календарь
func FromDomainCalendar(spaceID int64, from, to time.Time, reservations []*domain.Reservation) *CalendarResponse {
	entries := make([]*CalendarEntryResponse, 0, len(reservations))
	for _, r := range reservations {
		entries = append(entries, &CalendarEntryResponse{
			ReservationID: r.ID,
			Start:         r.Start.Format(domain.DateTimeFormat),
			End:           r.End.Format(domain.DateTimeFormat),
			Status:        string(r.Status),
			Kind:          string(r.Kind),
		})
	}

	return &CalendarResponse{
		SpaceID: spaceID,
		From:    from.Format(domain.DateTimeFormat),
		To:      to.Format(domain.DateTimeFormat),
		Entries: entries,
	}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusCancelled, domain.StatusBlock:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
