package create_reservation

import (
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	createReservation "github.com/m04kA/UDP-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SpaceID           int64   `json:"spaceId"`
	Start             string  `json:"start"` // "2026-03-15 10:00:00"
	End               string  `json:"end"`   // "2026-03-15 12:00:00"
	Reason            *string `json:"reason,omitempty"`
	Recurring         bool    `json:"recurring,omitempty"`
	RecurrencePattern *string `json:"recurrencePattern,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	SpaceID     int64   `json:"spaceId"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Status      string  `json:"status"`
	Reason      *string `json:"reason,omitempty"`
	Recurring   bool    `json:"recurring"`
	RequestedAt string  `json:"requestedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.Start)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, r.End)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:            userID,
		SpaceID:           r.SpaceID,
		Start:             start,
		End:               end,
		Reason:            r.Reason,
		Recurring:         r.Recurring,
		RecurrencePattern: r.RecurrencePattern,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		SpaceID:     resp.SpaceID,
		Start:       resp.Start.Format(domain.DateTimeFormat),
		End:         resp.End.Format(domain.DateTimeFormat),
		Status:      resp.Status,
		Reason:      resp.Reason,
		Recurring:   resp.Recurring,
		RequestedAt: resp.RequestedAt.Format(domain.DateTimeFormat),
	}
}
