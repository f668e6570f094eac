package approve_reservation

import (
	"github.com/m04kA/UDP-ReservationService/internal/domain"
	approveReservation "github.com/m04kA/UDP-ReservationService/internal/usecase/approve_reservation"
)

// ApprovedReservationResponse HTTP response model
type ApprovedReservationResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	SpaceID    int64  `json:"spaceId"`
	Start      string `json:"start"`
	End        string `json:"end"`
	Status     string `json:"status"`
	ApprovedBy int64  `json:"approvedBy"`
	ApprovedAt string `json:"approvedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *approveReservation.Response) *ApprovedReservationResponse {
	return &ApprovedReservationResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		SpaceID:    resp.SpaceID,
		Start:      resp.Start.Format(domain.DateTimeFormat),
		End:        resp.End.Format(domain.DateTimeFormat),
		Status:     resp.Status,
		ApprovedBy: resp.ApprovedBy,
		ApprovedAt: resp.ApprovedAt.Format(domain.DateTimeFormat),
	}
}
