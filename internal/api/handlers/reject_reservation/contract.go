package reject_reservation

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	Reject(ctx context.Context, req *models.RejectReservationRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
