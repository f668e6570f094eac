package get_user_reservations

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
