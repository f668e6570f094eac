package get_space_calendar

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	GetSpaceCalendar(ctx context.Context, req *models.GetSpaceCalendarRequest) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
