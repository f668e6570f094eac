package list_incidents

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/service/incidents/models"
)

type IncidentsService interface {
	List(ctx context.Context, req *models.ListIncidentsRequest) (*models.IncidentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
