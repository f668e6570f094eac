package close_incident

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/service/incidents/models"
)

type IncidentsService interface {
	Close(ctx context.Context, actorID, incidentID int64) (*models.IncidentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
