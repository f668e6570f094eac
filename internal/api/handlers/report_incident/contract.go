package report_incident

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/service/incidents/models"
)

type IncidentsService interface {
	Report(ctx context.Context, req *models.ReportIncidentRequest) (*models.IncidentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
