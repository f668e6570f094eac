package apply_incident_block

import (
	"context"

	applyIncidentBlock "github.com/m04kA/UDP-ReservationService/internal/usecase/apply_incident_block"
)

type ApplyIncidentBlockUseCase interface {
	Execute(ctx context.Context, req *applyIncidentBlock.Request) (*applyIncidentBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
