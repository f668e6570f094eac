package update_space

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/service/spaces/models"
)

type SpacesService interface {
	Update(ctx context.Context, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
