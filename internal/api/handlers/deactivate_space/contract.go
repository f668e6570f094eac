package deactivate_space

import (
	"context"
)

type SpacesService interface {
	Deactivate(ctx context.Context, actorID, spaceID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
