package delete_block

import (
	"context"
)

type ReservationsService interface {
	DeleteBlock(ctx context.Context, actorID, blockID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
