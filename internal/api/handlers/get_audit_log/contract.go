package get_audit_log

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

type AuditService interface {
	List(ctx context.Context, actorID int64, filter domain.AuditFilter) ([]*domain.AuditEntry, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
