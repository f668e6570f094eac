package policy

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// PolicyRepository интерфейс репозитория политики резервирования
type PolicyRepository interface {
	Get(ctx context.Context) (*domain.ReservationPolicy, error)
	Update(ctx context.Context, policy *domain.ReservationPolicy) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// AuditRecorder интерфейс записи в журнал аудита
type AuditRecorder interface {
	Record(ctx context.Context, table, action string, recordID, actorID int64, before, after interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
