package spaces

import (
	"context"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error)
	Update(ctx context.Context, space *domain.Space) error
	SetActive(ctx context.Context, id int64, active bool) error
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
