package reservations

import (
	"context"
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	GetBySpaceInRange(ctx context.Context, spaceID int64, start, end time.Time, statuses []domain.ReservationStatus, excludeID *int64) ([]*domain.Reservation, error)
	Reject(ctx context.Context, id int64, adminID int64, reason string, at time.Time) error
	Cancel(ctx context.Context, id int64, reason *string, at time.Time) error
	DeleteBlock(ctx context.Context, id int64) error
}

// SpaceRepository интерфейс репозитория пространств
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Notifier интерфейс сервиса уведомлений
type Notifier interface {
	NotifyRejection(ctx context.Context, rsv *domain.Reservation, spaceName string, reason string)
	NotifyCancellation(ctx context.Context, rsv *domain.Reservation, spaceName string, reason string)
}

// AuditRecorder интерфейс записи в журнал аудита
type AuditRecorder interface {
	Record(ctx context.Context, table, action string, recordID, actorID int64, before, after interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
