package apply_incident_block

import (
	"context"
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error)
	GetBySpaceInRange(ctx context.Context, spaceID int64, start, end time.Time, statuses []domain.ReservationStatus, excludeID *int64) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason *string, at time.Time) error
}

// IncidentRepository интерфейс репозитория инцидентов
type IncidentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Incident, error)
	UpdateStatus(ctx context.Context, id int64, status domain.IncidentStatus) error
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
	NotifyCancellation(ctx context.Context, rsv *domain.Reservation, spaceName string, reason string)
}

// AuditRecorder интерфейс записи в журнал аудита
type AuditRecorder interface {
	Record(ctx context.Context, table, action string, recordID, actorID int64, before, after interface{})
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
