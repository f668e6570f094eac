package incidents

import (
	"context"
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// IncidentRepository интерфейс репозитория инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) (*domain.Incident, error)
	GetByID(ctx context.Context, id int64) (*domain.Incident, error)
	List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, error)
	UpdateStatus(ctx context.Context, id int64, status domain.IncidentStatus) error
	Resolve(ctx context.Context, id int64, resolverID int64, solution string, at time.Time) error
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
	NotifyIncidentResolved(ctx context.Context, incident *domain.Incident, spaceName string, solution string)
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
