// Package notifications отправляет уведомления пользователям о судьбе их
// резерваций. Реальной интеграции с почтой нет, отправка симулируется
// записью в журнал и сохранением в таблицу notificaciones.
package notifications

import (
	"context"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
)

// Шаблоны уведомлений на языке клиента
const (
	subjectApproval         = "Reserva aprobada"
	subjectRejection        = "Reserva rechazada"
	subjectCancellation     = "Reserva cancelada"
	subjectIncidentResolved = "Incidencia resuelta"

	messageApproval         = "Su reserva del espacio %s para el %s ha sido aprobada."
	messageRejection        = "Su reserva del espacio %s para el %s ha sido rechazada. Motivo: %s."
	messageCancellation     = "Su reserva del espacio %s para el %s ha sido cancelada. Motivo: %s."
	messageIncidentResolved = "La incidencia reportada en el espacio %s ha sido resuelta. Solucion: %s."

	noReasonGiven = "sin motivo indicado"
)

// Service сервис уведомлений
type Service struct {
	notificationRepo NotificationRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(notificationRepo NotificationRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// NotifyApproval уведомляет пользователя об одобрении резервации.
// Ошибки не возвращаются: неудачная отправка не должна откатывать решение.
func (s *Service) NotifyApproval(ctx context.Context, rsv *domain.Reservation, spaceName string) {
	message := fmt.Sprintf(messageApproval, spaceName, rsv.Start.Format(domain.DateTimeFormat))
	s.send(ctx, rsv.UserID, subjectApproval, message)
}

// NotifyRejection уведомляет пользователя об отклонении резервации
func (s *Service) NotifyRejection(ctx context.Context, rsv *domain.Reservation, spaceName string, reason string) {
	if reason == "" {
		reason = noReasonGiven
	}
	message := fmt.Sprintf(messageRejection, spaceName, rsv.Start.Format(domain.DateTimeFormat), reason)
	s.send(ctx, rsv.UserID, subjectRejection, message)
}

// NotifyCancellation уведомляет пользователя об отмене резервации
func (s *Service) NotifyCancellation(ctx context.Context, rsv *domain.Reservation, spaceName string, reason string) {
	if reason == "" {
		reason = noReasonGiven
	}
	message := fmt.Sprintf(messageCancellation, spaceName, rsv.Start.Format(domain.DateTimeFormat), reason)
	s.send(ctx, rsv.UserID, subjectCancellation, message)
}

// NotifyIncidentResolved уведомляет автора инцидента о его разрешении
func (s *Service) NotifyIncidentResolved(ctx context.Context, incident *domain.Incident, spaceName string, solution string) {
	message := fmt.Sprintf(messageIncidentResolved, spaceName, solution)
	s.send(ctx, incident.ReportedBy, subjectIncidentResolved, message)
}

func (s *Service) send(ctx context.Context, userID int64, subject, message string) {
	sentAt := s.timeProvider.Now()

	if err := s.notificationRepo.Create(ctx, userID, subject, message, sentAt); err != nil {
		s.logger.Error("Notifications: failed to persist notification for user=%d: %v", userID, err)
		return
	}

	// Симулируем отправку письма записью в журнал
	s.logger.Info("Notifications: sent to user=%d subject=%q", userID, subject)
}
