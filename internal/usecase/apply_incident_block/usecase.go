// Package apply_incident_block реализует блокировку пространства по инциденту.
// В одной сериализуемой транзакции создается блокировка, отменяются попавшие
// под нее активные резервации и инцидент переводится в en_progreso.
package apply_incident_block

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	incidentRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/incident"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/UDP-ReservationService/pkg/ptr"
)

// cancellationReason причина отмены, попадает в уведомления пользователям
const cancellationReason = "Espacio bloqueado por incidencia"

// UseCase use case для блокировки пространства по инциденту
type UseCase struct {
	reservationRepo ReservationRepository
	incidentRepo    IncidentRepository
	spaceRepo       SpaceRepository
	userRepo        UserRepository
	notifier        Notifier
	audit           AuditRecorder
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	incidentRepo IncidentRepository,
	spaceRepo SpaceRepository,
	userRepo UserRepository,
	notifier Notifier,
	audit AuditRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		incidentRepo:    incidentRepo,
		spaceRepo:       spaceRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		audit:           audit,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case блокировки по инциденту
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyIncidentBlock: actor=%d incident=%d", req.ActorID, req.IncidentID)

	// 1. Валидация входных данных
	if req.ActorID <= 0 || req.IncidentID <= 0 {
		return nil, fmt.Errorf("%w: actorID and incidentID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() || !req.Start.Before(req.End) {
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}

	// 2. Проверяем права администратора
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Error("ApplyIncidentBlock: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %v", ErrInternal, err)
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpCreateBlock) {
		uc.logger.Warn("ApplyIncidentBlock: user id=%d role=%s denied", req.ActorID, actor.Role)
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now()

	var block *domain.Reservation
	var incident *domain.Incident
	var cancelled []*domain.Reservation

	// 3. Блокировка, отмены и смена статуса инцидента атомарны
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем инцидент
		incident, err = uc.incidentRepo.GetByID(txCtx, req.IncidentID)
		if err != nil {
			if errors.Is(err, incidentRepo.ErrIncidentNotFound) {
				return ErrIncidentNotFound
			}
			uc.logger.Error("ApplyIncidentBlock: failed to get incident id=%d: %v", req.IncidentID, err)
			return fmt.Errorf("%w: failed to get incident: %v", ErrInternal, err)
		}

		// 3.2. Блокировать можно только открытый инцидент или уже в работе
		if !incident.CanBeBlocked() {
			uc.logger.Warn("ApplyIncidentBlock: incident id=%d in status=%s", incident.ID, incident.Status)
			return ErrInvalidTransition
		}

		// 3.3. Находим активные резервации и блокировки, попавшие под интервал
		statuses := []domain.ReservationStatus{
			domain.StatusPending,
			domain.StatusApproved,
			domain.StatusBlock,
		}
		overlapping, err := uc.reservationRepo.GetBySpaceInRange(
			txCtx, incident.SpaceID, req.Start, req.End, statuses, nil)
		if err != nil {
			uc.logger.Error("ApplyIncidentBlock: failed to list overlapping reservations: %v", err)
			return fmt.Errorf("%w: failed to list overlapping reservations: %v", ErrInternal, err)
		}

		// 3.4. Два пересекающихся bloqueo на одном пространстве недопустимы
		for _, rsv := range overlapping {
			if rsv.Status == domain.StatusBlock {
				uc.logger.Warn("ApplyIncidentBlock: interval already covered by block id=%d", rsv.ID)
				return ErrSlotNotAvailable
			}
		}

		// 3.5. Отменяем каждую попавшую под блокировку обычную резервацию
		for _, rsv := range overlapping {
			if rsv.Kind != domain.KindNormal {
				continue
			}
			if err := uc.reservationRepo.Cancel(txCtx, rsv.ID, ptr.Ptr(cancellationReason), now); err != nil {
				uc.logger.Error("ApplyIncidentBlock: failed to cancel reservation id=%d: %v", rsv.ID, err)
				return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
			}
			rsv.Status = domain.StatusCancelled
			cancelled = append(cancelled, rsv)
		}

		// 3.6. Создаем блокировку типа incidencia
		reason := fmt.Sprintf("Incidencia #%d: %s", incident.ID, incident.Kind)
		block, err = uc.reservationRepo.Create(txCtx, &domain.Reservation{
			UserID:      req.ActorID,
			SpaceID:     incident.SpaceID,
			Start:       req.Start,
			End:         req.End,
			Status:      domain.StatusBlock,
			Kind:        domain.KindIncident,
			Reason:      &reason,
			RequestedAt: now,
		})
		if err != nil {
			uc.logger.Error("ApplyIncidentBlock: failed to create block: %v", err)
			return fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
		}

		// 3.7. Переводим инцидент в работу
		if err := uc.incidentRepo.UpdateStatus(txCtx, incident.ID, domain.IncidentInProgress); err != nil {
			uc.logger.Error("ApplyIncidentBlock: failed to update incident status: %v", err)
			return fmt.Errorf("%w: failed to update incident status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Аудит и уведомления после фиксации транзакции
	uc.audit.Record(ctx, domain.TableReservations, domain.AuditActionBlock, block.ID, req.ActorID, nil, block)
	uc.audit.Record(ctx, domain.TableIncidents, domain.AuditActionUpdate, incident.ID, req.ActorID,
		incident.Status, domain.IncidentInProgress)

	spaceName := uc.spaceName(ctx, incident.SpaceID)
	cancelledIDs := make([]int64, 0, len(cancelled))
	for _, rsv := range cancelled {
		cancelledIDs = append(cancelledIDs, rsv.ID)
		uc.audit.Record(ctx, domain.TableReservations, domain.AuditActionCancel, rsv.ID, req.ActorID, nil, rsv)
		uc.notifier.NotifyCancellation(ctx, rsv, spaceName, cancellationReason)
	}

	uc.logger.Info("ApplyIncidentBlock: block id=%d created, %d reservations cancelled",
		block.ID, len(cancelledIDs))

	return &Response{
		BlockID:               block.ID,
		IncidentID:            incident.ID,
		SpaceID:               incident.SpaceID,
		Start:                 block.Start,
		End:                   block.End,
		IncidentStatus:        string(domain.IncidentInProgress),
		CancelledReservations: cancelledIDs,
	}, nil
}

// spaceName возвращает имя пространства для текста уведомления
func (uc *UseCase) spaceName(ctx context.Context, spaceID int64) string {
	space, err := uc.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		return fmt.Sprintf("#%d", spaceID)
	}
	return space.Name
}
