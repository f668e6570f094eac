// Package approve_reservation реализует одобрение заявки администратором.
// Повторная проверка пересечений и смена статуса выполняются в сериализуемой
// транзакции: между подачей заявки и решением слот мог быть занят.
package approve_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
)

// UseCase use case для одобрения заявки
type UseCase struct {
	reservationRepo ReservationRepository
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
	spaceRepo SpaceRepository,
	userRepo UserRepository,
	notifier Notifier,
	audit AuditRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		audit:           audit,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case одобрения заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveReservation: actor=%d reservation=%d", req.ActorID, req.ReservationID)

	// 1. Валидация входных данных
	if req.ActorID <= 0 || req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: actorID and reservationID must be positive", ErrInvalidInput)
	}

	// 2. Проверяем права администратора
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Error("ApproveReservation: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %v", ErrInternal, err)
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpApproveReservation) {
		uc.logger.Warn("ApproveReservation: user id=%d role=%s denied", req.ActorID, actor.Role)
		return nil, ErrAccessDenied
	}

	now := uc.timeProvider.Now()

	var result *domain.Reservation
	var before domain.Reservation

	// 3. Решение принимается в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем заявку
		rsv, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("ApproveReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3.2. Решение возможно только по ожидающей заявке
		if !rsv.CanBeDecided() {
			uc.logger.Warn("ApproveReservation: reservation id=%d in status=%s", rsv.ID, rsv.Status)
			return ErrAlreadyDecided
		}

		before = *rsv

		// 3.3. Повторная проверка пересечений, исключая саму заявку.
		// При конфликте заявка остается в pendiente.
		overlapping, err := uc.reservationRepo.GetBySpaceInRange(
			txCtx, rsv.SpaceID, rsv.Start, rsv.End, domain.BlockingStatuses, &rsv.ID)
		if err != nil {
			uc.logger.Error("ApproveReservation: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("ApproveReservation: reservation id=%d conflicts with %d entries",
				rsv.ID, len(overlapping))
			return ErrSlotConflict
		}

		// 3.4. Одобряем заявку
		if err := uc.reservationRepo.Approve(txCtx, rsv.ID, req.ActorID, now); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrAlreadyDecided
			}
			uc.logger.Error("ApproveReservation: failed to approve id=%d: %v", rsv.ID, err)
			return fmt.Errorf("%w: failed to approve: %v", ErrInternal, err)
		}

		rsv.Status = domain.StatusApproved
		rsv.ApprovedBy = &req.ActorID
		rsv.ApprovedAt = &now
		rsv.UpdatedAt = now
		result = rsv

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Аудит и уведомление после фиксации транзакции
	uc.audit.Record(ctx, domain.TableReservations, domain.AuditActionApprove, result.ID, req.ActorID, before, result)
	uc.notifier.NotifyApproval(ctx, result, uc.spaceName(ctx, result.SpaceID))

	uc.logger.Info("ApproveReservation: approved reservation id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		UserID:     result.UserID,
		SpaceID:    result.SpaceID,
		Start:      result.Start,
		End:        result.End,
		Status:     string(result.Status),
		ApprovedBy: req.ActorID,
		ApprovedAt: now,
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
