// Package create_block реализует административную блокировку пространства.
// Блокировка хранится как запись в reservas со статусом bloqueo и сразу
// занимает интервал, минуя очередь одобрения.
package create_block

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	spaceRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/space"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
)

// UseCase use case для создания блокировки
type UseCase struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	userRepo        UserRepository
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
	audit AuditRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		userRepo:        userRepo,
		audit:           audit,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания блокировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlock: actor=%d, space=%d, start=%s, end=%s",
		req.ActorID, req.SpaceID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права администратора
	actor, err := uc.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBlock: failed to get actor id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to get actor: %v", ErrInternal, err)
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpCreateBlock) {
		uc.logger.Warn("CreateBlock: user id=%d role=%s denied", req.ActorID, actor.Role)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем пространство. Блокировать можно и неактивное:
	// ремонт деактивированного зала это штатная ситуация.
	if _, err := uc.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateBlock: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	var result *domain.Reservation

	// 4. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокировка не может пересекаться с одобренными резервациями
		// и другими блокировками
		overlapping, err := uc.reservationRepo.GetBySpaceInRange(
			txCtx, req.SpaceID, req.Start, req.End, domain.BlockingStatuses, nil)
		if err != nil {
			uc.logger.Error("CreateBlock: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBlock: space id=%d occupied, %d overlapping entries",
				req.SpaceID, len(overlapping))
			return ErrSlotNotAvailable
		}

		// 4.2. Создаем блокировку
		block := &domain.Reservation{
			UserID:      req.ActorID,
			SpaceID:     req.SpaceID,
			Start:       req.Start,
			End:         req.End,
			Status:      domain.StatusBlock,
			Kind:        domain.KindBlock,
			Reason:      req.Reason,
			RequestedAt: now,
		}

		result, err = uc.reservationRepo.Create(txCtx, block)
		if err != nil {
			uc.logger.Error("CreateBlock: failed to create block: %v", err)
			return fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	// 5. Записываем в журнал аудита после фиксации транзакции
	uc.audit.Record(ctx, domain.TableReservations, domain.AuditActionBlock, result.ID, req.ActorID, nil, result)

	uc.logger.Info("CreateBlock: created block id=%d for space=%d", result.ID, req.SpaceID)

	return &Response{
		ID:        result.ID,
		SpaceID:   result.SpaceID,
		Start:     result.Start,
		End:       result.End,
		Status:    string(result.Status),
		Reason:    result.Reason,
		CreatedBy: req.ActorID,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceID must be positive", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason too long", ErrInvalidInput)
	}
	return nil
}
