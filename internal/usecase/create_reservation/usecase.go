// Package create_reservation реализует подачу заявки на резервацию.
// Проверка пересечений и вставка выполняются в сериализуемой транзакции,
// чтобы две конкурирующие заявки не заняли один интервал.
package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/reservation"
	spaceRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/space"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
)

// UseCase use case для создания резервации
type UseCase struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	userRepo        UserRepository
	policyRepo      PolicyRepository
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
	policyRepo PolicyRepository,
	audit AuditRecorder,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		userRepo:        userRepo,
		policyRepo:      policyRepo,
		audit:           audit,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания резервации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, space=%d, start=%s, end=%s",
		req.UserID, req.SpaceID, req.Start.Format(domain.DateTimeFormat), req.End.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем пользователя и его права
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateReservation: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateReservation: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.CanAct() || !domain.Allowed(user.Role, domain.OpCreateReservation) {
		uc.logger.Warn("CreateReservation: user id=%d role=%s denied", req.UserID, user.Role)
		return nil, ErrAccessDenied
	}

	// 4. Проверяем пространство
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("CreateReservation: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}
	if !space.IsBookable() {
		uc.logger.Warn("CreateReservation: space id=%d is inactive", req.SpaceID)
		return nil, ErrSpaceInactive
	}

	var result *domain.Reservation

	// 5. Выполняем проверки и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем действующую политику
		policy, err := uc.policyRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get policy: %v", err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		// 5.2. Проверяем интервал по политике
		if err := validateAgainstPolicy(req, now, policy); err != nil {
			uc.logger.Warn("CreateReservation: policy validation failed: %v", err)
			return err
		}

		// 5.3. Проверяем лимит активных заявок пользователя
		activeCount, err := uc.reservationRepo.CountActiveByUser(txCtx, req.UserID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to count active reservations: %v", err)
			return fmt.Errorf("%w: failed to count active reservations: %v", ErrInternal, err)
		}
		if activeCount >= policy.MaxActiveReservations {
			uc.logger.Warn("CreateReservation: user id=%d has %d/%d active reservations",
				req.UserID, activeCount, policy.MaxActiveReservations)
			return ErrTooManyActiveReservations
		}

		// 5.4. Проверяем пересечения с одобренными резервациями и блокировками.
		// Интервалы полуоткрытые: соприкосновение границ пересечением не считается.
		overlapping, err := uc.reservationRepo.GetBySpaceInRange(
			txCtx, req.SpaceID, req.Start, req.End, domain.BlockingStatuses, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check overlaps: %v", err)
			return fmt.Errorf("%w: failed to check overlaps: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateReservation: space id=%d occupied, %d overlapping entries",
				req.SpaceID, len(overlapping))
			return ErrSlotNotAvailable
		}

		// 5.5. Создаем заявку в статусе pendiente
		rsv := &domain.Reservation{
			UserID:            req.UserID,
			SpaceID:           req.SpaceID,
			Start:             req.Start,
			End:               req.End,
			Status:            domain.StatusPending,
			Kind:              domain.KindNormal,
			Reason:            req.Reason,
			Recurring:         req.Recurring,
			RecurrencePattern: req.RecurrencePattern,
			RequestedAt:       now,
		}

		result, err = uc.reservationRepo.Create(txCtx, rsv)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, reservationRepo.ErrTransaction) {
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 6. Записываем в журнал аудита после фиксации транзакции
	uc.audit.Record(ctx, domain.TableReservations, domain.AuditActionCreate, result.ID, req.UserID, nil, result)

	uc.logger.Info("CreateReservation: created reservation id=%d for user=%d", result.ID, req.UserID)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		SpaceID:     result.SpaceID,
		Start:       result.Start,
		End:         result.End,
		Status:      string(result.Status),
		Reason:      result.Reason,
		Recurring:   result.Recurring,
		RequestedAt: result.RequestedAt,
	}, nil
}
