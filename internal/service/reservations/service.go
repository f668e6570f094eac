// Package reservations покрывает операции над существующими резервациями:
// просмотр, отклонение, отмену, удаление блокировок и календарь занятости.
// Создание заявок и их одобрение выделены в отдельные use cases,
// так как требуют сериализуемой транзакции с проверкой пересечений.
package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	reservationRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/reservation"
	spaceRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/space"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/UDP-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с резервациями
type Service struct {
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	userRepo        UserRepository
	notifier        Notifier
	audit           AuditRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	userRepo UserRepository,
	notifier Notifier,
	audit AuditRecorder,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		audit:           audit,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает резервацию по ID.
// Пользователь видит только свои резервации, администратор любые.
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetReservation: fetching reservation id=%d for user=%d", id, actorID)

	rsv, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetReservation: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetReservation: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	actor, err := s.getActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if rsv.UserID != actorID && !actor.IsAdmin() {
		s.logger.Warn("GetReservation: access denied for user=%d to reservation id=%d", actorID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(rsv), nil
}

// GetUserReservations получает историю резерваций пользователя.
// Чужую историю может смотреть только администратор.
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	if req.ActorID != req.UserID {
		actor, err := s.getActor(ctx, req.ActorID)
		if err != nil {
			return nil, err
		}
		if !actor.IsAdmin() {
			s.logger.Warn("GetUserReservations: access denied for user=%d to history of user=%d", req.ActorID, req.UserID)
			return nil, ErrAccessDenied
		}
	}

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Reject отклоняет ожидающую заявку. Только для администраторов.
// Причина опциональна, указанная попадает в уведомление пользователю.
func (s *Service) Reject(ctx context.Context, req *models.RejectReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("RejectReservation: actor=%d reservation=%d", req.ActorID, req.ReservationID)

	actor, err := s.getActor(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpRejectReservation) {
		s.logger.Warn("RejectReservation: access denied for user=%d role=%s", req.ActorID, actor.Role)
		return nil, ErrAccessDenied
	}

	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: rejection reason too long", ErrInvalidInput)
	}

	rsv, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: Reject - get reservation: %v", ErrInternal, err)
	}

	if !rsv.CanBeDecided() {
		s.logger.Warn("RejectReservation: reservation id=%d in status=%s cannot be decided", rsv.ID, rsv.Status)
		return nil, ErrAlreadyDecided
	}

	before := *rsv
	now := s.timeProvider.Now()

	if err := s.reservationRepo.Reject(ctx, rsv.ID, req.ActorID, req.Reason, now); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			// Статус сменился между чтением и записью
			return nil, ErrAlreadyDecided
		}
		s.logger.Error("RejectReservation: repository error for id=%d: %v", rsv.ID, err)
		return nil, fmt.Errorf("%w: Reject - repository error: %v", ErrInternal, err)
	}

	rsv.Status = domain.StatusRejected
	if req.Reason != "" {
		rsv.RejectionReason = &req.Reason
	}
	rsv.UpdatedAt = now

	s.audit.Record(ctx, domain.TableReservations, domain.AuditActionReject, rsv.ID, req.ActorID, before, rsv)
	s.notifier.NotifyRejection(ctx, rsv, s.spaceName(ctx, rsv.SpaceID), req.Reason)

	s.logger.Info("RejectReservation: rejected reservation id=%d", rsv.ID)
	return models.FromDomainReservation(rsv), nil
}

// Cancel отменяет резервацию. Владелец отменяет свою, администратор любую.
// Отменить можно только заявку в статусе pendiente или aprobada.
func (s *Service) Cancel(ctx context.Context, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("CancelReservation: actor=%d reservation=%d", req.ActorID, req.ReservationID)

	rsv, err := s.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: Cancel - get reservation: %v", ErrInternal, err)
	}

	actor, err := s.getActor(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}

	if rsv.UserID != req.ActorID && !actor.IsAdmin() {
		s.logger.Warn("CancelReservation: access denied for user=%d to reservation id=%d", req.ActorID, rsv.ID)
		return nil, ErrAccessDenied
	}

	if rsv.Kind != domain.KindNormal {
		return nil, ErrCannotCancel
	}
	if !rsv.CanBeCancelled() {
		s.logger.Warn("CancelReservation: reservation id=%d in status=%s cannot be cancelled", rsv.ID, rsv.Status)
		return nil, ErrCannotCancel
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	before := *rsv
	now := s.timeProvider.Now()

	if err := s.reservationRepo.Cancel(ctx, rsv.ID, req.Reason, now); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("CancelReservation: repository error for id=%d: %v", rsv.ID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	rsv.Status = domain.StatusCancelled
	rsv.UpdatedAt = now

	s.audit.Record(ctx, domain.TableReservations, domain.AuditActionCancel, rsv.ID, req.ActorID, before, rsv)

	// Владельца уведомляем только если отменил администратор
	if rsv.UserID != req.ActorID {
		reason := ""
		if req.Reason != nil {
			reason = *req.Reason
		}
		s.notifier.NotifyCancellation(ctx, rsv, s.spaceName(ctx, rsv.SpaceID), reason)
	}

	s.logger.Info("CancelReservation: cancelled reservation id=%d", rsv.ID)
	return models.FromDomainReservation(rsv), nil
}

// DeleteBlock удаляет блокировку пространства. Только для администраторов.
func (s *Service) DeleteBlock(ctx context.Context, actorID, blockID int64) error {
	s.logger.Info("DeleteBlock: actor=%d block=%d", actorID, blockID)

	actor, err := s.getActor(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpDeleteBlock) {
		s.logger.Warn("DeleteBlock: access denied for user=%d role=%s", actorID, actor.Role)
		return ErrAccessDenied
	}

	rsv, err := s.reservationRepo.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		return fmt.Errorf("%w: DeleteBlock - get block: %v", ErrInternal, err)
	}

	if rsv.Status != domain.StatusBlock {
		return ErrNotABlock
	}

	if err := s.reservationRepo.DeleteBlock(ctx, blockID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("DeleteBlock: repository error for id=%d: %v", blockID, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, domain.TableReservations, domain.AuditActionDelete, blockID, actorID, rsv, nil)

	s.logger.Info("DeleteBlock: deleted block id=%d", blockID)
	return nil
}

// GetSpaceCalendar возвращает занятые интервалы пространства за период.
// Показываются активные заявки и блокировки; отклоненные и отмененные скрыты.
func (s *Service) GetSpaceCalendar(ctx context.Context, req *models.GetSpaceCalendarRequest) (*models.CalendarResponse, error) {
	s.logger.Info("GetSpaceCalendar: space=%d from=%s to=%s",
		req.SpaceID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if !req.From.Before(req.To) {
		return nil, ErrInvalidTimeRange
	}

	if _, err := s.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, fmt.Errorf("%w: GetSpaceCalendar - get space: %v", ErrInternal, err)
	}

	statuses := []domain.ReservationStatus{
		domain.StatusPending,
		domain.StatusApproved,
		domain.StatusBlock,
	}

	reservations, err := s.reservationRepo.GetBySpaceInRange(ctx, req.SpaceID, req.From, req.To, statuses, nil)
	if err != nil {
		s.logger.Error("GetSpaceCalendar: repository error for space=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: GetSpaceCalendar - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCalendar(req.SpaceID, req.From, req.To, reservations), nil
}

func (s *Service) getActor(ctx context.Context, actorID int64) (*domain.User, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: getActor - repository error: %v", ErrInternal, err)
	}
	return actor, nil
}

// spaceName возвращает имя пространства для текста уведомления.
// Сбой не критичен, вместо имени подставляется идентификатор.
func (s *Service) spaceName(ctx context.Context, spaceID int64) string {
	space, err := s.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		return fmt.Sprintf("#%d", spaceID)
	}
	return space.Name
}
