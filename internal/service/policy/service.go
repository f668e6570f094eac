// Package policy управляет единственной записью политики резервирования.
// Значения читаются всеми проверками бронирования, менять их может
// только администратор, с валидацией границ.
package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	policyRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/policy"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/UDP-ReservationService/internal/service/policy/models"
	"github.com/m04kA/UDP-ReservationService/pkg/types"
)

// Service сервис политики резервирования
type Service struct {
	policyRepo PolicyRepository
	userRepo   UserRepository
	audit      AuditRecorder
	logger     Logger
}

// NewService создает новый экземпляр сервиса политики
func NewService(policyRepo PolicyRepository, userRepo UserRepository, audit AuditRecorder, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		userRepo:   userRepo,
		audit:      audit,
		logger:     logger,
	}
}

// Get возвращает текущую политику резервирования
func (s *Service) Get(ctx context.Context) (*models.PolicyResponse, error) {
	policy, err := s.policyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("GetPolicy: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPolicy(policy), nil
}

// Update изменяет политику резервирования. Только для администраторов.
// Частичное обновление: неуказанные поля сохраняют прежние значения.
func (s *Service) Update(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	s.logger.Info("UpdatePolicy: actor=%d", req.ActorID)

	actor, err := s.userRepo.GetByID(ctx, req.ActorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: Update - get actor: %v", ErrInternal, err)
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpUpdatePolicy) {
		s.logger.Warn("UpdatePolicy: access denied for user=%d role=%s", req.ActorID, actor.Role)
		return nil, ErrAccessDenied
	}

	policy, err := s.policyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("%w: Update - get policy: %v", ErrInternal, err)
	}

	before := *policy

	if req.AdvanceWindowDays != nil {
		if *req.AdvanceWindowDays < domain.MinAdvanceWindowDays || *req.AdvanceWindowDays > domain.MaxAdvanceWindowDays {
			return nil, fmt.Errorf("%w: advanceWindowDays must be between %d and %d",
				ErrInvalidInput, domain.MinAdvanceWindowDays, domain.MaxAdvanceWindowDays)
		}
		policy.AdvanceWindowDays = *req.AdvanceWindowDays
	}
	if req.MaxActiveReservations != nil {
		if *req.MaxActiveReservations < domain.MinActiveReservations || *req.MaxActiveReservations > domain.MaxActiveReservationsCap {
			return nil, fmt.Errorf("%w: maxActiveReservations must be between %d and %d",
				ErrInvalidInput, domain.MinActiveReservations, domain.MaxActiveReservationsCap)
		}
		policy.MaxActiveReservations = *req.MaxActiveReservations
	}
	if req.MaxDurationHours != nil {
		if *req.MaxDurationHours < domain.MinDurationHours || *req.MaxDurationHours > domain.MaxDurationHoursCap {
			return nil, fmt.Errorf("%w: maxDurationHours must be between %d and %d",
				ErrInvalidInput, domain.MinDurationHours, domain.MaxDurationHoursCap)
		}
		policy.MaxDurationHours = *req.MaxDurationHours
	}
	if req.OpeningTime != nil {
		opening := types.TimeString(*req.OpeningTime)
		if err := opening.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid openingTime: %v", ErrInvalidInput, err)
		}
		policy.OpeningTime = opening
	}
	if req.ClosingTime != nil {
		closing := types.TimeString(*req.ClosingTime)
		if err := closing.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid closingTime: %v", ErrInvalidInput, err)
		}
		policy.ClosingTime = closing
	}

	// Рабочее окно должно оставаться непустым
	if !policy.OpeningTime.IsBefore(policy.ClosingTime) {
		return nil, fmt.Errorf("%w: openingTime must be before closingTime", ErrInvalidInput)
	}

	if err := s.policyRepo.Update(ctx, policy); err != nil {
		if errors.Is(err, policyRepo.ErrPolicyNotFound) {
			return nil, ErrPolicyNotFound
		}
		s.logger.Error("UpdatePolicy: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, domain.TableConfiguration, domain.AuditActionUpdate, policy.ID, req.ActorID, before, policy)

	s.logger.Info("UpdatePolicy: updated by user=%d", req.ActorID)
	return models.FromDomainPolicy(policy), nil
}
