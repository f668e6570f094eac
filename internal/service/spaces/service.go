// Package spaces управляет каталогом пространств: аудиториями и спортивными площадками.
// Создание и изменение доступно только администраторам, просмотр всем.
package spaces

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	spaceRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/space"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces/models"
)

// Service сервис каталога пространств
type Service struct {
	spaceRepo SpaceRepository
	userRepo  UserRepository
	audit     AuditRecorder
	logger    Logger
}

// NewService создает новый экземпляр сервиса пространств
func NewService(spaceRepo SpaceRepository, userRepo UserRepository, audit AuditRecorder, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		userRepo:  userRepo,
		audit:     audit,
		logger:    logger,
	}
}

// Create создает новое пространство. Только для администраторов.
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("CreateSpace: actor=%d name=%q kind=%s", req.ActorID, req.Name, req.Kind)

	if err := s.checkAdmin(ctx, req.ActorID, domain.OpManageSpaces); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	kind := domain.SpaceKind(req.Kind)
	if !domain.ValidSpaceKind(kind) {
		return nil, fmt.Errorf("%w: invalid space kind %q", ErrInvalidInput, req.Kind)
	}
	if req.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
	}

	space := &domain.Space{
		Name:        req.Name,
		Kind:        kind,
		Capacity:    req.Capacity,
		Location:    req.Location,
		Description: req.Description,
		Active:      true,
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrDuplicateName) {
			s.logger.Warn("CreateSpace: name %q already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("CreateSpace: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, domain.TableSpaces, domain.AuditActionCreate, created.ID, req.ActorID, nil, created)

	s.logger.Info("CreateSpace: created space id=%d", created.ID)
	return models.FromDomainSpace(created), nil
}

// GetByID получает пространство по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetSpace: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// List получает список пространств с фильтрацией по типу
func (s *Service) List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error) {
	filter := domain.SpaceFilter{IncludeInactive: req.IncludeInactive}

	if req.Kind != nil {
		kind := domain.SpaceKind(*req.Kind)
		if !domain.ValidSpaceKind(kind) {
			return nil, fmt.Errorf("%w: invalid space kind %q", ErrInvalidInput, *req.Kind)
		}
		filter.Kind = &kind
	}

	spaces, err := s.spaceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSpaces: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpaceList(spaces), nil
}

// Update обновляет атрибуты пространства. Только для администраторов.
func (s *Service) Update(ctx context.Context, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("UpdateSpace: actor=%d space=%d", req.ActorID, req.SpaceID)

	if err := s.checkAdmin(ctx, req.ActorID, domain.OpManageSpaces); err != nil {
		return nil, err
	}

	space, err := s.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, fmt.Errorf("%w: Update - get space: %v", ErrInternal, err)
	}

	before := *space

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		space.Name = *req.Name
	}
	if req.Kind != nil {
		kind := domain.SpaceKind(*req.Kind)
		if !domain.ValidSpaceKind(kind) {
			return nil, fmt.Errorf("%w: invalid space kind %q", ErrInvalidInput, *req.Kind)
		}
		space.Kind = kind
	}
	if req.Capacity != nil {
		if *req.Capacity < 0 {
			return nil, fmt.Errorf("%w: capacity must not be negative", ErrInvalidInput)
		}
		space.Capacity = *req.Capacity
	}
	if req.Location != nil {
		space.Location = *req.Location
	}
	if req.Description != nil {
		space.Description = req.Description
	}

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrDuplicateName) {
			return nil, ErrDuplicateName
		}
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("UpdateSpace: repository error for id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, domain.TableSpaces, domain.AuditActionUpdate, space.ID, req.ActorID, before, space)

	s.logger.Info("UpdateSpace: updated space id=%d", space.ID)
	return models.FromDomainSpace(space), nil
}

// Deactivate помечает пространство неактивным (мягкое удаление).
// Действующие резервации не отменяются, новые не принимаются.
func (s *Service) Deactivate(ctx context.Context, actorID, spaceID int64) error {
	s.logger.Info("DeactivateSpace: actor=%d space=%d", actorID, spaceID)

	if err := s.checkAdmin(ctx, actorID, domain.OpManageSpaces); err != nil {
		return err
	}

	space, err := s.spaceRepo.GetByID(ctx, spaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return ErrSpaceNotFound
		}
		return fmt.Errorf("%w: Deactivate - get space: %v", ErrInternal, err)
	}

	if err := s.spaceRepo.SetActive(ctx, spaceID, false); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return ErrSpaceNotFound
		}
		s.logger.Error("DeactivateSpace: repository error for id=%d: %v", spaceID, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, domain.TableSpaces, domain.AuditActionDeactivate, spaceID, actorID, space, nil)

	s.logger.Info("DeactivateSpace: deactivated space id=%d", spaceID)
	return nil
}

func (s *Service) checkAdmin(ctx context.Context, actorID int64, op domain.Operation) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: checkAdmin - get actor: %v", ErrInternal, err)
	}

	if !actor.CanAct() || !domain.Allowed(actor.Role, op) {
		s.logger.Warn("Spaces: user=%d role=%s denied operation %s", actorID, actor.Role, op)
		return ErrAccessDenied
	}

	return nil
}
