// Package incidents управляет жизненным циклом инцидентов:
// abierta -> en_progreso -> resuelta -> cerrada.
// Блокировка пространства по инциденту выделена в отдельный use case.
package incidents

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	incidentRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/incident"
	spaceRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/space"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
	"github.com/m04kA/UDP-ReservationService/internal/service/incidents/models"
)

// Service сервис инцидентов
type Service struct {
	incidentRepo IncidentRepository
	spaceRepo    SpaceRepository
	userRepo     UserRepository
	notifier     Notifier
	audit        AuditRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса инцидентов
func NewService(
	incidentRepo IncidentRepository,
	spaceRepo SpaceRepository,
	userRepo UserRepository,
	notifier Notifier,
	audit AuditRecorder,
	logger Logger,
) *Service {
	return &Service{
		incidentRepo: incidentRepo,
		spaceRepo:    spaceRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		audit:        audit,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Report регистрирует новый инцидент. Доступно любому активному пользователю.
func (s *Service) Report(ctx context.Context, req *models.ReportIncidentRequest) (*models.IncidentResponse, error) {
	s.logger.Info("ReportIncident: actor=%d space=%d kind=%q", req.ActorID, req.SpaceID, req.Kind)

	actor, err := s.getActor(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpReportIncident) {
		return nil, ErrAccessDenied
	}

	if req.Kind == "" {
		return nil, fmt.Errorf("%w: incident kind is required", ErrInvalidInput)
	}
	if req.Description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return nil, fmt.Errorf("%w: description too long", ErrInvalidInput)
	}

	if _, err := s.spaceRepo.GetByID(ctx, req.SpaceID); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		return nil, fmt.Errorf("%w: Report - get space: %v", ErrInternal, err)
	}

	incident := &domain.Incident{
		SpaceID:     req.SpaceID,
		Kind:        req.Kind,
		Description: req.Description,
		Status:      domain.IncidentOpen,
		ReportedBy:  req.ActorID,
		ReportedAt:  s.timeProvider.Now(),
	}

	created, err := s.incidentRepo.Create(ctx, incident)
	if err != nil {
		s.logger.Error("ReportIncident: repository error: %v", err)
		return nil, fmt.Errorf("%w: Report - repository error: %v", ErrInternal, err)
	}

	s.audit.Record(ctx, domain.TableIncidents, domain.AuditActionCreate, created.ID, req.ActorID, nil, created)

	s.logger.Info("ReportIncident: created incident id=%d", created.ID)
	return models.FromDomainIncident(created), nil
}

// Resolve разрешает инцидент. Требует непустое описание решения.
// Доступно сотрудникам и администраторам.
func (s *Service) Resolve(ctx context.Context, req *models.ResolveIncidentRequest) (*models.IncidentResponse, error) {
	s.logger.Info("ResolveIncident: actor=%d incident=%d", req.ActorID, req.IncidentID)

	actor, err := s.getActor(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpResolveIncident) {
		s.logger.Warn("ResolveIncident: access denied for user=%d role=%s", req.ActorID, actor.Role)
		return nil, ErrAccessDenied
	}

	if req.Solution == "" {
		return nil, ErrSolutionRequired
	}

	incident, err := s.getIncident(ctx, req.IncidentID)
	if err != nil {
		return nil, err
	}

	if !incident.CanBeResolved() {
		s.logger.Warn("ResolveIncident: incident id=%d in status=%s cannot be resolved", incident.ID, incident.Status)
		return nil, ErrInvalidTransition
	}

	before := *incident
	now := s.timeProvider.Now()

	if err := s.incidentRepo.Resolve(ctx, incident.ID, req.ActorID, req.Solution, now); err != nil {
		if errors.Is(err, incidentRepo.ErrIncidentNotFound) {
			return nil, ErrIncidentNotFound
		}
		s.logger.Error("ResolveIncident: repository error for id=%d: %v", incident.ID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	incident.Status = domain.IncidentResolved
	incident.ResolvedBy = &req.ActorID
	incident.Solution = &req.Solution
	incident.ResolvedAt = &now

	s.audit.Record(ctx, domain.TableIncidents, domain.AuditActionResolve, incident.ID, req.ActorID, before, incident)
	s.notifier.NotifyIncidentResolved(ctx, incident, s.spaceName(ctx, incident.SpaceID), req.Solution)

	s.logger.Info("ResolveIncident: resolved incident id=%d", incident.ID)
	return models.FromDomainIncident(incident), nil
}

// Close закрывает разрешенный инцидент. Только для администраторов.
func (s *Service) Close(ctx context.Context, actorID, incidentID int64) (*models.IncidentResponse, error) {
	s.logger.Info("CloseIncident: actor=%d incident=%d", actorID, incidentID)

	actor, err := s.getActor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanAct() || !domain.Allowed(actor.Role, domain.OpCloseIncident) {
		s.logger.Warn("CloseIncident: access denied for user=%d role=%s", actorID, actor.Role)
		return nil, ErrAccessDenied
	}

	incident, err := s.getIncident(ctx, incidentID)
	if err != nil {
		return nil, err
	}

	if !incident.CanBeClosed() {
		s.logger.Warn("CloseIncident: incident id=%d in status=%s cannot be closed", incident.ID, incident.Status)
		return nil, ErrInvalidTransition
	}

	before := *incident

	if err := s.incidentRepo.UpdateStatus(ctx, incident.ID, domain.IncidentClosed); err != nil {
		if errors.Is(err, incidentRepo.ErrIncidentNotFound) {
			return nil, ErrIncidentNotFound
		}
		s.logger.Error("CloseIncident: repository error for id=%d: %v", incident.ID, err)
		return nil, fmt.Errorf("%w: Close - repository error: %v", ErrInternal, err)
	}

	incident.Status = domain.IncidentClosed

	s.audit.Record(ctx, domain.TableIncidents, domain.AuditActionClose, incident.ID, actorID, before, incident)

	s.logger.Info("CloseIncident: closed incident id=%d", incident.ID)
	return models.FromDomainIncident(incident), nil
}

// List получает список инцидентов с фильтрацией по пространству и статусу
func (s *Service) List(ctx context.Context, req *models.ListIncidentsRequest) (*models.IncidentListResponse, error) {
	filter := domain.IncidentFilter{SpaceID: req.SpaceID}

	if req.Status != nil {
		status := domain.IncidentStatus(*req.Status)
		switch status {
		case domain.IncidentOpen, domain.IncidentInProgress, domain.IncidentResolved, domain.IncidentClosed:
			filter.Status = &status
		default:
			return nil, fmt.Errorf("%w: invalid incident status %q", ErrInvalidInput, *req.Status)
		}
	}

	incidents, err := s.incidentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListIncidents: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainIncidentList(incidents), nil
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

func (s *Service) getIncident(ctx context.Context, id int64) (*domain.Incident, error) {
	incident, err := s.incidentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, incidentRepo.ErrIncidentNotFound) {
			return nil, ErrIncidentNotFound
		}
		return nil, fmt.Errorf("%w: getIncident - repository error: %v", ErrInternal, err)
	}
	return incident, nil
}
