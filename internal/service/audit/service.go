// Package audit ведет журнал изменений состояния. Записи добавляются
// после фиксации основной операции и не участвуют в ее транзакции:
// сбой аудита не откатывает уже принятое решение.
package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	userRepo "github.com/m04kA/UDP-ReservationService/internal/infra/storage/user"
)

// Service сервис журнала аудита
type Service struct {
	auditRepo    AuditRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аудита
func NewService(auditRepo AuditRepository, userRepo UserRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		auditRepo:    auditRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Record добавляет запись в журнал. Снимки before и after сериализуются
// в JSON; ошибки логируются и не возвращаются вызывающему.
func (s *Service) Record(ctx context.Context, table, action string, recordID, actorID int64, before, after interface{}) {
	entry := &domain.AuditEntry{
		Table:    table,
		Action:   action,
		RecordID: recordID,
		Before:   marshalSnapshot(before),
		After:    marshalSnapshot(after),
		ActorID:  actorID,
		At:       s.timeProvider.Now(),
	}

	if err := s.auditRepo.Create(ctx, entry); err != nil {
		s.logger.Error("Audit: failed to record %s/%s for record=%d: %v", table, action, recordID, err)
		return
	}

	s.logger.Info("Audit: recorded %s/%s record=%d actor=%d", table, action, recordID, actorID)
}

// List возвращает записи журнала. Доступно только администраторам.
func (s *Service) List(ctx context.Context, actorID int64, filter domain.AuditFilter) ([]*domain.AuditEntry, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: List - get actor: %v", ErrInternal, err)
	}

	if !domain.Allowed(actor.Role, domain.OpViewAudit) {
		s.logger.Warn("Audit: user=%d role=%s denied audit access", actorID, actor.Role)
		return nil, ErrAccessDenied
	}

	entries, err := s.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return entries, nil
}

func marshalSnapshot(v interface{}) string {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
