package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/UDP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UDP-ReservationService/pkg/sqlbuilder"
)

// Repository репозиторий истории уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отправленное уведомление
func (r *Repository) Create(ctx context.Context, userID int64, subject, message string, sentAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Insert("notificaciones").
		Columns("usuario_id", "asunto", "mensaje", "enviada_en").
		Values(userID, subject, message, sentAt).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
