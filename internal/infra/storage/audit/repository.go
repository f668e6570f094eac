package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UDP-ReservationService/pkg/sqlbuilder"
)

// defaultListLimit ограничивает выборку журнала по умолчанию
const defaultListLimit = 100

// Repository репозиторий журнала аудита. Записи только добавляются,
// обновление и удаление не поддерживаются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аудита
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в журнал аудита
func (r *Repository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}

	query, args, err := sqlbuilder.Insert("auditoria").
		Columns("tabla", "accion", "registro_id", "datos_antes", "datos_despues", "actor_id", "registrada_en").
		Values(entry.Table, entry.Action, entry.RecordID, entry.Before, entry.After, entry.ActorID, entry.At).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// List получает записи журнала с фильтрацией по таблице и дате
func (r *Repository) List(ctx context.Context, filter domain.AuditFilter) ([]*domain.AuditEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	selectBuilder := sqlbuilder.Select(
		"id",
		"tabla",
		"accion",
		"registro_id",
		"datos_antes",
		"datos_despues",
		"actor_id",
		"registrada_en",
	).
		From("auditoria").
		OrderBy("registrada_en DESC, id DESC").
		Limit(uint64(limit))

	if filter.Table != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"tabla": *filter.Table})
	}
	if filter.Since != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"registrada_en": *filter.Since})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.AuditEntry, 0)
	for rows.Next() {
		var e domain.AuditEntry
		var at sql.NullTime

		err := rows.Scan(
			&e.ID,
			&e.Table,
			&e.Action,
			&e.RecordID,
			&e.Before,
			&e.After,
			&e.ActorID,
			&at,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		e.At = at.Time
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
