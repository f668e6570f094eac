package policy

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UDP-ReservationService/pkg/sqlbuilder"
)

// singletonID конфигурация хранится единственной строкой
const singletonID = 1

// Repository репозиторий для работы с политикой резервирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политики
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает единственную запись политики
func (r *Repository) Get(ctx context.Context) (*domain.ReservationPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(
		"id",
		"dias_anticipacion",
		"max_reservas_activas",
		"max_horas_duracion",
		"hora_apertura",
		"hora_cierre",
		"actualizado_en",
	).
		From("configuraciones").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.ReservationPolicy
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.AdvanceWindowDays,
		&p.MaxActiveReservations,
		&p.MaxDurationHours,
		&p.OpeningTime,
		&p.ClosingTime,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan policy: %v", ErrScanRow, err)
	}

	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// Update перезаписывает единственную запись политики
func (r *Repository) Update(ctx context.Context, policy *domain.ReservationPolicy) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("configuraciones").
		Set("dias_anticipacion", policy.AdvanceWindowDays).
		Set("max_reservas_activas", policy.MaxActiveReservations).
		Set("max_horas_duracion", policy.MaxDurationHours).
		Set("hora_apertura", policy.OpeningTime).
		Set("hora_cierre", policy.ClosingTime).
		Set("actualizado_en", time.Now().UTC()).
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPolicyNotFound
	}

	return nil
}
