package space

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UDP-ReservationService/pkg/sqlbuilder"
)

// Repository репозиторий для работы с пространствами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пространств
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var spaceColumns = []string{
	"id",
	"nombre",
	"tipo",
	"capacidad",
	"ubicacion",
	"descripcion",
	"activo",
	"creado_en",
	"actualizado_en",
}

// Create создает новое пространство
func (r *Repository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	description := ""
	if space.Description != nil {
		description = *space.Description
	}

	query, args, err := sqlbuilder.Insert("espacios").
		Columns("nombre", "tipo", "capacidad", "ubicacion", "descripcion", "activo", "creado_en", "actualizado_en").
		Values(space.Name, space.Kind, space.Capacity, space.Location, description, space.Active, now, now).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - get last insert id: %v", ErrExecQuery, err)
	}

	space.ID = id
	space.CreatedAt = now
	space.UpdatedAt = now

	return space, nil
}

// GetByID получает пространство по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(spaceColumns...).
		From("espacios").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Space
	var description sql.NullString
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Kind,
		&s.Capacity,
		&s.Location,
		&description,
		&s.Active,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	if description.Valid && description.String != "" {
		s.Description = &description.String
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// List получает список пространств с фильтрацией по типу и активности
func (r *Repository) List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select(spaceColumns...).
		From("espacios").
		OrderBy("nombre ASC")

	// Фильтрация по типу, если указан
	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"tipo": *filter.Kind})
	}

	// По умолчанию возвращаем только активные пространства
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"activo": true})
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

	return r.scanSpaces(rows)
}

// Update обновляет атрибуты пространства
func (r *Repository) Update(ctx context.Context, space *domain.Space) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	description := ""
	if space.Description != nil {
		description = *space.Description
	}

	query, args, err := sqlbuilder.Update("espacios").
		Set("nombre", space.Name).
		Set("tipo", space.Kind).
		Set("capacidad", space.Capacity).
		Set("ubicacion", space.Location).
		Set("descripcion", description).
		Set("actualizado_en", time.Now().UTC()).
		Where(squirrel.Eq{"id": space.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// SetActive меняет признак активности пространства (мягкое удаление)
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("espacios").
		Set("activo", active).
		Set("actualizado_en", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// scanSpaces сканирует результаты запроса в слайс пространств
func (r *Repository) scanSpaces(rows *sql.Rows) ([]*domain.Space, error) {
	spaces := make([]*domain.Space, 0)

	for rows.Next() {
		var s domain.Space
		var description sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Kind,
			&s.Capacity,
			&s.Location,
			&description,
			&s.Active,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSpaces - scan row: %v", ErrScanRow, err)
		}

		if description.Valid && description.String != "" {
			s.Description = &description.String
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		spaces = append(spaces, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSpaces - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// isUniqueViolation распознает нарушение уникального индекса SQLite
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
