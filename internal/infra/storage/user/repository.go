package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/UDP-ReservationService/pkg/sqlbuilder"
)

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var userColumns = []string{
	"id",
	"rut",
	"email",
	"nombre",
	"rol",
	"activo",
	"creado_en",
	"actualizado_en",
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(userColumns...).
		From("usuarios").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByRUT получает пользователя по RUT
func (r *Repository) GetByRUT(ctx context.Context, rut string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(userColumns...).
		From("usuarios").
		Where(squirrel.Eq{"rut": rut}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByRUT - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByRUT")
}

func (r *Repository) scanUser(row *sql.Row, op string) (*domain.User, error) {
	var u domain.User
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&u.ID,
		&u.RUT,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.Active,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return &u, nil
}
