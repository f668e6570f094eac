package reservation

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

// Repository репозиторий для работы с резервациями и блокировками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория резерваций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var reservationColumns = []string{
	"id",
	"usuario_id",
	"espacio_id",
	"fecha_inicio",
	"fecha_fin",
	"estado",
	"tipo",
	"motivo",
	"motivo_rechazo",
	"recurrente",
	"patron_recurrencia",
	"aprobada_por",
	"aprobada_en",
	"solicitada_en",
	"actualizado_en",
}

// Create создает новую резервацию или блокировку.
// Если в контексте передана активная транзакция, использует её.
// Создание всегда выполняется внутри сериализуемой транзакции вместе
// с проверкой пересечений, чтобы исключить гонку двух заявок на один слот.
func (r *Repository) Create(ctx context.Context, rsv *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	if rsv.RequestedAt.IsZero() {
		rsv.RequestedAt = now
	}
	rsv.UpdatedAt = now

	query, args, err := sqlbuilder.Insert("reservas").
		Columns(
			"usuario_id",
			"espacio_id",
			"fecha_inicio",
			"fecha_fin",
			"estado",
			"tipo",
			"motivo",
			"motivo_rechazo",
			"recurrente",
			"patron_recurrencia",
			"aprobada_por",
			"aprobada_en",
			"solicitada_en",
			"actualizado_en",
		).
		Values(
			rsv.UserID,
			rsv.SpaceID,
			rsv.Start,
			rsv.End,
			rsv.Status,
			rsv.Kind,
			rsv.Reason,
			rsv.RejectionReason,
			rsv.Recurring,
			rsv.RecurrencePattern,
			rsv.ApprovedBy,
			rsv.ApprovedAt,
			rsv.RequestedAt,
			rsv.UpdatedAt,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - get last insert id: %v", ErrExecQuery, err)
	}

	rsv.ID = id
	return rsv, nil
}

// GetByID получает резервацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return nil, ErrReservationNotFound
	}

	return reservations[0], nil
}

// GetByUserID получает список резерваций пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"usuario_id": userID}).
		OrderBy("fecha_inicio DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetBySpaceInRange получает резервации пространства, пересекающиеся
// с полуоткрытым интервалом [start, end), с фильтрацией по статусам.
// Интервалы, соприкасающиеся границами, пересечением не считаются.
func (r *Repository) GetBySpaceInRange(
	ctx context.Context,
	spaceID int64,
	start, end time.Time,
	statuses []domain.ReservationStatus,
	excludeID *int64,
) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select(reservationColumns...).
		From("reservas").
		Where(squirrel.Eq{"espacio_id": spaceID}).
		Where(squirrel.Lt{"fecha_inicio": end}).
		Where(squirrel.Gt{"fecha_fin": start}).
		OrderBy("fecha_inicio ASC")

	if len(statuses) > 0 {
		statusStrings := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": statusStrings})
	}

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpaceInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySpaceInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// CountActiveByUser считает активные (pendiente, aprobada) резервации
// пользователя типа normal. Используется для проверки лимита.
func (r *Repository) CountActiveByUser(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	statusStrings := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statusStrings[i] = string(s)
	}

	query, args, err := sqlbuilder.Select("COUNT(*)").
		From("reservas").
		Where(squirrel.Eq{"usuario_id": userID}).
		Where(squirrel.Eq{"estado": statusStrings}).
		Where(squirrel.Eq{"tipo": domain.KindNormal}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByUser - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByUser - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Approve переводит резервацию в статус aprobada с отметкой администратора
func (r *Repository) Approve(ctx context.Context, id int64, adminID int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("reservas").
		Set("estado", domain.StatusApproved).
		Set("aprobada_por", adminID).
		Set("aprobada_en", at).
		Set("actualizado_en", at).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"estado": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Approve - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "Approve")
}

// Reject переводит резервацию в статус rechazada с указанием причины
func (r *Repository) Reject(ctx context.Context, id int64, adminID int64, reason string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("reservas").
		Set("estado", domain.StatusRejected).
		Set("motivo_rechazo", reason).
		Set("aprobada_por", adminID).
		Set("actualizado_en", at).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"estado": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reject - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "Reject")
}

// Cancel переводит резервацию в статус cancelada с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := sqlbuilder.Update("reservas").
		Set("estado", domain.StatusCancelled).
		Set("actualizado_en", at).
		Where(squirrel.Eq{"id": id})

	if reason != nil {
		updateBuilder = updateBuilder.Set("motivo_rechazo", *reason)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "Cancel")
}

// UpdateStatus обновляет статус резервации без дополнительных полей
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("reservas").
		Set("estado", status).
		Set("actualizado_en", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "UpdateStatus")
}

// DeleteBlock физически удаляет блокировку.
// Обычные резервации не удаляются, только блокировки администратора.
func (r *Repository) DeleteBlock(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Delete("reservas").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"estado": domain.StatusBlock}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "DeleteBlock")
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanReservations сканирует результаты запроса в слайс резерваций
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var rsv domain.Reservation
		var reason, rejectionReason, recurrencePattern sql.NullString
		var approvedBy sql.NullInt64
		var approvedAt sql.NullTime
		var requestedAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rsv.ID,
			&rsv.UserID,
			&rsv.SpaceID,
			&rsv.Start,
			&rsv.End,
			&rsv.Status,
			&rsv.Kind,
			&reason,
			&rejectionReason,
			&rsv.Recurring,
			&recurrencePattern,
			&approvedBy,
			&approvedAt,
			&requestedAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		if reason.Valid {
			rsv.Reason = &reason.String
		}
		if rejectionReason.Valid {
			rsv.RejectionReason = &rejectionReason.String
		}
		if recurrencePattern.Valid {
			rsv.RecurrencePattern = &recurrencePattern.String
		}
		if approvedBy.Valid {
			rsv.ApprovedBy = &approvedBy.Int64
		}
		if approvedAt.Valid {
			rsv.ApprovedAt = &approvedAt.Time
		}
		rsv.RequestedAt = requestedAt.Time
		rsv.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &rsv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
