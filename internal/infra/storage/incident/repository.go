package incident

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

// Repository репозиторий для работы с инцидентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инцидентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var incidentColumns = []string{
	"id",
	"espacio_id",
	"tipo",
	"descripcion",
	"estado",
	"reportada_por",
	"resuelta_por",
	"solucion",
	"reportada_en",
	"resuelta_en",
}

// Create создает новый инцидент в статусе abierta
func (r *Repository) Create(ctx context.Context, incident *domain.Incident) (*domain.Incident, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if incident.ReportedAt.IsZero() {
		incident.ReportedAt = time.Now().UTC()
	}

	query, args, err := sqlbuilder.Insert("incidencias").
		Columns("espacio_id", "tipo", "descripcion", "estado", "reportada_por", "reportada_en").
		Values(incident.SpaceID, incident.Kind, incident.Description, incident.Status, incident.ReportedBy, incident.ReportedAt).
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

	incident.ID = id
	return incident, nil
}

// GetByID получает инцидент по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Incident, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Select(incidentColumns...).
		From("incidencias").
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

	incidents, err := r.scanIncidents(rows)
	if err != nil {
		return nil, err
	}
	if len(incidents) == 0 {
		return nil, ErrIncidentNotFound
	}

	return incidents[0], nil
}

// List получает список инцидентов с фильтрацией по пространству и статусу
func (r *Repository) List(ctx context.Context, filter domain.IncidentFilter) ([]*domain.Incident, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := sqlbuilder.Select(incidentColumns...).
		From("incidencias").
		OrderBy("reportada_en DESC")

	if filter.SpaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"espacio_id": *filter.SpaceID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"estado": *filter.Status})
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

	return r.scanIncidents(rows)
}

// UpdateStatus обновляет статус инцидента
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.IncidentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("incidencias").
		Set("estado", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "UpdateStatus")
}

// Resolve переводит инцидент в статус resuelta с описанием решения
func (r *Repository) Resolve(ctx context.Context, id int64, resolverID int64, solution string, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := sqlbuilder.Update("incidencias").
		Set("estado", domain.IncidentResolved).
		Set("resuelta_por", resolverID).
		Set("solucion", solution).
		Set("resuelta_en", at).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Resolve - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "Resolve")
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
		return ErrIncidentNotFound
	}

	return nil
}

// scanIncidents сканирует результаты запроса в слайс инцидентов
func (r *Repository) scanIncidents(rows *sql.Rows) ([]*domain.Incident, error) {
	incidents := make([]*domain.Incident, 0)

	for rows.Next() {
		var inc domain.Incident
		var resolvedBy sql.NullInt64
		var solution sql.NullString
		var reportedAt, resolvedAt sql.NullTime

		err := rows.Scan(
			&inc.ID,
			&inc.SpaceID,
			&inc.Kind,
			&inc.Description,
			&inc.Status,
			&inc.ReportedBy,
			&resolvedBy,
			&solution,
			&reportedAt,
			&resolvedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanIncidents - scan row: %v", ErrScanRow, err)
		}

		if resolvedBy.Valid {
			inc.ResolvedBy = &resolvedBy.Int64
		}
		if solution.Valid {
			inc.Solution = &solution.String
		}
		inc.ReportedAt = reportedAt.Time
		if resolvedAt.Valid {
			inc.ResolvedAt = &resolvedAt.Time
		}

		incidents = append(incidents, &inc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanIncidents - rows error: %v", ErrScanRow, err)
	}

	return incidents, nil
}
