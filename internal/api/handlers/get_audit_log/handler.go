package get_audit_log

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/internal/service/audit"
)

const (
	msgInvalidSince = "formato de fecha invalido, use YYYY-MM-DD HH:MM:SS"
	msgInvalidLimit = "limite invalido"
	msgUserNotFound = "usuario no encontrado"
	msgAccessDenied = "solo un administrador puede consultar el registro de auditoria"
)

// Handler обработчик чтения журнала аудита
type Handler struct {
	service AuditService
	logger  Logger
}

func NewHandler(service AuditService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/audit?table=reservas&since=...&limit=50
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /audit - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	query := r.URL.Query()

	var filter domain.AuditFilter
	if table := query.Get("table"); table != "" {
		filter.Table = &table
	}
	if raw := query.Get("since"); raw != "" {
		since, err := time.Parse(domain.DateTimeFormat, raw)
		if err != nil {
			h.logger.Warn("GET /audit - invalid since: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSince)
			return
		}
		filter.Since = &since
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			h.logger.Warn("GET /audit - invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		filter.Limit = limit
	}

	entries, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		switch {
		case errors.Is(err, audit.ErrUserNotFound):
			h.logger.Warn("GET /audit - user not found: %v", err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, audit.ErrAccessDenied):
			h.logger.Warn("GET /audit - access denied: %v", err)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /audit - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainEntries(entries))
}
