package close_incident

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/incidents"
)

const (
	msgInvalidID         = "identificador de incidencia invalido"
	msgIncidentNotFound  = "incidencia no encontrada"
	msgUserNotFound      = "usuario no encontrado"
	msgAccessDenied      = "solo un administrador puede cerrar incidencias"
	msgInvalidTransition = "la incidencia no puede ser cerrada en su estado actual"
)

// Handler обработчик закрытия инцидента
type Handler struct {
	service IncidentsService
	logger  Logger
}

func NewHandler(service IncidentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/incidents/{id}/close
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /incidents/{id}/close - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	incidentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || incidentID <= 0 {
		h.logger.Warn("POST /incidents/{id}/close - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.service.Close(r.Context(), userID, incidentID)
	if err != nil {
		switch {
		case errors.Is(err, incidents.ErrIncidentNotFound):
			h.logger.Warn("POST /incidents/%d/close - not found: %v", incidentID, err)
			handlers.RespondNotFound(w, msgIncidentNotFound)
		case errors.Is(err, incidents.ErrUserNotFound):
			h.logger.Warn("POST /incidents/%d/close - user not found: %v", incidentID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, incidents.ErrAccessDenied):
			h.logger.Warn("POST /incidents/%d/close - access denied: %v", incidentID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, incidents.ErrInvalidTransition):
			h.logger.Warn("POST /incidents/%d/close - invalid transition: %v", incidentID, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("POST /incidents/%d/close - internal error: %v", incidentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /incidents/%d/close - closed by admin=%d", resp.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
