package resolve_incident

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/incidents"
	"github.com/m04kA/UDP-ReservationService/internal/service/incidents/models"
)

const (
	msgInvalidID         = "identificador de incidencia invalido"
	msgInvalidBody       = "cuerpo de la solicitud invalido"
	msgSolutionRequired  = "debe indicar la solucion aplicada"
	msgIncidentNotFound  = "incidencia no encontrada"
	msgUserNotFound      = "usuario no encontrado"
	msgAccessDenied      = "solo un administrador puede resolver incidencias"
	msgInvalidTransition = "la incidencia no puede ser resuelta en su estado actual"
)

// Handler обработчик разрешения инцидента
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

// Handle обрабатывает POST /api/v1/incidents/{id}/resolve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /incidents/{id}/resolve - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	incidentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || incidentID <= 0 {
		h.logger.Warn("POST /incidents/{id}/resolve - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.ResolveIncidentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /incidents/%d/resolve - failed to decode request: %v", incidentID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.ActorID = userID
	req.IncidentID = incidentID

	resp, err := h.service.Resolve(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, incidents.ErrSolutionRequired):
			h.logger.Warn("POST /incidents/%d/resolve - solution required: %v", incidentID, err)
			handlers.RespondBadRequest(w, msgSolutionRequired)
		case errors.Is(err, incidents.ErrInvalidInput):
			h.logger.Warn("POST /incidents/%d/resolve - invalid input: %v", incidentID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)
		case errors.Is(err, incidents.ErrIncidentNotFound):
			h.logger.Warn("POST /incidents/%d/resolve - not found: %v", incidentID, err)
			handlers.RespondNotFound(w, msgIncidentNotFound)
		case errors.Is(err, incidents.ErrUserNotFound):
			h.logger.Warn("POST /incidents/%d/resolve - user not found: %v", incidentID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, incidents.ErrAccessDenied):
			h.logger.Warn("POST /incidents/%d/resolve - access denied: %v", incidentID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, incidents.ErrInvalidTransition):
			h.logger.Warn("POST /incidents/%d/resolve - invalid transition: %v", incidentID, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		default:
			h.logger.Error("POST /incidents/%d/resolve - internal error: %v", incidentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /incidents/%d/resolve - resolved by admin=%d", resp.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
