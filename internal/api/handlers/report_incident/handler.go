package report_incident

import (
	"errors"
	"net/http"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/incidents"
	"github.com/m04kA/UDP-ReservationService/internal/service/incidents/models"
)

const (
	msgInvalidBody   = "cuerpo de la solicitud invalido"
	msgInvalidInput  = "datos de entrada invalidos"
	msgUserNotFound  = "usuario no encontrado"
	msgAccessDenied  = "no tiene permisos para reportar incidencias"
	msgSpaceNotFound = "espacio no encontrado"
)

// Handler обработчик регистрации инцидента
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

// Handle обрабатывает POST /api/v1/incidents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /incidents - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req models.ReportIncidentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /incidents - failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.ActorID = userID

	resp, err := h.service.Report(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, incidents.ErrInvalidInput):
			h.logger.Warn("POST /incidents - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, incidents.ErrUserNotFound):
			h.logger.Warn("POST /incidents - user not found: %v", err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, incidents.ErrAccessDenied):
			h.logger.Warn("POST /incidents - access denied: %v", err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, incidents.ErrSpaceNotFound):
			h.logger.Warn("POST /incidents - space not found: %v", err)
			handlers.RespondNotFound(w, msgSpaceNotFound)
		default:
			h.logger.Error("POST /incidents - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /incidents - reported incident id=%d space=%d by user=%d", resp.ID, resp.SpaceID, userID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
