package apply_incident_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	applyIncidentBlock "github.com/m04kA/UDP-ReservationService/internal/usecase/apply_incident_block"
)

const (
	msgInvalidID         = "identificador de incidencia invalido"
	msgInvalidBody       = "cuerpo de la solicitud invalido"
	msgInvalidDateTime   = "formato de fecha invalido, use YYYY-MM-DD HH:MM:SS"
	msgInvalidInput      = "datos de entrada invalidos"
	msgIncidentNotFound  = "incidencia no encontrada"
	msgUserNotFound      = "usuario no encontrado"
	msgAccessDenied      = "solo un administrador puede bloquear por incidencia"
	msgInvalidTransition = "la incidencia ya fue resuelta o cerrada"
	msgAlreadyBlocked    = "el intervalo ya esta cubierto por otro bloqueo"
)

// Handler обработчик блокировки пространства по инциденту
type Handler struct {
	useCase ApplyIncidentBlockUseCase
	logger  Logger
}

func NewHandler(useCase ApplyIncidentBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/incidents/{id}/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /incidents/{id}/block - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	incidentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || incidentID <= 0 {
		h.logger.Warn("POST /incidents/{id}/block - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req ApplyIncidentBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /incidents/%d/block - failed to decode request: %v", incidentID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID, incidentID)
	if err != nil {
		h.logger.Warn("POST /incidents/%d/block - failed to parse datetime: %v", incidentID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, applyIncidentBlock.ErrInvalidInput):
			h.logger.Warn("POST /incidents/%d/block - invalid input: %v", incidentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, applyIncidentBlock.ErrIncidentNotFound):
			h.logger.Warn("POST /incidents/%d/block - incident not found: %v", incidentID, err)
			handlers.RespondNotFound(w, msgIncidentNotFound)
		case errors.Is(err, applyIncidentBlock.ErrUserNotFound):
			h.logger.Warn("POST /incidents/%d/block - user not found: %v", incidentID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, applyIncidentBlock.ErrAccessDenied):
			h.logger.Warn("POST /incidents/%d/block - access denied: %v", incidentID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, applyIncidentBlock.ErrInvalidTransition):
			h.logger.Warn("POST /incidents/%d/block - invalid transition: %v", incidentID, err)
			handlers.RespondConflict(w, msgInvalidTransition)
		case errors.Is(err, applyIncidentBlock.ErrSlotNotAvailable):
			h.logger.Warn("POST /incidents/%d/block - interval already blocked: %v", incidentID, err)
			handlers.RespondConflict(w, msgAlreadyBlocked)
		default:
			h.logger.Error("POST /incidents/%d/block - internal error: %v", incidentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /incidents/%d/block - created block id=%d, cancelled %d reservations",
		resp.IncidentID, resp.BlockID, len(resp.CancelledReservations))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
