package create_space

import (
	"errors"
	"net/http"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces/models"
)

const (
	msgInvalidBody   = "cuerpo de la solicitud invalido"
	msgInvalidInput  = "datos de entrada invalidos"
	msgUserNotFound  = "usuario no encontrado"
	msgAccessDenied  = "solo un administrador puede crear espacios"
	msgDuplicateName = "ya existe un espacio con ese nombre"
)

// Handler обработчик создания пространства
type Handler struct {
	service SpacesService
	logger  Logger
}

func NewHandler(service SpacesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/spaces
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /spaces - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req models.CreateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spaces - failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.ActorID = userID

	resp, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("POST /spaces - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, spaces.ErrUserNotFound):
			h.logger.Warn("POST /spaces - user not found: %v", err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("POST /spaces - access denied: %v", err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, spaces.ErrDuplicateName):
			h.logger.Warn("POST /spaces - duplicate name: %v", err)
			handlers.RespondConflict(w, msgDuplicateName)
		default:
			h.logger.Error("POST /spaces - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spaces - created space id=%d name=%q", resp.ID, resp.Name)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
