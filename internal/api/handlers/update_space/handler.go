package update_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces/models"
)

const (
	msgInvalidID     = "identificador de espacio invalido"
	msgInvalidBody   = "cuerpo de la solicitud invalido"
	msgInvalidInput  = "datos de entrada invalidos"
	msgUserNotFound  = "usuario no encontrado"
	msgAccessDenied  = "solo un administrador puede modificar espacios"
	msgSpaceNotFound = "espacio no encontrado"
	msgDuplicateName = "ya existe un espacio con ese nombre"
)

// Handler обработчик обновления пространства
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

// Handle обрабатывает PATCH /api/v1/spaces/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /spaces/{id} - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	spaceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || spaceID <= 0 {
		h.logger.Warn("PATCH /spaces/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /spaces/%d - failed to decode request: %v", spaceID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.ActorID = userID
	req.SpaceID = spaceID

	resp, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("PATCH /spaces/%d - invalid input: %v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, spaces.ErrUserNotFound):
			h.logger.Warn("PATCH /spaces/%d - user not found: %v", spaceID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("PATCH /spaces/%d - access denied: %v", spaceID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("PATCH /spaces/%d - not found: %v", spaceID, err)
			handlers.RespondNotFound(w, msgSpaceNotFound)
		case errors.Is(err, spaces.ErrDuplicateName):
			h.logger.Warn("PATCH /spaces/%d - duplicate name: %v", spaceID, err)
			handlers.RespondConflict(w, msgDuplicateName)
		default:
			h.logger.Error("PATCH /spaces/%d - internal error: %v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /spaces/%d - updated by admin=%d", resp.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
