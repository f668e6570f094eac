package deactivate_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces"
)

const (
	msgInvalidID     = "identificador de espacio invalido"
	msgUserNotFound  = "usuario no encontrado"
	msgAccessDenied  = "solo un administrador puede desactivar espacios"
	msgSpaceNotFound = "espacio no encontrado"
)

// Handler обработчик деактивации пространства
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

// Handle обрабатывает DELETE /api/v1/spaces/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /spaces/{id} - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	spaceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || spaceID <= 0 {
		h.logger.Warn("DELETE /spaces/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Deactivate(r.Context(), userID, spaceID); err != nil {
		switch {
		case errors.Is(err, spaces.ErrUserNotFound):
			h.logger.Warn("DELETE /spaces/%d - user not found: %v", spaceID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, spaces.ErrAccessDenied):
			h.logger.Warn("DELETE /spaces/%d - access denied: %v", spaceID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("DELETE /spaces/%d - not found: %v", spaceID, err)
			handlers.RespondNotFound(w, msgSpaceNotFound)
		default:
			h.logger.Error("DELETE /spaces/%d - internal error: %v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /spaces/%d - deactivated by admin=%d", spaceID, userID)
	w.WriteHeader(http.StatusNoContent)
}
