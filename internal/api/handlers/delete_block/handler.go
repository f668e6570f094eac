package delete_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/reservations"
)

const (
	msgInvalidID     = "identificador de bloqueo invalido"
	msgBlockNotFound = "bloqueo no encontrado"
	msgUserNotFound  = "usuario no encontrado"
	msgAccessDenied  = "solo un administrador puede eliminar bloqueos"
	msgNotABlock     = "la reserva indicada no es un bloqueo"
)

// Handler обработчик удаления блокировки
type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает DELETE /api/v1/blocks/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /blocks/{id} - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	blockID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || blockID <= 0 {
		h.logger.Warn("DELETE /blocks/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteBlock(r.Context(), userID, blockID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /blocks/%d - not found: %v", blockID, err)
			handlers.RespondNotFound(w, msgBlockNotFound)
		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("DELETE /blocks/%d - user not found: %v", blockID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /blocks/%d - access denied: %v", blockID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, reservations.ErrNotABlock):
			h.logger.Warn("DELETE /blocks/%d - not a block: %v", blockID, err)
			handlers.RespondConflict(w, msgNotABlock)
		default:
			h.logger.Error("DELETE /blocks/%d - internal error: %v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocks/%d - removed by admin=%d", blockID, userID)
	w.WriteHeader(http.StatusNoContent)
}
