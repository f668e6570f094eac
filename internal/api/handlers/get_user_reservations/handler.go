package get_user_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/reservations"
	"github.com/m04kA/UDP-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidID     = "identificador de usuario invalido"
	msgInvalidStatus = "estado de reserva invalido"
	msgUnauthorized  = "se requiere autenticacion"
	msgUserNotFound  = "usuario no encontrado"
	msgAccessDenied  = "no tiene permisos para ver las reservas de otro usuario"
)

// Handler обработчик получения резерваций пользователя
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

// Handle обрабатывает GET /api/v1/users/{id}/reservations?status=pendiente
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/reservations - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	targetID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || targetID <= 0 {
		h.logger.Warn("GET /users/{id}/reservations - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	req := models.GetUserReservationsRequest{
		ActorID: actorID,
		UserID:  targetID,
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.GetUserReservations(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /users/%d/reservations - invalid status: %v", targetID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)
		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("GET /users/%d/reservations - user not found: %v", targetID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /users/%d/reservations - access denied: %v", targetID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /users/%d/reservations - internal error: %v", targetID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
