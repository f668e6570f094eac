package cancel_reservation

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
	msgInvalidID           = "identificador de reserva invalido"
	msgInvalidBody         = "cuerpo de la solicitud invalido"
	msgUnauthorized        = "se requiere autenticacion"
	msgReservationNotFound = "reserva no encontrada"
	msgUserNotFound        = "usuario no encontrado"
	msgAccessDenied        = "no tiene permisos para cancelar esta reserva"
	msgCannotCancel        = "la reserva no puede ser cancelada en su estado actual"
)

// Handler обработчик отмены резервации
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

// Handle обрабатывает POST /api/v1/reservations/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/cancel - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("POST /reservations/{id}/cancel - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	// Тело запроса опционально: причина отмены может отсутствовать
	var req models.CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /reservations/%d/cancel - failed to decode request: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.ActorID = userID
	req.ReservationID = reservationID

	resp, err := h.service.Cancel(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/%d/cancel - invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidBody)
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/%d/cancel - not found: %v", reservationID, err)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("POST /reservations/%d/cancel - user not found: %v", reservationID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /reservations/%d/cancel - access denied: %v", reservationID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("POST /reservations/%d/cancel - cannot cancel: %v", reservationID, err)
			handlers.RespondConflict(w, msgCannotCancel)
		default:
			h.logger.Error("POST /reservations/%d/cancel - internal error: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/%d/cancel - cancelled by user=%d", resp.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
