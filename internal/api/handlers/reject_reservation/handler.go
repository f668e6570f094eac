package reject_reservation

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
	msgInvalidReason       = "el motivo del rechazo excede el largo permitido"
	msgReservationNotFound = "reserva no encontrada"
	msgUserNotFound        = "usuario no encontrado"
	msgAccessDenied        = "solo un administrador puede rechazar reservas"
	msgAlreadyDecided      = "la reserva ya fue resuelta"
)

// Handler обработчик отклонения заявки
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

// Handle обрабатывает POST /api/v1/reservations/{id}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/reject - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("POST /reservations/{id}/reject - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	// Тело опционально: отклонение без указания причины допустимо
	var req models.RejectReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /reservations/%d/reject - failed to decode request: %v", reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.ActorID = userID
	req.ReservationID = reservationID

	resp, err := h.service.Reject(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/%d/reject - invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidReason)
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/%d/reject - not found: %v", reservationID, err)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservations.ErrUserNotFound):
			h.logger.Warn("POST /reservations/%d/reject - user not found: %v", reservationID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("POST /reservations/%d/reject - access denied: %v", reservationID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, reservations.ErrAlreadyDecided):
			h.logger.Warn("POST /reservations/%d/reject - already decided: %v", reservationID, err)
			handlers.RespondConflict(w, msgAlreadyDecided)
		default:
			h.logger.Error("POST /reservations/%d/reject - internal error: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/%d/reject - rejected by admin=%d", resp.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
