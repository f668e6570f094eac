package approve_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	approveReservation "github.com/m04kA/UDP-ReservationService/internal/usecase/approve_reservation"
)

const (
	msgInvalidID           = "identificador de reserva invalido"
	msgReservationNotFound = "reserva no encontrada"
	msgUserNotFound        = "usuario no encontrado"
	msgAccessDenied        = "solo un administrador puede aprobar reservas"
	msgAlreadyDecided      = "la reserva ya fue resuelta"
	msgSlotConflict        = "el horario entra en conflicto con otra reserva aprobada"
)

// Handler обработчик одобрения заявки
type Handler struct {
	useCase ApproveReservationUseCase
	logger  Logger
}

func NewHandler(useCase ApproveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/reservations/{id}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/{id}/approve - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	reservationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || reservationID <= 0 {
		h.logger.Warn("POST /reservations/{id}/approve - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &approveReservation.Request{
		ActorID:       userID,
		ReservationID: reservationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations/%d/approve - invalid input: %v", reservationID, err)
			handlers.RespondBadRequest(w, msgInvalidID)
		case errors.Is(err, approveReservation.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/%d/approve - not found: %v", reservationID, err)
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, approveReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations/%d/approve - user not found: %v", reservationID, err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, approveReservation.ErrAccessDenied):
			h.logger.Warn("POST /reservations/%d/approve - access denied: %v", reservationID, err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, approveReservation.ErrAlreadyDecided):
			h.logger.Warn("POST /reservations/%d/approve - already decided: %v", reservationID, err)
			handlers.RespondConflict(w, msgAlreadyDecided)
		case errors.Is(err, approveReservation.ErrSlotConflict):
			h.logger.Warn("POST /reservations/%d/approve - slot conflict: %v", reservationID, err)
			handlers.RespondConflict(w, msgSlotConflict)
		default:
			h.logger.Error("POST /reservations/%d/approve - internal error: %v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/%d/approve - approved by admin=%d", resp.ID, resp.ApprovedBy)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
