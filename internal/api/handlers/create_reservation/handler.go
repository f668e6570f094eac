package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/UDP-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidBody         = "cuerpo de la solicitud invalido"
	msgInvalidDateTime     = "formato de fecha invalido, use YYYY-MM-DD HH:MM:SS"
	msgInvalidInput        = "datos de entrada invalidos"
	msgUserNotFound        = "usuario no encontrado"
	msgAccessDenied        = "no tiene permisos para crear reservas"
	msgSpaceNotFound       = "espacio no encontrado"
	msgSpaceInactive       = "el espacio no esta disponible para reservas"
	msgStartInPast         = "la fecha de inicio ya paso"
	msgDateTooFar          = "la fecha excede la ventana de anticipacion permitida"
	msgDurationTooLong     = "la duracion excede el maximo permitido"
	msgOutsideHours        = "el horario esta fuera del horario de funcionamiento"
	msgTooManyReservations = "ha alcanzado el limite de reservas activas"
	msgSlotNotAvailable    = "el horario solicitado no esta disponible"
)

// Handler обработчик создания резервации
type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - failed to parse datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - user not found: %v", err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, createReservation.ErrAccessDenied):
			h.logger.Warn("POST /reservations - access denied: %v", err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, createReservation.ErrSpaceNotFound):
			h.logger.Warn("POST /reservations - space not found: %v", err)
			handlers.RespondNotFound(w, msgSpaceNotFound)
		case errors.Is(err, createReservation.ErrSpaceInactive):
			h.logger.Warn("POST /reservations - space inactive: %v", err)
			handlers.RespondConflict(w, msgSpaceInactive)
		case errors.Is(err, createReservation.ErrStartInPast):
			h.logger.Warn("POST /reservations - start in past: %v", err)
			handlers.RespondBadRequest(w, msgStartInPast)
		case errors.Is(err, createReservation.ErrDateTooFarInFuture):
			h.logger.Warn("POST /reservations - date too far: %v", err)
			handlers.RespondBadRequest(w, msgDateTooFar)
		case errors.Is(err, createReservation.ErrDurationTooLong):
			h.logger.Warn("POST /reservations - duration too long: %v", err)
			handlers.RespondBadRequest(w, msgDurationTooLong)
		case errors.Is(err, createReservation.ErrOutsideOperatingHours):
			h.logger.Warn("POST /reservations - outside operating hours: %v", err)
			handlers.RespondBadRequest(w, msgOutsideHours)
		case errors.Is(err, createReservation.ErrTooManyActiveReservations):
			h.logger.Warn("POST /reservations - too many active reservations: %v", err)
			handlers.RespondConflict(w, msgTooManyReservations)
		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - slot not available: %v", err)
			handlers.RespondConflict(w, msgSlotNotAvailable)
		default:
			h.logger.Error("POST /reservations - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - created reservation id=%d user=%d space=%d", resp.ID, resp.UserID, resp.SpaceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
