package get_space_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/domain"
	"github.com/m04kA/UDP-ReservationService/internal/service/reservations"
	"github.com/m04kA/UDP-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidID        = "identificador de espacio invalido"
	msgMissingRange     = "debe indicar los parametros from y to"
	msgInvalidDateTime  = "formato de fecha invalido, use YYYY-MM-DD HH:MM:SS"
	msgInvalidTimeRange = "el inicio debe ser anterior al fin"
	msgSpaceNotFound    = "espacio no encontrado"
)

// Handler обработчик календаря занятости пространства
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

// Handle обрабатывает GET /api/v1/spaces/{id}/calendar?from=...&to=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || spaceID <= 0 {
		h.logger.Warn("GET /spaces/{id}/calendar - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	query := r.URL.Query()
	fromRaw := query.Get("from")
	toRaw := query.Get("to")
	if fromRaw == "" || toRaw == "" {
		h.logger.Warn("GET /spaces/%d/calendar - missing from or to parameter", spaceID)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	from, err := time.Parse(domain.DateTimeFormat, fromRaw)
	if err != nil {
		h.logger.Warn("GET /spaces/%d/calendar - invalid from: %v", spaceID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	to, err := time.Parse(domain.DateTimeFormat, toRaw)
	if err != nil {
		h.logger.Warn("GET /spaces/%d/calendar - invalid to: %v", spaceID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	resp, err := h.service.GetSpaceCalendar(r.Context(), &models.GetSpaceCalendarRequest{
		SpaceID: spaceID,
		From:    from,
		To:      to,
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidTimeRange):
			h.logger.Warn("GET /spaces/%d/calendar - invalid time range: %v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
		case errors.Is(err, reservations.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/%d/calendar - space not found: %v", spaceID, err)
			handlers.RespondNotFound(w, msgSpaceNotFound)
		default:
			h.logger.Error("GET /spaces/%d/calendar - internal error: %v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
