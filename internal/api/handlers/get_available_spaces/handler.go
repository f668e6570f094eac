package get_available_spaces

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/domain"
	getAvailableSpaces "github.com/m04kA/UDP-ReservationService/internal/usecase/get_available_spaces"
)

const (
	msgMissingRange     = "debe indicar los parametros start y end"
	msgInvalidDateTime  = "formato de fecha invalido, use YYYY-MM-DD HH:MM:SS"
	msgInvalidTimeRange = "el inicio debe ser anterior al fin"
	msgInvalidInput     = "datos de entrada invalidos"
)

// Handler обработчик поиска свободных пространств
type Handler struct {
	useCase GetAvailableSpacesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSpacesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/spaces/available?start=...&end=...&kind=sala
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startRaw := query.Get("start")
	endRaw := query.Get("end")
	if startRaw == "" || endRaw == "" {
		h.logger.Warn("GET /spaces/available - missing start or end parameter")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	start, err := time.Parse(domain.DateTimeFormat, startRaw)
	if err != nil {
		h.logger.Warn("GET /spaces/available - invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	end, err := time.Parse(domain.DateTimeFormat, endRaw)
	if err != nil {
		h.logger.Warn("GET /spaces/available - invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	req := getAvailableSpaces.Request{Start: start, End: end}
	if kind := query.Get("kind"); kind != "" {
		req.Kind = &kind
	}

	resp, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSpaces.ErrInvalidTimeRange):
			h.logger.Warn("GET /spaces/available - invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)
		case errors.Is(err, getAvailableSpaces.ErrInvalidInput):
			h.logger.Warn("GET /spaces/available - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /spaces/available - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
