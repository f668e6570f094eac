package list_spaces

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces/models"
)

const (
	msgInvalidInput = "datos de entrada invalidos"
)

// Handler обработчик списка пространств
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

// Handle обрабатывает GET /api/v1/spaces?kind=sala&includeInactive=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var req models.ListSpacesRequest
	if kind := query.Get("kind"); kind != "" {
		req.Kind = &kind
	}
	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /spaces - invalid includeInactive: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		req.IncludeInactive = includeInactive
	}

	resp, err := h.service.List(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrInvalidInput):
			h.logger.Warn("GET /spaces - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /spaces - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
