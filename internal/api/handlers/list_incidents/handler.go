package list_incidents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/service/incidents"
	"github.com/m04kA/UDP-ReservationService/internal/service/incidents/models"
)

const (
	msgInvalidSpaceID = "identificador de espacio invalido"
	msgInvalidInput   = "datos de entrada invalidos"
)

// Handler обработчик списка инцидентов
type Handler struct {
	service IncidentsService
	logger  Logger
}

func NewHandler(service IncidentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/incidents?spaceId=1&status=abierta
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var req models.ListIncidentsRequest
	if raw := query.Get("spaceId"); raw != "" {
		spaceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || spaceID <= 0 {
			h.logger.Warn("GET /incidents - invalid spaceId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSpaceID)
			return
		}
		req.SpaceID = &spaceID
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	resp, err := h.service.List(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, incidents.ErrInvalidInput):
			h.logger.Warn("GET /incidents - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("GET /incidents - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
