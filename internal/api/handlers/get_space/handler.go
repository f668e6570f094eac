package get_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/service/spaces"
)

const (
	msgInvalidID     = "identificador de espacio invalido"
	msgSpaceNotFound = "espacio no encontrado"
)

// Handler обработчик получения пространства
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

// Handle обрабатывает GET /api/v1/spaces/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || spaceID <= 0 {
		h.logger.Warn("GET /spaces/{id} - invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	resp, err := h.service.GetByID(r.Context(), spaceID)
	if err != nil {
		switch {
		case errors.Is(err, spaces.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/%d - not found: %v", spaceID, err)
			handlers.RespondNotFound(w, msgSpaceNotFound)
		default:
			h.logger.Error("GET /spaces/%d - internal error: %v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
