package get_policy_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/service/policy"
)

const (
	msgPolicyNotFound = "configuracion no encontrada"
)

// Handler обработчик получения политики резервирования
type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle обрабатывает GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrPolicyNotFound):
			h.logger.Warn("GET /config - policy not found: %v", err)
			handlers.RespondNotFound(w, msgPolicyNotFound)
		default:
			h.logger.Error("GET /config - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
