package update_policy_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	"github.com/m04kA/UDP-ReservationService/internal/service/policy"
	"github.com/m04kA/UDP-ReservationService/internal/service/policy/models"
)

const (
	msgInvalidBody    = "cuerpo de la solicitud invalido"
	msgInvalidInput   = "datos de configuracion invalidos"
	msgUserNotFound   = "usuario no encontrado"
	msgAccessDenied   = "solo un administrador puede modificar la configuracion"
	msgPolicyNotFound = "configuracion no encontrada"
)

// Handler обработчик изменения политики резервирования
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

// Handle обрабатывает PATCH /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /config - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req models.UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /config - failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	req.ActorID = userID

	resp, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("PATCH /config - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, policy.ErrUserNotFound):
			h.logger.Warn("PATCH /config - user not found: %v", err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("PATCH /config - access denied: %v", err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, policy.ErrPolicyNotFound):
			h.logger.Warn("PATCH /config - policy not found: %v", err)
			handlers.RespondNotFound(w, msgPolicyNotFound)
		default:
			h.logger.Error("PATCH /config - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /config - updated by admin=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
