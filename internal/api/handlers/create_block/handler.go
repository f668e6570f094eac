package create_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/UDP-ReservationService/internal/api/handlers"
	"github.com/m04kA/UDP-ReservationService/internal/api/middleware"
	createBlock "github.com/m04kA/UDP-ReservationService/internal/usecase/create_block"
)

const (
	msgInvalidBody      = "cuerpo de la solicitud invalido"
	msgInvalidDateTime  = "formato de fecha invalido, use YYYY-MM-DD HH:MM:SS"
	msgInvalidInput     = "datos de entrada invalidos"
	msgUserNotFound     = "usuario no encontrado"
	msgAccessDenied     = "solo un administrador puede crear bloqueos"
	msgSpaceNotFound    = "espacio no encontrado"
	msgSlotNotAvailable = "el horario entra en conflicto con una reserva existente"
)

// Handler обработчик создания блокировки
type Handler struct {
	useCase CreateBlockUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle обрабатывает POST /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /blocks - missing user id in context")
		handlers.RespondError(w, http.StatusUnauthorized, msgAccessDenied)
		return
	}

	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocks - failed to decode request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /blocks - failed to parse datetime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBlock.ErrInvalidInput):
			h.logger.Warn("POST /blocks - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, createBlock.ErrUserNotFound):
			h.logger.Warn("POST /blocks - user not found: %v", err)
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, createBlock.ErrAccessDenied):
			h.logger.Warn("POST /blocks - access denied: %v", err)
			handlers.RespondForbidden(w, msgAccessDenied)
		case errors.Is(err, createBlock.ErrSpaceNotFound):
			h.logger.Warn("POST /blocks - space not found: %v", err)
			handlers.RespondNotFound(w, msgSpaceNotFound)
		case errors.Is(err, createBlock.ErrSlotNotAvailable):
			h.logger.Warn("POST /blocks - slot not available: %v", err)
			handlers.RespondConflict(w, msgSlotNotAvailable)
		default:
			h.logger.Error("POST /blocks - internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - created block id=%d space=%d admin=%d", resp.ID, resp.SpaceID, resp.CreatedBy)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
