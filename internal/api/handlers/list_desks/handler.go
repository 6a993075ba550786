package list_desks

import (
	"net/http"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
)

const (
	msgUnauthorized = "пользователь не авторизован"
)

type Handler struct {
	service DeskService
	logger  Logger
}

func NewHandler(service DeskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/desks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /desks - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	desks, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /desks - Failed to list desks: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /desks - Desks retrieved successfully: user_id=%s, count=%d", userID, len(desks))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(desks))
}
