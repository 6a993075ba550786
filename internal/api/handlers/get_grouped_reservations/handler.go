package get_grouped_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
)

const (
	msgUnauthorized = "пользователь не авторизован"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/grouped
// Бронирования на один стол за один день объединены в одну запись
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/grouped - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	groups, err := h.service.ListGrouped(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /reservations/grouped - Failed to group reservations: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/grouped - Groups retrieved successfully: user_id=%s, count=%d", userID, len(groups))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(groups))
}
