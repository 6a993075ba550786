package get_user_reservations

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

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservations, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to list reservations: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Reservations retrieved successfully: user_id=%s, count=%d", userID, len(reservations))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(reservations))
}
