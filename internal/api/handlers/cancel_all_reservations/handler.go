package cancel_all_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations"
)

const (
	msgUnauthorized   = "пользователь не авторизован"
	msgNoReservations  = "у пользователя нет бронирований"
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

// Handle DELETE /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reservations - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	cancelled, err := h.service.CancelAll(r.Context(), userID)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("DELETE /reservations - No reservations: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNoReservations)
			return
		}
		h.logger.Error("DELETE /reservations - Failed to cancel reservations: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations - All reservations cancelled: user_id=%s, count=%d", userID, cancelled)
	handlers.RespondJSON(w, http.StatusOK, &CancelAllResponse{Cancelled: cancelled})
}
