package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations"
)

const (
	msgUnauthorized         = "пользователь не авторизован"
	msgInvalidReservationID = "некорректный ID бронирования"
	msgReservationNotFound  = "бронирование не найдено"
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

// Handle DELETE /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /reservations/{id} - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID, err := handlers.ParseID(mux.Vars(r)["reservationId"])
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), userID, reservationID); err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%s, user_id=%s",
				reservationID, userID)
			handlers.RespondNotFound(w, msgReservationNotFound)
			return
		}
		h.logger.Error("DELETE /reservations/{id} - Failed to cancel reservation: reservation_id=%s, error=%v",
			reservationID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation cancelled successfully: reservation_id=%s, user_id=%s",
		reservationID, userID)
	handlers.RespondNoContent(w)
}
