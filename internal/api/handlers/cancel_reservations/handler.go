package cancel_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations"
	"github.com/m04kA/SMC-DeskService/internal/service/reservations/models"
)

const (
	msgUnauthorized        = "пользователь не авторизован"
	msgInvalidRequest      = "некорректный список ID бронирований"
	msgReservationNotFound = "одно или несколько бронирований не найдены"
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

// Handle POST /api/v1/reservations/cancel
// Body: {"reservationIds": ["..."]}, отменяются все или ни одно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/cancel - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CancelManyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	ids, err := ToServiceRequest(&req)
	if err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	if err := h.service.CancelMany(r.Context(), userID, ids); err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("POST /reservations/cancel - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/cancel - Reservations not found: user_id=%s, error=%v", userID, err)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("POST /reservations/cancel - Failed to cancel reservations: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/cancel - Reservations cancelled successfully: user_id=%s, count=%d", userID, len(ids))
	handlers.RespondNoContent(w)
}
