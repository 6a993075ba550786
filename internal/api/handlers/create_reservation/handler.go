package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-DeskService/internal/usecase/create_reservation"
)

const (
	msgUnauthorized      = "пользователь не авторизован"
	msgInvalidRequest    = "некорректные данные запроса, время ожидается в формате HH:mm DD.MM.YYYY"
	msgInvalidTimeRange  = "время окончания должно быть позже времени начала"
	msgOutsideWorkHours  = "бронирование возможно только с 05:00 до 21:00"
	msgReservationInPast = "нельзя забронировать прошедшее время"
	msgDeskNotFound      = "стол не найден"
	msgDeskReserved      = "стол уже забронирован на выбранное время"
	msgUserReserved      = "у вас уже есть бронирование на выбранное время"
)

type Handler struct {
	useCase  CreateReservationUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, h.location)
	if err != nil {
		h.logger.Warn("POST /reservations - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Invalid time range: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createReservation.ErrOutsideWorkingHours):
			h.logger.Warn("POST /reservations - Outside working hours: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgOutsideWorkHours)

		case errors.Is(err, createReservation.ErrReservationInPast):
			h.logger.Warn("POST /reservations - Interval in the past: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgReservationInPast)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createReservation.ErrDeskNotFound):
			h.logger.Warn("POST /reservations - Desk not found: desk_id=%s", useCaseReq.DeskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, createReservation.ErrDeskAlreadyReserved):
			h.logger.Warn("POST /reservations - Desk already reserved: desk_id=%s, user_id=%s", useCaseReq.DeskID, userID)
			handlers.RespondConflict(w, msgDeskReserved)

		case errors.Is(err, createReservation.ErrUserAlreadyReserved):
			h.logger.Warn("POST /reservations - User already has a reservation: user_id=%s", userID)
			handlers.RespondConflict(w, msgUserReserved)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, desk_id=%s, error=%v",
				userID, useCaseReq.DeskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: user_id=%s, desk_id=%s, count=%d",
		userID, useCaseReq.DeskID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
