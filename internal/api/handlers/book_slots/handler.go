package book_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	bookSlots "github.com/m04kA/SMC-DeskService/internal/usecase/book_slots"
)

const (
	msgUnauthorized     = "пользователь не авторизован"
	msgInvalidRequest   = "некорректные данные запроса"
	msgNoSlotsSelected  = "не выбрано ни одного слота"
	msgInvalidSlot      = "слот не соответствует сетке выбранного режима"
	msgSlotInPast       = "нельзя забронировать прошедший слот"
	msgDeskNotFound     = "стол не найден"
	msgSlotNotAvailable = "один из выбранных слотов уже занят"
	msgUserReserved     = "у вас уже есть бронирование на выбранное время"
)

type Handler struct {
	useCase  BookSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase BookSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations/batch
// Слоты схлопываются в непрерывные интервалы и бронируются все или ни один
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/batch - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req BookSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, h.location)
	if err != nil {
		h.logger.Warn("POST /reservations/batch - Invalid request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSlots.ErrNoSlotsSelected):
			h.logger.Warn("POST /reservations/batch - No slots selected: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgNoSlotsSelected)

		case errors.Is(err, bookSlots.ErrInvalidSlot):
			h.logger.Warn("POST /reservations/batch - Invalid slot: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, bookSlots.ErrSlotInPast):
			h.logger.Warn("POST /reservations/batch - Slot in the past: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, bookSlots.ErrInvalidInput):
			h.logger.Warn("POST /reservations/batch - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, bookSlots.ErrDeskNotFound):
			h.logger.Warn("POST /reservations/batch - Desk not found: desk_id=%s", useCaseReq.DeskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, bookSlots.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations/batch - Slot not available: desk_id=%s, user_id=%s", useCaseReq.DeskID, userID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookSlots.ErrUserAlreadyReserved):
			h.logger.Warn("POST /reservations/batch - User already has a reservation: user_id=%s", userID)
			handlers.RespondConflict(w, msgUserReserved)

		default:
			h.logger.Error("POST /reservations/batch - Failed to book slots: user_id=%s, desk_id=%s, error=%v",
				userID, useCaseReq.DeskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/batch - Slots booked successfully: user_id=%s, desk_id=%s, runs=%d, reservations=%d",
		userID, useCaseReq.DeskID, len(result.Requests), len(result.Reservations))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
