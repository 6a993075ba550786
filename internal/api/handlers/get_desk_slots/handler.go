package get_desk_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	getDeskSlots "github.com/m04kA/SMC-DeskService/internal/usecase/get_desk_slots"
)

const (
	msgUnauthorized  = "пользователь не авторизован"
	msgInvalidDeskID = "некорректный ID стола"
	msgMissingDate   = "дата обязательна"
	msgInvalidQuery  = "некорректные параметры: ожидается date=YYYY-MM-DD и mode=hourly|daily"
	msgDeskNotFound  = "стол не найден"
)

type Handler struct {
	useCase  GetDeskSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetDeskSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/desks/{deskId}/slots
// Query params: date (required, YYYY-MM-DD), mode (hourly|daily, default hourly)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /desks/{id}/slots - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	deskID, err := handlers.ParseID(mux.Vars(r)["deskId"])
	if err != nil {
		h.logger.Warn("GET /desks/{id}/slots - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /desks/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, deskID, dateStr, query.Get("mode"), h.location)
	if err != nil {
		h.logger.Warn("GET /desks/{id}/slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDeskSlots.ErrDeskNotFound):
			h.logger.Warn("GET /desks/{id}/slots - Desk not found: desk_id=%s", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, getDeskSlots.ErrInvalidInput):
			h.logger.Warn("GET /desks/{id}/slots - Invalid input: desk_id=%s, error=%v", deskID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /desks/{id}/slots - Failed to get slots: desk_id=%s, error=%v", deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /desks/{id}/slots - Slots retrieved successfully: desk_id=%s, mode=%s, slots_count=%d",
		deskID, result.Mode, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
