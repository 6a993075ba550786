package delete_desk

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/desks"
)

const (
	msgUnauthorized  = "пользователь не авторизован"
	msgInvalidDeskID = "некорректный ID стола"
	msgDeskNotFound  = "стол не найден"
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

// Handle DELETE /api/v1/desks/{deskId}
// Бронирования стола удаляются каскадно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /desks/{id} - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	deskID, err := handlers.ParseID(mux.Vars(r)["deskId"])
	if err != nil {
		h.logger.Warn("DELETE /desks/{id} - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	if err := h.service.Delete(r.Context(), deskID); err != nil {
		if errors.Is(err, desks.ErrDeskNotFound) {
			h.logger.Warn("DELETE /desks/{id} - Desk not found: desk_id=%s", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)
			return
		}
		h.logger.Error("DELETE /desks/{id} - Failed to delete desk: desk_id=%s, error=%v", deskID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /desks/{id} - Desk deleted successfully: desk_id=%s, user_id=%s", deskID, userID)
	handlers.RespondNoContent(w)
}
