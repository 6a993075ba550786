package rename_desk

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/desks"
)

const (
	msgUnauthorized   = "пользователь не авторизован"
	msgInvalidDeskID  = "некорректный ID стола"
	msgInvalidRequest = "некорректное тело запроса"
	msgInvalidName    = "некорректное имя стола"
	msgDeskNotFound   = "стол не найден"
	msgNameTaken      = "стол с таким именем уже существует"
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

// Handle PUT /api/v1/desks/{deskId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("PUT /desks/{id} - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	deskID, err := handlers.ParseID(mux.Vars(r)["deskId"])
	if err != nil {
		h.logger.Warn("PUT /desks/{id} - Invalid desk ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDeskID)
		return
	}

	var req RenameDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /desks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	if err := h.service.Rename(r.Context(), deskID, req.Name); err != nil {
		switch {
		case errors.Is(err, desks.ErrInvalidInput):
			h.logger.Warn("PUT /desks/{id} - Invalid name: desk_id=%s, error=%v", deskID, err)
			handlers.RespondBadRequest(w, msgInvalidName)

		case errors.Is(err, desks.ErrDeskNotFound):
			h.logger.Warn("PUT /desks/{id} - Desk not found: desk_id=%s", deskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, desks.ErrDeskNameTaken):
			h.logger.Warn("PUT /desks/{id} - Name taken: desk_id=%s", deskID)
			handlers.RespondConflict(w, msgNameTaken)

		default:
			h.logger.Error("PUT /desks/{id} - Failed to rename desk: desk_id=%s, error=%v", deskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /desks/{id} - Desk renamed successfully: desk_id=%s", deskID)
	handlers.RespondNoContent(w)
}
