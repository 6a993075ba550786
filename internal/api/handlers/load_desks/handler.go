package load_desks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DeskService/internal/api/handlers"
	"github.com/m04kA/SMC-DeskService/internal/api/middleware"
	"github.com/m04kA/SMC-DeskService/internal/service/desks"
	"github.com/m04kA/SMC-DeskService/internal/service/desks/models"
)

const (
	msgUnauthorized   = "пользователь не авторизован"
	msgInvalidRequest = "некорректное тело запроса"
	msgInvalidInput   = "некорректный список столов"
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

// Handle POST /api/v1/desks/load
// Body: {"desks":[{"name":"A1"}]} или {"zones":[{"name":"Open space","desks":[{"name":"A1"}]}]}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /desks/load - Unauthorized access attempt")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.LoadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /desks/load - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	created, err := h.service.Load(r.Context(), req.Names())
	if err != nil {
		switch {
		case errors.Is(err, desks.ErrInvalidInput):
			h.logger.Warn("POST /desks/load - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, desks.ErrDeskNameTaken):
			h.logger.Warn("POST /desks/load - Name taken: %v", err)
			handlers.RespondConflict(w, msgNameTaken)

		default:
			h.logger.Error("POST /desks/load - Failed to load desks: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /desks/load - Desks loaded successfully: user_id=%s, count=%d", userID, len(created))
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(created))
}
