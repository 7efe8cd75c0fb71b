package get_window

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/service/schedule"
)

const msgWindowNotSet = "defense window is not set"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/window
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	window, err := h.service.GetWindow(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrWindowNotFound):
			h.logger.Warn("GET /admin/window - Window not set")
			handlers.RespondNotFound(w, msgWindowNotSet)
		default:
			h.logger.Error("GET /admin/window - Failed to get window: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, window)
}
