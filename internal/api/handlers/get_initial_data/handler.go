package get_initial_data

import (
	"net/http"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
)

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

// Handle GET /api/v1/schedule/initial-data
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.InitialData(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/initial-data - Failed to load initial data: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, data)
}
