package list_defenses

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

// Handle GET /api/v1/admin/defenses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	defenses, err := h.service.ListDefenses(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/defenses - Failed to list defenses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, defenses)
}
