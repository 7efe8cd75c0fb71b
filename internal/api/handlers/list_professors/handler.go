package list_professors

import (
	"net/http"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/professors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professors, err := h.service.ListProfessors(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/professors - Failed to list professors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, professors)
}
