package create_professor

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDuplicateEmail     = "a professor with this email already exists"
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

// Handle POST /api/v1/admin/professors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProfessorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/professors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	professor, err := h.service.CreateProfessor(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/professors - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrDuplicateProfessorEmail):
			h.logger.Warn("POST /admin/professors - Duplicate email: %s", req.Email)
			handlers.RespondConflict(w, msgDuplicateEmail)

		default:
			h.logger.Error("POST /admin/professors - Failed to create professor: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/professors - Professor created: professor_id=%s", professor.ID)
	handlers.RespondJSON(w, http.StatusCreated, professor)
}
