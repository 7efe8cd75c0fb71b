package delete_professor

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog"
)

const (
	msgInvalidProfessorID = "invalid professor id"
	msgNotFound           = "professor not found"
	msgProfessorInUse     = "professor cannot be deleted while assigned to defenses"
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

// Handle DELETE /api/v1/admin/professors/{professorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professorID, err := uuid.Parse(vars["professorId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/professors/{id} - Invalid professor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessorID)
		return
	}

	if err := h.service.DeleteProfessor(r.Context(), professorID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrProfessorNotFound):
			h.logger.Warn("DELETE /admin/professors/{id} - Professor not found: professor_id=%s", professorID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrProfessorInUse):
			h.logger.Warn("DELETE /admin/professors/{id} - Professor in use: professor_id=%s", professorID)
			handlers.RespondConflict(w, msgProfessorInUse)

		default:
			h.logger.Error("DELETE /admin/professors/{id} - Failed to delete professor: professor_id=%s, error=%v",
				professorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/professors/{id} - Professor deleted: professor_id=%s", professorID)
	handlers.RespondNoContent(w)
}
