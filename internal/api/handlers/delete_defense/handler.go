package delete_defense

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/service/schedule"
)

const (
	msgInvalidDefenseID = "invalid defense id"
	msgNotFound         = "defense not found"
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

// Handle DELETE /api/v1/admin/defenses/{defenseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	defenseID, err := uuid.Parse(vars["defenseId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/defenses/{id} - Invalid defense ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDefenseID)
		return
	}

	if err := h.service.DeleteDefense(r.Context(), defenseID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrDefenseNotFound):
			h.logger.Warn("DELETE /admin/defenses/{id} - Defense not found: defense_id=%s", defenseID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /admin/defenses/{id} - Failed to delete defense: defense_id=%s, error=%v",
				defenseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/defenses/{id} - Defense deleted: defense_id=%s", defenseID)
	handlers.RespondNoContent(w)
}
