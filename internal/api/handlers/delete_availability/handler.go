package delete_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog"
)

const (
	msgInvalidSlotID = "invalid availability slot id"
	msgNotFound      = "availability slot not found"
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

// Handle DELETE /api/v1/availability/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["slotId"])
	if err != nil {
		h.logger.Warn("DELETE /availability/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.DeleteAvailability(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrSlotNotFound):
			h.logger.Warn("DELETE /availability/{id} - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("DELETE /availability/{id} - Failed to delete slot: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /availability/{id} - Slot deleted: slot_id=%s", slotID)
	handlers.RespondNoContent(w)
}
