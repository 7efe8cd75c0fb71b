package upsert_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM or HH:MM:SS"
	msgSlotNotFound       = "availability slot not found"
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

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpsertAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /availability - Failed to parse slots: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.UpsertAvailability(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrSlotNotFound):
			h.logger.Warn("POST /availability - Slot not found: owner_id=%s", req.OwnerID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("POST /availability - Failed to save availability: owner_id=%s, error=%v",
				req.OwnerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Availability saved: owner_id=%s, slots=%d",
		req.OwnerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
