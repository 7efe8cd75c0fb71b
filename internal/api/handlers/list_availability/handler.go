package list_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
	"github.com/m04kA/SMC-DefenseService/pkg/ptr"
)

const (
	msgInvalidOwnerType = "invalid ownerType, expected room or professor"
	msgInvalidOwnerID   = "invalid ownerId, expected a uuid"
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

// Handle GET /api/v1/availability
// Query params: ownerType (room|professor), ownerId - оба опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListAvailabilityRequest{}

	if raw := query.Get("ownerType"); raw != "" {
		ownerType := domain.OwnerType(raw)
		if !ownerType.Valid() {
			h.logger.Warn("GET /availability - Invalid owner type: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidOwnerType)
			return
		}
		req.OwnerType = ptr.Ptr(ownerType)
	}

	if raw := query.Get("ownerId"); raw != "" {
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid owner ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOwnerID)
			return
		}
		req.OwnerID = ptr.Ptr(ownerID)
	}

	slots, err := h.service.ListAvailability(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /availability - Failed to list availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, slots)
}
