package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDuplicateName      = "a room with this name already exists"
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

// Handle POST /api/v1/admin/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /admin/rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, catalog.ErrDuplicateRoomName):
			h.logger.Warn("POST /admin/rooms - Duplicate name: %q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		default:
			h.logger.Error("POST /admin/rooms - Failed to create room: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/rooms - Room created: room_id=%s", room.ID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
