package delete_room

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DefenseService/internal/api/handlers"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog"
)

const (
	msgInvalidRoomID = "invalid room id"
	msgNotFound      = "room not found"
	msgRoomInUse     = "room cannot be deleted while defenses are scheduled in it"
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

// Handle DELETE /api/v1/admin/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomID, err := uuid.Parse(vars["roomId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		switch {
		case errors.Is(err, catalog.ErrRoomNotFound):
			h.logger.Warn("DELETE /admin/rooms/{id} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrRoomInUse):
			h.logger.Warn("DELETE /admin/rooms/{id} - Room in use: room_id=%s", roomID)
			handlers.RespondConflict(w, msgRoomInUse)

		default:
			h.logger.Error("DELETE /admin/rooms/{id} - Failed to delete room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/rooms/{id} - Room deleted: room_id=%s", roomID)
	handlers.RespondNoContent(w)
}
