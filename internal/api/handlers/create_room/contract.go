package create_room

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
