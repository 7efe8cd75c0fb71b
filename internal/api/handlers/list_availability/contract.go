package list_availability

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
)

type CatalogService interface {
	ListAvailability(ctx context.Context, req *models.ListAvailabilityRequest) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
