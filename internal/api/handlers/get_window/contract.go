package get_window

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWindow(ctx context.Context) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
