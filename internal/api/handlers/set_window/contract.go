package set_window

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/service/schedule/models"
)

type ScheduleService interface {
	SetWindow(ctx context.Context, req *models.SetWindowRequest) (*models.SetWindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
