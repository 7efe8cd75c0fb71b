package get_initial_data

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/service/schedule/models"
)

type ScheduleService interface {
	InitialData(ctx context.Context) (*models.InitialDataResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
