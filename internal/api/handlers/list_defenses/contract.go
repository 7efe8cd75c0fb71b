package list_defenses

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListDefenses(ctx context.Context) (*models.DefenseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
