package create_professor

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateProfessor(ctx context.Context, req *models.CreateProfessorRequest) (*models.ProfessorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
