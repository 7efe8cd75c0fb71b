package list_professors

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
)

type CatalogService interface {
	ListProfessors(ctx context.Context) (*models.ProfessorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
