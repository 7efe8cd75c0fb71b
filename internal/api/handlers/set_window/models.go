package set_window

import (
	"time"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/internal/service/schedule/models"
)

// SetWindowRequest HTTP request model
type SetWindowRequest struct {
	PeriodStart string `json:"periodStart"` // "2026-05-01"
	PeriodEnd   string `json:"periodEnd"`   // "2026-05-31"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SetWindowRequest) ToServiceRequest() (*models.SetWindowRequest, error) {
	start, err := time.Parse(domain.DateFormat, r.PeriodStart)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, r.PeriodEnd)
	if err != nil {
		return nil, err
	}
	return &models.SetWindowRequest{PeriodStart: start, PeriodEnd: end}, nil
}
