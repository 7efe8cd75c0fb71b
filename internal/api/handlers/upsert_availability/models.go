package upsert_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// SlotInput слот в HTTP запросе
type SlotInput struct {
	ID        *uuid.UUID `json:"id,omitempty"` // пустой для новых слотов
	Date      string     `json:"date"`         // "2026-05-20"
	StartTime string     `json:"startTime"`    // "09:00" или "09:00:00"
	EndTime   string     `json:"endTime"`
}

// UpsertAvailabilityRequest HTTP request model
type UpsertAvailabilityRequest struct {
	OwnerID   uuid.UUID   `json:"ownerId"`
	OwnerType string      `json:"ownerType"` // room | professor
	Slots     []SlotInput `json:"slots"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpsertAvailabilityRequest) ToServiceRequest() (*models.UpsertAvailabilityRequest, error) {
	req := &models.UpsertAvailabilityRequest{
		OwnerID:   r.OwnerID,
		OwnerType: domain.OwnerType(r.OwnerType),
		Slots:     make([]models.SlotInput, 0, len(r.Slots)),
	}

	for _, in := range r.Slots {
		date, err := time.Parse(domain.DateFormat, in.Date)
		if err != nil {
			return nil, err
		}
		start, err := types.NewTimeStringFromString(in.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(in.EndTime)
		if err != nil {
			return nil, err
		}
		req.Slots = append(req.Slots, models.SlotInput{
			ID:        in.ID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
		})
	}

	return req, nil
}
