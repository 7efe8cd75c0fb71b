package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// OwnerType тип владельца слота доступности
type OwnerType string

const (
	OwnerRoom      OwnerType = "room"
	OwnerProfessor OwnerType = "professor"
)

// Valid проверяет, что тип владельца известен
func (t OwnerType) Valid() bool {
	return t == OwnerRoom || t == OwnerProfessor
}

// AvailabilitySlot заявленный интервал доступности владельца (аудитории или
// профессора) на конкретную дату. Несколько слотов на дату допустимы.
type AvailabilitySlot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	OwnerType OwnerType
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
}

// Validate проверяет инвариант слота: end_time > start_time
func (s *AvailabilitySlot) Validate() error {
	if !s.OwnerType.Valid() {
		return ErrInvalidOwnerType
	}
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return ErrInvalidSlotTimes
	}
	if !s.EndTime.IsAfter(s.StartTime) {
		return ErrInvalidSlotTimes
	}
	return nil
}
