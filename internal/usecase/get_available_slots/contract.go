package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
)

// WindowRepository интерфейс репозитория окна защит
type WindowRepository interface {
	// GetCurrent возвращает активное окно (самое свежее по created_at)
	GetCurrent(ctx context.Context) (*domain.DefenseWindow, error)
}

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// ProfessorRepository интерфейс репозитория профессоров
type ProfessorRepository interface {
	List(ctx context.Context) ([]*domain.Professor, error)
}

// AvailabilityRepository интерфейс репозитория слотов доступности
type AvailabilityRepository interface {
	List(ctx context.Context, filter availabilityRepo.Filter) ([]*domain.AvailabilitySlot, error)
}

// DefenseRepository интерфейс репозитория защит
type DefenseRepository interface {
	// ListWithCommittee возвращает все защиты с id профессоров комиссий
	ListWithCommittee(ctx context.Context) ([]*domain.Defense, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
