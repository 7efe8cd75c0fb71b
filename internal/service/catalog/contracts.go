package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
)

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
	Create(ctx context.Context, name string) (*domain.Room, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProfessorRepository интерфейс репозитория профессоров
type ProfessorRepository interface {
	List(ctx context.Context) ([]*domain.Professor, error)
	Create(ctx context.Context, name, email string) (*domain.Professor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AvailabilityRepository интерфейс репозитория слотов доступности
type AvailabilityRepository interface {
	List(ctx context.Context, filter availabilityRepo.Filter) ([]*domain.AvailabilitySlot, error)
	CreateBatch(ctx context.Context, slots []*domain.AvailabilitySlot) ([]*domain.AvailabilitySlot, error)
	Update(ctx context.Context, slot *domain.AvailabilitySlot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
