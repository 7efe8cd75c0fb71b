package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
)

// WindowRepository интерфейс репозитория окна защит
type WindowRepository interface {
	GetCurrent(ctx context.Context) (*domain.DefenseWindow, error)
	Save(ctx context.Context, w *domain.DefenseWindow) (*domain.DefenseWindow, error)
}

// DefenseRepository интерфейс репозитория защит
type DefenseRepository interface {
	ListDetails(ctx context.Context) ([]*domain.DefenseDetails, error)
	ListWithCommittee(ctx context.Context) ([]*domain.Defense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteCommittee(ctx context.Context, defenseID uuid.UUID) error
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
	DeleteOutsideWindow(ctx context.Context, start, end time.Time) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
