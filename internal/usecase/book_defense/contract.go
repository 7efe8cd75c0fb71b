package book_defense

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/internal/notify"
)

// StudentRepository интерфейс репозитория студентов
type StudentRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Student, error)
	Create(ctx context.Context, name, email string) (*domain.Student, error)
}

// DefenseRepository интерфейс репозитория защит
type DefenseRepository interface {
	Create(ctx context.Context, d *domain.Defense) (*domain.Defense, error)
	AddCommittee(ctx context.Context, defenseID uuid.UUID, professorIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByStudent(ctx context.Context, studentID uuid.UUID) (bool, error)
}

// RoomRepository интерфейс репозитория аудиторий
type RoomRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Room, error)
}

// ProfessorRepository интерфейс репозитория профессоров
type ProfessorRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Professor, error)
}

// Notifier интерфейс очереди исходящих уведомлений
type Notifier interface {
	// EnqueueBooking не блокирует и не возвращает ошибку:
	// уведомление не влияет на результат бронирования
	EnqueueBooking(n notify.BookingNotification)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
