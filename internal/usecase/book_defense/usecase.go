package book_defense

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	defenseRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/defense"
	roomRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/room"
	studentRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/student"
	"github.com/m04kA/SMC-DefenseService/internal/notify"
)

// UseCase use case для бронирования защиты
type UseCase struct {
	studentRepo   StudentRepository
	defenseRepo   DefenseRepository
	roomRepo      RoomRepository
	professorRepo ProfessorRepository
	notifier      Notifier
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	studentRepo StudentRepository,
	defenseRepo DefenseRepository,
	roomRepo RoomRepository,
	professorRepo ProfessorRepository,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		studentRepo:   studentRepo,
		defenseRepo:   defenseRepo,
		roomRepo:      roomRepo,
		professorRepo: professorRepo,
		notifier:      notifier,
		logger:        logger,
	}
}

// Execute выполняет use case бронирования защиты.
// Без длинной транзакции: единственный спорный ресурс — слот (room, date, time),
// его гонку разрешает уникальный индекс, а частичное состояние после ошибки
// комиссии убирается компенсирующим удалением.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookDefense: email=%s, room=%s, date=%s, time=%s",
		req.StudentEmail, req.RoomID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookDefense: validation failed: %v", err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.StudentEmail))

	// 2. Проверяем существование аудитории
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("BookDefense: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("BookDefense: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Проверяем существование обоих читателей
	professors, err := uc.professorRepo.GetByIDs(ctx, req.ProfessorIDs)
	if err != nil {
		uc.logger.Error("BookDefense: failed to get professors: %v", err)
		return nil, fmt.Errorf("%w: failed to get professors: %v", ErrInternal, err)
	}
	if len(professors) != len(req.ProfessorIDs) {
		uc.logger.Warn("BookDefense: some professors not found: requested=%d, found=%d",
			len(req.ProfessorIDs), len(professors))
		return nil, ErrProfessorNotFound
	}

	// 4. Находим или создаем студента по email
	student, err := uc.resolveStudent(ctx, req.StudentName, email)
	if err != nil {
		return nil, err
	}

	// 5. Один студент — одна защита
	booked, err := uc.defenseRepo.ExistsByStudent(ctx, student.ID)
	if err != nil {
		uc.logger.Error("BookDefense: failed to check existing defense for student id=%s: %v", student.ID, err)
		return nil, fmt.Errorf("%w: failed to check existing defense: %v", ErrInternal, err)
	}
	if booked {
		uc.logger.Warn("BookDefense: student id=%s already has a defense", student.ID)
		return nil, ErrAlreadyBooked
	}

	// 6. Создаем защиту; гонку за слот разрешает БД
	defense, err := uc.defenseRepo.Create(ctx, &domain.Defense{
		StudentID: student.ID,
		RoomID:    req.RoomID,
		Date:      req.Date,
		Time:      req.Time,
	})
	if err != nil {
		switch {
		case errors.Is(err, defenseRepo.ErrSlotTaken):
			uc.logger.Warn("BookDefense: slot room=%s date=%s time=%s just taken",
				req.RoomID, req.Date.Format(domain.DateFormat), req.Time)
			return nil, ErrSlotTaken
		case errors.Is(err, defenseRepo.ErrStudentAlreadyBooked):
			// Гонка двух бронирований одного студента: проверка в п.5 ее не видит
			uc.logger.Warn("BookDefense: student id=%s booked concurrently", student.ID)
			return nil, ErrAlreadyBooked
		default:
			uc.logger.Error("BookDefense: failed to create defense: %v", err)
			return nil, fmt.Errorf("%w: failed to create defense: %v", ErrInternal, err)
		}
	}

	// 7. Записываем комиссию; при ошибке компенсируем удалением защиты,
	// чтобы слот не остался занят защитой без комиссии
	if err := uc.defenseRepo.AddCommittee(ctx, defense.ID, req.ProfessorIDs); err != nil {
		uc.logger.Error("BookDefense: failed to add committee for defense id=%s: %v", defense.ID, err)
		if cleanupErr := uc.defenseRepo.Delete(ctx, defense.ID); cleanupErr != nil {
			uc.logger.Error("BookDefense: failed to cleanup defense id=%s after committee error: %v",
				defense.ID, cleanupErr)
		}
		return nil, fmt.Errorf("%w: failed to add committee: %v", ErrInternal, err)
	}

	uc.logger.Info("BookDefense: created defense id=%s for student id=%s", defense.ID, student.ID)

	// 8. Ставим уведомления в очередь; ошибки отправки не влияют на бронь
	uc.notifier.EnqueueBooking(buildNotification(req.StudentName, email, room, professors, defense))

	return &Response{
		DefenseID:    defense.ID,
		StudentID:    student.ID,
		RoomID:       room.ID,
		RoomName:     room.Name,
		ProfessorIDs: req.ProfessorIDs,
		Date:         defense.Date,
		Time:         defense.Time,
		CreatedAt:    defense.CreatedAt,
	}, nil
}

// resolveStudent находит студента по email или создает нового.
// Проигрыш гонки create (уникальный email) разрешается повторным чтением.
func (uc *UseCase) resolveStudent(ctx context.Context, name, email string) (*domain.Student, error) {
	student, err := uc.studentRepo.GetByEmail(ctx, email)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, studentRepo.ErrStudentNotFound) {
		uc.logger.Error("BookDefense: failed to get student by email: %v", err)
		return nil, fmt.Errorf("%w: failed to get student: %v", ErrInternal, err)
	}

	student, err = uc.studentRepo.Create(ctx, strings.TrimSpace(name), email)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, studentRepo.ErrDuplicateEmail) {
		uc.logger.Error("BookDefense: failed to create student: %v", err)
		return nil, fmt.Errorf("%w: failed to create student: %v", ErrInternal, err)
	}

	// Студента создали параллельно между чтением и вставкой
	uc.logger.Warn("BookDefense: lost student create race for email=%s, re-reading", email)
	student, err = uc.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Error("BookDefense: failed to re-read student after create race: %v", err)
		return nil, fmt.Errorf("%w: failed to get student: %v", ErrInternal, err)
	}
	return student, nil
}

func buildNotification(
	studentName, studentEmail string,
	room *domain.Room,
	professors []*domain.Professor,
	defense *domain.Defense,
) notify.BookingNotification {
	contacts := make([]notify.ProfessorContact, 0, len(professors))
	for _, p := range professors {
		contacts = append(contacts, notify.ProfessorContact{
			Name:  p.Name,
			Email: p.Email,
		})
	}
	return notify.BookingNotification{
		StudentName:  studentName,
		StudentEmail: studentEmail,
		Professors:   contacts,
		Date:         defense.Date,
		Time:         defense.Time,
		RoomName:     room.Name,
	}
}
