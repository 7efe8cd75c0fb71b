package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
	windowRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/window"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// UseCase use case вычисления доступных слотов для бронирования защиты
type UseCase struct {
	windowRepo       WindowRepository
	roomRepo         RoomRepository
	professorRepo    ProfessorRepository
	availabilityRepo AvailabilityRepository
	defenseRepo      DefenseRepository
	grid             []types.TimeString
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// Сетка слотов (dayStart, dayEnd, slotMinutes) задается конфигурацией
// и фиксируется на все время жизни use case.
func NewUseCase(
	windowRepo WindowRepository,
	roomRepo RoomRepository,
	professorRepo ProfessorRepository,
	availabilityRepo AvailabilityRepository,
	defenseRepo DefenseRepository,
	dayStart, dayEnd types.TimeString,
	slotMinutes int,
	logger Logger,
) (*UseCase, error) {
	grid, err := buildTimeGrid(dayStart, dayEnd, slotMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build time grid: %v", ErrInternal, err)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty time grid (check schedule config)", ErrInternal)
	}

	return &UseCase{
		windowRepo:       windowRepo,
		roomRepo:         roomRepo,
		professorRepo:    professorRepo,
		availabilityRepo: availabilityRepo,
		defenseRepo:      defenseRepo,
		grid:             grid,
		logger:           logger,
	}, nil
}

// Execute вычисляет доступные слоты.
// Отсутствие активного окна защит не ошибка: бронировать нечего,
// возвращается пустой результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Активное окно защит
	window, err := uc.windowRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			uc.logger.Info("GetAvailableSlots: no active defense window, returning empty result")
			return &Response{Days: map[string]map[string]Slot{}}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get defense window: %v", err)
		return nil, fmt.Errorf("%w: failed to get defense window: %v", ErrInternal, err)
	}

	// 3. Справочники и текущее состояние
	rooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	professors, err := uc.professorRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list professors: %v", err)
		return nil, fmt.Errorf("%w: failed to list professors: %v", ErrInternal, err)
	}

	availability, err := uc.availabilityRepo.List(ctx, availabilityRepo.Filter{})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list availability: %v", err)
		return nil, fmt.Errorf("%w: failed to list availability: %v", ErrInternal, err)
	}

	defenses, err := uc.defenseRepo.ListWithCommittee(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list defenses: %v", err)
		return nil, fmt.Errorf("%w: failed to list defenses: %v", ErrInternal, err)
	}

	// 4. Чистое вычисление: индексы доступности и занятости, затем свёртка
	// по сетке дат и времен
	roomAvail := buildAvailabilityIndex(availability, window, domain.OwnerRoom)
	profAvail := buildAvailabilityIndex(availability, window, domain.OwnerProfessor)
	occ := buildOccupancy(defenses)

	days := computeSlots(window, uc.grid, rooms, professors, roomAvail, profAvail, occ, req.ReaderIDs)

	uc.logger.Info("GetAvailableSlots: computed slots for %d days (readers=%d, rooms=%d, professors=%d, defenses=%d)",
		len(days), len(req.ReaderIDs), len(rooms), len(professors), len(defenses))

	return &Response{
		Window: &WindowInfo{
			PeriodStart: window.PeriodStart,
			PeriodEnd:   window.PeriodEnd,
		},
		Days: days,
	}, nil
}
