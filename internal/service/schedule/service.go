package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
	defenseRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/defense"
	windowRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/window"
	"github.com/m04kA/SMC-DefenseService/internal/service/schedule/models"
)

// Service сервис расписания: окно защит, административный список защит,
// первичные данные для клиента
type Service struct {
	windowRepo       WindowRepository
	defenseRepo      DefenseRepository
	roomRepo         RoomRepository
	professorRepo    ProfessorRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	windowRepo WindowRepository,
	defenseRepo DefenseRepository,
	roomRepo RoomRepository,
	professorRepo ProfessorRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		windowRepo:       windowRepo,
		defenseRepo:      defenseRepo,
		roomRepo:         roomRepo,
		professorRepo:    professorRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetWindow возвращает активное окно защит
func (s *Service) GetWindow(ctx context.Context) (*models.WindowResponse, error) {
	window, err := s.windowRepo.GetCurrent(ctx)
	if err != nil {
		if errors.Is(err, windowRepo.ErrWindowNotFound) {
			return nil, ErrWindowNotFound
		}
		s.logger.Error("GetWindow: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWindow - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainWindow(window), nil
}

// SetWindow устанавливает окно защит и удаляет слоты доступности вне нового
// диапазона. Ошибка очистки не откатывает окно: она попадает в ответ
// предупреждением, слоты-сироты все равно отфильтрует движок слотов.
func (s *Service) SetWindow(ctx context.Context, req *models.SetWindowRequest) (*models.SetWindowResponse, error) {
	s.logger.Info("SetWindow: start=%s, end=%s",
		req.PeriodStart.Format(domain.DateFormat), req.PeriodEnd.Format(domain.DateFormat))

	if req.PeriodStart.IsZero() || req.PeriodEnd.IsZero() {
		return nil, fmt.Errorf("%w: periodStart and periodEnd are required", ErrInvalidInput)
	}
	if req.PeriodEnd.Before(req.PeriodStart) {
		s.logger.Warn("SetWindow: periodEnd before periodStart")
		return nil, fmt.Errorf("%w: periodEnd must not be before periodStart", ErrInvalidInput)
	}

	saved, err := s.windowRepo.Save(ctx, &domain.DefenseWindow{
		PeriodStart: req.PeriodStart,
		PeriodEnd:   req.PeriodEnd,
	})
	if err != nil {
		s.logger.Error("SetWindow: failed to save window: %v", err)
		return nil, fmt.Errorf("%w: SetWindow - failed to save window: %v", ErrInternal, err)
	}

	resp := &models.SetWindowResponse{Window: *models.FromDomainWindow(saved)}

	removed, err := s.availabilityRepo.DeleteOutsideWindow(ctx, saved.PeriodStart, saved.PeriodEnd)
	if err != nil {
		s.logger.Warn("SetWindow: window id=%s saved, but availability cleanup failed: %v", saved.ID, err)
		resp.CleanupWarning = "window saved, but stale availability cleanup failed"
		return resp, nil
	}
	resp.RemovedAvailability = removed

	s.logger.Info("SetWindow: saved window id=%s, removed %d stale availability slots", saved.ID, removed)
	return resp, nil
}

// ListDefenses возвращает все защиты с именами студентов, аудиторий и
// читателей, упорядоченные по дате и времени
func (s *Service) ListDefenses(ctx context.Context) (*models.DefenseListResponse, error) {
	defenses, err := s.defenseRepo.ListDetails(ctx)
	if err != nil {
		s.logger.Error("ListDefenses: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListDefenses - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainDefenseDetails(defenses), nil
}

// DeleteDefense удаляет защиту вместе со строками комиссии в одной транзакции
func (s *Service) DeleteDefense(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("DeleteDefense: deleting defense id=%s", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.defenseRepo.DeleteCommittee(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete committee: %w", err)
		}
		if err := s.defenseRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete defense: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, defenseRepo.ErrDefenseNotFound) {
			s.logger.Warn("DeleteDefense: defense id=%s not found", id)
			return ErrDefenseNotFound
		}
		s.logger.Error("DeleteDefense: failed to delete defense id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteDefense - %v", ErrInternal, err)
	}

	s.logger.Info("DeleteDefense: deleted defense id=%s", id)
	return nil
}

// InitialData собирает единый payload для первичной загрузки клиента:
// окно, справочники, доступность и занятые слоты. Все чтения идут в одной
// read-only транзакции, чтобы клиент получил согласованный снимок.
func (s *Service) InitialData(ctx context.Context) (*models.InitialDataResponse, error) {
	var resp *models.InitialDataResponse

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		window, err := s.windowRepo.GetCurrent(txCtx)
		if err != nil && !errors.Is(err, windowRepo.ErrWindowNotFound) {
			return fmt.Errorf("failed to get window: %w", err)
		}

		rooms, err := s.roomRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list rooms: %w", err)
		}

		professors, err := s.professorRepo.List(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list professors: %w", err)
		}

		slots, err := s.availabilityRepo.List(txCtx, availabilityRepo.Filter{})
		if err != nil {
			return fmt.Errorf("failed to list availability: %w", err)
		}

		defenses, err := s.defenseRepo.ListWithCommittee(txCtx)
		if err != nil {
			return fmt.Errorf("failed to list defenses: %w", err)
		}

		resp = &models.InitialDataResponse{
			Window:       models.FromDomainWindow(window),
			Rooms:        models.FromDomainRooms(rooms),
			Professors:   models.FromDomainProfessors(professors),
			Availability: models.FromDomainAvailability(slots),
			Defenses:     models.FromDomainBookedSlots(defenses),
		}
		return nil
	})
	if err != nil {
		s.logger.Error("InitialData: %v", err)
		return nil, fmt.Errorf("%w: InitialData - %v", ErrInternal, err)
	}

	return resp, nil
}
