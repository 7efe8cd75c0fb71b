package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
	professorRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/professor"
	roomRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/room"
	"github.com/m04kA/SMC-DefenseService/internal/service/catalog/models"
)

// Service сервис справочников: аудитории, профессора, слоты доступности
type Service struct {
	roomRepo         RoomRepository
	professorRepo    ProfessorRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	roomRepo RoomRepository,
	professorRepo ProfessorRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:         roomRepo,
		professorRepo:    professorRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// ListRooms возвращает все аудитории по имени
func (s *Service) ListRooms(ctx context.Context) (*models.RoomListResponse, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainRoomList(rooms), nil
}

// CreateRoom создает аудиторию. Имя уникально без учета регистра.
func (s *Service) CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: room name is required", ErrInvalidInput)
	}

	room, err := s.roomRepo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, roomRepo.ErrDuplicateName) {
			s.logger.Warn("CreateRoom: name=%q already exists", name)
			return nil, ErrDuplicateRoomName
		}
		s.logger.Error("CreateRoom: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRoom: created room id=%s name=%q", room.ID, room.Name)
	return models.FromDomainRoom(room), nil
}

// DeleteRoom удаляет аудиторию. Удаление блокируется, пока на аудиторию
// ссылается хотя бы одна защита.
func (s *Service) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := s.roomRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			s.logger.Warn("DeleteRoom: room id=%s not found", id)
			return ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoomInUse):
			s.logger.Warn("DeleteRoom: room id=%s has scheduled defenses", id)
			return ErrRoomInUse
		default:
			s.logger.Error("DeleteRoom: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: DeleteRoom - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteRoom: deleted room id=%s", id)
	return nil
}

// ListProfessors возвращает всех профессоров по имени
func (s *Service) ListProfessors(ctx context.Context) (*models.ProfessorListResponse, error) {
	professors, err := s.professorRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListProfessors: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessors - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainProfessorList(professors), nil
}

// CreateProfessor создает профессора с уникальным email
func (s *Service) CreateProfessor(ctx context.Context, req *models.CreateProfessorRequest) (*models.ProfessorResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" {
		return nil, fmt.Errorf("%w: professor name is required", ErrInvalidInput)
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid professor email is required", ErrInvalidInput)
	}

	professor, err := s.professorRepo.Create(ctx, name, email)
	if err != nil {
		if errors.Is(err, professorRepo.ErrDuplicateEmail) {
			s.logger.Warn("CreateProfessor: email=%s already exists", email)
			return nil, ErrDuplicateProfessorEmail
		}
		s.logger.Error("CreateProfessor: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateProfessor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateProfessor: created professor id=%s email=%s", professor.ID, professor.Email)
	return models.FromDomainProfessor(professor), nil
}

// DeleteProfessor удаляет профессора. Удаление блокируется, пока профессор
// входит в комиссию хотя бы одной защиты.
func (s *Service) DeleteProfessor(ctx context.Context, id uuid.UUID) error {
	if err := s.professorRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, professorRepo.ErrProfessorNotFound):
			s.logger.Warn("DeleteProfessor: professor id=%s not found", id)
			return ErrProfessorNotFound
		case errors.Is(err, professorRepo.ErrProfessorInUse):
			s.logger.Warn("DeleteProfessor: professor id=%s is assigned to defenses", id)
			return ErrProfessorInUse
		default:
			s.logger.Error("DeleteProfessor: repository error for id=%s: %v", id, err)
			return fmt.Errorf("%w: DeleteProfessor - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteProfessor: deleted professor id=%s", id)
	return nil
}

// ListAvailability возвращает слоты доступности по фильтру владельца
func (s *Service) ListAvailability(ctx context.Context, req *models.ListAvailabilityRequest) (*models.SlotListResponse, error) {
	if req.OwnerType != nil && !req.OwnerType.Valid() {
		return nil, fmt.Errorf("%w: unknown owner type", ErrInvalidInput)
	}

	slots, err := s.availabilityRepo.List(ctx, availabilityRepo.Filter{
		OwnerType: req.OwnerType,
		OwnerID:   req.OwnerID,
	})
	if err != nil {
		s.logger.Error("ListAvailability: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailability - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSlotList(slots), nil
}

// UpsertAvailability сохраняет набор слотов одного владельца: слоты без id
// создаются батчем, слоты с id обновляются по одному
func (s *Service) UpsertAvailability(ctx context.Context, req *models.UpsertAvailabilityRequest) (*models.SlotListResponse, error) {
	s.logger.Info("UpsertAvailability: owner=%s type=%s, slots=%d", req.OwnerID, req.OwnerType, len(req.Slots))

	if req.OwnerID == uuid.Nil {
		return nil, fmt.Errorf("%w: ownerId is required", ErrInvalidInput)
	}
	if !req.OwnerType.Valid() {
		return nil, fmt.Errorf("%w: unknown owner type", ErrInvalidInput)
	}
	if len(req.Slots) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", ErrInvalidInput)
	}

	var toCreate []*domain.AvailabilitySlot
	var toUpdate []*domain.AvailabilitySlot
	for i, in := range req.Slots {
		slot := &domain.AvailabilitySlot{
			OwnerID:   req.OwnerID,
			OwnerType: req.OwnerType,
			Date:      in.Date,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
		}
		if err := slot.Validate(); err != nil {
			s.logger.Warn("UpsertAvailability: slot #%d invalid: %v", i, err)
			return nil, fmt.Errorf("%w: slot #%d: %v", ErrInvalidInput, i, err)
		}
		if in.ID != nil && *in.ID != uuid.Nil {
			slot.ID = *in.ID
			toUpdate = append(toUpdate, slot)
		} else {
			toCreate = append(toCreate, slot)
		}
	}

	result := make([]*domain.AvailabilitySlot, 0, len(req.Slots))

	for _, slot := range toUpdate {
		if err := s.availabilityRepo.Update(ctx, slot); err != nil {
			if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
				s.logger.Warn("UpsertAvailability: slot id=%s not found", slot.ID)
				return nil, ErrSlotNotFound
			}
			s.logger.Error("UpsertAvailability: failed to update slot id=%s: %v", slot.ID, err)
			return nil, fmt.Errorf("%w: UpsertAvailability - failed to update slot: %v", ErrInternal, err)
		}
		result = append(result, slot)
	}

	if len(toCreate) > 0 {
		created, err := s.availabilityRepo.CreateBatch(ctx, toCreate)
		if err != nil {
			s.logger.Error("UpsertAvailability: failed to create slots: %v", err)
			return nil, fmt.Errorf("%w: UpsertAvailability - failed to create slots: %v", ErrInternal, err)
		}
		result = append(result, created...)
	}

	s.logger.Info("UpsertAvailability: owner=%s saved %d slots (%d created, %d updated)",
		req.OwnerID, len(result), len(toCreate), len(toUpdate))
	return models.FromDomainSlotList(result), nil
}

// DeleteAvailability удаляет один слот доступности
func (s *Service) DeleteAvailability(ctx context.Context, id uuid.UUID) error {
	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrSlotNotFound) {
			s.logger.Warn("DeleteAvailability: slot id=%s not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("DeleteAvailability: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteAvailability: deleted slot id=%s", id)
	return nil
}
