package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// Request модели

// CreateRoomRequest запрос на создание аудитории
type CreateRoomRequest struct {
	Name string `json:"name"`
}

// CreateProfessorRequest запрос на создание профессора
type CreateProfessorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListAvailabilityRequest фильтр списка слотов доступности
type ListAvailabilityRequest struct {
	OwnerType *domain.OwnerType
	OwnerID   *uuid.UUID
}

// SlotInput один слот в запросе на сохранение доступности.
// ID пустой для новых слотов, заполненный - для обновления существующих.
type SlotInput struct {
	ID        *uuid.UUID
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// UpsertAvailabilityRequest запрос на сохранение доступности одного владельца
type UpsertAvailabilityRequest struct {
	OwnerID   uuid.UUID
	OwnerType domain.OwnerType
	Slots     []SlotInput
}

// Response модели

// RoomResponse аудитория
type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomListResponse список аудиторий
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// ProfessorResponse профессор-читатель
type ProfessorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfessorListResponse список профессоров
type ProfessorListResponse struct {
	Professors []ProfessorResponse `json:"professors"`
}

// SlotResponse слот доступности
type SlotResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	OwnerType string    `json:"ownerType"`
	Date      string    `json:"date"`      // YYYY-MM-DD
	StartTime string    `json:"startTime"` // HH:MM:SS
	EndTime   string    `json:"endTime"`   // HH:MM:SS
}

// SlotListResponse список слотов доступности
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainRoom конвертирует domain аудиторию в response
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt}
}

// FromDomainRoomList конвертирует список аудиторий в response
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	items := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, *FromDomainRoom(r))
	}
	return &RoomListResponse{Rooms: items}
}

// FromDomainProfessor конвертирует domain профессора в response
func FromDomainProfessor(p *domain.Professor) *ProfessorResponse {
	return &ProfessorResponse{ID: p.ID, Name: p.Name, Email: p.Email, CreatedAt: p.CreatedAt}
}

// FromDomainProfessorList конвертирует список профессоров в response
func FromDomainProfessorList(professors []*domain.Professor) *ProfessorListResponse {
	items := make([]ProfessorResponse, 0, len(professors))
	for _, p := range professors {
		items = append(items, *FromDomainProfessor(p))
	}
	return &ProfessorListResponse{Professors: items}
}

// FromDomainSlot конвертирует domain слот в response
func FromDomainSlot(s *domain.AvailabilitySlot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		OwnerID:   s.OwnerID,
		OwnerType: string(s.OwnerType),
		Date:      s.Date.Format(domain.DateFormat),
		StartTime: s.StartTime.String(),
		EndTime:   s.EndTime.String(),
	}
}

// FromDomainSlotList конвертирует список слотов в response
func FromDomainSlotList(slots []*domain.AvailabilitySlot) *SlotListResponse {
	items := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		items = append(items, FromDomainSlot(s))
	}
	return &SlotListResponse{Slots: items}
}
