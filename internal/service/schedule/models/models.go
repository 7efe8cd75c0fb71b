package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
)

// Request модели

// SetWindowRequest запрос на установку окна защит
type SetWindowRequest struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Response модели

// WindowResponse активное окно защит
type WindowResponse struct {
	ID          uuid.UUID `json:"id"`
	PeriodStart string    `json:"periodStart"` // YYYY-MM-DD
	PeriodEnd   string    `json:"periodEnd"`   // YYYY-MM-DD
	CreatedAt   time.Time `json:"createdAt"`
}

// SetWindowResponse результат установки окна защит
type SetWindowResponse struct {
	Window WindowResponse `json:"window"`

	// RemovedAvailability количество удаленных слотов доступности вне нового окна
	RemovedAvailability int64 `json:"removedAvailability"`

	// CleanupWarning не пустой, если окно сохранено, но очистка слотов не удалась
	CleanupWarning string `json:"cleanupWarning,omitempty"`
}

// DefenseItem защита для административного списка
type DefenseItem struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Time         string    `json:"time"` // HH:MM:SS
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	RoomName     string    `json:"roomName"`
	Readers      []string  `json:"readers"`
}

// DefenseListResponse список защит
type DefenseListResponse struct {
	Defenses []DefenseItem `json:"defenses"`
}

// RoomItem аудитория
type RoomItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ProfessorItem профессор-читатель
type ProfessorItem struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AvailabilityItem слот доступности
type AvailabilityItem struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	OwnerType string    `json:"ownerType"`
	Date      string    `json:"date"`      // YYYY-MM-DD
	StartTime string    `json:"startTime"` // HH:MM:SS
	EndTime   string    `json:"endTime"`   // HH:MM:SS
}

// BookedSlot занятый слот для клиентского календаря
type BookedSlot struct {
	RoomID       uuid.UUID   `json:"roomId"`
	Date         string      `json:"date"` // YYYY-MM-DD
	Time         string      `json:"time"` // HH:MM:SS
	ProfessorIDs []uuid.UUID `json:"professorIds"`
}

// InitialDataResponse единый payload для первичной загрузки клиента
type InitialDataResponse struct {
	Window       *WindowResponse    `json:"window"`
	Rooms        []RoomItem         `json:"rooms"`
	Professors   []ProfessorItem    `json:"professors"`
	Availability []AvailabilityItem `json:"availability"`
	Defenses     []BookedSlot       `json:"defenses"`
}

// FromDomainWindow конвертирует domain окно в response
func FromDomainWindow(w *domain.DefenseWindow) *WindowResponse {
	if w == nil {
		return nil
	}
	return &WindowResponse{
		ID:          w.ID,
		PeriodStart: w.PeriodStart.Format(domain.DateFormat),
		PeriodEnd:   w.PeriodEnd.Format(domain.DateFormat),
		CreatedAt:   w.CreatedAt,
	}
}

// FromDomainDefenseDetails конвертирует список защит в response
func FromDomainDefenseDetails(defenses []*domain.DefenseDetails) *DefenseListResponse {
	items := make([]DefenseItem, 0, len(defenses))
	for _, d := range defenses {
		readers := d.Readers
		if readers == nil {
			readers = []string{}
		}
		items = append(items, DefenseItem{
			ID:           d.ID,
			Date:         d.Date.Format(domain.DateFormat),
			Time:         d.Time.String(),
			StudentName:  d.StudentName,
			StudentEmail: d.StudentEmail,
			RoomName:     d.RoomName,
			Readers:      readers,
		})
	}
	return &DefenseListResponse{Defenses: items}
}

// FromDomainRooms конвертирует список аудиторий
func FromDomainRooms(rooms []*domain.Room) []RoomItem {
	items := make([]RoomItem, 0, len(rooms))
	for _, r := range rooms {
		items = append(items, RoomItem{ID: r.ID, Name: r.Name})
	}
	return items
}

// FromDomainProfessors конвертирует список профессоров
func FromDomainProfessors(professors []*domain.Professor) []ProfessorItem {
	items := make([]ProfessorItem, 0, len(professors))
	for _, p := range professors {
		items = append(items, ProfessorItem{ID: p.ID, Name: p.Name, Email: p.Email})
	}
	return items
}

// FromDomainAvailability конвертирует список слотов доступности
func FromDomainAvailability(slots []*domain.AvailabilitySlot) []AvailabilityItem {
	items := make([]AvailabilityItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, AvailabilityItem{
			ID:        s.ID,
			OwnerID:   s.OwnerID,
			OwnerType: string(s.OwnerType),
			Date:      s.Date.Format(domain.DateFormat),
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
		})
	}
	return items
}

// FromDomainBookedSlots конвертирует защиты в занятые слоты календаря
func FromDomainBookedSlots(defenses []*domain.Defense) []BookedSlot {
	items := make([]BookedSlot, 0, len(defenses))
	for _, d := range defenses {
		ids := d.CommitteeIDs
		if ids == nil {
			ids = []uuid.UUID{}
		}
		items = append(items, BookedSlot{
			RoomID:       d.RoomID,
			Date:         d.Date.Format(domain.DateFormat),
			Time:         d.Time.String(),
			ProfessorIDs: ids,
		})
	}
	return items
}
