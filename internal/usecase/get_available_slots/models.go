package get_available_slots

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса доступных слотов.
// ReaderIDs либо пуст (общий обзор календаря), либо содержит ровно два
// различных id профессоров - тогда результат ограничен слотами,
// где свободны оба читателя.
type Request struct {
	ReaderIDs []uuid.UUID
}

// Response модель ответа: окно защит и карта дат → время → кандидаты.
// Ключ даты - YYYY-MM-DD, ключ времени - каноничный HH:MM:SS.
type Response struct {
	Window *WindowInfo
	Days   map[string]map[string]Slot
}

// WindowInfo активное окно защит
type WindowInfo struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// Slot кандидат на бронирование в конкретные дату и время
type Slot struct {
	// Rooms свободные аудитории
	Rooms []RoomInfo
	// Professors свободные профессора. Заполняется только без фильтра
	// по паре читателей (двухшаговый сценарий выбора).
	Professors []ProfessorInfo
}

// RoomInfo аудитория в ответе
type RoomInfo struct {
	ID   uuid.UUID
	Name string
}

// ProfessorInfo профессор в ответе
type ProfessorInfo struct {
	ID   uuid.UUID
	Name string
}
