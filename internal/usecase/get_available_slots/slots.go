package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

// resourceKey адресует один ресурс (аудиторию или профессора)
// в конкретные дату и время
type resourceKey struct {
	id   uuid.UUID
	date string // YYYY-MM-DD
	slot types.TimeString
}

// occupancy индексы занятости ресурсов по уже назначенным защитам
type occupancy struct {
	rooms      map[resourceKey]bool
	professors map[resourceKey]bool
}

// buildTimeGrid строит каноничную сетку времен начала слотов:
// от dayStart до dayEnd включительно с шагом slotMinutes.
// Движок рассматривает только слоты, чье время начала входит в сетку.
func buildTimeGrid(dayStart, dayEnd types.TimeString, slotMinutes int) ([]types.TimeString, error) {
	grid := make([]types.TimeString, 0)

	current := dayStart
	for !current.IsAfter(dayEnd) {
		grid = append(grid, current)

		next, err := current.AddMinutes(slotMinutes)
		if err != nil {
			// Шаг перевалил за полночь - сетка закончилась
			break
		}
		current = next
	}

	return grid, nil
}

// buildAvailabilityIndex индексирует слоты доступности по (владелец, дата,
// время начала). Строки с датами вне активного окна игнорируются, даже если
// они еще хранятся в БД.
func buildAvailabilityIndex(
	slots []*domain.AvailabilitySlot,
	window *domain.DefenseWindow,
	ownerType domain.OwnerType,
) map[resourceKey]bool {
	index := make(map[resourceKey]bool)

	for _, slot := range slots {
		if slot.OwnerType != ownerType {
			continue
		}
		if !window.Contains(slot.Date) {
			continue
		}
		index[resourceKey{
			id:   slot.OwnerID,
			date: slot.Date.Format(domain.DateFormat),
			slot: slot.StartTime,
		}] = true
	}

	return index
}

// buildOccupancy индексирует занятость аудиторий и профессоров
// по существующим защитам
func buildOccupancy(defenses []*domain.Defense) occupancy {
	occ := occupancy{
		rooms:      make(map[resourceKey]bool),
		professors: make(map[resourceKey]bool),
	}

	for _, d := range defenses {
		date := d.Date.Format(domain.DateFormat)
		occ.rooms[resourceKey{id: d.RoomID, date: date, slot: d.Time}] = true
		for _, profID := range d.CommitteeIDs {
			occ.professors[resourceKey{id: profID, date: date, slot: d.Time}] = true
		}
	}

	return occ
}

// computeSlots вычисляет карту дат → время → кандидаты.
//
// Ресурс свободен в (дата, время) тогда и только тогда, когда у него есть
// слот доступности ровно с этим временем начала И он не занят защитой в этот
// момент. Частичной свободы нет: соседние интервалы доступности не
// объединяются и не делятся.
//
// С парой читателей слот-кандидат требует свободы обоих читателей и хотя бы
// одной аудитории; без пары - хотя бы одной аудитории и хотя бы двух
// профессоров (двухшаговый сценарий выбора).
func computeSlots(
	window *domain.DefenseWindow,
	grid []types.TimeString,
	rooms []*domain.Room,
	professors []*domain.Professor,
	roomAvail map[resourceKey]bool,
	profAvail map[resourceKey]bool,
	occ occupancy,
	readerIDs []uuid.UUID,
) map[string]map[string]Slot {
	days := make(map[string]map[string]Slot, window.Days())

	start := dateOnly(window.PeriodStart)
	end := dateOnly(window.PeriodEnd)

	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		dateStr := date.Format(domain.DateFormat)
		days[dateStr] = make(map[string]Slot)

		for _, slot := range grid {
			if len(readerIDs) == domain.CommitteeSize {
				candidate, ok := computeReaderPairSlot(dateStr, slot, rooms, roomAvail, profAvail, occ, readerIDs)
				if ok {
					days[dateStr][slot.String()] = candidate
				}
				continue
			}

			candidate, ok := computeOpenSlot(dateStr, slot, rooms, professors, roomAvail, profAvail, occ)
			if ok {
				days[dateStr][slot.String()] = candidate
			}
		}
	}

	return days
}

// computeReaderPairSlot кандидат для конкретной пары читателей:
// оба читателя свободны и есть хотя бы одна свободная аудитория
func computeReaderPairSlot(
	date string,
	slot types.TimeString,
	rooms []*domain.Room,
	roomAvail map[resourceKey]bool,
	profAvail map[resourceKey]bool,
	occ occupancy,
	readerIDs []uuid.UUID,
) (Slot, bool) {
	for _, readerID := range readerIDs {
		if !isFree(readerID, date, slot, profAvail, occ.professors) {
			return Slot{}, false
		}
	}

	freeRooms := collectFreeRooms(rooms, date, slot, roomAvail, occ)
	if len(freeRooms) == 0 {
		return Slot{}, false
	}

	return Slot{Rooms: freeRooms}, true
}

// computeOpenSlot кандидат без фильтра по читателям: хотя бы одна свободная
// аудитория и хотя бы два свободных профессора
func computeOpenSlot(
	date string,
	slot types.TimeString,
	rooms []*domain.Room,
	professors []*domain.Professor,
	roomAvail map[resourceKey]bool,
	profAvail map[resourceKey]bool,
	occ occupancy,
) (Slot, bool) {
	freeRooms := collectFreeRooms(rooms, date, slot, roomAvail, occ)
	if len(freeRooms) == 0 {
		return Slot{}, false
	}

	freeProfessors := make([]ProfessorInfo, 0)
	for _, prof := range professors {
		if isFree(prof.ID, date, slot, profAvail, occ.professors) {
			freeProfessors = append(freeProfessors, ProfessorInfo{ID: prof.ID, Name: prof.Name})
		}
	}
	if len(freeProfessors) < domain.CommitteeSize {
		return Slot{}, false
	}

	return Slot{Rooms: freeRooms, Professors: freeProfessors}, true
}

func collectFreeRooms(
	rooms []*domain.Room,
	date string,
	slot types.TimeString,
	roomAvail map[resourceKey]bool,
	occ occupancy,
) []RoomInfo {
	freeRooms := make([]RoomInfo, 0)
	for _, room := range rooms {
		if isFree(room.ID, date, slot, roomAvail, occ.rooms) {
			freeRooms = append(freeRooms, RoomInfo{ID: room.ID, Name: room.Name})
		}
	}
	return freeRooms
}

func isFree(
	id uuid.UUID,
	date string,
	slot types.TimeString,
	avail map[resourceKey]bool,
	booked map[resourceKey]bool,
) bool {
	key := resourceKey{id: id, date: date, slot: slot}
	return avail[key] && !booked[key]
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
