package get_available_slots

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/pkg/types"
)

func date(day int) time.Time {
	return time.Date(2026, 5, day, 0, 0, 0, 0, time.UTC)
}

func testWindow(startDay, endDay int) *domain.DefenseWindow {
	return &domain.DefenseWindow{
		ID:          uuid.New(),
		PeriodStart: date(startDay),
		PeriodEnd:   date(endDay),
	}
}

func availSlot(ownerID uuid.UUID, ownerType domain.OwnerType, day int, start string) *domain.AvailabilitySlot {
	startTS, _ := types.NewTimeStringFromString(start)
	endTS, _ := startTS.AddMinutes(60)
	return &domain.AvailabilitySlot{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		OwnerType: ownerType,
		Date:      date(day),
		StartTime: startTS,
		EndTime:   endTS,
	}
}

func TestBuildTimeGrid(t *testing.T) {
	grid, err := buildTimeGrid("09:00:00", "17:00:00", 60)
	require.NoError(t, err)

	// Границы включительно: 09:00..17:00 - девять времен начала
	require.Len(t, grid, 9)
	assert.Equal(t, types.TimeString("09:00:00"), grid[0])
	assert.Equal(t, types.TimeString("17:00:00"), grid[8])
}

func TestBuildTimeGridHalfHourStep(t *testing.T) {
	grid, err := buildTimeGrid("09:00:00", "10:00:00", 30)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00:00", "09:30:00", "10:00:00"}, grid)
}

func TestBuildAvailabilityIndexSkipsRowsOutsideWindow(t *testing.T) {
	window := testWindow(10, 12)
	roomID := uuid.New()

	slots := []*domain.AvailabilitySlot{
		availSlot(roomID, domain.OwnerRoom, 10, "09:00"),
		availSlot(roomID, domain.OwnerRoom, 13, "09:00"), // вне окна
		availSlot(roomID, domain.OwnerProfessor, 10, "09:00"),
	}

	index := buildAvailabilityIndex(slots, window, domain.OwnerRoom)

	assert.Len(t, index, 1)
	assert.True(t, index[resourceKey{id: roomID, date: "2026-05-10", slot: "09:00:00"}])
}

func TestBuildOccupancy(t *testing.T) {
	roomID := uuid.New()
	profA := uuid.New()
	profB := uuid.New()

	ts, _ := types.NewTimeStringFromString("10:00")
	defenses := []*domain.Defense{
		{
			ID:           uuid.New(),
			RoomID:       roomID,
			Date:         date(10),
			Time:         ts,
			CommitteeIDs: []uuid.UUID{profA, profB},
		},
	}

	occ := buildOccupancy(defenses)

	assert.True(t, occ.rooms[resourceKey{id: roomID, date: "2026-05-10", slot: "10:00:00"}])
	assert.True(t, occ.professors[resourceKey{id: profA, date: "2026-05-10", slot: "10:00:00"}])
	assert.True(t, occ.professors[resourceKey{id: profB, date: "2026-05-10", slot: "10:00:00"}])
	assert.False(t, occ.rooms[resourceKey{id: roomID, date: "2026-05-10", slot: "11:00:00"}])
}

func TestComputeSlotsReaderPair(t *testing.T) {
	window := testWindow(10, 10)
	roomID := uuid.New()
	profA := uuid.New()
	profB := uuid.New()

	rooms := []*domain.Room{{ID: roomID, Name: "Room 101"}}
	professors := []*domain.Professor{
		{ID: profA, Name: "Prof A"},
		{ID: profB, Name: "Prof B"},
	}

	roomAvail := buildAvailabilityIndex([]*domain.AvailabilitySlot{
		availSlot(roomID, domain.OwnerRoom, 10, "09:00"),
		availSlot(roomID, domain.OwnerRoom, 10, "10:00"),
	}, window, domain.OwnerRoom)
	profAvail := buildAvailabilityIndex([]*domain.AvailabilitySlot{
		availSlot(profA, domain.OwnerProfessor, 10, "09:00"),
		availSlot(profA, domain.OwnerProfessor, 10, "10:00"),
		availSlot(profB, domain.OwnerProfessor, 10, "09:00"), // второй читатель свободен только в 09:00
	}, window, domain.OwnerProfessor)

	grid, err := buildTimeGrid("09:00:00", "17:00:00", 60)
	require.NoError(t, err)

	days := computeSlots(window, grid, rooms, professors, roomAvail, profAvail,
		buildOccupancy(nil), []uuid.UUID{profA, profB})

	require.Contains(t, days, "2026-05-10")
	daySlots := days["2026-05-10"]

	// Оба читателя свободны только в 09:00
	require.Len(t, daySlots, 1)
	require.Contains(t, daySlots, "09:00:00")
	require.Len(t, daySlots["09:00:00"].Rooms, 1)
	assert.Equal(t, "Room 101", daySlots["09:00:00"].Rooms[0].Name)
	// В режиме пары читателей профессора в ответе не перечисляются
	assert.Empty(t, daySlots["09:00:00"].Professors)
}

func TestComputeSlotsBookingRemovesCandidate(t *testing.T) {
	window := testWindow(10, 10)
	roomID := uuid.New()
	profA := uuid.New()
	profB := uuid.New()

	rooms := []*domain.Room{{ID: roomID, Name: "Room 101"}}
	professors := []*domain.Professor{
		{ID: profA, Name: "Prof A"},
		{ID: profB, Name: "Prof B"},
	}

	roomAvail := buildAvailabilityIndex([]*domain.AvailabilitySlot{
		availSlot(roomID, domain.OwnerRoom, 10, "09:00"),
	}, window, domain.OwnerRoom)
	profAvail := buildAvailabilityIndex([]*domain.AvailabilitySlot{
		availSlot(profA, domain.OwnerProfessor, 10, "09:00"),
		availSlot(profB, domain.OwnerProfessor, 10, "09:00"),
	}, window, domain.OwnerProfessor)

	ts, _ := types.NewTimeStringFromString("09:00")
	occ := buildOccupancy([]*domain.Defense{
		{
			ID:           uuid.New(),
			RoomID:       roomID,
			Date:         date(10),
			Time:         ts,
			CommitteeIDs: []uuid.UUID{profA, profB},
		},
	})

	grid, err := buildTimeGrid("09:00:00", "17:00:00", 60)
	require.NoError(t, err)

	days := computeSlots(window, grid, rooms, professors, roomAvail, profAvail, occ,
		[]uuid.UUID{profA, profB})

	// Единственная аудитория занята защитой - кандидатов нет,
	// но дата в ответе присутствует с пустой картой
	require.Contains(t, days, "2026-05-10")
	assert.Empty(t, days["2026-05-10"])
}

func TestComputeSlotsOpenMode(t *testing.T) {
	window := testWindow(10, 10)
	roomID := uuid.New()
	profA := uuid.New()
	profB := uuid.New()
	profC := uuid.New()

	rooms := []*domain.Room{{ID: roomID, Name: "Room 101"}}
	professors := []*domain.Professor{
		{ID: profA, Name: "Prof A"},
		{ID: profB, Name: "Prof B"},
		{ID: profC, Name: "Prof C"},
	}

	roomAvail := buildAvailabilityIndex([]*domain.AvailabilitySlot{
		availSlot(roomID, domain.OwnerRoom, 10, "09:00"),
		availSlot(roomID, domain.OwnerRoom, 10, "10:00"),
	}, window, domain.OwnerRoom)
	// В 09:00 свободны три профессора, в 10:00 - только один
	profAvail := buildAvailabilityIndex([]*domain.AvailabilitySlot{
		availSlot(profA, domain.OwnerProfessor, 10, "09:00"),
		availSlot(profB, domain.OwnerProfessor, 10, "09:00"),
		availSlot(profC, domain.OwnerProfessor, 10, "09:00"),
		availSlot(profA, domain.OwnerProfessor, 10, "10:00"),
	}, window, domain.OwnerProfessor)

	grid, err := buildTimeGrid("09:00:00", "17:00:00", 60)
	require.NoError(t, err)

	days := computeSlots(window, grid, rooms, professors, roomAvail, profAvail,
		buildOccupancy(nil), nil)

	daySlots := days["2026-05-10"]
	// 10:00 отпадает: нужно минимум два свободных профессора
	require.Len(t, daySlots, 1)
	require.Contains(t, daySlots, "09:00:00")
	assert.Len(t, daySlots["09:00:00"].Rooms, 1)
	assert.Len(t, daySlots["09:00:00"].Professors, 3)
}

func TestComputeSlotsExactStartTimeMatchOnly(t *testing.T) {
	window := testWindow(10, 10)
	roomID := uuid.New()
	profA := uuid.New()
	profB := uuid.New()

	rooms := []*domain.Room{{ID: roomID, Name: "Room 101"}}
	professors := []*domain.Professor{
		{ID: profA, Name: "Prof A"},
		{ID: profB, Name: "Prof B"},
	}

	// Доступность с 09:30 - не совпадает ни с одним временем начала сетки,
	// интервалы не делятся и не объединяются
	roomAvail := buildAvailabilityIndex([]*domain.AvailabilitySlot{
		availSlot(roomID, domain.OwnerRoom, 10, "09:30"),
	}, window, domain.OwnerRoom)
	profAvail := buildAvailabilityIndex([]*domain.AvailabilitySlot{
		availSlot(profA, domain.OwnerProfessor, 10, "09:00"),
		availSlot(profB, domain.OwnerProfessor, 10, "09:00"),
	}, window, domain.OwnerProfessor)

	grid, err := buildTimeGrid("09:00:00", "17:00:00", 60)
	require.NoError(t, err)

	days := computeSlots(window, grid, rooms, professors, roomAvail, profAvail,
		buildOccupancy(nil), []uuid.UUID{profA, profB})

	assert.Empty(t, days["2026-05-10"])
}

func TestComputeSlotsWindowDatesAlwaysPresent(t *testing.T) {
	window := testWindow(10, 12)

	grid, err := buildTimeGrid("09:00:00", "17:00:00", 60)
	require.NoError(t, err)

	days := computeSlots(window, grid, nil, nil,
		map[resourceKey]bool{}, map[resourceKey]bool{}, buildOccupancy(nil), nil)

	// Все даты окна присутствуют, даже без единого кандидата
	require.Len(t, days, 3)
	for _, d := range []string{"2026-05-10", "2026-05-11", "2026-05-12"} {
		require.Contains(t, days, d)
		assert.Empty(t, days[d])
	}
}
