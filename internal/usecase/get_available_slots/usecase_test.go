package get_available_slots

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
	windowRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/window"
)

type fakeWindowRepo struct {
	window *domain.DefenseWindow
	err    error
}

func (f *fakeWindowRepo) GetCurrent(_ context.Context) (*domain.DefenseWindow, error) {
	return f.window, f.err
}

type fakeRoomRepo struct{ rooms []*domain.Room }

func (f *fakeRoomRepo) List(_ context.Context) ([]*domain.Room, error) { return f.rooms, nil }

type fakeProfessorRepo struct{ professors []*domain.Professor }

func (f *fakeProfessorRepo) List(_ context.Context) ([]*domain.Professor, error) {
	return f.professors, nil
}

type fakeAvailabilityRepo struct{ slots []*domain.AvailabilitySlot }

func (f *fakeAvailabilityRepo) List(_ context.Context, _ availabilityRepo.Filter) ([]*domain.AvailabilitySlot, error) {
	return f.slots, nil
}

type fakeDefenseRepo struct{ defenses []*domain.Defense }

func (f *fakeDefenseRepo) ListWithCommittee(_ context.Context) ([]*domain.Defense, error) {
	return f.defenses, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(t *testing.T, windows *fakeWindowRepo, avail *fakeAvailabilityRepo) *UseCase {
	t.Helper()
	uc, err := NewUseCase(
		windows,
		&fakeRoomRepo{},
		&fakeProfessorRepo{},
		avail,
		&fakeDefenseRepo{},
		"09:00:00", "17:00:00", 60,
		nopLogger{},
	)
	require.NoError(t, err)
	return uc
}

func TestExecuteNoWindowReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(t,
		&fakeWindowRepo{err: windowRepo.ErrWindowNotFound},
		&fakeAvailabilityRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Nil(t, resp.Window)
	assert.Empty(t, resp.Days)
}

func TestExecuteRejectsDegenerateReaderPair(t *testing.T) {
	uc := newTestUseCase(t, &fakeWindowRepo{}, &fakeAvailabilityRepo{})

	id := uuid.New()
	_, err := uc.Execute(context.Background(), &Request{ReaderIDs: []uuid.UUID{id, id}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ReaderIDs: []uuid.UUID{id}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ReaderIDs: []uuid.UUID{id, uuid.Nil}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestNewUseCaseRejectsEmptyGrid(t *testing.T) {
	_, err := NewUseCase(
		&fakeWindowRepo{},
		&fakeRoomRepo{},
		&fakeProfessorRepo{},
		&fakeAvailabilityRepo{},
		&fakeDefenseRepo{},
		"17:00:00", "09:00:00", 60,
		nopLogger{},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecuteComputesWindowAndDays(t *testing.T) {
	window := testWindow(10, 11)
	uc := newTestUseCase(t,
		&fakeWindowRepo{window: window},
		&fakeAvailabilityRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.NotNil(t, resp.Window)
	assert.Equal(t, window.PeriodStart, resp.Window.PeriodStart)
	assert.Equal(t, window.PeriodEnd, resp.Window.PeriodEnd)
	assert.Len(t, resp.Days, 2)
}
