package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/availability"
	windowRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/window"
	"github.com/m04kA/SMC-DefenseService/internal/service/schedule/models"
)

type fakeWindowRepo struct {
	current *domain.DefenseWindow
	getErr  error
	saveErr error
	saved   *domain.DefenseWindow
}

func (f *fakeWindowRepo) GetCurrent(_ context.Context) (*domain.DefenseWindow, error) {
	return f.current, f.getErr
}

func (f *fakeWindowRepo) Save(_ context.Context, w *domain.DefenseWindow) (*domain.DefenseWindow, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	saved := *w
	saved.ID = uuid.New()
	saved.CreatedAt = time.Now()
	f.saved = &saved
	return &saved, nil
}

type fakeDefenseRepo struct {
	details []*domain.DefenseDetails

	committeeDeleted uuid.UUID
	defenseDeleted   uuid.UUID
	committeeErr     error
	deleteErr        error
	order            []string
}

func (f *fakeDefenseRepo) ListDetails(_ context.Context) ([]*domain.DefenseDetails, error) {
	return f.details, nil
}

func (f *fakeDefenseRepo) ListWithCommittee(_ context.Context) ([]*domain.Defense, error) {
	return nil, nil
}

func (f *fakeDefenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.order = append(f.order, "defense")
	f.defenseDeleted = id
	return f.deleteErr
}

func (f *fakeDefenseRepo) DeleteCommittee(_ context.Context, defenseID uuid.UUID) error {
	f.order = append(f.order, "committee")
	f.committeeDeleted = defenseID
	return f.committeeErr
}

type fakeRoomRepo struct{}

func (fakeRoomRepo) List(_ context.Context) ([]*domain.Room, error) { return nil, nil }

type fakeProfessorRepo struct{}

func (fakeProfessorRepo) List(_ context.Context) ([]*domain.Professor, error) { return nil, nil }

type fakeAvailabilityRepo struct {
	removed    int64
	cleanupErr error

	cleanupStart time.Time
	cleanupEnd   time.Time
}

func (f *fakeAvailabilityRepo) List(_ context.Context, _ availabilityRepo.Filter) ([]*domain.AvailabilitySlot, error) {
	return nil, nil
}

func (f *fakeAvailabilityRepo) DeleteOutsideWindow(_ context.Context, start, end time.Time) (int64, error) {
	f.cleanupStart = start
	f.cleanupEnd = end
	return f.removed, f.cleanupErr
}

// fakeTxManager выполняет callback без транзакции, фиксируя факт вызова
type fakeTxManager struct {
	calls         int
	readOnlyCalls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.readOnlyCalls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	windows  *fakeWindowRepo
	defenses *fakeDefenseRepo
	avail    *fakeAvailabilityRepo
	tx       *fakeTxManager
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		windows:  &fakeWindowRepo{},
		defenses: &fakeDefenseRepo{},
		avail:    &fakeAvailabilityRepo{},
		tx:       &fakeTxManager{},
	}
	f.svc = NewService(f.windows, f.defenses, fakeRoomRepo{}, fakeProfessorRepo{}, f.avail, f.tx, nopLogger{})
	return f
}

func day(d int) time.Time {
	return time.Date(2026, 5, d, 0, 0, 0, 0, time.UTC)
}

func TestGetWindowNotSet(t *testing.T) {
	f := newFixture()
	f.windows.getErr = windowRepo.ErrWindowNotFound

	_, err := f.svc.GetWindow(context.Background())
	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestSetWindowCleansStaleAvailability(t *testing.T) {
	f := newFixture()
	f.avail.removed = 3

	resp, err := f.svc.SetWindow(context.Background(), &models.SetWindowRequest{
		PeriodStart: day(10),
		PeriodEnd:   day(20),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.RemovedAvailability)
	assert.Empty(t, resp.CleanupWarning)
	assert.Equal(t, "2026-05-10", resp.Window.PeriodStart)
	assert.Equal(t, "2026-05-20", resp.Window.PeriodEnd)
	assert.Equal(t, day(10), f.avail.cleanupStart)
	assert.Equal(t, day(20), f.avail.cleanupEnd)
}

func TestSetWindowCleanupFailureIsWarningNotError(t *testing.T) {
	f := newFixture()
	f.avail.cleanupErr = errors.New("cleanup failed")

	resp, err := f.svc.SetWindow(context.Background(), &models.SetWindowRequest{
		PeriodStart: day(10),
		PeriodEnd:   day(20),
	})

	// Окно сохранено, провал очистки не откатывает операцию
	require.NoError(t, err)
	require.NotNil(t, f.windows.saved)
	assert.NotEmpty(t, resp.CleanupWarning)
	assert.Zero(t, resp.RemovedAvailability)
}

func TestSetWindowRejectsInvertedRange(t *testing.T) {
	f := newFixture()

	_, err := f.svc.SetWindow(context.Background(), &models.SetWindowRequest{
		PeriodStart: day(20),
		PeriodEnd:   day(10),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, f.windows.saved)
}

func TestDeleteDefenseRunsInTransaction(t *testing.T) {
	f := newFixture()
	id := uuid.New()

	err := f.svc.DeleteDefense(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, 1, f.tx.calls)
	// Сначала комиссия, затем защита
	assert.Equal(t, []string{"committee", "defense"}, f.defenses.order)
	assert.Equal(t, id, f.defenses.committeeDeleted)
	assert.Equal(t, id, f.defenses.defenseDeleted)
}

func TestDeleteDefenseCommitteeFailureAborts(t *testing.T) {
	f := newFixture()
	f.defenses.committeeErr = errors.New("boom")

	err := f.svc.DeleteDefense(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, []string{"committee"}, f.defenses.order)
}

func TestInitialDataReadsInReadOnlyTransaction(t *testing.T) {
	f := newFixture()
	f.windows.getErr = windowRepo.ErrWindowNotFound

	resp, err := f.svc.InitialData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, f.tx.readOnlyCalls)
	assert.Equal(t, 0, f.tx.calls)
	// Окно не установлено - не ошибка, payload без окна
	assert.Nil(t, resp.Window)
	assert.NotNil(t, resp.Rooms)
	assert.NotNil(t, resp.Defenses)
}

func TestListDefenses(t *testing.T) {
	f := newFixture()
	f.defenses.details = []*domain.DefenseDetails{
		{
			ID:           uuid.New(),
			Date:         day(10),
			Time:         "10:00:00",
			StudentName:  "Alice",
			StudentEmail: "alice@example.edu",
			RoomName:     "Room 101",
			Readers:      []string{"Prof A", "Prof B"},
		},
	}

	resp, err := f.svc.ListDefenses(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Defenses, 1)
	assert.Equal(t, "2026-05-10", resp.Defenses[0].Date)
	assert.Equal(t, "10:00:00", resp.Defenses[0].Time)
	assert.Equal(t, []string{"Prof A", "Prof B"}, resp.Defenses[0].Readers)
}
