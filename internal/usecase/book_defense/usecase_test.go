package book_defense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	defenseRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/defense"
	roomRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/room"
	studentRepo "github.com/m04kA/SMC-DefenseService/internal/infra/storage/student"
	"github.com/m04kA/SMC-DefenseService/internal/notify"
)

type fakeStudentRepo struct {
	byEmail map[string]*domain.Student

	createErr  error
	getErrs    []error // ошибки на последовательные вызовы GetByEmail
	getCalls   int
	createCall int
}

func (f *fakeStudentRepo) GetByEmail(_ context.Context, email string) (*domain.Student, error) {
	f.getCalls++
	if len(f.getErrs) > 0 {
		err := f.getErrs[0]
		f.getErrs = f.getErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	if s, ok := f.byEmail[email]; ok {
		return s, nil
	}
	return nil, studentRepo.ErrStudentNotFound
}

func (f *fakeStudentRepo) Create(_ context.Context, name, email string) (*domain.Student, error) {
	f.createCall++
	if f.createErr != nil {
		return nil, f.createErr
	}
	s := &domain.Student{ID: uuid.New(), Name: name, Email: email}
	if f.byEmail == nil {
		f.byEmail = map[string]*domain.Student{}
	}
	f.byEmail[email] = s
	return s, nil
}

type fakeDefenseRepo struct {
	createErr    error
	committeeErr error
	deleteErr    error
	exists       bool
	existsErr    error

	created   *domain.Defense
	deletedID uuid.UUID
}

func (f *fakeDefenseRepo) Create(_ context.Context, d *domain.Defense) (*domain.Defense, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *d
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeDefenseRepo) AddCommittee(_ context.Context, _ uuid.UUID, _ []uuid.UUID) error {
	return f.committeeErr
}

func (f *fakeDefenseRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deletedID = id
	return f.deleteErr
}

func (f *fakeDefenseRepo) ExistsByStudent(_ context.Context, _ uuid.UUID) (bool, error) {
	return f.exists, f.existsErr
}

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Room, error) {
	return f.room, f.err
}

type fakeProfessorRepo struct {
	professors []*domain.Professor
	err        error
}

func (f *fakeProfessorRepo) GetByIDs(_ context.Context, _ []uuid.UUID) ([]*domain.Professor, error) {
	return f.professors, f.err
}

type fakeNotifier struct {
	enqueued []notify.BookingNotification
}

func (f *fakeNotifier) EnqueueBooking(n notify.BookingNotification) {
	f.enqueued = append(f.enqueued, n)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	students   *fakeStudentRepo
	defenses   *fakeDefenseRepo
	rooms      *fakeRoomRepo
	professors *fakeProfessorRepo
	notifier   *fakeNotifier
	uc         *UseCase

	req *Request
}

func newFixture() *fixture {
	profA := &domain.Professor{ID: uuid.New(), Name: "Prof A", Email: "a@example.edu"}
	profB := &domain.Professor{ID: uuid.New(), Name: "Prof B", Email: "b@example.edu"}

	f := &fixture{
		students:   &fakeStudentRepo{},
		defenses:   &fakeDefenseRepo{},
		rooms:      &fakeRoomRepo{room: &domain.Room{ID: uuid.New(), Name: "Room 101"}},
		professors: &fakeProfessorRepo{professors: []*domain.Professor{profA, profB}},
		notifier:   &fakeNotifier{},
	}
	f.uc = NewUseCase(f.students, f.defenses, f.rooms, f.professors, f.notifier, nopLogger{})

	f.req = &Request{
		StudentName:  "Alice",
		StudentEmail: "alice@example.edu",
		RoomID:       f.rooms.room.ID,
		ProfessorIDs: []uuid.UUID{profA.ID, profB.ID},
		Date:         time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		Time:         "10:00:00",
	}
	return f
}

func TestExecuteSuccess(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)

	assert.Equal(t, f.defenses.created.ID, resp.DefenseID)
	assert.Equal(t, "Room 101", resp.RoomName)
	assert.Equal(t, f.req.ProfessorIDs, resp.ProfessorIDs)

	// Студент создан лениво по email
	require.Contains(t, f.students.byEmail, "alice@example.edu")
	assert.Equal(t, f.students.byEmail["alice@example.edu"].ID, resp.StudentID)

	// Уведомление поставлено в очередь
	require.Len(t, f.notifier.enqueued, 1)
	assert.Equal(t, "alice@example.edu", f.notifier.enqueued[0].StudentEmail)
	assert.Len(t, f.notifier.enqueued[0].Professors, 2)
}

func TestExecuteValidation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.StudentName = " " }},
		{"empty email", func(r *Request) { r.StudentEmail = "" }},
		{"not an email", func(r *Request) { r.StudentEmail = "alice" }},
		{"nil room", func(r *Request) { r.RoomID = uuid.Nil }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"zero time", func(r *Request) { r.Time = "" }},
		{"short time format", func(r *Request) { r.Time = "10:00" }},
		{"one professor", func(r *Request) { r.ProfessorIDs = r.ProfessorIDs[:1] }},
		{"duplicate professors", func(r *Request) { r.ProfessorIDs = []uuid.UUID{r.ProfessorIDs[0], r.ProfessorIDs[0]} }},
		{"nil professor", func(r *Request) { r.ProfessorIDs = []uuid.UUID{r.ProfessorIDs[0], uuid.Nil} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := *f.req
			req.ProfessorIDs = append([]uuid.UUID(nil), f.req.ProfessorIDs...)
			tt.mutate(&req)

			_, err := f.uc.Execute(context.Background(), &req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Валидация срабатывает до обращений к хранилищу
	assert.Equal(t, 0, f.students.getCalls)
}

func TestExecuteSlotTaken(t *testing.T) {
	f := newFixture()
	f.defenses.createErr = defenseRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), f.req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, f.notifier.enqueued)
}

func TestExecuteAlreadyBooked(t *testing.T) {
	f := newFixture()
	f.defenses.exists = true

	_, err := f.uc.Execute(context.Background(), f.req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecuteConcurrentStudentBookingRace(t *testing.T) {
	// Проверка "уже записан" прошла, но вставка напоролась на
	// уникальность student_id - конкурентная бронь того же студента
	f := newFixture()
	f.defenses.createErr = defenseRepo.ErrStudentAlreadyBooked

	_, err := f.uc.Execute(context.Background(), f.req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecuteRoomNotFound(t *testing.T) {
	f := newFixture()
	f.rooms.room = nil
	f.rooms.err = roomRepo.ErrRoomNotFound

	_, err := f.uc.Execute(context.Background(), f.req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecuteProfessorMissing(t *testing.T) {
	f := newFixture()
	f.professors.professors = f.professors.professors[:1]

	_, err := f.uc.Execute(context.Background(), f.req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfessorNotFound)
}

func TestExecuteCommitteeFailureCompensates(t *testing.T) {
	f := newFixture()
	f.defenses.committeeErr = errors.New("committee insert failed")

	_, err := f.uc.Execute(context.Background(), f.req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)

	// Частично созданная защита удалена компенсирующим удалением
	require.NotNil(t, f.defenses.created)
	assert.Equal(t, f.defenses.created.ID, f.defenses.deletedID)
	assert.Empty(t, f.notifier.enqueued)
}

func TestExecuteCompensationFailureSurfacesOriginalError(t *testing.T) {
	f := newFixture()
	f.defenses.committeeErr = errors.New("committee insert failed")
	f.defenses.deleteErr = errors.New("cleanup failed too")

	_, err := f.uc.Execute(context.Background(), f.req)
	require.Error(t, err)

	// Наружу уходит исходная ошибка комиссии, а не ошибка очистки
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "committee insert failed")
	assert.NotContains(t, err.Error(), "cleanup failed too")
}

func TestExecuteStudentUpsertRace(t *testing.T) {
	// Студента нет при первом чтении, вставка проигрывает гонку
	// (уникальный email), повторное чтение находит победителя
	f := newFixture()
	winner := &domain.Student{ID: uuid.New(), Name: "Alice", Email: "alice@example.edu"}

	f.students.getErrs = []error{studentRepo.ErrStudentNotFound, nil}
	f.students.createErr = studentRepo.ErrDuplicateEmail
	f.students.byEmail = map[string]*domain.Student{"alice@example.edu": winner}

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)

	assert.Equal(t, winner.ID, resp.StudentID)
	assert.Equal(t, 2, f.students.getCalls)
	assert.Equal(t, 1, f.students.createCall)
}

func TestExecuteEmailNormalized(t *testing.T) {
	f := newFixture()
	f.req.StudentEmail = "  Alice@Example.EDU "

	resp, err := f.uc.Execute(context.Background(), f.req)
	require.NoError(t, err)

	require.Contains(t, f.students.byEmail, "alice@example.edu")
	assert.Equal(t, f.students.byEmail["alice@example.edu"].ID, resp.StudentID)
}
