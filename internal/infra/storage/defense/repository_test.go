package defense

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
)

func newRepoMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func testDefense() *domain.Defense {
	return &domain.Defense{
		StudentID: uuid.New(),
		RoomID:    uuid.New(),
		Date:      time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		Time:      "10:00:00",
	}
}

func TestCreate(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	d := testDefense()
	id := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO defenses (student_id,room_id,date,time) VALUES ($1,$2,$3,$4) RETURNING id, created_at")).
		WithArgs(d.StudentID, d.RoomID, d.Date, d.Time).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), createdAt))

	created, err := repo.Create(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSlotTaken(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO defenses")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "defenses_room_id_date_time_key"})

	_, err := repo.Create(context.Background(), testDefense())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateStudentAlreadyBooked(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO defenses")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "defenses_student_id_key"})

	_, err := repo.Create(context.Background(), testDefense())
	assert.ErrorIs(t, err, ErrStudentAlreadyBooked)
}

func TestCreateUnknownConstraintIsInternal(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO defenses")).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "something_else"})

	_, err := repo.Create(context.Background(), testDefense())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestAddCommittee(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	defenseID := uuid.New()
	profA := uuid.New()
	profB := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO defense_committee (defense_id,professor_id) VALUES ($1,$2),($3,$4)")).
		WithArgs(defenseID, profA, defenseID, profB).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.AddCommittee(context.Background(), defenseID, []uuid.UUID{profA, profB})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM defenses WHERE id = $1")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDefenseNotFound)
}

func TestExistsByStudent(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	studentID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM defenses WHERE student_id = $1 LIMIT 1")).
		WithArgs(studentID).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByStudent(context.Background(), studentID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExistsByStudentNoRows(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM defenses")).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := repo.ExistsByStudent(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListWithCommitteeFoldsJoinRows(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	defenseID := uuid.New()
	studentID := uuid.New()
	roomID := uuid.New()
	profA := uuid.New()
	profB := uuid.New()
	date := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	createdAt := time.Now()

	rows := sqlmock.NewRows([]string{"id", "student_id", "room_id", "date", "time", "created_at", "professor_id"}).
		AddRow(defenseID.String(), studentID.String(), roomID.String(), date, "10:00:00", createdAt, profA.String()).
		AddRow(defenseID.String(), studentID.String(), roomID.String(), date, "10:00:00", createdAt, profB.String())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT d.id, d.student_id, d.room_id, d.date, d.time, d.created_at, c.professor_id FROM defenses d")).
		WillReturnRows(rows)

	defenses, err := repo.ListWithCommittee(context.Background())
	require.NoError(t, err)

	// Две строки join-а свернуты в одну защиту с двумя читателями
	require.Len(t, defenses, 1)
	assert.Equal(t, defenseID, defenses[0].ID)
	assert.ElementsMatch(t, []uuid.UUID{profA, profB}, defenses[0].CommitteeIDs)
}
