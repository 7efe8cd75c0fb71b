package defense

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenseService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Имена constraint-ов из миграции 001_init.sql.
// По ним различаем, какая именно уникальность нарушена.
const (
	constraintRoomSlot = "defenses_room_id_date_time_key"
	constraintStudent  = "defenses_student_id_key"
)

// Repository репозиторий защит и их комиссий
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий защит
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает защиту.
// Корректность при конкурентных бронированиях обеспечивают уникальные
// ограничения на (room_id, date, time) и student_id - их нарушения
// транслируются в ErrSlotTaken и ErrStudentAlreadyBooked соответственно.
func (r *Repository) Create(ctx context.Context, d *domain.Defense) (*domain.Defense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("defenses").
		Columns("student_id", "room_id", "date", "time").
		Values(d.StudentID, d.RoomID, d.Date, d.Time).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			switch pqErr.Constraint {
			case constraintRoomSlot:
				return nil, ErrSlotTaken
			case constraintStudent:
				return nil, ErrStudentAlreadyBooked
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return d, nil
}

// AddCommittee вставляет строки комиссии для защиты
func (r *Repository) AddCommittee(ctx context.Context, defenseID uuid.UUID, professorIDs []uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("defense_committee").
		Columns("defense_id", "professor_id")
	for _, profID := range professorIDs {
		insertBuilder = insertBuilder.Values(defenseID, profID)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddCommittee - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddCommittee - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет защиту
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("defenses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrDefenseNotFound
	}

	return nil
}

// DeleteCommittee удаляет строки комиссии защиты.
// Отсутствие строк не ошибка - защита могла остаться без комиссии
// после неудачной компенсации.
func (r *Repository) DeleteCommittee(ctx context.Context, defenseID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("defense_committee").
		Where(squirrel.Eq{"defense_id": defenseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteCommittee - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteCommittee - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// ExistsByStudent проверяет, есть ли у студента защита
func (r *Repository) ExistsByStudent(ctx context.Context, studentID uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("defenses").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByStudent - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByStudent - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListWithCommittee возвращает все защиты со списками профессоров комиссий.
// Строки join-а сворачиваются в Go - по одной Defense на защиту.
func (r *Repository) ListWithCommittee(ctx context.Context) ([]*domain.Defense, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"d.id",
		"d.student_id",
		"d.room_id",
		"d.date",
		"d.time",
		"d.created_at",
		"c.professor_id",
	).
		From("defenses d").
		LeftJoin("defense_committee c ON c.defense_id = d.id").
		OrderBy("d.date ASC", "d.time ASC", "d.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithCommittee - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithCommittee - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	defenses := make([]*domain.Defense, 0)
	byID := make(map[uuid.UUID]*domain.Defense)

	for rows.Next() {
		var d domain.Defense
		var professorID uuid.NullUUID
		if err := rows.Scan(&d.ID, &d.StudentID, &d.RoomID, &d.Date, &d.Time, &d.CreatedAt, &professorID); err != nil {
			return nil, fmt.Errorf("%w: ListWithCommittee - scan row: %v", ErrScanRow, err)
		}

		existing, ok := byID[d.ID]
		if !ok {
			d.CommitteeIDs = make([]uuid.UUID, 0, domain.CommitteeSize)
			byID[d.ID] = &d
			defenses = append(defenses, &d)
			existing = &d
		}
		if professorID.Valid {
			existing.CommitteeIDs = append(existing.CommitteeIDs, professorID.UUID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithCommittee - rows error: %v", ErrScanRow, err)
	}

	return defenses, nil
}

// ListDetails возвращает защиты с именами студента, аудитории и читателей
// для административного списка, отсортированные по дате и времени
func (r *Repository) ListDetails(ctx context.Context) ([]*domain.DefenseDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"d.id",
		"d.date",
		"d.time",
		"s.name",
		"s.email",
		"r.name",
		"p.name",
	).
		From("defenses d").
		Join("students s ON s.id = d.student_id").
		Join("rooms r ON r.id = d.room_id").
		LeftJoin("defense_committee c ON c.defense_id = d.id").
		LeftJoin("professors p ON p.id = c.professor_id").
		OrderBy("d.date ASC", "d.time ASC", "d.id ASC", "p.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	details := make([]*domain.DefenseDetails, 0)
	byID := make(map[uuid.UUID]*domain.DefenseDetails)

	for rows.Next() {
		var d domain.DefenseDetails
		var readerName *string
		if err := rows.Scan(&d.ID, &d.Date, &d.Time, &d.StudentName, &d.StudentEmail, &d.RoomName, &readerName); err != nil {
			return nil, fmt.Errorf("%w: ListDetails - scan row: %v", ErrScanRow, err)
		}

		existing, ok := byID[d.ID]
		if !ok {
			d.Readers = make([]string, 0, domain.CommitteeSize)
			byID[d.ID] = &d
			details = append(details, &d)
			existing = &d
		}
		if readerName != nil {
			existing.Readers = append(existing.Readers, *readerName)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetails - rows error: %v", ErrScanRow, err)
	}

	return details, nil
}
