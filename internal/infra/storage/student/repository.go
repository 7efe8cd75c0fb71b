package student

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenseService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

// Repository репозиторий студентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий студентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail возвращает студента по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "created_at").
		From("students").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Student
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Email, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrStudentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan student: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Create создает студента.
// Уникальность email обеспечивает constraint students_email_key; при гонке
// двух одинаковых созданий проигравший получает ErrDuplicateEmail и должен
// перечитать запись через GetByEmail.
func (r *Repository) Create(ctx context.Context, name, email string) (*domain.Student, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("students").
		Columns("name", "email").
		Values(name, email).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	s := domain.Student{Name: name, Email: email}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &s, nil
}
