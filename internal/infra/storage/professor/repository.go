package professor

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

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Repository репозиторий профессоров
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий профессоров
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает всех профессоров, отсортированных по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Professor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "created_at").
		From("professors").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanProfessors(rows)
}

// GetByIDs возвращает профессоров по списку идентификаторов.
// Отсутствующие ids не считаются ошибкой - результат может быть короче запроса.
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Professor, error) {
	if len(ids) == 0 {
		return []*domain.Professor{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "created_at").
		From("professors").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanProfessors(rows)
}

// Create создает профессора; занятый email транслируется в ErrDuplicateEmail
func (r *Repository) Create(ctx context.Context, name, email string) (*domain.Professor, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professors").
		Columns("name", "email").
		Values(name, email).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	prof := domain.Professor{Name: name, Email: email}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&prof.ID, &prof.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &prof, nil
}

// Delete удаляет профессора.
// FK-ограничение defense_committee.professor_id запрещает удаление
// участника комиссии - нарушение транслируется в ErrProfessorInUse.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("professors").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgForeignKeyViolation {
			return ErrProfessorInUse
		}
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrProfessorNotFound
	}

	return nil
}

func scanProfessors(rows *sql.Rows) ([]*domain.Professor, error) {
	professors := make([]*domain.Professor, 0)
	for rows.Next() {
		var prof domain.Professor
		if err := rows.Scan(&prof.ID, &prof.Name, &prof.Email, &prof.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan professor: %v", ErrScanRow, err)
		}
		professors = append(professors, &prof)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}
	return professors, nil
}
