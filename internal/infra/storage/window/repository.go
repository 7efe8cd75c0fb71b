package window

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenseService/pkg/psqlbuilder"
)

// Repository репозиторий окна защит (таблица oral_time_period)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий окна защит
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCurrent возвращает активное окно защит.
// Активным считается самое свежее по created_at - единственная точка,
// где применяется правило "последняя запись побеждает".
func (r *Repository) GetCurrent(ctx context.Context) (*domain.DefenseWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "period_start", "period_end", "created_at").
		From("oral_time_period").
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrent - build select query: %v", ErrBuildQuery, err)
	}

	var w domain.DefenseWindow
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&w.ID,
		&w.PeriodStart,
		&w.PeriodEnd,
		&w.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCurrent - scan window: %v", ErrScanRow, err)
	}

	return &w, nil
}

// Save сохраняет окно защит.
// С нулевым ID вставляет новую запись, иначе обновляет существующую -
// при штатной работе в таблице остается одна строка.
func (r *Repository) Save(ctx context.Context, w *domain.DefenseWindow) (*domain.DefenseWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if w.ID == uuid.Nil {
		return r.insert(ctx, executor, w)
	}
	return r.update(ctx, executor, w)
}

func (r *Repository) insert(ctx context.Context, executor dbmetrics.DBExecutor, w *domain.DefenseWindow) (*domain.DefenseWindow, error) {
	query, args, err := psqlbuilder.Insert("oral_time_period").
		Columns("period_start", "period_end").
		Values(w.PeriodStart, w.PeriodEnd).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Save - execute insert: %v", ErrExecQuery, err)
	}

	return w, nil
}

func (r *Repository) update(ctx context.Context, executor dbmetrics.DBExecutor, w *domain.DefenseWindow) (*domain.DefenseWindow, error) {
	query, args, err := psqlbuilder.Update("oral_time_period").
		Set("period_start", w.PeriodStart).
		Set("period_end", w.PeriodEnd).
		Where(squirrel.Eq{"id": w.ID}).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Save - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&w.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Save - execute update: %v", ErrExecQuery, err)
	}

	return w, nil
}
