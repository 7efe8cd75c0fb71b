package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DefenseService/internal/domain"
	"github.com/m04kA/SMC-DefenseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-DefenseService/pkg/psqlbuilder"
)

// Filter фильтр слотов доступности
type Filter struct {
	OwnerType *domain.OwnerType // nil - оба типа владельцев
	OwnerID   *uuid.UUID        // nil - все владельцы
}

// Repository репозиторий слотов доступности (таблица availability)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий слотов доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает слоты доступности с фильтрацией по типу и владельцу,
// отсортированные по дате и времени начала
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.AvailabilitySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"person_id",
		"person_type",
		"slot_date",
		"start_time",
		"end_time",
		"created_at",
	).
		From("availability").
		OrderBy("slot_date ASC", "start_time ASC")

	if filter.OwnerType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"person_type": string(*filter.OwnerType)})
	}
	if filter.OwnerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"person_id": *filter.OwnerID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// CreateBatch вставляет пачку слотов одним запросом
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.AvailabilitySlot) ([]*domain.AvailabilitySlot, error) {
	if len(slots) == 0 {
		return []*domain.AvailabilitySlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability").
		Columns("person_id", "person_type", "slot_date", "start_time", "end_time")

	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(
			slot.OwnerID,
			string(slot.OwnerType),
			slot.Date,
			slot.StartTime,
			slot.EndTime,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, person_id, person_type, slot_date, start_time, end_time, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// Update обновляет дату и времена существующего слота
func (r *Repository) Update(ctx context.Context, slot *domain.AvailabilitySlot) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability").
		Set("slot_date", slot.Date).
		Set("start_time", slot.StartTime).
		Set("end_time", slot.EndTime).
		Where(squirrel.Eq{"id": slot.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete удаляет слот доступности
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
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
		return ErrSlotNotFound
	}

	return nil
}

// DeleteOutsideWindow удаляет слоты с датами вне диапазона [start, end].
// Вызывается при смене окна защит; возвращает число удаленных строк.
func (r *Repository) DeleteOutsideWindow(ctx context.Context, start, end time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability").
		Where(squirrel.Or{
			squirrel.Lt{"slot_date": start},
			squirrel.Gt{"slot_date": end},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOutsideWindow - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOutsideWindow - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOutsideWindow - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

func scanSlots(rows *sql.Rows) ([]*domain.AvailabilitySlot, error) {
	slots := make([]*domain.AvailabilitySlot, 0)
	for rows.Next() {
		var slot domain.AvailabilitySlot
		var ownerType string
		if err := rows.Scan(
			&slot.ID,
			&slot.OwnerID,
			&ownerType,
			&slot.Date,
			&slot.StartTime,
			&slot.EndTime,
			&slot.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scan slot: %v", ErrScanRow, err)
		}
		slot.OwnerType = domain.OwnerType(ownerType)
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %v", ErrScanRow, err)
	}
	return slots, nil
}
