package downtime

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	"github.com/dmkvsk/JSR-FleetService/pkg/dbmetrics"
	"github.com/dmkvsk/JSR-FleetService/pkg/psqlbuilder"
)

const tableName = "downtime_blocks"

var columns = []string{
	"id",
	"vehicle_id",
	"type",
	"start_time",
	"end_time",
	"completed",
	"notes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с блоками простоя
// (обслуживание, заправка, ремонт)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блоков простоя
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый блок простоя
func (r *Repository) Create(ctx context.Context, d *domain.DowntimeBlock) (*domain.DowntimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"vehicle_id",
			"type",
			"start_time",
			"end_time",
			"completed",
			"notes",
		).
		Values(
			d.VehicleID,
			d.Type,
			d.StartTime,
			d.EndTime,
			d.Completed,
			d.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByID получает блок простоя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DowntimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	d, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDowntimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan downtime block: %v", ErrScanRow, err)
	}

	return d, nil
}

// List получает все блоки простоя в порядке создания
func (r *Repository) List(ctx context.Context) ([]domain.DowntimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// ListActive получает незавершённые блоки простоя.
// Используется как снимок для проверок пересечений и аггрегации окон.
// Внутри транзакции добавляет FOR UPDATE.
func (r *Repository) ListActive(ctx context.Context) ([]domain.DowntimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"completed": false}).
		OrderBy("start_time ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// ListActiveForVehicle получает незавершённые блоки простоя одного транспорта.
// Используется guard-проверкой при удалении транспорта.
func (r *Repository) ListActiveForVehicle(ctx context.Context, vehicleID int64) ([]domain.DowntimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"vehicle_id": vehicleID, "completed": false}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForVehicle - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForVehicle - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBlocks(rows)
}

// CountActiveByType подсчитывает незавершённые блоки указанного типа.
// Используется дашбордом (pending maintenance / refueling needed).
func (r *Repository) CountActiveByType(ctx context.Context, t domain.DowntimeType) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(tableName).
		Where(squirrel.Eq{"completed": false, "type": t}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByType - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByType - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет непустые поля блока простоя
func (r *Repository) Update(ctx context.Context, id int64, upd *domain.DowntimeUpdate) (*domain.DowntimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(tableName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.VehicleID != nil {
		builder = builder.Set("vehicle_id", *upd.VehicleID)
	}
	if upd.Type != nil {
		builder = builder.Set("type", *upd.Type)
	}
	if upd.StartTime != nil {
		builder = builder.Set("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		builder = builder.Set("end_time", *upd.EndTime)
	}
	if upd.Completed != nil {
		builder = builder.Set("completed", *upd.Completed)
	}
	if upd.Notes != nil {
		builder = builder.Set("notes", *upd.Notes)
	}

	query, args, err := builder.
		Suffix("RETURNING " + columnList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	d, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDowntimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan downtime block: %v", ErrScanRow, err)
	}

	return d, nil
}

// Delete удаляет блок простоя (без побочных эффектов на статус транспорта)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
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
		return ErrDowntimeNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlock(row rowScanner) (*domain.DowntimeBlock, error) {
	var d domain.DowntimeBlock
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.VehicleID,
		&d.Type,
		&d.StartTime,
		&d.EndTime,
		&d.Completed,
		&d.Notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

// scanBlocks сканирует результаты запроса в слайс блоков простоя
func (r *Repository) scanBlocks(rows *sql.Rows) ([]domain.DowntimeBlock, error) {
	blocks := make([]domain.DowntimeBlock, 0)

	for rows.Next() {
		d, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

func columnList() string {
	list := ""
	for i, c := range columns {
		if i > 0 {
			list += ", "
		}
		list += c
	}
	return list
}
