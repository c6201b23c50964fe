package vehicle

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

const tableName = "vehicles"

var columns = []string{
	"id",
	"name",
	"brand",
	"status",
	"last_maintenance_date",
	"hours_used",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с транспортом флота
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория транспорта
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую единицу транспорта
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"name",
			"brand",
			"status",
			"last_maintenance_date",
			"hours_used",
		).
		Values(
			v.Name,
			v.Brand,
			v.Status,
			v.LastMaintenanceDate,
			v.HoursUsed,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает транспорт по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	v, err := scanVehicle(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %v", ErrScanRow, err)
	}

	return v, nil
}

// List получает весь транспорт флота в порядке создания
func (r *Repository) List(ctx context.Context) ([]domain.Vehicle, error) {
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

	return r.scanVehicles(rows)
}

// ListByBrand получает транспорт указанного бренда (регистронезависимо)
func (r *Repository) ListByBrand(ctx context.Context, brand string) ([]domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Expr("LOWER(brand) = LOWER(?)", brand)).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBrand - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBrand - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanVehicles(rows)
}

// Update обновляет непустые поля транспорта
func (r *Repository) Update(ctx context.Context, id int64, upd *domain.VehicleUpdate) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update(tableName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
	}
	if upd.Brand != nil {
		builder = builder.Set("brand", *upd.Brand)
	}
	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
	}
	if upd.LastMaintenanceDate != nil {
		builder = builder.Set("last_maintenance_date", *upd.LastMaintenanceDate)
	}
	if upd.HoursUsed != nil {
		builder = builder.Set("hours_used", *upd.HoursUsed)
	}

	query, args, err := builder.
		Suffix("RETURNING " + columnList()).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	v, err := scanVehicle(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - scan vehicle: %v", ErrScanRow, err)
	}

	return v, nil
}

// UpdateStatus обновляет только статус транспорта.
// Используется автоматическими переходами при создании/завершении простоя.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// Delete удаляет транспорт (физическое удаление).
// Проверка на активные брони/простои выполняется на уровне сервиса.
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
		return ErrVehicleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var lastMaintenance, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Brand,
		&v.Status,
		&lastMaintenance,
		&v.HoursUsed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastMaintenance.Valid {
		v.LastMaintenanceDate = &lastMaintenance.Time
	}
	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

// scanVehicles сканирует результаты запроса в слайс транспорта
func (r *Repository) scanVehicles(rows *sql.Rows) ([]domain.Vehicle, error) {
	vehicles := make([]domain.Vehicle, 0)

	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVehicles - scan row: %v", ErrScanRow, err)
		}
		vehicles = append(vehicles, *v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVehicles - rows error: %v", ErrScanRow, err)
	}

	return vehicles, nil
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
