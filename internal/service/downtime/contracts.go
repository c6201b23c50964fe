package downtime

import (
	"context"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// DowntimeRepository интерфейс репозитория блоков простоя
type DowntimeRepository interface {
	Create(ctx context.Context, block *domain.DowntimeBlock) (*domain.DowntimeBlock, error)
	GetByID(ctx context.Context, id int64) (*domain.DowntimeBlock, error)
	List(ctx context.Context) ([]domain.DowntimeBlock, error)
	Update(ctx context.Context, id int64, update *domain.DowntimeUpdate) (*domain.DowntimeBlock, error)
	Delete(ctx context.Context, id int64) error
}

// VehicleRepository интерфейс репозитория транспорта
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
