package fleet

import (
	"context"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// VehicleRepository интерфейс репозитория транспорта
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)
	Update(ctx context.Context, id int64, update *domain.VehicleUpdate) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveForVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// DowntimeRepository интерфейс репозитория блоков простоя
type DowntimeRepository interface {
	ListActiveForVehicle(ctx context.Context, vehicleID int64) ([]domain.DowntimeBlock, error)
	CountActiveByType(ctx context.Context, downtimeType domain.DowntimeType) (int64, error)
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
