package create_booking

import (
	"context"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListActiveForVehicle(ctx context.Context, vehicleID int64) ([]domain.Booking, error)
}

// VehicleRepository интерфейс репозитория транспорта
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// DowntimeRepository интерфейс репозитория блоков простоя
type DowntimeRepository interface {
	ListActiveForVehicle(ctx context.Context, vehicleID int64) ([]domain.DowntimeBlock, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
