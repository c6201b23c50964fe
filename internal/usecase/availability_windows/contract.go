package availability_windows

import (
	"context"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// VehicleRepository интерфейс репозитория транспорта
type VehicleRepository interface {
	ListByBrand(ctx context.Context, brand string) ([]domain.Vehicle, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActive(ctx context.Context) ([]domain.Booking, error)
}

// DowntimeRepository интерфейс репозитория блоков простоя
type DowntimeRepository interface {
	ListActive(ctx context.Context) ([]domain.DowntimeBlock, error)
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
