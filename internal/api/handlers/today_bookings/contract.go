package today_bookings

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type BookingsService interface {
	ListToday(ctx context.Context) ([]domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
