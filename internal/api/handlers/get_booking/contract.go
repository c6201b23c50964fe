package get_booking

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type BookingsService interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
