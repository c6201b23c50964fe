package get_vehicle

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type FleetService interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
