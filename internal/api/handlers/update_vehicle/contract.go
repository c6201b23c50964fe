package update_vehicle

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type FleetService interface {
	Update(ctx context.Context, id int64, update *domain.VehicleUpdate) (*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
