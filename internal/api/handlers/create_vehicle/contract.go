package create_vehicle

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type FleetService interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
