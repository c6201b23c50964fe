package list_vehicles

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type FleetService interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
