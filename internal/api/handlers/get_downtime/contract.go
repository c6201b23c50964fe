package get_downtime

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type DowntimeService interface {
	GetByID(ctx context.Context, id int64) (*domain.DowntimeBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
