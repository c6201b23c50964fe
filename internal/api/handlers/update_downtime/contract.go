package update_downtime

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type DowntimeService interface {
	Update(ctx context.Context, id int64, update *domain.DowntimeUpdate) (*domain.DowntimeBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
