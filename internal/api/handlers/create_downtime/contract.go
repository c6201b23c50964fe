package create_downtime

import (
	"context"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

type DowntimeService interface {
	Create(ctx context.Context, block *domain.DowntimeBlock) (*domain.DowntimeBlock, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
