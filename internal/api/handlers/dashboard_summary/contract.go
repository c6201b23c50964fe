package dashboard_summary

import (
	"context"

	fleetService "github.com/dmkvsk/JSR-FleetService/internal/service/fleet"
)

type FleetService interface {
	DashboardSummary(ctx context.Context) (*fleetService.DashboardSummary, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
