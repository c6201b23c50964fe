package availability_windows

import (
	"context"

	availabilityWindows "github.com/dmkvsk/JSR-FleetService/internal/usecase/availability_windows"
)

type AvailabilityWindowsUseCase interface {
	Execute(ctx context.Context, req *availabilityWindows.Request) (*availabilityWindows.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
