package availability_windows

import (
	"time"

	availabilityWindows "github.com/dmkvsk/JSR-FleetService/internal/usecase/availability_windows"
)

// VehicleResponse краткие данные гидроцикла в окне
type VehicleResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Brand  string `json:"brand"`
	Status string `json:"status"`
}

// WindowResponse окно доступности
type WindowResponse struct {
	Count    int               `json:"count"`
	From     string            `json:"from"`
	Until    string            `json:"until"`
	Vehicles []VehicleResponse `json:"vehicles"`
}

// WindowsResponse HTTP response model
type WindowsResponse struct {
	Brand   string           `json:"brand"`
	AsOf    string           `json:"asOf"`
	Windows []WindowResponse `json:"windows"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *availabilityWindows.Response) *WindowsResponse {
	windows := make([]WindowResponse, 0, len(resp.Windows))
	for _, w := range resp.Windows {
		vehicles := make([]VehicleResponse, 0, len(w.Vehicles))
		for _, v := range w.Vehicles {
			vehicles = append(vehicles, VehicleResponse{
				ID:     v.ID,
				Name:   v.Name,
				Brand:  v.Brand,
				Status: v.Status,
			})
		}
		windows = append(windows, WindowResponse{
			Count:    w.Count,
			From:     w.From.Format(time.RFC3339),
			Until:    w.Until.Format(time.RFC3339),
			Vehicles: vehicles,
		})
	}

	return &WindowsResponse{
		Brand:   resp.Brand,
		AsOf:    resp.AsOf.Format(time.RFC3339),
		Windows: windows,
	}
}
