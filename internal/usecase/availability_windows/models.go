package availability_windows

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/scheduling"
)

// Request модель запроса окон доступности
type Request struct {
	Brand string     // Бренд гидроциклов (обязательный)
	AsOf  *time.Time // Момент отсчета (опционально, по умолчанию сейчас)
}

// VehicleInfo краткие данные гидроцикла в окне доступности
type VehicleInfo struct {
	ID     int64
	Name   string
	Brand  string
	Status string
}

// Window окно доступности: интервал, в течение которого состав
// свободных гидроциклов бренда не меняется
type Window struct {
	Count    int
	From     time.Time
	Until    time.Time
	Vehicles []VehicleInfo
}

// Response модель ответа с окнами доступности
type Response struct {
	Brand   string
	AsOf    time.Time
	Windows []Window
}

// fromSchedulingWindows конвертирует окна ядра планирования в ответ usecase
func fromSchedulingWindows(windows []scheduling.Window) []Window {
	out := make([]Window, 0, len(windows))
	for _, w := range windows {
		vehicles := make([]VehicleInfo, 0, len(w.Vehicles))
		for _, v := range w.Vehicles {
			vehicles = append(vehicles, VehicleInfo{
				ID:     v.ID,
				Name:   v.Name,
				Brand:  v.Brand,
				Status: string(v.Status),
			})
		}
		out = append(out, Window{
			Count:    w.Count,
			From:     w.From,
			Until:    w.Until,
			Vehicles: vehicles,
		})
	}
	return out
}
