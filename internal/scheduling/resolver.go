package scheduling

import "github.com/dmkvsk/JSR-FleetService/internal/domain"

// AvailableVehicles возвращает транспорт, свободный на интервале iv.
//
// Транспорт считается свободным, если его базовый статус available
// И ни одна активная бронь и ни один активный блок простоя
// не пересекаются с iv. Порядок результата повторяет порядок входа.
func AvailableVehicles(iv Interval, vehicles []*domain.Vehicle, bookings []*domain.Booking, downtime []*domain.DowntimeBlock) []*domain.Vehicle {
	result := make([]*domain.Vehicle, 0, len(vehicles))

	for _, v := range vehicles {
		if !v.IsAvailable() {
			continue
		}
		if Conflicts(v.ID, iv, bookings, downtime) {
			continue
		}
		result = append(result, v)
	}

	return result
}
