package scheduling

import (
	"sort"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// Window максимальный непрерывный интервал, на протяжении которого
// одновременно доступен один и тот же набор транспорта.
type Window struct {
	Count    int
	From     time.Time
	Until    time.Time
	Vehicles []*domain.Vehicle
}

// AvailabilityWindows вычисляет окна доступности для переданного
// подмножества транспорта (обычно уже отфильтрованного по бренду).
//
// Алгоритм - заметающая прямая по границам интервалов:
//  1. Собираем все границы (start/end) активных броней и активных блоков
//     простоя транспорта из подмножества, плюс asOf. Границы строго
//     раньше asOf отбрасываются - окна в прошлом не интересны.
//  2. Для каждой пары соседних границ (t_i, t_i+1) определяем набор
//     транспорта, доступного в t_i. Левой границы достаточно: внутри
//     (t_i, t_i+1) доступность измениться не может, все точки изменения
//     собраны на шаге 1.
//  3. Пустые наборы не порождают окон.
//  4. Соседние окна с совпадающей границей и одинаковым набором
//     транспорта склеиваются.
//
// Результат отсортирован по From, окна не пересекаются, соседние окна
// всегда отличаются набором транспорта. После последней границы окна
// не строятся: бесконечный хвост "всё свободно" не представим.
// Вычисление детерминировано - повторный запуск на том же снимке даёт
// идентичный результат.
func AvailabilityWindows(asOf time.Time, vehicles []*domain.Vehicle, bookings []*domain.Booking, downtime []*domain.DowntimeBlock) []Window {
	if len(vehicles) == 0 {
		return []Window{}
	}

	subset := make(map[int64]bool, len(vehicles))
	for _, v := range vehicles {
		subset[v.ID] = true
	}

	// Шаг 1: собираем границы
	boundarySet := make(map[int64]struct{})
	boundarySet[asOf.UnixNano()] = struct{}{}

	addBoundary := func(t time.Time) {
		if t.Before(asOf) {
			return
		}
		boundarySet[t.UnixNano()] = struct{}{}
	}

	for _, b := range bookings {
		if !subset[b.VehicleID] || !b.IsActive() {
			continue
		}
		addBoundary(b.StartTime)
		addBoundary(b.EndTime)
	}
	for _, d := range downtime {
		if !subset[d.VehicleID] || !d.IsActive() {
			continue
		}
		addBoundary(d.StartTime)
		addBoundary(d.EndTime)
	}

	boundaries := make([]int64, 0, len(boundarySet))
	for t := range boundarySet {
		boundaries = append(boundaries, t)
	}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i] < boundaries[j] })

	// Шаг 2-3: строим сырые окна по левой границе каждого подынтервала
	raw := make([]Window, 0, len(boundaries))

	for i := 0; i+1 < len(boundaries); i++ {
		from := time.Unix(0, boundaries[i]).UTC()
		until := time.Unix(0, boundaries[i+1]).UTC()

		free := AvailableVehicles(At(from), vehicles, bookings, downtime)
		if len(free) == 0 {
			continue
		}

		raw = append(raw, Window{
			Count:    len(free),
			From:     from,
			Until:    until,
			Vehicles: free,
		})
	}

	// Шаг 4: склеиваем соседние окна с одинаковым набором транспорта
	merged := make([]Window, 0, len(raw))
	for _, w := range raw {
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if last.Until.Equal(w.From) && sameVehicleSet(last.Vehicles, w.Vehicles) {
				last.Until = w.Until
				continue
			}
		}
		merged = append(merged, w)
	}

	return merged
}

// sameVehicleSet сравнивает наборы транспорта по ID без учёта порядка
func sameVehicleSet(a, b []*domain.Vehicle) bool {
	if len(a) != len(b) {
		return false
	}
	ids := make(map[int64]bool, len(a))
	for _, v := range a {
		ids[v.ID] = true
	}
	for _, v := range b {
		if !ids[v.ID] {
			return false
		}
	}
	return true
}
