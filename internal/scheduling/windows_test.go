package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

func windowIDs(w Window) []int64 {
	ids := make([]int64, 0, len(w.Vehicles))
	for _, v := range w.Vehicles {
		ids = append(ids, v.ID)
	}
	return ids
}

func TestAvailabilityWindows_EmptySubset(t *testing.T) {
	windows := AvailabilityWindows(at(9, 0), nil, nil, nil)
	assert.Empty(t, windows)

	windows = AvailabilityWindows(at(9, 0), []*domain.Vehicle{}, nil, nil)
	assert.Empty(t, windows)
}

func TestAvailabilityWindows_NoBookingsNoDowntime(t *testing.T) {
	// Единственная граница - asOf, пар нет, окон нет
	vehicles := []*domain.Vehicle{vehicle(1, "A", "Hardliner", domain.VehicleAvailable)}
	windows := AvailabilityWindows(at(9, 0), vehicles, nil, nil)
	assert.Empty(t, windows)
}

// Сценарий: три машины одного бренда, V1 свободна весь день,
// у V2 активная бронь 13:00-14:30, у V3 незавершённый простой 08:00-12:00.
// asOf = 09:00.
func TestAvailabilityWindows_Scenario(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "V2", "Hardliner", domain.VehicleAvailable),
		vehicle(3, "V3", "Hardliner", domain.VehicleAvailable),
	}
	bookings := []*domain.Booking{
		booking(1, 2, at(13, 0), at(14, 30), domain.StatusScheduled),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 3, at(8, 0), at(12, 0), false),
	}

	windows := AvailabilityWindows(at(9, 0), vehicles, bookings, downtime)
	require.Len(t, windows, 3)

	// [09:00, 12:00): V3 в простое
	assert.True(t, windows[0].From.Equal(at(9, 0)))
	assert.True(t, windows[0].Until.Equal(at(12, 0)))
	assert.ElementsMatch(t, []int64{1, 2}, windowIDs(windows[0]))
	assert.Equal(t, 2, windows[0].Count)

	// [12:00, 13:00): все свободны
	assert.True(t, windows[1].From.Equal(at(12, 0)))
	assert.True(t, windows[1].Until.Equal(at(13, 0)))
	assert.ElementsMatch(t, []int64{1, 2, 3}, windowIDs(windows[1]))
	assert.Equal(t, 3, windows[1].Count)

	// [13:00, 14:30): бронь убирает V2
	assert.True(t, windows[2].From.Equal(at(13, 0)))
	assert.True(t, windows[2].Until.Equal(at(14, 30)))
	assert.ElementsMatch(t, []int64{1, 3}, windowIDs(windows[2]))
	assert.Equal(t, 2, windows[2].Count)
}

// Машина, освобождающаяся ровно на границе блока, входит в окно,
// начинающееся в этот момент, а не пропадает из него
func TestAvailabilityWindows_VehicleFreedAtBlockEnd(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(3, "V3", "Hardliner", domain.VehicleAvailable),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 3, at(8, 0), at(12, 0), false),
	}

	windows := AvailabilityWindows(at(9, 0), vehicles, nil, downtime)
	require.Len(t, windows, 1)

	// Окно [09:00, 12:00) без V3; склейки с несуществующим хвостом нет
	assert.True(t, windows[0].From.Equal(at(9, 0)))
	assert.True(t, windows[0].Until.Equal(at(12, 0)))
	assert.ElementsMatch(t, []int64{1}, windowIDs(windows[0]))

	// В сам момент 12:00 V3 уже свободна
	free := AvailableVehicles(At(at(12, 0)), vehicles, nil, downtime)
	assert.ElementsMatch(t, []int64{1, 3}, windowIDs(Window{Vehicles: free}))
}

// Базовый статус не available исключает машину из всех окон,
// но границы её броней по-прежнему учитываются
func TestAvailabilityWindows_NonAvailableBaseStatus(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "V2", "Hardliner", domain.VehicleInUse),
		vehicle(3, "V3", "Hardliner", domain.VehicleAvailable),
	}
	bookings := []*domain.Booking{
		booking(1, 2, at(13, 0), at(14, 30), domain.StatusScheduled),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 3, at(8, 0), at(12, 0), false),
	}

	windows := AvailabilityWindows(at(9, 0), vehicles, bookings, downtime)
	require.Len(t, windows, 2)

	assert.True(t, windows[0].From.Equal(at(9, 0)))
	assert.True(t, windows[0].Until.Equal(at(12, 0)))
	assert.ElementsMatch(t, []int64{1}, windowIDs(windows[0]))

	// [12:00,13:00) и [13:00,14:30) дают одинаковый набор {V1,V3} и склеиваются
	assert.True(t, windows[1].From.Equal(at(12, 0)))
	assert.True(t, windows[1].Until.Equal(at(14, 30)))
	assert.ElementsMatch(t, []int64{1, 3}, windowIDs(windows[1]))
}

func TestAvailabilityWindows_MergesIdenticalAdjacentSets(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "V2", "Hardliner", domain.VehicleAvailable),
	}
	// Две брони V2 встык: границы 10:00, 11:00, 12:00,
	// но набор доступных {V1} на обоих подынтервалах одинаков
	bookings := []*domain.Booking{
		booking(1, 2, at(10, 0), at(11, 0), domain.StatusScheduled),
		booking(2, 2, at(11, 0), at(12, 0), domain.StatusScheduled),
	}

	windows := AvailabilityWindows(at(10, 0), vehicles, bookings, nil)
	require.Len(t, windows, 1)
	assert.True(t, windows[0].From.Equal(at(10, 0)))
	assert.True(t, windows[0].Until.Equal(at(12, 0)))
	assert.ElementsMatch(t, []int64{1}, windowIDs(windows[0]))
}

func TestAvailabilityWindows_PastBoundariesDropped(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "V2", "Hardliner", domain.VehicleAvailable),
	}
	// Бронь целиком в прошлом не порождает окон до asOf
	bookings := []*domain.Booking{
		booking(1, 2, at(6, 0), at(7, 0), domain.StatusScheduled),
		booking(2, 2, at(10, 0), at(11, 0), domain.StatusScheduled),
	}

	windows := AvailabilityWindows(at(9, 0), vehicles, bookings, nil)
	require.NotEmpty(t, windows)
	assert.False(t, windows[0].From.Before(at(9, 0)))
}

func TestAvailabilityWindows_CancelledAndCompletedIgnored(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "V2", "Hardliner", domain.VehicleAvailable),
	}
	bookings := []*domain.Booking{
		booking(1, 2, at(10, 0), at(11, 0), domain.StatusCancelled),
		booking(2, 2, at(11, 0), at(12, 0), domain.StatusCompleted),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 1, at(10, 0), at(12, 0), true),
	}

	// Неактивные записи не дают ни границ, ни конфликтов
	windows := AvailabilityWindows(at(9, 0), vehicles, bookings, downtime)
	assert.Empty(t, windows)
}

// Инварианты аггрегатора: окна дизъюнктны, упорядочены по From,
// соседние окна различаются набором, Count == len(Vehicles)
func TestAvailabilityWindows_Invariants(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "V2", "Hardliner", domain.VehicleAvailable),
		vehicle(3, "V3", "Hardliner", domain.VehicleAvailable),
		vehicle(4, "V4", "Hardliner", domain.VehicleBroken),
	}
	bookings := []*domain.Booking{
		booking(1, 1, at(9, 30), at(10, 15), domain.StatusScheduled),
		booking(2, 2, at(10, 0), at(11, 45), domain.StatusInProgress),
		booking(3, 3, at(10, 15), at(10, 45), domain.StatusInterrupted),
		booking(4, 1, at(12, 0), at(13, 0), domain.StatusScheduled),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 3, at(11, 0), at(12, 30), false),
		block(2, 2, at(13, 0), at(14, 0), false),
	}

	windows := AvailabilityWindows(at(9, 0), vehicles, bookings, downtime)
	require.NotEmpty(t, windows)

	for i, w := range windows {
		assert.True(t, w.From.Before(w.Until), "window %d is empty or inverted", i)
		assert.Equal(t, len(w.Vehicles), w.Count, "window %d count mismatch", i)
		assert.NotEmpty(t, w.Vehicles, "window %d has empty vehicle set", i)

		if i > 0 {
			prev := windows[i-1]
			assert.False(t, w.From.Before(prev.Until), "windows %d and %d overlap", i-1, i)
			if prev.Until.Equal(w.From) {
				assert.False(t, sameVehicleSet(prev.Vehicles, w.Vehicles),
					"adjacent windows %d and %d share an identical vehicle set", i-1, i)
			}
		}
	}
}

// Полнота: в любой момент внутри окна набор транспорта совпадает
// с результатом резолвера для вырожденного интервала в этот момент
func TestAvailabilityWindows_Completeness(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "V2", "Hardliner", domain.VehicleAvailable),
		vehicle(3, "V3", "Hardliner", domain.VehicleAvailable),
	}
	bookings := []*domain.Booking{
		booking(1, 2, at(13, 0), at(14, 30), domain.StatusScheduled),
		booking(2, 1, at(9, 30), at(10, 30), domain.StatusScheduled),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 3, at(8, 0), at(12, 0), false),
	}

	windows := AvailabilityWindows(at(9, 0), vehicles, bookings, downtime)
	require.NotEmpty(t, windows)

	for _, w := range windows {
		// Проверяем начало, середину и точку перед концом окна
		samples := []time.Time{w.From, w.From.Add(w.Until.Sub(w.From) / 2), w.Until.Add(-time.Nanosecond)}
		for _, ts := range samples {
			free := AvailableVehicles(At(ts), vehicles, bookings, downtime)
			assert.ElementsMatch(t, windowIDs(w), windowIDs(Window{Vehicles: free}),
				"window [%s, %s) at %s", w.From, w.Until, ts)
		}
	}
}

// Идемпотентность: повторный запуск на том же снимке даёт идентичный результат
func TestAvailabilityWindows_Deterministic(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "V1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "V2", "Hardliner", domain.VehicleAvailable),
		vehicle(3, "V3", "Hardliner", domain.VehicleAvailable),
	}
	bookings := []*domain.Booking{
		booking(1, 2, at(13, 0), at(14, 30), domain.StatusScheduled),
		booking(2, 3, at(10, 0), at(11, 0), domain.StatusScheduled),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 3, at(8, 0), at(12, 0), false),
	}

	first := AvailabilityWindows(at(9, 0), vehicles, bookings, downtime)
	second := AvailabilityWindows(at(9, 0), vehicles, bookings, downtime)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].From.Equal(second[i].From))
		assert.True(t, first[i].Until.Equal(second[i].Until))
		assert.Equal(t, windowIDs(first[i]), windowIDs(second[i]))
	}
}
