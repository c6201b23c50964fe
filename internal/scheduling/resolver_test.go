package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

func vehicle(id int64, name, brand string, status domain.VehicleStatus) *domain.Vehicle {
	return &domain.Vehicle{ID: id, Name: name, Brand: brand, Status: status}
}

func TestAvailableVehicles(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "Wave Runner 1", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "Wave Runner 2", "Hardliner", domain.VehicleInUse),
		vehicle(3, "Sea Glider", "WaveMotion", domain.VehicleAvailable),
		vehicle(4, "Sea Drifter", "Hardliner", domain.VehicleAvailable),
	}

	bookings := []*domain.Booking{
		booking(1, 3, at(10, 0), at(12, 0), domain.StatusScheduled),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 4, at(11, 0), at(13, 0), false),
	}

	request := iv(t, at(11, 0), at(12, 0))
	free := AvailableVehicles(request, vehicles, bookings, downtime)

	// 1 свободен; 2 выбывает по базовому статусу; 3 - по брони; 4 - по простою
	ids := make([]int64, 0, len(free))
	for _, v := range free {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int64{1}, ids)
}

// Согласованность резолвера с проверкой конфликтов: транспорт входит в
// результат тогда и только тогда, когда он available и не конфликтует
func TestAvailableVehicles_ConsistentWithConflicts(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "A", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "B", "Hardliner", domain.VehicleAvailable),
		vehicle(3, "C", "Hardliner", domain.VehicleBroken),
		vehicle(4, "D", "Hardliner", domain.VehicleAvailable),
	}
	bookings := []*domain.Booking{
		booking(1, 1, at(9, 0), at(10, 30), domain.StatusScheduled),
		booking(2, 2, at(10, 30), at(11, 30), domain.StatusCancelled),
		booking(3, 4, at(10, 0), at(11, 0), domain.StatusInProgress),
	}
	downtime := []*domain.DowntimeBlock{
		block(1, 2, at(8, 0), at(9, 30), false),
	}

	intervals := []Interval{
		iv(t, at(9, 0), at(10, 0)),
		iv(t, at(10, 0), at(11, 0)),
		iv(t, at(10, 30), at(10, 30)),
		iv(t, at(8, 0), at(12, 0)),
	}

	for _, request := range intervals {
		free := AvailableVehicles(request, vehicles, bookings, downtime)
		included := make(map[int64]bool, len(free))
		for _, v := range free {
			included[v.ID] = true
		}
		for _, v := range vehicles {
			expected := v.IsAvailable() && !Conflicts(v.ID, request, bookings, downtime)
			assert.Equal(t, expected, included[v.ID],
				"vehicle %d, interval [%s, %s)", v.ID, request.Start, request.End)
		}
	}
}

func TestAvailableVehicles_PreservesInputOrder(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(5, "E", "X", domain.VehicleAvailable),
		vehicle(2, "B", "X", domain.VehicleAvailable),
		vehicle(9, "I", "X", domain.VehicleAvailable),
	}

	free := AvailableVehicles(iv(t, at(9, 0), at(10, 0)), vehicles, nil, nil)
	ids := make([]int64, 0, len(free))
	for _, v := range free {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int64{5, 2, 9}, ids)
}

func TestFilterByBrand(t *testing.T) {
	vehicles := []*domain.Vehicle{
		vehicle(1, "A", "Hardliner", domain.VehicleAvailable),
		vehicle(2, "B", "hardliner", domain.VehicleAvailable),
		vehicle(3, "C", "WaveMotion", domain.VehicleAvailable),
		vehicle(4, "D", " HARDLINER ", domain.VehicleAvailable),
	}

	filtered := FilterByBrand(vehicles, "Hardliner")
	ids := make([]int64, 0, len(filtered))
	for _, v := range filtered {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int64{1, 2, 4}, ids)

	assert.Empty(t, FilterByBrand(vehicles, "unknown"))
}
