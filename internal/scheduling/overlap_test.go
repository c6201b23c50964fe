package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

var day = time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func iv(t *testing.T, start, end time.Time) Interval {
	t.Helper()
	interval, err := NewInterval(start, end)
	require.NoError(t, err)
	return interval
}

func booking(id, vehicleID int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		CustomerName: "tester",
		VehicleID:    vehicleID,
		StartTime:    start,
		EndTime:      end,
		Status:       status,
	}
}

func block(id, vehicleID int64, start, end time.Time, completed bool) *domain.DowntimeBlock {
	return &domain.DowntimeBlock{
		ID:        id,
		VehicleID: vehicleID,
		Type:      domain.DowntimeMaintenance,
		StartTime: start,
		EndTime:   end,
		Completed: completed,
	}
}

func TestNewInterval(t *testing.T) {
	_, err := NewInterval(time.Time{}, at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(at(11, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	// Вырожденный интервал допустим - это запрос "в момент времени"
	_, err = NewInterval(at(10, 0), at(10, 0))
	assert.NoError(t, err)
}

func TestConflicts_BoundaryExactness(t *testing.T) {
	// Соприкасающиеся интервалы никогда не конфликтуют, в обе стороны
	a := iv(t, at(10, 0), at(11, 0))
	b := iv(t, at(11, 0), at(12, 0))

	bookingsA := []*domain.Booking{booking(1, 1, a.Start, a.End, domain.StatusScheduled)}
	bookingsB := []*domain.Booking{booking(2, 1, b.Start, b.End, domain.StatusScheduled)}

	assert.False(t, Conflicts(1, b, bookingsA, nil))
	assert.False(t, Conflicts(1, a, bookingsB, nil))
}

func TestConflicts_Containment(t *testing.T) {
	outer := iv(t, at(10, 0), at(12, 0))
	inner := iv(t, at(10, 30), at(11, 0))

	outerBooking := []*domain.Booking{booking(1, 1, outer.Start, outer.End, domain.StatusScheduled)}
	innerBooking := []*domain.Booking{booking(2, 1, inner.Start, inner.End, domain.StatusScheduled)}

	// Вложенный и объемлющий интервалы конфликтуют в обе стороны
	assert.True(t, Conflicts(1, inner, outerBooking, nil))
	assert.True(t, Conflicts(1, outer, innerBooking, nil))
}

func TestConflicts_PartialOverlap(t *testing.T) {
	request := iv(t, at(11, 30), at(12, 0))

	assert.True(t, Conflicts(1, request, []*domain.Booking{
		booking(1, 1, at(11, 20), at(11, 40), domain.StatusScheduled),
	}, nil))

	assert.True(t, Conflicts(1, request, []*domain.Booking{
		booking(1, 1, at(11, 45), at(12, 30), domain.StatusScheduled),
	}, nil))
}

func TestConflicts_InactiveBookingsExcluded(t *testing.T) {
	request := iv(t, at(10, 0), at(12, 0))

	for _, status := range []domain.BookingStatus{domain.StatusCancelled, domain.StatusCompleted} {
		bookings := []*domain.Booking{booking(1, 1, at(10, 30), at(11, 0), status)}
		assert.False(t, Conflicts(1, request, bookings, nil), "status %s must not conflict", status)
	}

	for _, status := range []domain.BookingStatus{domain.StatusScheduled, domain.StatusInProgress, domain.StatusInterrupted} {
		bookings := []*domain.Booking{booking(1, 1, at(10, 30), at(11, 0), status)}
		assert.True(t, Conflicts(1, request, bookings, nil), "status %s must conflict", status)
	}
}

func TestConflicts_CompletedDowntimeExcluded(t *testing.T) {
	request := iv(t, at(10, 0), at(12, 0))

	assert.True(t, Conflicts(1, request, nil, []*domain.DowntimeBlock{
		block(1, 1, at(9, 0), at(11, 0), false),
	}))

	assert.False(t, Conflicts(1, request, nil, []*domain.DowntimeBlock{
		block(1, 1, at(9, 0), at(11, 0), true),
	}))
}

func TestConflicts_OtherVehicleIgnored(t *testing.T) {
	request := iv(t, at(10, 0), at(12, 0))

	bookings := []*domain.Booking{booking(1, 2, at(10, 0), at(12, 0), domain.StatusScheduled)}
	downtime := []*domain.DowntimeBlock{block(1, 3, at(10, 0), at(12, 0), false)}

	assert.False(t, Conflicts(1, request, bookings, downtime))
}

func TestConflictsExcluding(t *testing.T) {
	request := iv(t, at(10, 0), at(12, 0))

	bookings := []*domain.Booking{
		booking(7, 1, at(10, 0), at(12, 0), domain.StatusScheduled),
	}

	// Бронь не конфликтует сама с собой при обновлении
	assert.True(t, Conflicts(1, request, bookings, nil))
	assert.False(t, ConflictsExcluding(1, request, 7, bookings, nil))

	// Но чужая бронь по-прежнему конфликтует
	bookings = append(bookings, booking(8, 1, at(11, 0), at(13, 0), domain.StatusScheduled))
	assert.True(t, ConflictsExcluding(1, request, 7, bookings, nil))
}

func TestConflicts_PointInTimeQuery(t *testing.T) {
	// Вырожденный интервал [t, t) конфликтует с бронью, содержащей t
	inside := At(at(10, 30))
	boundary := At(at(11, 0))

	bookings := []*domain.Booking{booking(1, 1, at(10, 0), at(11, 0), domain.StatusScheduled)}

	assert.True(t, Conflicts(1, inside, bookings, nil))
	// Момент окончания брони уже свободен
	assert.False(t, Conflicts(1, boundary, bookings, nil))
}
