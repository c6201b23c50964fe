package update_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	"github.com/dmkvsk/JSR-FleetService/internal/infra/memstore"
	"github.com/dmkvsk/JSR-FleetService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T) (*UseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	uc := NewUseCase(store.Bookings(), store.Vehicles(), store.Downtime(), memstore.NewTransactionManager(), nopLogger{})
	return uc, store
}

func seedVehicle(t *testing.T, store *memstore.Store) *domain.Vehicle {
	t.Helper()
	vehicle, err := store.Vehicles().Create(context.Background(), &domain.Vehicle{
		Name:   "Wave Rider",
		Brand:  "Yamaha",
		Status: domain.VehicleAvailable,
	})
	require.NoError(t, err)
	return vehicle
}

func seedBooking(t *testing.T, store *memstore.Store, vehicleID int64, start, end time.Time) *domain.Booking {
	t.Helper()
	booking, err := store.Bookings().Create(context.Background(), &domain.Booking{
		CustomerName: "Ivan",
		VehicleID:    vehicleID,
		StartTime:    start,
		EndTime:      end,
		Status:       domain.StatusScheduled,
	})
	require.NoError(t, err)
	return booking
}

func TestExecute_RescheduleWithoutConflict(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	booking := seedBooking(t, store, vehicle.ID, start, start.Add(time.Hour))

	newStart := start.Add(3 * time.Hour)
	newEnd := start.Add(4 * time.Hour)
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	require.NoError(t, err)
	assert.True(t, resp.StartTime.Equal(newStart))
	assert.True(t, resp.EndTime.Equal(newEnd))
}

func TestExecute_SelfOverlapAllowed(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	booking := seedBooking(t, store, vehicle.ID, start, start.Add(2*time.Hour))

	// Сдвиг на полчаса пересекается только с самой бронью
	newStart := start.Add(30 * time.Minute)
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		StartTime: &newStart,
	})
	require.NoError(t, err)
	assert.True(t, resp.StartTime.Equal(newStart))
}

func TestExecute_ConflictWithOtherBooking(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	booking := seedBooking(t, store, vehicle.ID, start, start.Add(time.Hour))
	seedBooking(t, store, vehicle.ID, start.Add(2*time.Hour), start.Add(3*time.Hour))

	newEnd := start.Add(150 * time.Minute)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		EndTime:   &newEnd,
	})
	assert.ErrorIs(t, err, ErrVehicleNotAvailable)
}

func TestExecute_MoveToBusyVehicleRejected(t *testing.T) {
	uc, store := newFixture(t)
	v1 := seedVehicle(t, store)
	v2, err := store.Vehicles().Create(context.Background(), &domain.Vehicle{
		Name:   "Spark",
		Brand:  "Sea-Doo",
		Status: domain.VehicleAvailable,
	})
	require.NoError(t, err)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	booking := seedBooking(t, store, v1.ID, start, start.Add(time.Hour))
	seedBooking(t, store, v2.ID, start, start.Add(time.Hour))

	_, err = uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		VehicleID: &v2.ID,
	})
	assert.ErrorIs(t, err, ErrVehicleNotAvailable)
}

func TestExecute_CancellationSkipsConflictCheck(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	booking := seedBooking(t, store, vehicle.ID, start, start.Add(time.Hour))
	seedBooking(t, store, vehicle.ID, start.Add(2*time.Hour), start.Add(3*time.Hour))

	// Отмена с одновременным сдвигом на занятый интервал проходит:
	// отмененная бронь ни с чем не конфликтует
	newStart := start.Add(2 * time.Hour)
	newEnd := start.Add(3 * time.Hour)
	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		StartTime: &newStart,
		EndTime:   &newEnd,
		Status:    ptr.Ptr(string(domain.StatusCancelled)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestExecute_StatusOnlyUpdateSkipsConflictCheck(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	booking := seedBooking(t, store, vehicle.ID, start, start.Add(time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		Status:    ptr.Ptr(string(domain.StatusInProgress)),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusInProgress), resp.Status)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 99})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	booking := seedBooking(t, store, vehicle.ID, start, start.Add(time.Hour))

	missing := int64(42)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: booking.ID,
		VehicleID: &missing,
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
