package create_booking

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

func seedVehicle(t *testing.T, store *memstore.Store, status domain.VehicleStatus) *domain.Vehicle {
	t.Helper()
	vehicle, err := store.Vehicles().Create(context.Background(), &domain.Vehicle{
		Name:   "Wave Rider",
		Brand:  "Yamaha",
		Status: status,
	})
	require.NoError(t, err)
	return vehicle
}

func TestExecute_Success(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Ivan",
		VehicleID:    vehicle.ID,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, vehicle.ID, resp.VehicleID)
}

func TestExecute_OverlappingBookingRejected(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Ivan",
		VehicleID:    vehicle.ID,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	// Пересечение по хвосту первой брони
	_, err = uc.Execute(context.Background(), &Request{
		CustomerName: "Petr",
		VehicleID:    vehicle.ID,
		StartTime:    start.Add(time.Hour),
		EndTime:      start.Add(3 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrVehicleNotAvailable)

	// Встык после конца первой брони - разрешено
	_, err = uc.Execute(context.Background(), &Request{
		CustomerName: "Petr",
		VehicleID:    vehicle.ID,
		StartTime:    start.Add(2 * time.Hour),
		EndTime:      start.Add(3 * time.Hour),
	})
	assert.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	_, err := store.Bookings().Create(context.Background(), &domain.Booking{
		CustomerName: "Ivan",
		VehicleID:    vehicle.ID,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
		Status:       domain.StatusCancelled,
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		CustomerName: "Petr",
		VehicleID:    vehicle.ID,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	})
	assert.NoError(t, err)
}

func TestExecute_DowntimeBlocks(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	_, err := store.Downtime().Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeMaintenance,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{
		CustomerName: "Petr",
		VehicleID:    vehicle.ID,
		StartTime:    start.Add(time.Hour),
		EndTime:      start.Add(3 * time.Hour),
	})
	assert.ErrorIs(t, err, ErrVehicleNotAvailable)
}

func TestExecute_NonAvailableBaseStatus(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store, domain.VehicleMaintenance)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Ivan",
		VehicleID:    vehicle.ID,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrVehicleNotAvailable)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc, _ := newFixture(t)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		CustomerName: "Ivan",
		VehicleID:    42,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc, store := newFixture(t)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	start := time.Date(2026, 7, 10, 10, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		VehicleID: vehicle.ID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		CustomerName: "Ivan",
		VehicleID:    vehicle.ID,
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       ptr.Ptr("sunk"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Конец раньше начала
	_, err = uc.Execute(context.Background(), &Request{
		CustomerName: "Ivan",
		VehicleID:    vehicle.ID,
		StartTime:    start.Add(time.Hour),
		EndTime:      start,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
