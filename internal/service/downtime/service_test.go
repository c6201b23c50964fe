package downtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	"github.com/dmkvsk/JSR-FleetService/internal/infra/memstore"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T, now time.Time) (*Service, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	svc := NewService(store.Downtime(), store.Vehicles(), fixedClock{now: now}, nopLogger{})
	return svc, store
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

// failingStatusVehicleRepo отдает гидроцикл, но отклоняет смену статуса
type failingStatusVehicleRepo struct {
	vehicle *domain.Vehicle
}

func (r *failingStatusVehicleRepo) GetByID(_ context.Context, _ int64) (*domain.Vehicle, error) {
	v := *r.vehicle
	return &v, nil
}

func (r *failingStatusVehicleRepo) UpdateStatus(_ context.Context, _ int64, _ domain.VehicleStatus) error {
	return assert.AnError
}

func TestCreate_CurrentBlockMovesAvailableVehicle(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newFixture(t, now)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	block, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeRefueling,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotZero(t, block.ID)

	got, err := store.Vehicles().GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleRefueling, got.Status)
}

func TestCreate_MaintenanceTypeMovesToMaintenance(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newFixture(t, now)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	_, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeRepairs,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := store.Vehicles().GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleMaintenance, got.Status)
}

func TestCreate_FutureBlockLeavesStatusUntouched(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newFixture(t, now)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	_, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeMaintenance,
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	got, err := store.Vehicles().GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleAvailable, got.Status)
}

func TestCreate_NonAvailableVehicleKeepsStatus(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newFixture(t, now)
	vehicle := seedVehicle(t, store, domain.VehicleBroken)

	_, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeMaintenance,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := store.Vehicles().GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleBroken, got.Status)
}

func TestCreate_UnknownVehicle(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, _ := newFixture(t, now)

	_, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: 42,
		Type:      domain.DowntimeMaintenance,
		StartTime: now,
		EndTime:   now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestCreate_InvalidInput(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newFixture(t, now)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	_, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      "vacation",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeMaintenance,
		StartTime: now.Add(time.Hour),
		EndTime:   now,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_CompletionReleasesVehicle(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newFixture(t, now)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	block, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeMaintenance,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := store.Vehicles().GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	require.Equal(t, domain.VehicleMaintenance, got.Status)

	completed := true
	updated, err := svc.Update(context.Background(), block.ID, &domain.DowntimeUpdate{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	got, err = store.Vehicles().GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleAvailable, got.Status)
}

func TestUpdate_CompletionDoesNotTouchBrokenVehicle(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newFixture(t, now)
	vehicle := seedVehicle(t, store, domain.VehicleBroken)

	block, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeMaintenance,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	})
	require.NoError(t, err)

	completed := true
	_, err = svc.Update(context.Background(), block.ID, &domain.DowntimeUpdate{Completed: &completed})
	require.NoError(t, err)

	got, err := store.Vehicles().GetByID(context.Background(), vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VehicleBroken, got.Status)
}

// Блок сохранен - сбой автоматического перехода статуса не отменяет создание
func TestCreate_StatusTransitionFailureDoesNotFailCreate(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	store := memstore.New()
	vehicles := &failingStatusVehicleRepo{
		vehicle: &domain.Vehicle{ID: 1, Name: "Wave Rider", Brand: "Yamaha", Status: domain.VehicleAvailable},
	}
	svc := NewService(store.Downtime(), vehicles, fixedClock{now: now}, nopLogger{})

	block, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: 1,
		Type:      domain.DowntimeRefueling,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.NotZero(t, block.ID)
}

// Блок завершен - сбой возврата гидроцикла в available не отменяет обновление
func TestUpdate_ReleaseFailureDoesNotFailUpdate(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	store := memstore.New()
	vehicles := &failingStatusVehicleRepo{
		vehicle: &domain.Vehicle{ID: 1, Name: "Wave Rider", Brand: "Yamaha", Status: domain.VehicleMaintenance},
	}
	svc := NewService(store.Downtime(), vehicles, fixedClock{now: now}, nopLogger{})

	block, err := store.Downtime().Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: 1,
		Type:      domain.DowntimeMaintenance,
		StartTime: now.Add(-2 * time.Hour),
		EndTime:   now.Add(-time.Hour),
	})
	require.NoError(t, err)

	completed := true
	updated, err := svc.Update(context.Background(), block.ID, &domain.DowntimeUpdate{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
}

func TestUpdate_NotFound(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, _ := newFixture(t, now)

	completed := true
	_, err := svc.Update(context.Background(), 99, &domain.DowntimeUpdate{Completed: &completed})
	assert.ErrorIs(t, err, ErrDowntimeNotFound)
}

func TestDelete(t *testing.T) {
	now := time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newFixture(t, now)
	vehicle := seedVehicle(t, store, domain.VehicleAvailable)

	block, err := svc.Create(context.Background(), &domain.DowntimeBlock{
		VehicleID: vehicle.ID,
		Type:      domain.DowntimeOther,
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), block.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), block.ID), ErrDowntimeNotFound)
}
