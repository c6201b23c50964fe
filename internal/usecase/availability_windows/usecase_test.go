package availability_windows

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	"github.com/dmkvsk/JSR-FleetService/internal/infra/memstore"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newFixture(t *testing.T) (*UseCase, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	uc := NewUseCase(store.Vehicles(), store.Bookings(), store.Downtime(), nopLogger{})
	return uc, store
}

func seedVehicle(t *testing.T, store *memstore.Store, name, brand string) *domain.Vehicle {
	t.Helper()
	vehicle, err := store.Vehicles().Create(context.Background(), &domain.Vehicle{
		Name:   name,
		Brand:  brand,
		Status: domain.VehicleAvailable,
	})
	require.NoError(t, err)
	return vehicle
}

func TestExecute_BrandRequired(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Execute(context.Background(), &Request{Brand: "  "})
	assert.ErrorIs(t, err, ErrBrandRequired)
}

func TestExecute_UnknownBrandGivesEmptyWindows(t *testing.T) {
	uc, store := newFixture(t)
	seedVehicle(t, store, "Wave Rider", "Yamaha")

	asOf := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{Brand: "Kawasaki", AsOf: &asOf})
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}

func TestExecute_BrandMatchIsCaseInsensitive(t *testing.T) {
	uc, store := newFixture(t)
	v1 := seedVehicle(t, store, "Wave Rider", "Yamaha")
	seedVehicle(t, store, "Spark", "Sea-Doo")

	asOf := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)
	_, err := store.Bookings().Create(context.Background(), &domain.Booking{
		CustomerName: "Ivan",
		VehicleID:    v1.ID,
		StartTime:    asOf.Add(time.Hour),
		EndTime:      asOf.Add(2 * time.Hour),
		Status:       domain.StatusScheduled,
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{Brand: "  YAMAHA ", AsOf: &asOf})
	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "yamaha", resp.Brand)
	assert.Equal(t, 1, resp.Windows[0].Count)
	assert.Equal(t, v1.ID, resp.Windows[0].Vehicles[0].ID)
}

func TestExecute_WindowsFollowBookingBoundaries(t *testing.T) {
	uc, store := newFixture(t)
	v1 := seedVehicle(t, store, "Wave Rider", "Yamaha")
	v2 := seedVehicle(t, store, "FX Cruiser", "Yamaha")

	asOf := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)
	bookingStart := asOf.Add(time.Hour)
	bookingEnd := asOf.Add(2 * time.Hour)
	_, err := store.Bookings().Create(context.Background(), &domain.Booking{
		CustomerName: "Ivan",
		VehicleID:    v2.ID,
		StartTime:    bookingStart,
		EndTime:      bookingEnd,
		Status:       domain.StatusScheduled,
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{Brand: "yamaha", AsOf: &asOf})
	require.NoError(t, err)
	require.Len(t, resp.Windows, 2)

	// До начала брони свободны оба, на время брони остается только v1
	assert.Equal(t, 2, resp.Windows[0].Count)
	assert.True(t, resp.Windows[0].From.Equal(asOf))
	assert.True(t, resp.Windows[0].Until.Equal(bookingStart))

	assert.Equal(t, 1, resp.Windows[1].Count)
	assert.Equal(t, v1.ID, resp.Windows[1].Vehicles[0].ID)
	assert.True(t, resp.Windows[1].From.Equal(bookingStart))
	assert.True(t, resp.Windows[1].Until.Equal(bookingEnd))
}

func TestExecute_OtherBrandBookingsDoNotAffectWindows(t *testing.T) {
	uc, store := newFixture(t)
	seedVehicle(t, store, "Wave Rider", "Yamaha")
	other := seedVehicle(t, store, "Spark", "Sea-Doo")

	asOf := time.Date(2026, 7, 10, 9, 0, 0, 0, time.UTC)
	_, err := store.Bookings().Create(context.Background(), &domain.Booking{
		CustomerName: "Ivan",
		VehicleID:    other.ID,
		StartTime:    asOf.Add(time.Hour),
		EndTime:      asOf.Add(2 * time.Hour),
		Status:       domain.StatusScheduled,
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{Brand: "yamaha", AsOf: &asOf})
	require.NoError(t, err)
	assert.Empty(t, resp.Windows)
}
