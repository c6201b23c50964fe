package create_vehicle

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	"github.com/dmkvsk/JSR-FleetService/pkg/ptr"
)

func TestToDomain(t *testing.T) {
	req := CreateVehicleRequest{
		Name:                "Wave Rider",
		Brand:               "Yamaha",
		Status:              ptr.Ptr("in_use"),
		LastMaintenanceDate: ptr.Ptr("2026-07-01T10:00:00Z"),
		HoursUsed:           ptr.Ptr(42),
	}

	vehicle, err := req.ToDomain()
	require.NoError(t, err)

	assert.Equal(t, "Wave Rider", vehicle.Name)
	assert.Equal(t, "Yamaha", vehicle.Brand)
	assert.Equal(t, domain.VehicleInUse, vehicle.Status)
	assert.Equal(t, 42, vehicle.HoursUsed)
	require.NotNil(t, vehicle.LastMaintenanceDate)
	assert.True(t, vehicle.LastMaintenanceDate.Equal(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)))
}

func TestToDomain_InvalidDate(t *testing.T) {
	req := CreateVehicleRequest{
		Name:                "Wave Rider",
		Brand:               "Yamaha",
		LastMaintenanceDate: ptr.Ptr("01.07.2026"),
	}

	_, err := req.ToDomain()
	assert.Error(t, err)
}

// Наработка часов - целое число и в запросе, и в ответе
func TestHoursUsedRoundTrip(t *testing.T) {
	var req CreateVehicleRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Wave Rider","brand":"Yamaha","hoursUsed":17}`), &req))
	require.NotNil(t, req.HoursUsed)
	assert.Equal(t, 17, *req.HoursUsed)

	vehicle, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, 17, vehicle.HoursUsed)

	body, err := json.Marshal(FromDomain(vehicle))
	require.NoError(t, err)
	assert.Contains(t, string(body), `"hoursUsed":17`)
}
