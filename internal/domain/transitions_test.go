package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusForDowntime(t *testing.T) {
	assert.Equal(t, VehicleRefueling, StatusForDowntime(DowntimeRefueling))
	assert.Equal(t, VehicleMaintenance, StatusForDowntime(DowntimeMaintenance))
	assert.Equal(t, VehicleMaintenance, StatusForDowntime(DowntimeRepairs))
	assert.Equal(t, VehicleMaintenance, StatusForDowntime(DowntimeOther))
}

func TestStatusOnDowntimeCreated(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

	block := func(typ DowntimeType, start, end time.Time) *DowntimeBlock {
		return &DowntimeBlock{VehicleID: 1, Type: typ, StartTime: start, EndTime: end}
	}

	t.Run("refueling block covering now flips available to refueling", func(t *testing.T) {
		b := block(DowntimeRefueling, now.Add(-time.Hour), now.Add(time.Hour))
		status, changed := StatusOnDowntimeCreated(VehicleAvailable, b, now)
		assert.True(t, changed)
		assert.Equal(t, VehicleRefueling, status)
	})

	t.Run("repairs block maps to maintenance", func(t *testing.T) {
		b := block(DowntimeRepairs, now.Add(-time.Hour), now.Add(time.Hour))
		status, changed := StatusOnDowntimeCreated(VehicleAvailable, b, now)
		assert.True(t, changed)
		assert.Equal(t, VehicleMaintenance, status)
	})

	t.Run("future block does not change status", func(t *testing.T) {
		b := block(DowntimeMaintenance, now.Add(time.Hour), now.Add(2*time.Hour))
		status, changed := StatusOnDowntimeCreated(VehicleAvailable, b, now)
		assert.False(t, changed)
		assert.Equal(t, VehicleAvailable, status)
	})

	t.Run("block ending exactly now does not contain now", func(t *testing.T) {
		b := block(DowntimeMaintenance, now.Add(-time.Hour), now)
		_, changed := StatusOnDowntimeCreated(VehicleAvailable, b, now)
		assert.False(t, changed)
	})

	t.Run("block starting exactly now contains now", func(t *testing.T) {
		b := block(DowntimeMaintenance, now, now.Add(time.Hour))
		status, changed := StatusOnDowntimeCreated(VehicleAvailable, b, now)
		assert.True(t, changed)
		assert.Equal(t, VehicleMaintenance, status)
	})

	t.Run("non-available vehicle is left untouched", func(t *testing.T) {
		b := block(DowntimeMaintenance, now.Add(-time.Hour), now.Add(time.Hour))
		for _, s := range []VehicleStatus{VehicleInUse, VehicleBroken, VehicleMaintenance, VehicleRefueling} {
			status, changed := StatusOnDowntimeCreated(s, b, now)
			assert.False(t, changed)
			assert.Equal(t, s, status)
		}
	})

	t.Run("already completed block never transitions", func(t *testing.T) {
		b := block(DowntimeMaintenance, now.Add(-time.Hour), now.Add(time.Hour))
		b.Completed = true
		_, changed := StatusOnDowntimeCreated(VehicleAvailable, b, now)
		assert.False(t, changed)
	})
}

func TestStatusOnDowntimeCompleted(t *testing.T) {
	status, changed := StatusOnDowntimeCompleted(VehicleMaintenance)
	assert.True(t, changed)
	assert.Equal(t, VehicleAvailable, status)

	status, changed = StatusOnDowntimeCompleted(VehicleRefueling)
	assert.True(t, changed)
	assert.Equal(t, VehicleAvailable, status)

	// Статус, выставленный вручную, завершение простоя не сбрасывает
	status, changed = StatusOnDowntimeCompleted(VehicleBroken)
	assert.False(t, changed)
	assert.Equal(t, VehicleBroken, status)

	status, changed = StatusOnDowntimeCompleted(VehicleInUse)
	assert.False(t, changed)
	assert.Equal(t, VehicleInUse, status)
}

func TestBookingIsActive(t *testing.T) {
	for _, s := range ActiveBookingStatuses {
		b := Booking{Status: s}
		assert.True(t, b.IsActive(), "status %s must be active", s)
	}
	for _, s := range InactiveBookingStatuses {
		b := Booking{Status: s}
		assert.False(t, b.IsActive(), "status %s must be inactive", s)
	}
}
