package domain

import "time"

// VehicleStatus represents the base status of a fleet vehicle
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleInUse       VehicleStatus = "in_use"
	VehicleRefueling   VehicleStatus = "refueling"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleBroken      VehicleStatus = "broken"
)

// Vehicle represents a jet ski in the rental fleet
type Vehicle struct {
	ID                  int64
	Name                string
	Brand               string
	Status              VehicleStatus
	LastMaintenanceDate *time.Time
	HoursUsed           int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the vehicle's base status is available
func (v *Vehicle) IsAvailable() bool {
	return v.Status == VehicleAvailable
}

// VehicleUpdate partial update модель транспорта.
// nil-поля не изменяются.
type VehicleUpdate struct {
	Name                *string
	Brand               *string
	Status              *VehicleStatus
	LastMaintenanceDate *time.Time
	HoursUsed           *int
}

// ValidVehicleStatus проверяет, что статус входит в множество допустимых
func ValidVehicleStatus(s VehicleStatus) bool {
	switch s {
	case VehicleAvailable, VehicleInUse, VehicleRefueling, VehicleMaintenance, VehicleBroken:
		return true
	default:
		return false
	}
}
