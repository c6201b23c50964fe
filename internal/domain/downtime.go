package domain

import "time"

// DowntimeType represents the kind of downtime block
type DowntimeType string

const (
	DowntimeMaintenance DowntimeType = "maintenance"
	DowntimeRefueling   DowntimeType = "refueling"
	DowntimeRepairs     DowntimeType = "repairs"
	DowntimeOther       DowntimeType = "other"
)

// DowntimeBlock represents a maintenance/refueling window during which
// a vehicle is taken out of service
type DowntimeBlock struct {
	ID        int64
	VehicleID int64
	Type      DowntimeType
	StartTime time.Time
	EndTime   time.Time
	Completed bool
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the block participates in conflict checks.
// Completed blocks are ignored everywhere.
func (d *DowntimeBlock) IsActive() bool {
	return !d.Completed
}

// Contains сообщает, попадает ли момент t в интервал блока [StartTime, EndTime)
func (d *DowntimeBlock) Contains(t time.Time) bool {
	return !d.StartTime.After(t) && d.EndTime.After(t)
}

// DowntimeUpdate partial update модель блока простоя.
// nil-поля не изменяются.
type DowntimeUpdate struct {
	VehicleID *int64
	Type      *DowntimeType
	StartTime *time.Time
	EndTime   *time.Time
	Completed *bool
	Notes     *string
}

// ValidDowntimeType проверяет, что тип входит в множество допустимых
func ValidDowntimeType(t DowntimeType) bool {
	switch t {
	case DowntimeMaintenance, DowntimeRefueling, DowntimeRepairs, DowntimeOther:
		return true
	default:
		return false
	}
}
