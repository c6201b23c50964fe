package get_downtime

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// DowntimeResponse HTTP response model
type DowntimeResponse struct {
	ID        int64   `json:"id"`
	VehicleID int64   `json:"vehicleId"`
	Type      string  `json:"type"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(d *domain.DowntimeBlock) *DowntimeResponse {
	return &DowntimeResponse{
		ID:        d.ID,
		VehicleID: d.VehicleID,
		Type:      string(d.Type),
		StartTime: d.StartTime.Format(time.RFC3339),
		EndTime:   d.EndTime.Format(time.RFC3339),
		Completed: d.Completed,
		Notes:     d.Notes,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
		UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
	}
}
