package create_downtime

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// CreateDowntimeRequest HTTP request model
type CreateDowntimeRequest struct {
	VehicleID int64   `json:"vehicleId"`
	Type      string  `json:"type"`
	StartTime string  `json:"startTime"` // RFC3339
	EndTime   string  `json:"endTime"`   // RFC3339
	Notes     *string `json:"notes,omitempty"`
}

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

// ToDomain конвертирует HTTP запрос в domain модель
func (r *CreateDowntimeRequest) ToDomain() (*domain.DowntimeBlock, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.DowntimeBlock{
		VehicleID: r.VehicleID,
		Type:      domain.DowntimeType(r.Type),
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     r.Notes,
	}, nil
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
