package update_downtime

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// UpdateDowntimeRequest HTTP request model, все поля опциональны
type UpdateDowntimeRequest struct {
	VehicleID *int64  `json:"vehicleId,omitempty"`
	Type      *string `json:"type,omitempty"`
	StartTime *string `json:"startTime,omitempty"` // RFC3339
	EndTime   *string `json:"endTime,omitempty"`   // RFC3339
	Completed *bool   `json:"completed,omitempty"`
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

// ToDomainUpdate конвертирует HTTP запрос в partial update модель
func (r *UpdateDowntimeRequest) ToDomainUpdate() (*domain.DowntimeUpdate, error) {
	update := &domain.DowntimeUpdate{
		VehicleID: r.VehicleID,
		Completed: r.Completed,
		Notes:     r.Notes,
	}

	if r.Type != nil {
		downtimeType := domain.DowntimeType(*r.Type)
		update.Type = &downtimeType
	}
	if r.StartTime != nil {
		t, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return nil, err
		}
		update.StartTime = &t
	}
	if r.EndTime != nil {
		t, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return nil, err
		}
		update.EndTime = &t
	}

	return update, nil
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
