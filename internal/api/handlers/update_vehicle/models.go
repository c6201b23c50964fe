package update_vehicle

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// UpdateVehicleRequest HTTP request model, все поля опциональны
type UpdateVehicleRequest struct {
	Name                *string  `json:"name,omitempty"`
	Brand               *string  `json:"brand,omitempty"`
	Status              *string  `json:"status,omitempty"`
	LastMaintenanceDate *string  `json:"lastMaintenanceDate,omitempty"` // RFC3339
	HoursUsed           *int     `json:"hoursUsed,omitempty"`
}

// VehicleResponse HTTP response model
type VehicleResponse struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	Brand               string  `json:"brand"`
	Status              string  `json:"status"`
	LastMaintenanceDate *string `json:"lastMaintenanceDate,omitempty"`
	HoursUsed           int     `json:"hoursUsed"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}

// ToDomainUpdate конвертирует HTTP запрос в partial update модель
func (r *UpdateVehicleRequest) ToDomainUpdate() (*domain.VehicleUpdate, error) {
	update := &domain.VehicleUpdate{
		Name:      r.Name,
		Brand:     r.Brand,
		HoursUsed: r.HoursUsed,
	}

	if r.Status != nil {
		status := domain.VehicleStatus(*r.Status)
		update.Status = &status
	}
	if r.LastMaintenanceDate != nil {
		t, err := time.Parse(time.RFC3339, *r.LastMaintenanceDate)
		if err != nil {
			return nil, err
		}
		update.LastMaintenanceDate = &t
	}

	return update, nil
}

// FromDomain конвертирует domain модель в HTTP response
func FromDomain(v *domain.Vehicle) *VehicleResponse {
	resp := &VehicleResponse{
		ID:        v.ID,
		Name:      v.Name,
		Brand:     v.Brand,
		Status:    string(v.Status),
		HoursUsed: v.HoursUsed,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.Format(time.RFC3339),
	}
	if v.LastMaintenanceDate != nil {
		formatted := v.LastMaintenanceDate.Format(time.RFC3339)
		resp.LastMaintenanceDate = &formatted
	}
	return resp
}
