package create_vehicle

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// CreateVehicleRequest HTTP request model
type CreateVehicleRequest struct {
	Name                string   `json:"name"`
	Brand               string   `json:"brand"`
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

// ToDomain конвертирует HTTP запрос в domain модель
func (r *CreateVehicleRequest) ToDomain() (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{
		Name:  r.Name,
		Brand: r.Brand,
	}

	if r.Status != nil {
		vehicle.Status = domain.VehicleStatus(*r.Status)
	}
	if r.HoursUsed != nil {
		vehicle.HoursUsed = *r.HoursUsed
	}
	if r.LastMaintenanceDate != nil {
		t, err := time.Parse(time.RFC3339, *r.LastMaintenanceDate)
		if err != nil {
			return nil, err
		}
		vehicle.LastMaintenanceDate = &t
	}

	return vehicle, nil
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
