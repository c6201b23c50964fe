package list_vehicles

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

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

// FromDomainList конвертирует список domain моделей в HTTP response
func FromDomainList(vehicles []domain.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, *fromDomain(&vehicles[i]))
	}
	return out
}

func fromDomain(v *domain.Vehicle) *VehicleResponse {
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
