package dashboard_summary

import (
	fleetService "github.com/dmkvsk/JSR-FleetService/internal/service/fleet"
)

// SummaryResponse HTTP response model
type SummaryResponse struct {
	TotalVehicles     int64 `json:"totalVehicles"`
	AvailableVehicles int64 `json:"availableVehicles"`
	TodayBookings     int64 `json:"todayBookings"`
	MaintenanceAlerts int64 `json:"maintenanceAlerts"`
	RefuelingNeeded   int64 `json:"refuelingNeeded"`
}

// FromService конвертирует агрегат сервиса в HTTP response
func FromService(s *fleetService.DashboardSummary) *SummaryResponse {
	return &SummaryResponse{
		TotalVehicles:     s.TotalVehicles,
		AvailableVehicles: s.AvailableVehicles,
		TodayBookings:     s.TodayBookings,
		MaintenanceAlerts: s.MaintenanceAlerts,
		RefuelingNeeded:   s.RefuelingNeeded,
	}
}
