package today_bookings

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	VehicleID     int64   `json:"vehicleId"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// FromDomainList конвертирует список domain моделей в HTTP response
func FromDomainList(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		out = append(out, BookingResponse{
			ID:            b.ID,
			CustomerName:  b.CustomerName,
			CustomerEmail: b.CustomerEmail,
			CustomerPhone: b.CustomerPhone,
			VehicleID:     b.VehicleID,
			StartTime:     b.StartTime.Format(time.RFC3339),
			EndTime:       b.EndTime.Format(time.RFC3339),
			Status:        string(b.Status),
			Notes:         b.Notes,
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
			UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
