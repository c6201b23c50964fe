package update_booking

import (
	"fmt"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}

	if req.CustomerName != nil && *req.CustomerName == "" {
		return fmt.Errorf("%w: customerName cannot be empty", ErrInvalidInput)
	}

	if req.VehicleID != nil && *req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleId must be positive", ErrInvalidInput)
	}

	if req.Status != nil && !domain.ValidBookingStatus(domain.BookingStatus(*req.Status)) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}
