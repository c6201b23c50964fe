package update_booking

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// Request модель запроса на частичное обновление бронирования.
// nil-поля не изменяются.
type Request struct {
	BookingID     int64
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	VehicleID     *int64
	StartTime     *time.Time
	EndTime       *time.Time
	Status        *string
	Notes         *string
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID            int64
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	VehicleID     int64
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FromDomain конвертирует domain бронирование в ответ usecase
func FromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		VehicleID:     b.VehicleID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// toDomainUpdate конвертирует запрос в partial update модель
func (r *Request) toDomainUpdate() *domain.BookingUpdate {
	update := &domain.BookingUpdate{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		VehicleID:     r.VehicleID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Notes:         r.Notes,
	}
	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		update.Status = &status
	}
	return update
}
