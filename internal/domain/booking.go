package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusScheduled   BookingStatus = "scheduled"
	StatusInProgress  BookingStatus = "in_progress"
	StatusCompleted   BookingStatus = "completed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusInterrupted BookingStatus = "interrupted"
)

// Booking represents a customer booking for a single vehicle
type Booking struct {
	ID            int64
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	VehicleID     int64
	StartTime     time.Time
	EndTime       time.Time
	Status        BookingStatus
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking participates in conflict checks.
// Cancelled and completed bookings never conflict with anything.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusCompleted
}

// BookingUpdate partial update модель бронирования.
// nil-поля не изменяются.
type BookingUpdate struct {
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	VehicleID     *int64
	StartTime     *time.Time
	EndTime       *time.Time
	Status        *BookingStatus
	Notes         *string
}

// ChangesSchedule сообщает, меняет ли обновление время или транспорт брони.
// Только такие обновления требуют повторной проверки пересечений.
func (u *BookingUpdate) ChangesSchedule() bool {
	return u.StartTime != nil || u.EndTime != nil || u.VehicleID != nil
}

// ValidBookingStatus проверяет, что статус входит в множество допустимых
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled, StatusInterrupted:
		return true
	default:
		return false
	}
}
