package domain

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxNameLength         = 200
	MaxBrandLength        = 100
	MaxCustomerNameLength = 200
)

// InactiveBookingStatuses список статусов, которые не участвуют
// в проверках пересечений и подсчёте доступности
var InactiveBookingStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}

// ActiveBookingStatuses список статусов активных бронирований
var ActiveBookingStatuses = []BookingStatus{
	StatusScheduled,
	StatusInProgress,
	StatusInterrupted,
}
