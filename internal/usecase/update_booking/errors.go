package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrVehicleNotFound возвращается, когда целевой гидроцикл не найден
	ErrVehicleNotFound = errors.New("update_booking: vehicle not found")

	// ErrVehicleNotAvailable возвращается, когда новый интервал брони
	// пересекается с другой активной бронью или простоем
	ErrVehicleNotAvailable = errors.New("update_booking: vehicle is not available for the requested time range")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("update_booking: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
