package create_booking

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда гидроцикл не найден
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleNotAvailable возвращается, когда гидроцикл недоступен
	// на запрошенный интервал (конфликт брони/простоя или нерабочий статус)
	ErrVehicleNotAvailable = errors.New("create_booking: vehicle is not available for the requested time range")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
