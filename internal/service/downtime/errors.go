package downtime

import "errors"

var (
	// ErrDowntimeNotFound возвращается, когда блок простоя не найден
	ErrDowntimeNotFound = errors.New("downtime block not found")

	// ErrVehicleNotFound возвращается, когда гидроцикл не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("downtime service: internal error")
)
