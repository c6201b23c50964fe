package fleet

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда гидроцикл не найден
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrVehicleInUse возвращается при попытке удалить гидроцикл,
	// на который ссылаются активные брони или блоки простоя
	ErrVehicleInUse = errors.New("vehicle has active bookings or downtime")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("fleet service: internal error")
)
