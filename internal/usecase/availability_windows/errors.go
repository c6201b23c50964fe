package availability_windows

import "errors"

var (
	// ErrBrandRequired возвращается, когда бренд не указан
	ErrBrandRequired = errors.New("availability_windows: brand is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("availability_windows: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("availability_windows: internal error")
)
