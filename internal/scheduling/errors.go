package scheduling

import "errors"

var (
	// ErrInvalidInterval возвращается при некорректном интервале
	// (нулевые временные метки или конец раньше начала)
	ErrInvalidInterval = errors.New("scheduling: invalid time interval")
)
