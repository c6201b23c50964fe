package downtime

import "errors"

var (
	// ErrDowntimeNotFound возвращается, когда блок простоя не найден
	ErrDowntimeNotFound = errors.New("downtime.repository: downtime block not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("downtime.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("downtime.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("downtime.repository: failed to scan row")
)
