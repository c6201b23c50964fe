package create_booking

import (
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName  string     // Имя клиента
	CustomerEmail *string    // Email клиента (опционально)
	CustomerPhone *string    // Телефон клиента (опционально)
	VehicleID     int64      // ID гидроцикла
	StartTime     time.Time  // Начало аренды
	EndTime       time.Time  // Конец аренды
	Status        *string    // Статус брони (опционально, по умолчанию scheduled)
	Notes         *string    // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
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
