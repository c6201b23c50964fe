package memstore

import (
	"sync"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
)

// Store in-memory бэкенд хранения на map-ах.
// Используется для локальной разработки и тестов вместо PostgreSQL;
// репозитории поверх Store реализуют те же контракты, что и
// репозитории internal/infra/storage.
type Store struct {
	mu sync.RWMutex

	vehicles map[int64]*domain.Vehicle
	bookings map[int64]*domain.Booking
	downtime map[int64]*domain.DowntimeBlock

	nextVehicleID  int64
	nextBookingID  int64
	nextDowntimeID int64
}

// New создает пустой in-memory store
func New() *Store {
	return &Store{
		vehicles:       make(map[int64]*domain.Vehicle),
		bookings:       make(map[int64]*domain.Booking),
		downtime:       make(map[int64]*domain.DowntimeBlock),
		nextVehicleID:  1,
		nextBookingID:  1,
		nextDowntimeID: 1,
	}
}

// Vehicles возвращает репозиторий транспорта поверх store
func (s *Store) Vehicles() *VehicleRepository {
	return &VehicleRepository{store: s}
}

// Bookings возвращает репозиторий бронирований поверх store
func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

// Downtime возвращает репозиторий блоков простоя поверх store
func (s *Store) Downtime() *DowntimeRepository {
	return &DowntimeRepository{store: s}
}

func now() time.Time {
	return time.Now().UTC()
}
