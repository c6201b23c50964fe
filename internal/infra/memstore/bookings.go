package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	bookingrepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/booking"
)

// BookingRepository in-memory реализация репозитория бронирований
type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *booking
	created.ID = r.store.nextBookingID
	r.store.nextBookingID++
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	r.store.bookings[created.ID] = &created

	out := created
	return &out, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, bookingrepo.ErrBookingNotFound
	}

	out := *booking
	return &out, nil
}

func (r *BookingRepository) List(_ context.Context) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Booking, 0, len(r.store.bookings))
	for _, booking := range r.store.bookings {
		out = append(out, *booking)
	}
	sortBookings(out)

	return out, nil
}

func (r *BookingRepository) ListActive(_ context.Context) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, booking := range r.store.bookings {
		if booking.IsActive() {
			out = append(out, *booking)
		}
	}
	sortBookings(out)

	return out, nil
}

func (r *BookingRepository) ListActiveForVehicle(_ context.Context, vehicleID int64) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, booking := range r.store.bookings {
		if booking.VehicleID == vehicleID && booking.IsActive() {
			out = append(out, *booking)
		}
	}
	sortBookings(out)

	return out, nil
}

func (r *BookingRepository) ListStartingBetween(_ context.Context, from, to time.Time) ([]domain.Booking, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, booking := range r.store.bookings {
		if !booking.StartTime.Before(from) && booking.StartTime.Before(to) {
			out = append(out, *booking)
		}
	}
	sortBookings(out)

	return out, nil
}

func (r *BookingRepository) Update(_ context.Context, id int64, update *domain.BookingUpdate) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, bookingrepo.ErrBookingNotFound
	}

	if update.VehicleID != nil {
		booking.VehicleID = *update.VehicleID
	}
	if update.CustomerName != nil {
		booking.CustomerName = *update.CustomerName
	}
	if update.CustomerEmail != nil {
		booking.CustomerEmail = update.CustomerEmail
	}
	if update.CustomerPhone != nil {
		booking.CustomerPhone = update.CustomerPhone
	}
	if update.StartTime != nil {
		booking.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		booking.EndTime = *update.EndTime
	}
	if update.Status != nil {
		booking.Status = *update.Status
	}
	if update.Notes != nil {
		booking.Notes = update.Notes
	}
	booking.UpdatedAt = now()

	out := *booking
	return &out, nil
}

func (r *BookingRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bookings[id]; !ok {
		return bookingrepo.ErrBookingNotFound
	}

	delete(r.store.bookings, id)

	return nil
}

func sortBookings(bookings []domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].ID < bookings[j].ID
	})
}
