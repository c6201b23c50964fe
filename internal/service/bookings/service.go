package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	bookingRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/booking"
)

// Service сервис для чтения и удаления бронирований.
// Создание и изменение броней идут через usecase-слой,
// где выполняется проверка доступности.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return booking, nil
}

// List возвращает все бронирования
func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// ListToday возвращает бронирования, начинающиеся в текущем календарном дне
func (s *Service) ListToday(ctx context.Context) ([]domain.Booking, error) {
	now := s.timeProvider.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.ListStartingBetween(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("ListToday: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListToday - repository error: %v", ErrInternal, err)
	}

	return bookings, nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
