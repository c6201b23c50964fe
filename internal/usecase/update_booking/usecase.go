package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	bookingRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/booking"
	vehicleRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/vehicle"
	"github.com/dmkvsk/JSR-FleetService/internal/scheduling"
)

// UseCase use case для обновления бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	downtimeRepo DowntimeRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	downtimeRepo DowntimeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		vehicleRepo:  vehicleRepo,
		downtimeRepo: downtimeRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case обновления бронирования.
// Перенос по времени или на другой гидроцикл заново проверяет пересечения,
// исключая из проверки саму обновляемую бронь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking id=%d", req.BookingID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее состояние брони
	existing, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем существование нового гидроцикла, если бронь переносится
	if req.VehicleID != nil && *req.VehicleID != existing.VehicleID {
		if _, err := uc.vehicleRepo.GetByID(ctx, *req.VehicleID); err != nil {
			if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
				uc.logger.Warn("UpdateBooking: vehicle id=%d not found", *req.VehicleID)
				return nil, ErrVehicleNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get vehicle id=%d: %v", *req.VehicleID, err)
			return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
		}
	}

	update := req.toDomainUpdate()

	// 4. Собираем итоговые значения интервала и гидроцикла после обновления
	target := *existing
	if update.VehicleID != nil {
		target.VehicleID = *update.VehicleID
	}
	if update.StartTime != nil {
		target.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		target.EndTime = *update.EndTime
	}
	if update.Status != nil {
		target.Status = *update.Status
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Повторная проверка пересечений нужна только если бронь
		// остается активной и меняет время или гидроцикл
		if update.ChangesSchedule() && target.IsActive() {
			iv, err := scheduling.NewInterval(target.StartTime, target.EndTime)
			if err != nil {
				uc.logger.Warn("UpdateBooking: invalid time range: %v", err)
				return fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
			}

			bookings, err := uc.bookingRepo.ListActiveForVehicle(txCtx, target.VehicleID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to list active bookings: %v", err)
				return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
			}

			blocks, err := uc.downtimeRepo.ListActiveForVehicle(txCtx, target.VehicleID)
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to list active downtime: %v", err)
				return fmt.Errorf("%w: failed to list active downtime: %v", ErrInternal, err)
			}

			if scheduling.ConflictsExcluding(target.VehicleID, iv, existing.ID, bookingPtrs(bookings), blockPtrs(blocks)) {
				uc.logger.Warn("UpdateBooking: vehicle id=%d is busy in the requested range", target.VehicleID)
				return ErrVehicleNotAvailable
			}
		}

		// 4.2. Применяем обновление
		var updateErr error
		result, updateErr = uc.bookingRepo.Update(txCtx, req.BookingID, update)
		if updateErr != nil {
			if errors.Is(updateErr, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, updateErr)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%d", result.ID)
	return FromDomain(result), nil
}

func bookingPtrs(bookings []domain.Booking) []*domain.Booking {
	out := make([]*domain.Booking, len(bookings))
	for i := range bookings {
		out[i] = &bookings[i]
	}
	return out
}

func blockPtrs(blocks []domain.DowntimeBlock) []*domain.DowntimeBlock {
	out := make([]*domain.DowntimeBlock, len(blocks))
	for i := range blocks {
		out[i] = &blocks[i]
	}
	return out
}
