package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	vehicleRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/vehicle"
	"github.com/dmkvsk/JSR-FleetService/internal/scheduling"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	vehicleRepo  VehicleRepository
	downtimeRepo DowntimeRepository
	txManager    TransactionManager
	timeProvider TimeProvider
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
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка идут в сериализуемой транзакции,
// чтобы две параллельные брони не заняли один гидроцикл.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, vehicle=%d, start=%s, end=%s",
		req.CustomerName, req.VehicleID, req.StartTime.Format(timeFormat), req.EndTime.Format(timeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим интервал аренды
	iv, err := scheduling.NewInterval(req.StartTime, req.EndTime)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid time range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	// 3. Проверяем существование гидроцикла
	vehicle, err := uc.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 4. Гидроцикл с нерабочим базовым статусом недоступен для брони
	if !vehicle.IsAvailable() {
		uc.logger.Warn("CreateBooking: vehicle id=%d has status %s", vehicle.ID, vehicle.Status)
		return nil, ErrVehicleNotAvailable
	}

	status := domain.StatusScheduled
	if req.Status != nil {
		status = domain.BookingStatus(*req.Status)
	}

	var result *domain.Booking

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Активные брони и блоки простоя гидроцикла
		bookings, err := uc.bookingRepo.ListActiveForVehicle(txCtx, req.VehicleID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list active bookings: %v", err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		blocks, err := uc.downtimeRepo.ListActiveForVehicle(txCtx, req.VehicleID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list active downtime: %v", err)
			return fmt.Errorf("%w: failed to list active downtime: %v", ErrInternal, err)
		}

		// 5.2. Любое пересечение с активной бронью или простоем запрещает бронь
		if scheduling.Conflicts(req.VehicleID, iv, bookingPtrs(bookings), blockPtrs(blocks)) {
			uc.logger.Warn("CreateBooking: vehicle id=%d is busy in the requested range", req.VehicleID)
			return ErrVehicleNotAvailable
		}

		// 5.3. Создаем бронь
		result, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			VehicleID:     req.VehicleID,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Status:        status,
			Notes:         req.Notes,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for vehicle id=%d", result.ID, result.VehicleID)
	return FromDomain(result), nil
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

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
