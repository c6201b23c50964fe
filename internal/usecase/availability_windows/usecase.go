package availability_windows

import (
	"context"
	"fmt"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	"github.com/dmkvsk/JSR-FleetService/internal/scheduling"
)

// UseCase use case для вычисления окон доступности бренда
type UseCase struct {
	vehicleRepo  VehicleRepository
	bookingRepo  BookingRepository
	downtimeRepo DowntimeRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	downtimeRepo DowntimeRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		vehicleRepo:  vehicleRepo,
		bookingRepo:  bookingRepo,
		downtimeRepo: downtimeRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute вычисляет окна доступности для гидроциклов бренда.
// Окна строятся по снимку активных броней и блоков простоя
// заметающей прямой начиная с момента asOf.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	brand := scheduling.NormalizeBrand(req.Brand)
	if brand == "" {
		uc.logger.Warn("AvailabilityWindows: brand is missing")
		return nil, ErrBrandRequired
	}

	asOf := uc.timeProvider.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	uc.logger.Info("AvailabilityWindows: brand=%s, asOf=%s", brand, asOf.Format("2006-01-02T15:04:05Z07:00"))

	// 2. Гидроциклы бренда
	vehicles, err := uc.vehicleRepo.ListByBrand(ctx, brand)
	if err != nil {
		uc.logger.Error("AvailabilityWindows: failed to list vehicles for brand=%s: %v", brand, err)
		return nil, fmt.Errorf("%w: failed to list vehicles: %v", ErrInternal, err)
	}

	// Неизвестный бренд дает пустой список окон, а не ошибку
	if len(vehicles) == 0 {
		uc.logger.Info("AvailabilityWindows: no vehicles for brand=%s", brand)
		return &Response{Brand: brand, AsOf: asOf, Windows: []Window{}}, nil
	}

	// 3. Снимок активных броней и блоков простоя
	bookings, err := uc.bookingRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("AvailabilityWindows: failed to list active bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.downtimeRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("AvailabilityWindows: failed to list active downtime: %v", err)
		return nil, fmt.Errorf("%w: failed to list active downtime: %v", ErrInternal, err)
	}

	// 4. Заметающая прямая
	windows := scheduling.AvailabilityWindows(asOf, vehiclePtrs(vehicles), bookingPtrs(bookings), blockPtrs(blocks))

	uc.logger.Info("AvailabilityWindows: brand=%s produced %d windows", brand, len(windows))
	return &Response{
		Brand:   brand,
		AsOf:    asOf,
		Windows: fromSchedulingWindows(windows),
	}, nil
}

func vehiclePtrs(vehicles []domain.Vehicle) []*domain.Vehicle {
	out := make([]*domain.Vehicle, len(vehicles))
	for i := range vehicles {
		out[i] = &vehicles[i]
	}
	return out
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
