package fleet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	vehicleRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/vehicle"
)

// DashboardSummary агрегированные показатели флота для главного экрана
type DashboardSummary struct {
	TotalVehicles     int64
	AvailableVehicles int64
	TodayBookings     int64
	MaintenanceAlerts int64
	RefuelingNeeded   int64
}

// Service сервис для работы с флотом гидроциклов
type Service struct {
	vehicleRepo  VehicleRepository
	bookingRepo  BookingRepository
	downtimeRepo DowntimeRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса флота
func NewService(
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	downtimeRepo DowntimeRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		bookingRepo:  bookingRepo,
		downtimeRepo: downtimeRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create регистрирует новый гидроцикл во флоте
func (s *Service) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	s.logger.Info("Create: creating vehicle name=%s brand=%s", vehicle.Name, vehicle.Brand)

	if vehicle.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if vehicle.Brand == "" {
		return nil, fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if vehicle.Status == "" {
		vehicle.Status = domain.VehicleAvailable
	}
	if !domain.ValidVehicleStatus(vehicle.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, vehicle.Status)
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created vehicle id=%d", created.ID)
	return created, nil
}

// GetByID получает гидроцикл по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetByID: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return vehicle, nil
}

// List возвращает все гидроциклы флота
func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return vehicles, nil
}

// Update частично обновляет данные гидроцикла
func (s *Service) Update(ctx context.Context, id int64, update *domain.VehicleUpdate) (*domain.Vehicle, error) {
	s.logger.Info("Update: updating vehicle id=%d", id)

	if update.Name != nil && *update.Name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
	}
	if update.Brand != nil && *update.Brand == "" {
		return nil, fmt.Errorf("%w: brand cannot be empty", ErrInvalidInput)
	}
	if update.Status != nil && !domain.ValidVehicleStatus(*update.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *update.Status)
	}
	if update.HoursUsed != nil && *update.HoursUsed < 0 {
		return nil, fmt.Errorf("%w: hours used cannot be negative", ErrInvalidInput)
	}

	vehicle, err := s.vehicleRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Update: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Update: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated vehicle id=%d", id)
	return vehicle, nil
}

// Delete удаляет гидроцикл из флота.
// Удаление запрещено, пока на гидроцикл ссылаются активные брони
// или незавершенные блоки простоя.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting vehicle id=%d", id)

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	bookings, err := s.bookingRepo.ListActiveForVehicle(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to check active bookings for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - booking check error: %v", ErrInternal, err)
	}
	if len(bookings) > 0 {
		s.logger.Warn("Delete: vehicle id=%d has %d active bookings", id, len(bookings))
		return ErrVehicleInUse
	}

	blocks, err := s.downtimeRepo.ListActiveForVehicle(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to check active downtime for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - downtime check error: %v", ErrInternal, err)
	}
	if len(blocks) > 0 {
		s.logger.Warn("Delete: vehicle id=%d has %d active downtime blocks", id, len(blocks))
		return ErrVehicleInUse
	}

	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted vehicle id=%d", id)
	return nil
}

// DashboardSummary собирает агрегированные показатели флота:
// общее число гидроциклов, число доступных по базовому статусу,
// брони на сегодня и счетчики незавершенного обслуживания.
func (s *Service) DashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	vehicles, err := s.vehicleRepo.List(ctx)
	if err != nil {
		s.logger.Error("DashboardSummary: failed to list vehicles: %v", err)
		return nil, fmt.Errorf("%w: DashboardSummary - vehicle list error: %v", ErrInternal, err)
	}

	var available int64
	for i := range vehicles {
		if vehicles[i].IsAvailable() {
			available++
		}
	}

	dayStart, dayEnd := dayBounds(s.timeProvider.Now())
	todayBookings, err := s.bookingRepo.ListStartingBetween(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("DashboardSummary: failed to list today's bookings: %v", err)
		return nil, fmt.Errorf("%w: DashboardSummary - booking list error: %v", ErrInternal, err)
	}

	maintenanceCount, err := s.downtimeRepo.CountActiveByType(ctx, domain.DowntimeMaintenance)
	if err != nil {
		s.logger.Error("DashboardSummary: failed to count pending maintenance: %v", err)
		return nil, fmt.Errorf("%w: DashboardSummary - maintenance count error: %v", ErrInternal, err)
	}

	refuelingCount, err := s.downtimeRepo.CountActiveByType(ctx, domain.DowntimeRefueling)
	if err != nil {
		s.logger.Error("DashboardSummary: failed to count refueling blocks: %v", err)
		return nil, fmt.Errorf("%w: DashboardSummary - refueling count error: %v", ErrInternal, err)
	}

	return &DashboardSummary{
		TotalVehicles:     int64(len(vehicles)),
		AvailableVehicles: available,
		TodayBookings:     int64(len(todayBookings)),
		MaintenanceAlerts: maintenanceCount,
		RefuelingNeeded:   refuelingCount,
	}, nil
}

// dayBounds возвращает границы календарного дня [начало, начало следующего)
// в той же временной зоне, что и t
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
