package downtime

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	downtimeRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/downtime"
	vehicleRepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/vehicle"
)

// Service сервис для работы с блоками простоя (обслуживание, заправка).
// Кроме CRUD выполняет побочные переходы статуса гидроцикла:
// текущий блок уводит доступный гидроцикл в maintenance/refueling,
// завершение блока возвращает его в available.
type Service struct {
	downtimeRepo DowntimeRepository
	vehicleRepo  VehicleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса простоя
func NewService(
	downtimeRepo DowntimeRepository,
	vehicleRepo VehicleRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		downtimeRepo: downtimeRepo,
		vehicleRepo:  vehicleRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create создает блок простоя для гидроцикла
func (s *Service) Create(ctx context.Context, block *domain.DowntimeBlock) (*domain.DowntimeBlock, error) {
	s.logger.Info("Create: creating downtime block for vehicle id=%d type=%s", block.VehicleID, block.Type)

	if !domain.ValidDowntimeType(block.Type) {
		return nil, fmt.Errorf("%w: unknown downtime type %q", ErrInvalidInput, block.Type)
	}
	if block.StartTime.IsZero() || block.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}
	if block.EndTime.Before(block.StartTime) {
		return nil, fmt.Errorf("%w: end time before start time", ErrInvalidInput)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, block.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Create: vehicle id=%d not found", block.VehicleID)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("Create: failed to fetch vehicle id=%d: %v", block.VehicleID, err)
		return nil, fmt.Errorf("%w: Create - vehicle fetch error: %v", ErrInternal, err)
	}

	created, err := s.downtimeRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Блок, действующий прямо сейчас, сразу меняет статус доступного гидроцикла.
	// Блок уже сохранен, поэтому сбой перехода логируется, но наружу не отдается.
	if status, ok := domain.StatusOnDowntimeCreated(vehicle.Status, created, s.timeProvider.Now()); ok {
		if err := s.vehicleRepo.UpdateStatus(ctx, vehicle.ID, status); err != nil {
			s.logger.Error("Create: failed to update vehicle id=%d status to %s: %v", vehicle.ID, status, err)
		} else {
			s.logger.Info("Create: vehicle id=%d moved to status %s", vehicle.ID, status)
		}
	}

	s.logger.Info("Create: successfully created downtime block id=%d", created.ID)
	return created, nil
}

// GetByID получает блок простоя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.DowntimeBlock, error) {
	block, err := s.downtimeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, downtimeRepo.ErrDowntimeNotFound) {
			s.logger.Warn("GetByID: downtime block id=%d not found", id)
			return nil, ErrDowntimeNotFound
		}
		s.logger.Error("GetByID: repository error for block id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return block, nil
}

// List возвращает все блоки простоя
func (s *Service) List(ctx context.Context) ([]domain.DowntimeBlock, error) {
	blocks, err := s.downtimeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return blocks, nil
}

// Update частично обновляет блок простоя.
// Завершение блока (completed=true) возвращает гидроцикл в available,
// если тот находился в maintenance или refueling.
func (s *Service) Update(ctx context.Context, id int64, update *domain.DowntimeUpdate) (*domain.DowntimeBlock, error) {
	s.logger.Info("Update: updating downtime block id=%d", id)

	if update.Type != nil && !domain.ValidDowntimeType(*update.Type) {
		return nil, fmt.Errorf("%w: unknown downtime type %q", ErrInvalidInput, *update.Type)
	}
	if update.StartTime != nil && update.EndTime != nil && update.EndTime.Before(*update.StartTime) {
		return nil, fmt.Errorf("%w: end time before start time", ErrInvalidInput)
	}

	block, err := s.downtimeRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, downtimeRepo.ErrDowntimeNotFound) {
			s.logger.Warn("Update: downtime block id=%d not found", id)
			return nil, ErrDowntimeNotFound
		}
		s.logger.Error("Update: repository error for block id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Блок уже сохранен, сбой возврата гидроцикла в available не отдается наружу
	if update.Completed != nil && *update.Completed {
		s.releaseVehicle(ctx, block.VehicleID)
	}

	s.logger.Info("Update: successfully updated downtime block id=%d", id)
	return block, nil
}

// Delete удаляет блок простоя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting downtime block id=%d", id)

	if err := s.downtimeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, downtimeRepo.ErrDowntimeNotFound) {
			s.logger.Warn("Delete: downtime block id=%d not found", id)
			return ErrDowntimeNotFound
		}
		s.logger.Error("Delete: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted downtime block id=%d", id)
	return nil
}

func (s *Service) releaseVehicle(ctx context.Context, vehicleID int64) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			// Гидроцикл мог быть удален, блок при этом остается валидным
			s.logger.Warn("releaseVehicle: vehicle id=%d not found, skipping status release", vehicleID)
			return
		}
		s.logger.Error("releaseVehicle: failed to fetch vehicle id=%d: %v", vehicleID, err)
		return
	}

	status, ok := domain.StatusOnDowntimeCompleted(vehicle.Status)
	if !ok {
		return
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, vehicle.ID, status); err != nil {
		s.logger.Error("releaseVehicle: failed to update vehicle id=%d status: %v", vehicle.ID, err)
		return
	}
	s.logger.Info("releaseVehicle: vehicle id=%d released to status %s", vehicle.ID, status)
}
