package memstore

import (
	"context"
	"sort"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	vehiclerepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/vehicle"
	"github.com/dmkvsk/JSR-FleetService/internal/scheduling"
)

// VehicleRepository in-memory реализация репозитория транспорта.
// Возвращает те же sentinel-ошибки, что и PostgreSQL-реализация,
// чтобы сервисный слой не зависел от выбранного бэкенда.
type VehicleRepository struct {
	store *Store
}

func (r *VehicleRepository) Create(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *vehicle
	created.ID = r.store.nextVehicleID
	r.store.nextVehicleID++
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	r.store.vehicles[created.ID] = &created

	out := created
	return &out, nil
}

func (r *VehicleRepository) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	vehicle, ok := r.store.vehicles[id]
	if !ok {
		return nil, vehiclerepo.ErrVehicleNotFound
	}

	out := *vehicle
	return &out, nil
}

func (r *VehicleRepository) List(_ context.Context) ([]domain.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Vehicle, 0, len(r.store.vehicles))
	for _, vehicle := range r.store.vehicles {
		out = append(out, *vehicle)
	}
	sortVehicles(out)

	return out, nil
}

func (r *VehicleRepository) ListByBrand(_ context.Context, brand string) ([]domain.Vehicle, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	want := scheduling.NormalizeBrand(brand)

	out := make([]domain.Vehicle, 0)
	for _, vehicle := range r.store.vehicles {
		if scheduling.NormalizeBrand(vehicle.Brand) == want {
			out = append(out, *vehicle)
		}
	}
	sortVehicles(out)

	return out, nil
}

func (r *VehicleRepository) Update(_ context.Context, id int64, update *domain.VehicleUpdate) (*domain.Vehicle, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vehicle, ok := r.store.vehicles[id]
	if !ok {
		return nil, vehiclerepo.ErrVehicleNotFound
	}

	if update.Name != nil {
		vehicle.Name = *update.Name
	}
	if update.Brand != nil {
		vehicle.Brand = *update.Brand
	}
	if update.Status != nil {
		vehicle.Status = *update.Status
	}
	if update.LastMaintenanceDate != nil {
		vehicle.LastMaintenanceDate = update.LastMaintenanceDate
	}
	if update.HoursUsed != nil {
		vehicle.HoursUsed = *update.HoursUsed
	}
	vehicle.UpdatedAt = now()

	out := *vehicle
	return &out, nil
}

func (r *VehicleRepository) UpdateStatus(_ context.Context, id int64, status domain.VehicleStatus) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vehicle, ok := r.store.vehicles[id]
	if !ok {
		return vehiclerepo.ErrVehicleNotFound
	}

	vehicle.Status = status
	vehicle.UpdatedAt = now()

	return nil
}

func (r *VehicleRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.vehicles[id]; !ok {
		return vehiclerepo.ErrVehicleNotFound
	}

	delete(r.store.vehicles, id)

	return nil
}

func sortVehicles(vehicles []domain.Vehicle) {
	sort.Slice(vehicles, func(i, j int) bool {
		return vehicles[i].ID < vehicles[j].ID
	})
}
