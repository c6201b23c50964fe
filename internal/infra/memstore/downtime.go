package memstore

import (
	"context"
	"sort"

	"github.com/dmkvsk/JSR-FleetService/internal/domain"
	downtimerepo "github.com/dmkvsk/JSR-FleetService/internal/infra/storage/downtime"
)

// DowntimeRepository in-memory реализация репозитория блоков простоя
type DowntimeRepository struct {
	store *Store
}

func (r *DowntimeRepository) Create(_ context.Context, block *domain.DowntimeBlock) (*domain.DowntimeBlock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	created := *block
	created.ID = r.store.nextDowntimeID
	r.store.nextDowntimeID++
	created.CreatedAt = now()
	created.UpdatedAt = created.CreatedAt

	r.store.downtime[created.ID] = &created

	out := created
	return &out, nil
}

func (r *DowntimeRepository) GetByID(_ context.Context, id int64) (*domain.DowntimeBlock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	block, ok := r.store.downtime[id]
	if !ok {
		return nil, downtimerepo.ErrDowntimeNotFound
	}

	out := *block
	return &out, nil
}

func (r *DowntimeRepository) List(_ context.Context) ([]domain.DowntimeBlock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.DowntimeBlock, 0, len(r.store.downtime))
	for _, block := range r.store.downtime {
		out = append(out, *block)
	}
	sortBlocks(out)

	return out, nil
}

func (r *DowntimeRepository) ListActive(_ context.Context) ([]domain.DowntimeBlock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.DowntimeBlock, 0)
	for _, block := range r.store.downtime {
		if block.IsActive() {
			out = append(out, *block)
		}
	}
	sortBlocks(out)

	return out, nil
}

func (r *DowntimeRepository) ListActiveForVehicle(_ context.Context, vehicleID int64) ([]domain.DowntimeBlock, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.DowntimeBlock, 0)
	for _, block := range r.store.downtime {
		if block.VehicleID == vehicleID && block.IsActive() {
			out = append(out, *block)
		}
	}
	sortBlocks(out)

	return out, nil
}

func (r *DowntimeRepository) CountActiveByType(_ context.Context, downtimeType domain.DowntimeType) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var count int64
	for _, block := range r.store.downtime {
		if block.IsActive() && block.Type == downtimeType {
			count++
		}
	}

	return count, nil
}

func (r *DowntimeRepository) Update(_ context.Context, id int64, update *domain.DowntimeUpdate) (*domain.DowntimeBlock, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	block, ok := r.store.downtime[id]
	if !ok {
		return nil, downtimerepo.ErrDowntimeNotFound
	}

	if update.VehicleID != nil {
		block.VehicleID = *update.VehicleID
	}
	if update.Type != nil {
		block.Type = *update.Type
	}
	if update.StartTime != nil {
		block.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		block.EndTime = *update.EndTime
	}
	if update.Completed != nil {
		block.Completed = *update.Completed
	}
	if update.Notes != nil {
		block.Notes = update.Notes
	}
	block.UpdatedAt = now()

	out := *block
	return &out, nil
}

func (r *DowntimeRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.downtime[id]; !ok {
		return downtimerepo.ErrDowntimeNotFound
	}

	delete(r.store.downtime, id)

	return nil
}

func sortBlocks(blocks []domain.DowntimeBlock) {
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].ID < blocks[j].ID
	})
}
