package repository

import (
	"sync"

	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/infrastructure/logger"
	"github.com/studentplanner/core/internal/ports"
)

// HolidayRepository keeps the custom-holiday collection in memory and
// mirrors every change to the key-value store, with the same degrade
// behavior as TaskRepository. Official holidays never enter this store.
type HolidayRepository struct {
	mu       sync.RWMutex
	holidays []entities.Holiday
	store    ports.KeyValueStore
	logger   *logger.Logger
}

// NewHolidayRepository loads the persisted collection, dropping any
// record flagged official that somehow ended up in the store.
func NewHolidayRepository(store ports.KeyValueStore, appLogger *logger.Logger) *HolidayRepository {
	repo := &HolidayRepository{
		holidays: []entities.Holiday{},
		store:    store,
		logger:   appLogger.WithComponent("holiday_repository"),
	}

	var stored []entities.Holiday
	found, err := store.Load(CustomHolidaysKey, &stored)
	if err != nil {
		repo.logger.Errorw("Failed to load stored holidays, starting empty", "error", err)
	} else if found {
		for _, h := range stored {
			if h.IsOfficial {
				repo.logger.Warnw("Dropping official holiday from custom store", "id", h.ID)
				continue
			}
			repo.holidays = append(repo.holidays, h)
		}
	}

	return repo
}

// List returns a copy of the full custom-holiday collection.
func (r *HolidayRepository) List() []entities.Holiday {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Holiday, len(r.holidays))
	copy(out, r.holidays)
	return out
}

// Get returns the custom holiday with the given id.
func (r *HolidayRepository) Get(id string) (entities.Holiday, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.holidays {
		if h.ID == id {
			return h, nil
		}
	}
	return entities.Holiday{}, entities.ErrHolidayNotFound
}

// Create appends the holiday and persists the collection.
func (r *HolidayRepository) Create(holiday entities.Holiday) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.holidays = append(r.holidays, holiday)
	r.persist()
}

// Update replaces the holiday with the same id and persists the collection.
func (r *HolidayRepository) Update(holiday entities.Holiday) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.holidays {
		if h.ID == holiday.ID {
			r.holidays[i] = holiday
			r.persist()
			return nil
		}
	}
	return entities.ErrHolidayNotFound
}

// Delete removes the holiday with the given id and persists the collection.
func (r *HolidayRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.holidays {
		if h.ID == id {
			r.holidays = append(r.holidays[:i], r.holidays[i+1:]...)
			r.persist()
			return nil
		}
	}
	return entities.ErrHolidayNotFound
}

func (r *HolidayRepository) persist() {
	if err := r.store.Save(CustomHolidaysKey, r.holidays); err != nil {
		r.logger.Errorw("Failed to persist custom holidays", "error", err)
	}
}
