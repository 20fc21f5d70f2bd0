package ports

import (
	"github.com/studentplanner/core/internal/domain/entities"
)

// KeyValueStore is the durable per-key JSON store underneath the
// repositories. Load reports whether the key was present; implementations
// must treat an unreadable value the same as an absent one.
type KeyValueStore interface {
	Load(key string, dest interface{}) (bool, error)
	Save(key string, value interface{}) error
}

// TaskRepository owns the persisted task collection. Reads never fail:
// absent or malformed stored data yields an empty collection. Writes are
// fire-and-forget; a failed save leaves the in-memory state authoritative
// for the session.
type TaskRepository interface {
	List() []entities.Task
	Get(id string) (entities.Task, error)
	Create(task entities.Task)
	Update(task entities.Task) error
	Delete(id string) error
}

// HolidayRepository owns the persisted custom-holiday collection, with the
// same read/write contract as TaskRepository. Official holidays are never
// stored here.
type HolidayRepository interface {
	List() []entities.Holiday
	Get(id string) (entities.Holiday, error)
	Create(holiday entities.Holiday)
	Update(holiday entities.Holiday) error
	Delete(id string) error
}
