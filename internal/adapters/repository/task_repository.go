package repository

import (
	"sync"

	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/infrastructure/logger"
	"github.com/studentplanner/core/internal/ports"
)

// TaskRepository keeps the task collection in memory and mirrors every
// change to the key-value store. Storage failures are logged and
// swallowed: a broken store degrades to session-only persistence instead
// of failing requests.
type TaskRepository struct {
	mu     sync.RWMutex
	tasks  []entities.Task
	store  ports.KeyValueStore
	logger *logger.Logger
}

// NewTaskRepository loads the persisted collection. Absent, unreadable or
// malformed data yields an empty collection.
func NewTaskRepository(store ports.KeyValueStore, appLogger *logger.Logger) *TaskRepository {
	repo := &TaskRepository{
		tasks:  []entities.Task{},
		store:  store,
		logger: appLogger.WithComponent("task_repository"),
	}

	var stored []entities.Task
	found, err := store.Load(TasksKey, &stored)
	if err != nil {
		repo.logger.Errorw("Failed to load stored tasks, starting empty", "error", err)
	} else if found && stored != nil {
		repo.tasks = stored
	}

	return repo
}

// List returns a copy of the full task collection.
func (r *TaskRepository) List() []entities.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// Get returns the task with the given id.
func (r *TaskRepository) Get(id string) (entities.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return entities.Task{}, entities.ErrTaskNotFound
}

// Create appends the task and persists the collection.
func (r *TaskRepository) Create(task entities.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = append(r.tasks, task)
	r.persist()
}

// Update replaces the task with the same id and persists the collection.
func (r *TaskRepository) Update(task entities.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == task.ID {
			r.tasks[i] = task
			r.persist()
			return nil
		}
	}
	return entities.ErrTaskNotFound
}

// Delete removes the task with the given id and persists the collection.
func (r *TaskRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.persist()
			return nil
		}
	}
	return entities.ErrTaskNotFound
}

func (r *TaskRepository) persist() {
	if err := r.store.Save(TasksKey, r.tasks); err != nil {
		r.logger.Errorw("Failed to persist tasks", "error", err)
	}
}
