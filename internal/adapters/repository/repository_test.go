package repository

import (
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/infrastructure/logger"
)

func memStore(t *testing.T) (*FileStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store, err := NewFileStore(fs, "data")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return store, fs
}

func TestFileStoreRoundTrip(t *testing.T) {
	store, _ := memStore(t)

	saved := []entities.Task{
		{
			ID:        "t1",
			Title:     "Essay draft",
			Date:      "2025-03-10",
			Deadline:  "2025-03-12",
			Completed: false,
			CreatedAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		{ID: "t2", Title: "Laundry", Date: "2025-03-11", Completed: true,
			CreatedAt: time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)},
	}
	if err := store.Save(TasksKey, saved); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var loaded []entities.Task
	found, err := store.Load(TasksKey, &loaded)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("saved key reported absent")
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d tasks, want 2", len(loaded))
	}
	if loaded[0] != saved[0] || loaded[1] != saved[1] {
		t.Errorf("round trip altered tasks: %+v", loaded)
	}
}

func TestFileStoreAbsentKey(t *testing.T) {
	store, _ := memStore(t)

	var tasks []entities.Task
	found, err := store.Load(TasksKey, &tasks)
	if err != nil {
		t.Fatalf("Load of absent key errored: %v", err)
	}
	if found {
		t.Error("absent key reported present")
	}
}

func TestFileStoreMalformedValue(t *testing.T) {
	store, fs := memStore(t)
	afero.WriteFile(fs, "data/tasks.json", []byte("definitely {not json"), 0o644)

	var tasks []entities.Task
	_, err := store.Load(TasksKey, &tasks)
	if err == nil {
		t.Error("expected decode error for malformed value")
	}
}

func TestTaskRepositoryDefaultsOnMalformedData(t *testing.T) {
	store, fs := memStore(t)
	afero.WriteFile(fs, "data/tasks.json", []byte("definitely {not json"), 0o644)

	repo := NewTaskRepository(store, logger.NewNop())
	if got := repo.List(); len(got) != 0 {
		t.Errorf("malformed store should yield empty collection, got %+v", got)
	}
}

func TestTaskRepositoryCRUD(t *testing.T) {
	store, _ := memStore(t)
	repo := NewTaskRepository(store, logger.NewNop())

	task := entities.Task{ID: "t1", Title: "Essay draft", Date: "2025-03-10",
		CreatedAt: time.Now().UTC()}
	repo.Create(task)

	got, err := repo.Get("t1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Essay draft" {
		t.Errorf("Get returned %+v", got)
	}

	task.Completed = true
	if err := repo.Update(task); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// A fresh repository over the same store sees the persisted state.
	reloaded := NewTaskRepository(store, logger.NewNop())
	got, err = reloaded.Get("t1")
	if err != nil {
		t.Fatalf("Get after reload: %v", err)
	}
	if !got.Completed {
		t.Error("update not persisted")
	}

	if err := reloaded.Delete("t1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := reloaded.Get("t1"); err != entities.ErrTaskNotFound {
		t.Errorf("Get after delete = %v, want ErrTaskNotFound", err)
	}

	if err := reloaded.Update(entities.Task{ID: "ghost"}); err != entities.ErrTaskNotFound {
		t.Errorf("Update of missing task = %v, want ErrTaskNotFound", err)
	}
	if err := reloaded.Delete("ghost"); err != entities.ErrTaskNotFound {
		t.Errorf("Delete of missing task = %v, want ErrTaskNotFound", err)
	}
}

func TestTaskRepositorySwallowsWriteFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewFileStore(fs, "data")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	repo := NewTaskRepository(store, logger.NewNop())

	// Break the store after construction; mutations must still apply to
	// the in-memory collection.
	store.fs = afero.NewReadOnlyFs(fs)

	repo.Create(entities.Task{ID: "t1", Title: "Essay draft", Date: "2025-03-10"})
	if _, err := repo.Get("t1"); err != nil {
		t.Errorf("in-memory state lost after failed save: %v", err)
	}
}

func TestNoopStore(t *testing.T) {
	store := NoopStore{}

	if err := store.Save(TasksKey, []entities.Task{{ID: "t1"}}); err != nil {
		t.Fatalf("noop Save errored: %v", err)
	}

	var tasks []entities.Task
	found, err := store.Load(TasksKey, &tasks)
	if err != nil || found {
		t.Errorf("noop Load = (%v, %v), want absent and nil", found, err)
	}

	repo := NewTaskRepository(store, logger.NewNop())
	repo.Create(entities.Task{ID: "t1", Title: "Essay draft", Date: "2025-03-10"})
	if got := repo.List(); len(got) != 1 {
		t.Errorf("noop-backed repository lost in-memory task: %+v", got)
	}
}

func TestHolidayRepositoryFiltersOfficialRecords(t *testing.T) {
	store, _ := memStore(t)
	if err := store.Save(CustomHolidaysKey, []entities.Holiday{
		{ID: "custom-1", Name: "Barrio Fiesta", Date: "2025-05-02", Type: "Festival"},
		{ID: "sneaky-official", Name: "New Year", Date: "2025-01-01", IsOfficial: true},
	}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	repo := NewHolidayRepository(store, logger.NewNop())
	got := repo.List()
	if len(got) != 1 || got[0].ID != "custom-1" {
		t.Errorf("List = %+v, want only the custom holiday", got)
	}
}

func TestHolidayRepositoryCRUD(t *testing.T) {
	store, _ := memStore(t)
	repo := NewHolidayRepository(store, logger.NewNop())

	repo.Create(entities.Holiday{ID: "h1", Name: "Barrio Fiesta", Date: "2025-05-02", Type: "Festival"})

	got, err := repo.Get("h1")
	if err != nil || got.Name != "Barrio Fiesta" {
		t.Fatalf("Get = (%+v, %v)", got, err)
	}

	got.Date = "2025-05-03"
	if err := repo.Update(got); err != nil {
		t.Fatalf("Update: %v", err)
	}

	reloaded := NewHolidayRepository(store, logger.NewNop())
	got, _ = reloaded.Get("h1")
	if got.Date != "2025-05-03" {
		t.Error("update not persisted")
	}

	if err := reloaded.Delete("h1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := reloaded.Get("h1"); err != entities.ErrHolidayNotFound {
		t.Errorf("Get after delete = %v, want ErrHolidayNotFound", err)
	}
}
