package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studentplanner/core/internal/domain/calendar"
	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/domain/planner"
	"github.com/studentplanner/core/internal/infrastructure/logger"
	"github.com/studentplanner/core/internal/ports"
)

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Deadline    string `json:"deadline,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateTaskRequest is the payload for updating a task. Nil fields are
// left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Date        *string `json:"date,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// TaskService handles task-related operations
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, appLogger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   appLogger,
		now:      time.Now,
	}
}

// CreateTask creates a new task. The id and creation timestamp are
// assigned here; new tasks always start incomplete.
func (s *TaskService) CreateTask(req CreateTaskRequest) (entities.Task, error) {
	if _, err := calendar.ParseDateKey(req.Date); err != nil {
		return entities.Task{}, fmt.Errorf("invalid task date: %w", err)
	}
	if req.Deadline != "" {
		deadline, err := calendar.ParseInstant(req.Deadline)
		if err != nil {
			return entities.Task{}, fmt.Errorf("invalid task deadline: %w", err)
		}
		// A deadline before the task date is unusual but accepted; the
		// ordering is deliberately not enforced.
		if date, _ := calendar.ParseDateKey(req.Date); deadline.Before(date) {
			s.logger.Warnw("Task deadline precedes its date",
				"date", req.Date, "deadline", req.Deadline)
		}
	}

	task := entities.Task{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Date:        req.Date,
		Deadline:    req.Deadline,
		Description: req.Description,
		Completed:   false,
		CreatedAt:   s.now(),
	}

	s.taskRepo.Create(task)
	s.logger.Infow("Task created", "task_id", task.ID, "title", task.Title, "date", task.Date)

	return task, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(id string) (entities.Task, error) {
	return s.taskRepo.Get(id)
}

// UpdateTask updates a task's information
func (s *TaskService) UpdateTask(id string, req UpdateTaskRequest) (entities.Task, error) {
	task, err := s.taskRepo.Get(id)
	if err != nil {
		return entities.Task{}, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Date != nil {
		if _, err := calendar.ParseDateKey(*req.Date); err != nil {
			return entities.Task{}, fmt.Errorf("invalid task date: %w", err)
		}
		task.Date = *req.Date
	}
	if req.Deadline != nil {
		if *req.Deadline != "" {
			if _, err := calendar.ParseInstant(*req.Deadline); err != nil {
				return entities.Task{}, fmt.Errorf("invalid task deadline: %w", err)
			}
		}
		task.Deadline = *req.Deadline
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if err := s.taskRepo.Update(task); err != nil {
		return entities.Task{}, err
	}

	s.logger.Infow("Task updated", "task_id", task.ID, "title", task.Title)

	return task, nil
}

// ToggleTask flips a task's completion state.
func (s *TaskService) ToggleTask(id string) (entities.Task, error) {
	task, err := s.taskRepo.Get(id)
	if err != nil {
		return entities.Task{}, err
	}

	task.Completed = !task.Completed
	if err := s.taskRepo.Update(task); err != nil {
		return entities.Task{}, err
	}

	return task, nil
}

// DeleteTask deletes a task
func (s *TaskService) DeleteTask(id string) error {
	if err := s.taskRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Infow("Task deleted", "task_id", id)
	return nil
}

// ListTasks returns the task list view for the given filter.
func (s *TaskService) ListTasks(filter planner.ListFilter) []entities.Task {
	return planner.FilterTasks(s.taskRepo.List(), s.now(), filter)
}

// TodaysTasks returns the tasks dated today.
func (s *TaskService) TodaysTasks() []entities.Task {
	return planner.TodaysTasks(s.taskRepo.List(), s.now())
}

// OverdueTasks returns incomplete tasks whose deadline has passed.
func (s *TaskService) OverdueTasks() []entities.Task {
	return planner.OverdueTasks(s.taskRepo.List(), s.now())
}

// TasksDueSoon returns incomplete tasks due within the given window.
func (s *TaskService) TasksDueSoon(within time.Duration) []entities.Task {
	return planner.TasksDueSoon(s.taskRepo.List(), s.now(), within)
}

// UpcomingTasks returns incomplete tasks dated within the next N days.
func (s *TaskService) UpcomingTasks(days int) []entities.Task {
	return planner.UpcomingTasks(s.taskRepo.List(), s.now(), days)
}
