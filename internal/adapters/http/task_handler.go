// Package http contains the echo handlers for the planner API.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/studentplanner/core/internal/application/services"
	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/domain/planner"
	"github.com/studentplanner/core/internal/infrastructure/logger"
)

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// TaskHandler handles task-related requests
type TaskHandler struct {
	taskService   *services.TaskService
	dueSoonWindow time.Duration
	logger        *logger.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService, dueSoonWindow time.Duration, appLogger *logger.Logger) *TaskHandler {
	return &TaskHandler{
		taskService:   taskService,
		dueSoonWindow: dueSoonWindow,
		logger:        appLogger,
	}
}

// CreateTask handles task creation
// @Summary Create a task
// @Tags tasks
// @Accept json
// @Produce json
// @Param task body services.CreateTaskRequest true "Task"
// @Success 201 {object} entities.Task
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/tasks [post]
func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req services.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.CreateTask(req)
	if err != nil {
		h.logger.Errorw("Create task failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, task)
}

// GetTask handles getting a task by ID
func (h *TaskHandler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// UpdateTask handles task updates
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	var req services.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.taskService.UpdateTask(c.Param("id"), req)
	if err != nil {
		if errors.Is(err, entities.ErrTaskNotFound) {
			return err
		}
		h.logger.Errorw("Update task failed", "error", err, "task_id", c.Param("id"))
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, task)
}

// ToggleTask flips a task's completion state
func (h *TaskHandler) ToggleTask(c echo.Context) error {
	task, err := h.taskService.ToggleTask(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// DeleteTask handles task deletion
func (h *TaskHandler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

// ListTasks handles the filtered task list
// @Summary List tasks
// @Tags tasks
// @Produce json
// @Param period query string false "all, today, week or month"
// @Param search query string false "Substring match on title and description"
// @Param include_completed query bool false "Show completed tasks"
// @Success 200 {array} entities.Task
// @Router /api/v1/tasks [get]
func (h *TaskHandler) ListTasks(c echo.Context) error {
	filter := planner.ListFilter{
		Search: c.QueryParam("search"),
	}

	if period := c.QueryParam("period"); period != "" {
		p := entities.Period(period)
		if !p.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid period parameter")
		}
		filter.Period = p
	}

	if raw := c.QueryParam("include_completed"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid include_completed parameter")
		}
		filter.IncludeCompleted = include
	}

	return c.JSON(http.StatusOK, h.taskService.ListTasks(filter))
}

// TodaysTasks returns the tasks dated today
func (h *TaskHandler) TodaysTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.taskService.TodaysTasks())
}

// OverdueTasks returns incomplete tasks whose deadline has passed
func (h *TaskHandler) OverdueTasks(c echo.Context) error {
	return c.JSON(http.StatusOK, h.taskService.OverdueTasks())
}

// TasksDueSoon returns incomplete tasks due within the window
func (h *TaskHandler) TasksDueSoon(c echo.Context) error {
	within := h.dueSoonWindow
	if raw := c.QueryParam("within_hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid within_hours parameter")
		}
		within = time.Duration(hours) * time.Hour
	}
	return c.JSON(http.StatusOK, h.taskService.TasksDueSoon(within))
}

// UpcomingTasks returns incomplete tasks dated within the next N days
func (h *TaskHandler) UpcomingTasks(c echo.Context) error {
	days := 7
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid days parameter")
		}
		days = parsed
	}
	return c.JSON(http.StatusOK, h.taskService.UpcomingTasks(days))
}
