package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studentplanner/core/internal/domain/calendar"
	"github.com/studentplanner/core/internal/domain/entities"
	"github.com/studentplanner/core/internal/domain/planner"
	"github.com/studentplanner/core/internal/infrastructure/logger"
	"github.com/studentplanner/core/internal/ports"
)

// DayView is one calendar grid slot with its tasks and holidays.
type DayView struct {
	calendar.DaySlot
	Tasks    []entities.Task    `json:"tasks"`
	Holidays []entities.Holiday `json:"holidays"`
}

// MonthView is the full month response: the 42-slot grid with records
// joined onto each day by date key.
type MonthView struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []DayView `json:"days"`
}

// PlannerService composes the calendar month view and dashboard stats
// from the task collection and the merged holiday set.
type PlannerService struct {
	taskRepo ports.TaskRepository
	holidays *HolidayService
	logger   *logger.Logger
	now      func() time.Time
}

// NewPlannerService creates a new planner service
func NewPlannerService(taskRepo ports.TaskRepository, holidays *HolidayService, appLogger *logger.Logger) *PlannerService {
	return &PlannerService{
		taskRepo: taskRepo,
		holidays: holidays,
		logger:   appLogger,
		now:      time.Now,
	}
}

// MonthView builds the calendar view for a month. Slots from adjacent
// months still carry their records so the grid edges are not blank.
func (s *PlannerService) MonthView(ctx context.Context, year, month int) (MonthView, error) {
	if month < 1 || month > 12 {
		return MonthView{}, fmt.Errorf("invalid month %d", month)
	}

	ref := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	grid := calendar.MonthGrid(ref, s.now())

	tasks := s.taskRepo.List()
	holidays := s.holidays.Merged(ctx, year)
	// Leading and trailing slots can spill into adjacent years.
	if grid[0].Date.Year() != year {
		holidays = append(holidays, s.holidays.officialOrEmpty(ctx, grid[0].Date.Year())...)
	}
	if last := grid[len(grid)-1].Date.Year(); last != year {
		holidays = append(holidays, s.holidays.officialOrEmpty(ctx, last)...)
	}

	view := MonthView{Year: year, Month: month, Days: make([]DayView, 0, len(grid))}
	for _, slot := range grid {
		view.Days = append(view.Days, DayView{
			DaySlot:  slot,
			Tasks:    planner.TasksOnDate(tasks, slot.Key),
			Holidays: planner.HolidaysOnDate(holidays, slot.Key),
		})
	}
	return view, nil
}

// Dashboard computes the dashboard stats over all tasks and the current
// year's merged holidays.
func (s *PlannerService) Dashboard(ctx context.Context) entities.DashboardStats {
	now := s.now()
	return planner.Stats(s.taskRepo.List(), s.holidays.Merged(ctx, now.Year()), now)
}
