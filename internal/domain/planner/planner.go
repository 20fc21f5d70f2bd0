// Package planner computes read-only views over task and holiday
// collections. Functions never mutate their inputs and perform no I/O;
// the current instant is always passed in explicitly.
package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/studentplanner/core/internal/domain/calendar"
	"github.com/studentplanner/core/internal/domain/entities"
)

// DefaultUpcomingHolidayLimit caps the upcoming-holiday view.
const DefaultUpcomingHolidayLimit = 5

// ListFilter describes the task list view: a period bucket, a free-text
// search term, and whether completed tasks are shown.
type ListFilter struct {
	Period           entities.Period
	Search           string
	IncludeCompleted bool
}

// TasksOnDate returns the tasks whose date matches the given key exactly.
func TasksOnDate(tasks []entities.Task, dateKey string) []entities.Task {
	out := make([]entities.Task, 0)
	for _, t := range tasks {
		if t.Date == dateKey {
			out = append(out, t)
		}
	}
	return out
}

// HolidaysOnDate returns the holidays falling on the given date key.
func HolidaysOnDate(holidays []entities.Holiday, dateKey string) []entities.Holiday {
	out := make([]entities.Holiday, 0)
	for _, h := range holidays {
		if h.Date == dateKey {
			out = append(out, h)
		}
	}
	return out
}

// TodaysTasks returns the tasks dated today. Deadlines play no part here.
func TodaysTasks(tasks []entities.Task, now time.Time) []entities.Task {
	return TasksOnDate(tasks, calendar.FormatDateKey(now))
}

// OverdueTasks returns incomplete tasks whose deadline lies strictly
// before now. Tasks without a deadline are never overdue.
func OverdueTasks(tasks []entities.Task, now time.Time) []entities.Task {
	out := make([]entities.Task, 0)
	for _, t := range tasks {
		if t.Completed || !t.HasDeadline() {
			continue
		}
		deadline, err := calendar.ParseInstant(t.Deadline)
		if err != nil {
			continue
		}
		if deadline.Before(now) {
			out = append(out, t)
		}
	}
	return out
}

// TasksDueSoon returns incomplete tasks whose deadline falls within
// [now, now+within].
func TasksDueSoon(tasks []entities.Task, now time.Time, within time.Duration) []entities.Task {
	limit := now.Add(within)
	out := make([]entities.Task, 0)
	for _, t := range tasks {
		if t.Completed || !t.HasDeadline() {
			continue
		}
		deadline, err := calendar.ParseInstant(t.Deadline)
		if err != nil {
			continue
		}
		if !deadline.Before(now) && !deadline.After(limit) {
			out = append(out, t)
		}
	}
	return out
}

// UpcomingTasks returns incomplete tasks dated within the next `days`
// days, ascending by date.
func UpcomingTasks(tasks []entities.Task, now time.Time, days int) []entities.Task {
	start := midnight(now)
	end := start.AddDate(0, 0, days)

	out := make([]entities.Task, 0)
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		date, err := calendar.ParseDateKey(t.Date)
		if err != nil {
			continue
		}
		if !date.Before(start) && !date.After(end) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// UpcomingHolidays returns holidays dated within [today, today+days],
// ascending by date, truncated to limit. A limit <= 0 falls back to
// DefaultUpcomingHolidayLimit.
func UpcomingHolidays(holidays []entities.Holiday, now time.Time, days, limit int) []entities.Holiday {
	if limit <= 0 {
		limit = DefaultUpcomingHolidayLimit
	}
	start := midnight(now)
	end := start.AddDate(0, 0, days)

	out := make([]entities.Holiday, 0)
	for _, h := range holidays {
		date, err := calendar.ParseDateKey(h.Date)
		if err != nil {
			continue
		}
		if !date.Before(start) && !date.After(end) {
			out = append(out, h)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FilterTasksByPeriod buckets tasks by their date field: today, the
// Sunday-to-Saturday week containing today, or the calendar month
// containing today. Boundary dates are included.
func FilterTasksByPeriod(tasks []entities.Task, now time.Time, period entities.Period) []entities.Task {
	switch period {
	case entities.PeriodToday:
		return TasksOnDate(tasks, calendar.FormatDateKey(now))

	case entities.PeriodWeek:
		weekStart := midnight(now).AddDate(0, 0, -int(now.Weekday()))
		weekEnd := weekStart.AddDate(0, 0, 6)
		return tasksInRange(tasks, weekStart, weekEnd)

	case entities.PeriodMonth:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		monthEnd := monthStart.AddDate(0, 1, -1)
		return tasksInRange(tasks, monthStart, monthEnd)

	default:
		return tasks
	}
}

// FilterTasks applies the full task list view: period bucket, then
// case-insensitive substring search over title and description, then the
// completed-visibility toggle, and finally a stable sort that pushes
// completed tasks after incomplete ones and breaks ties by ascending date.
func FilterTasks(tasks []entities.Task, now time.Time, filter ListFilter) []entities.Task {
	filtered := tasks
	if filter.Period != "" && filter.Period != entities.PeriodAll {
		filtered = FilterTasksByPeriod(filtered, now, filter.Period)
	}

	if term := strings.ToLower(strings.TrimSpace(filter.Search)); term != "" {
		matched := make([]entities.Task, 0, len(filtered))
		for _, t := range filtered {
			if strings.Contains(strings.ToLower(t.Title), term) ||
				strings.Contains(strings.ToLower(t.Description), term) {
				matched = append(matched, t)
			}
		}
		filtered = matched
	}

	if !filter.IncludeCompleted {
		pending := make([]entities.Task, 0, len(filtered))
		for _, t := range filtered {
			if !t.Completed {
				pending = append(pending, t)
			}
		}
		filtered = pending
	}

	out := make([]entities.Task, len(filtered))
	copy(out, filtered)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].Date < out[j].Date
	})
	return out
}

// Stats computes the dashboard counters over the full collections.
func Stats(tasks []entities.Task, holidays []entities.Holiday, now time.Time) entities.DashboardStats {
	stats := entities.DashboardStats{
		TotalTasks:       len(tasks),
		TasksDueToday:    len(TodaysTasks(tasks, now)),
		UpcomingHolidays: len(UpcomingHolidays(holidays, now, 14, 0)),
	}
	for _, t := range tasks {
		if t.Completed {
			stats.CompletedTasks++
		}
	}
	stats.PendingTasks = stats.TotalTasks - stats.CompletedTasks
	for _, h := range holidays {
		if h.IsOfficial {
			stats.OfficialHolidays++
		} else {
			stats.CustomHolidays++
		}
	}
	return stats
}

func tasksInRange(tasks []entities.Task, start, end time.Time) []entities.Task {
	out := make([]entities.Task, 0)
	for _, t := range tasks {
		date, err := calendar.ParseDateKey(t.Date)
		if err != nil {
			continue
		}
		if !date.Before(start) && !date.After(end) {
			out = append(out, t)
		}
	}
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
