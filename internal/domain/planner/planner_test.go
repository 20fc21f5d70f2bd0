package planner

import (
	"testing"
	"time"

	"github.com/studentplanner/core/internal/domain/calendar"
	"github.com/studentplanner/core/internal/domain/entities"
)

// now is a fixed Wednesday mid-month so week and month buckets are stable.
var now = time.Date(2025, 3, 12, 10, 30, 0, 0, time.Local)

func key(t time.Time) string { return calendar.FormatDateKey(t) }

func task(id, date string) entities.Task {
	return entities.Task{ID: id, Title: "Task " + id, Date: date}
}

func TestTasksOnDate(t *testing.T) {
	tasks := []entities.Task{
		task("a", "2025-03-10"),
		task("b", "2025-03-11"),
		task("c", "2025-03-10"),
	}

	got := TasksOnDate(tasks, "2025-03-10")
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("TasksOnDate returned %+v", got)
	}
	if got := TasksOnDate(tasks, "2025-03-12"); len(got) != 0 {
		t.Errorf("expected no tasks, got %+v", got)
	}
}

func TestTodaysTasks(t *testing.T) {
	tasks := []entities.Task{
		task("today", key(now)),
		task("tomorrow", key(now.AddDate(0, 0, 1))),
	}

	got := TodaysTasks(tasks, now)
	if len(got) != 1 || got[0].ID != "today" {
		t.Errorf("TodaysTasks returned %+v", got)
	}
}

func TestOverdueTasks(t *testing.T) {
	yesterday := key(now.AddDate(0, 0, -1))
	tomorrow := key(now.AddDate(0, 0, 1))

	tasks := []entities.Task{
		{ID: "late", Date: yesterday, Deadline: yesterday},
		{ID: "done", Date: yesterday, Deadline: yesterday, Completed: true},
		{ID: "nodeadline", Date: yesterday},
		{ID: "future", Date: tomorrow, Deadline: tomorrow},
		{ID: "badvalue", Date: yesterday, Deadline: "whenever"},
	}

	got := OverdueTasks(tasks, now)
	if len(got) != 1 || got[0].ID != "late" {
		t.Errorf("OverdueTasks returned %+v", got)
	}
}

func TestTasksDueSoon(t *testing.T) {
	in2h := now.Add(2 * time.Hour).Format(time.RFC3339)
	in48h := now.Add(48 * time.Hour).Format(time.RFC3339)
	past := now.Add(-time.Hour).Format(time.RFC3339)

	tasks := []entities.Task{
		{ID: "soon", Date: key(now), Deadline: in2h},
		{ID: "later", Date: key(now), Deadline: in48h},
		{ID: "past", Date: key(now), Deadline: past},
		{ID: "done", Date: key(now), Deadline: in2h, Completed: true},
		{ID: "nodeadline", Date: key(now)},
	}

	got := TasksDueSoon(tasks, now, 24*time.Hour)
	if len(got) != 1 || got[0].ID != "soon" {
		t.Errorf("TasksDueSoon returned %+v", got)
	}
}

func TestUpcomingTasks(t *testing.T) {
	tasks := []entities.Task{
		task("d3", key(now.AddDate(0, 0, 3))),
		task("d1", key(now.AddDate(0, 0, 1))),
		task("d9", key(now.AddDate(0, 0, 9))),
		{ID: "done", Date: key(now.AddDate(0, 0, 2)), Completed: true},
	}

	got := UpcomingTasks(tasks, now, 7)
	if len(got) != 2 || got[0].ID != "d1" || got[1].ID != "d3" {
		t.Errorf("UpcomingTasks returned %+v", got)
	}
}

func TestUpcomingHolidays(t *testing.T) {
	holiday := func(id string, offset int) entities.Holiday {
		return entities.Holiday{ID: id, Name: id, Date: key(now.AddDate(0, 0, offset))}
	}

	holidays := []entities.Holiday{
		holiday("far", 20),
		holiday("mid", 10),
		holiday("near", 1),
	}

	got := UpcomingHolidays(holidays, now, 14, 0)
	if len(got) != 2 || got[0].ID != "near" || got[1].ID != "mid" {
		t.Errorf("UpcomingHolidays returned %+v", got)
	}
}

func TestUpcomingHolidaysLimit(t *testing.T) {
	holidays := make([]entities.Holiday, 0, 8)
	for i := 1; i <= 8; i++ {
		holidays = append(holidays, entities.Holiday{
			ID:   string(rune('a' + i)),
			Date: key(now.AddDate(0, 0, i)),
		})
	}

	if got := UpcomingHolidays(holidays, now, 14, 0); len(got) != DefaultUpcomingHolidayLimit {
		t.Errorf("default limit not applied, got %d holidays", len(got))
	}
	if got := UpcomingHolidays(holidays, now, 14, 3); len(got) != 3 {
		t.Errorf("explicit limit not applied, got %d holidays", len(got))
	}
}

func TestFilterTasksByPeriod(t *testing.T) {
	// now is Wednesday 2025-03-12; its week runs Sunday 03-09 .. Saturday 03-15.
	tasks := []entities.Task{
		task("today", "2025-03-12"),
		task("weekstart", "2025-03-09"),
		task("weekend", "2025-03-15"),
		task("nextweek", "2025-03-16"),
		task("monthstart", "2025-03-01"),
		task("monthend", "2025-03-31"),
		task("april", "2025-04-01"),
		task("feb", "2025-02-28"),
	}

	ids := func(got []entities.Task) map[string]bool {
		set := make(map[string]bool, len(got))
		for _, t := range got {
			set[t.ID] = true
		}
		return set
	}

	today := ids(FilterTasksByPeriod(tasks, now, entities.PeriodToday))
	if len(today) != 1 || !today["today"] {
		t.Errorf("today bucket = %v", today)
	}

	week := ids(FilterTasksByPeriod(tasks, now, entities.PeriodWeek))
	for _, want := range []string{"today", "weekstart", "weekend"} {
		if !week[want] {
			t.Errorf("week bucket missing %s: %v", want, week)
		}
	}
	if len(week) != 3 {
		t.Errorf("week bucket = %v", week)
	}

	month := ids(FilterTasksByPeriod(tasks, now, entities.PeriodMonth))
	for _, want := range []string{"today", "weekstart", "weekend", "nextweek", "monthstart", "monthend"} {
		if !month[want] {
			t.Errorf("month bucket missing %s: %v", want, month)
		}
	}
	if month["april"] || month["feb"] {
		t.Errorf("month bucket leaked adjacent months: %v", month)
	}

	if got := FilterTasksByPeriod(tasks, now, entities.PeriodAll); len(got) != len(tasks) {
		t.Errorf("all bucket filtered tasks: %d", len(got))
	}
}

func TestFilterTasksCombination(t *testing.T) {
	tasks := []entities.Task{
		{ID: "b", Title: "Essay draft", Date: "2025-03-14"},
		{ID: "a", Title: "Read chapter", Description: "history essay prep", Date: "2025-03-10"},
		{ID: "c", Title: "Essay review", Date: "2025-03-11", Completed: true},
		{ID: "d", Title: "Laundry", Date: "2025-03-10"},
	}

	got := FilterTasks(tasks, now, ListFilter{
		Period:           entities.PeriodAll,
		Search:           "essay",
		IncludeCompleted: true,
	})
	// Search matches title or description, incomplete first, then by date.
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Errorf("FilterTasks returned %+v", got)
	}

	got = FilterTasks(tasks, now, ListFilter{Search: "essay"})
	if len(got) != 2 {
		t.Errorf("completed task not hidden: %+v", got)
	}
}

func TestFilterTasksSortStability(t *testing.T) {
	tasks := []entities.Task{
		{ID: "first", Title: "x", Date: "2025-03-10"},
		{ID: "second", Title: "y", Date: "2025-03-10"},
		{ID: "done", Title: "z", Date: "2025-03-01", Completed: true},
	}

	got := FilterTasks(tasks, now, ListFilter{IncludeCompleted: true})
	if got[0].ID != "first" || got[1].ID != "second" || got[2].ID != "done" {
		t.Errorf("sort order = %v, %v, %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestStats(t *testing.T) {
	tasks := []entities.Task{
		{ID: "1", Date: key(now), Completed: true},
		{ID: "2", Date: key(now)},
		{ID: "3", Date: "2025-01-01"},
	}
	holidays := []entities.Holiday{
		{ID: "official", Date: key(now.AddDate(0, 0, 2)), IsOfficial: true},
		{ID: "custom", Date: "2025-01-01"},
	}

	stats := Stats(tasks, holidays, now)
	want := entities.DashboardStats{
		TotalTasks:       3,
		CompletedTasks:   1,
		PendingTasks:     2,
		TasksDueToday:    2,
		UpcomingHolidays: 1,
		OfficialHolidays: 1,
		CustomHolidays:   1,
	}
	if stats != want {
		t.Errorf("Stats = %+v, want %+v", stats, want)
	}
}
