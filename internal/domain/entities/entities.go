package entities

import (
	"errors"
	"time"
)

// Common errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrHolidayNotFound    = errors.New("holiday not found")
	ErrHolidayReadOnly    = errors.New("official holidays cannot be modified")
	ErrInvalidHolidayType = errors.New("invalid holiday type")
	ErrInvalidDateKey     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidPeriod      = errors.New("invalid period")
)

// HolidayType categorizes a custom holiday. Official holidays carry the
// free-text category reported by the upstream provider instead.
type HolidayType string

const (
	HolidayTypeFestival    HolidayType = "Festival"
	HolidayTypeSchoolEvent HolidayType = "School Event"
	HolidayTypePersonal    HolidayType = "Personal"
	HolidayTypeReligious   HolidayType = "Religious"
	HolidayTypeNational    HolidayType = "National"
	HolidayTypeOther       HolidayType = "Other"
)

// Period buckets tasks relative to today.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Task represents a planner task. Date and Deadline are local calendar
// date keys (YYYY-MM-DD); Deadline may also carry an RFC 3339 instant.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Deadline    string    `json:"deadline,omitempty"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Holiday represents either an official holiday fetched from the upstream
// provider or a user-created custom holiday.
type Holiday struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	IsOfficial  bool   `json:"isOfficial"`
}

// DashboardStats summarizes the planner state for the dashboard view.
type DashboardStats struct {
	TotalTasks       int `json:"totalTasks"`
	CompletedTasks   int `json:"completedTasks"`
	PendingTasks     int `json:"pendingTasks"`
	TasksDueToday    int `json:"tasksDueToday"`
	UpcomingHolidays int `json:"upcomingHolidays"`
	OfficialHolidays int `json:"officialHolidays"`
	CustomHolidays   int `json:"customHolidays"`
}

// HasDeadline reports whether the task carries a deadline. A task without
// one is never overdue and never due soon, regardless of its date.
func (t *Task) HasDeadline() bool {
	return t.Deadline != ""
}

func (ht HolidayType) IsValid() bool {
	switch ht {
	case HolidayTypeFestival, HolidayTypeSchoolEvent, HolidayTypePersonal,
		HolidayTypeReligious, HolidayTypeNational, HolidayTypeOther:
		return true
	default:
		return false
	}
}

func (p Period) IsValid() bool {
	switch p {
	case PeriodAll, PeriodToday, PeriodWeek, PeriodMonth:
		return true
	default:
		return false
	}
}
