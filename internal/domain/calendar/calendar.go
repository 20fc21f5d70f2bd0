// Package calendar provides the pure date arithmetic behind the month
// grid. All functions are stateless and operate on local calendar dates.
package calendar

import (
	"time"

	"github.com/studentplanner/core/internal/domain/entities"
)

// DateKeyLayout is the canonical YYYY-MM-DD representation used to join
// dates with tasks and holidays.
const DateKeyLayout = "2006-01-02"

// GridSize is the fixed number of day slots in a month view (6 weeks).
const GridSize = 42

// DaySlot is a single cell of the month grid.
type DaySlot struct {
	Date    time.Time `json:"-"`
	Key     string    `json:"date"`
	Day     int       `json:"day"`
	InMonth bool      `json:"inMonth"`
	IsToday bool      `json:"isToday"`
}

// FormatDateKey renders the local calendar date of t. The local date is
// used deliberately: formatting through UTC shifts dates near midnight.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key, anchored to local midnight.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, entities.ErrInvalidDateKey
	}
	return t, nil
}

// ParseInstant parses a deadline value: either a plain date key, which
// resolves to local midnight, or a full RFC 3339 timestamp.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateKeyLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, entities.ErrInvalidDateKey
	}
	return t, nil
}

// DaysInMonth returns the number of days in the calendar month containing t.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// FirstWeekdayOfMonth returns the weekday index (0 = Sunday) of the first
// day of the month containing t.
func FirstWeekdayOfMonth(t time.Time) int {
	return int(time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Weekday())
}

// MonthGrid builds the 42-slot month view for the month containing ref:
// leading days from the previous month, the current month, and trailing
// days from the next month. The slot matching today's local date is
// flagged, but only when it belongs to the displayed month.
func MonthGrid(ref, today time.Time) []DaySlot {
	year, month := ref.Year(), ref.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lead := int(first.Weekday())
	todayKey := FormatDateKey(today)

	slots := make([]DaySlot, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		date := first.AddDate(0, 0, i-lead)
		slot := DaySlot{
			Date:    date,
			Key:     FormatDateKey(date),
			Day:     date.Day(),
			InMonth: date.Month() == month && date.Year() == year,
		}
		slot.IsToday = slot.InMonth && slot.Key == todayKey
		slots = append(slots, slot)
	}
	return slots
}
