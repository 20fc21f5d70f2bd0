package calendar

import (
	"testing"
	"time"
)

func TestFormatParseRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local),
		time.Date(1999, 7, 15, 0, 0, 1, 0, time.Local),
	}

	for _, d := range dates {
		key := FormatDateKey(d)
		parsed, err := ParseDateKey(key)
		if err != nil {
			t.Fatalf("ParseDateKey(%q) returned error: %v", key, err)
		}
		if parsed.Year() != d.Year() || parsed.Month() != d.Month() || parsed.Day() != d.Day() {
			t.Errorf("round trip of %v yielded %v", d, parsed)
		}
		if parsed.Hour() != 0 || parsed.Minute() != 0 {
			t.Errorf("ParseDateKey(%q) not anchored to midnight: %v", key, parsed)
		}
	}
}

func TestParseDateKeyInvalid(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2025-13-01", "2025-02-30", "03/10/2025"} {
		if _, err := ParseDateKey(s); err == nil {
			t.Errorf("ParseDateKey(%q) expected error, got none", s)
		}
	}
}

func TestParseInstant(t *testing.T) {
	got, err := ParseInstant("2025-03-10")
	if err != nil {
		t.Fatalf("ParseInstant date key: %v", err)
	}
	if got.Hour() != 0 || got.Day() != 10 {
		t.Errorf("date key should resolve to local midnight, got %v", got)
	}

	got, err = ParseInstant("2025-03-10T14:30:00Z")
	if err != nil {
		t.Fatalf("ParseInstant RFC3339: %v", err)
	}
	if got.UTC().Hour() != 14 {
		t.Errorf("RFC3339 instant mangled: %v", got)
	}

	if _, err := ParseInstant("soon"); err == nil {
		t.Error("expected error for unparsable instant")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2025, time.January, 31},
		{2025, time.April, 30},
		{2025, time.December, 31},
		{2000, time.February, 29},
		{1900, time.February, 28},
	}

	for _, tt := range tests {
		ref := time.Date(tt.year, tt.month, 15, 0, 0, 0, 0, time.Local)
		if got := DaysInMonth(ref); got != tt.want {
			t.Errorf("DaysInMonth(%d-%02d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestFirstWeekdayOfMonth(t *testing.T) {
	// 2025-03-01 is a Saturday, 2025-06-01 a Sunday.
	ref := time.Date(2025, 3, 20, 0, 0, 0, 0, time.Local)
	if got := FirstWeekdayOfMonth(ref); got != 6 {
		t.Errorf("FirstWeekdayOfMonth(2025-03) = %d, want 6", got)
	}
	ref = time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)
	if got := FirstWeekdayOfMonth(ref); got != 0 {
		t.Errorf("FirstWeekdayOfMonth(2025-06) = %d, want 0", got)
	}
}

func TestMonthGridSize(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		ref := time.Date(2025, month, 1, 0, 0, 0, 0, time.Local)
		grid := MonthGrid(ref, ref)
		if len(grid) != GridSize {
			t.Errorf("MonthGrid(2025-%02d) produced %d slots, want %d", month, len(grid), GridSize)
		}
	}
}

func TestMonthGridLeadingAndTrailing(t *testing.T) {
	// March 2025 starts on a Saturday: six leading February days.
	ref := time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local)
	grid := MonthGrid(ref, time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local))

	if grid[0].Key != "2025-02-23" || grid[0].InMonth {
		t.Errorf("first slot = %+v, want 2025-02-23 outside month", grid[0])
	}
	if grid[6].Key != "2025-03-01" || !grid[6].InMonth {
		t.Errorf("slot 6 = %+v, want 2025-03-01 inside month", grid[6])
	}
	if grid[41].Key != "2025-04-05" || grid[41].InMonth {
		t.Errorf("last slot = %+v, want 2025-04-05 outside month", grid[41])
	}

	inMonth := 0
	for _, slot := range grid {
		if slot.InMonth {
			inMonth++
		}
	}
	if inMonth != 31 {
		t.Errorf("March grid has %d in-month slots, want 31", inMonth)
	}
}

func TestMonthGridTodayMarking(t *testing.T) {
	today := time.Date(2025, 3, 31, 15, 4, 5, 0, time.Local)

	grid := MonthGrid(time.Date(2025, 3, 1, 0, 0, 0, 0, time.Local), today)
	marked := 0
	for _, slot := range grid {
		if slot.IsToday {
			marked++
			if slot.Key != "2025-03-31" {
				t.Errorf("wrong slot marked as today: %s", slot.Key)
			}
		}
	}
	if marked != 1 {
		t.Errorf("today marked %d times in its own month, want 1", marked)
	}

	// 2025-03-31 appears as a leading slot of the April grid, but today
	// is only ever marked inside the displayed month.
	for _, slot := range MonthGrid(time.Date(2025, 4, 1, 0, 0, 0, 0, time.Local), today) {
		if slot.IsToday {
			t.Errorf("slot %s marked as today in the April grid", slot.Key)
		}
	}
}
