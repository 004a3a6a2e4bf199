package calendar

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2026, time.January, 31},
		{2026, time.February, 28},
		{2024, time.February, 29}, // leap year
		{2026, time.April, 30},
		{2026, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(2026, time.March, 5); got != "2026-03-05" {
		t.Errorf("FormatDate = %q, want 2026-03-05", got)
	}
	if got := FormatDate(2026, time.November, 30); got != "2026-11-30" {
		t.Errorf("FormatDate = %q, want 2026-11-30", got)
	}
}

func TestIsWeekend(t *testing.T) {
	// 2026-08-01 is a Saturday, 2026-08-02 a Sunday, 2026-08-03 a Monday.
	if !IsWeekend(2026, time.August, 1) {
		t.Error("2026-08-01 should be a weekend")
	}
	if !IsWeekend(2026, time.August, 2) {
		t.Error("2026-08-02 should be a weekend")
	}
	if IsWeekend(2026, time.August, 3) {
		t.Error("2026-08-03 should not be a weekend")
	}
}

func TestNextWeekdaySkipsWeekend(t *testing.T) {
	days := DaysInMonth(2026, time.August)
	// Friday the 7th +1 lands on Monday the 10th.
	if got := NextWeekday(2026, time.August, 7, 1, days); got != 10 {
		t.Errorf("forward over weekend: got %d, want 10", got)
	}
	// Monday the 10th -1 lands back on Friday the 7th.
	if got := NextWeekday(2026, time.August, 10, -1, days); got != 7 {
		t.Errorf("backward over weekend: got %d, want 7", got)
	}
	// Walking off the end of the month is a no-op.
	if got := NextWeekday(2026, time.August, 31, 1, days); got != 31 {
		t.Errorf("off month end: got %d, want 31", got)
	}
	if got := NextWeekday(2026, time.August, 3, -1, days); got != 3 {
		t.Errorf("off month start: got %d, want 3", got)
	}
}

func TestInitialWeekday(t *testing.T) {
	// Starting on Saturday the 1st moves forward to Monday the 3rd.
	if got := InitialWeekday(2026, time.August, 1); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	// A weekday stays put.
	if got := InitialWeekday(2026, time.August, 12); got != 12 {
		t.Errorf("got %d, want 12", got)
	}
	// 2026-05-31 is a Sunday at month end: fall back to Friday the 29th.
	if got := InitialWeekday(2026, time.May, 31); got != 29 {
		t.Errorf("got %d, want 29", got)
	}
}

func TestIsFutureMonth(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.Local)
	if IsFutureMonth(2026, time.August, now) {
		t.Error("current month is not future")
	}
	if IsFutureMonth(2026, time.July, now) {
		t.Error("past month is not future")
	}
	if !IsFutureMonth(2026, time.September, now) {
		t.Error("next month is future")
	}
	if !IsFutureMonth(2027, time.January, now) {
		t.Error("next year is future")
	}
}

func TestNextMonthRollover(t *testing.T) {
	y, m := NextMonth(2026, time.December)
	if y != 2027 || m != time.January {
		t.Errorf("got %d/%s, want 2027/January", y, m)
	}
	y, m = NextMonth(2026, time.June)
	if y != 2026 || m != time.July {
		t.Errorf("got %d/%s, want 2026/July", y, m)
	}
}

func TestWeeksGrid(t *testing.T) {
	// August 2026 starts on a Saturday (Monday-based column 5).
	first := FirstWeekdayIndex(2026, time.August)
	if first != 5 {
		t.Fatalf("FirstWeekdayIndex = %d, want 5", first)
	}
	weeks := WeeksGrid(31, first)
	if len(weeks) != 6 {
		t.Fatalf("got %d weeks, want 6", len(weeks))
	}
	if weeks[0][5] != 1 || weeks[0][4] != 0 {
		t.Errorf("first week misaligned: %v", weeks[0])
	}
	if weeks[5][0] != 31 {
		t.Errorf("last week misaligned: %v", weeks[5])
	}
}
