package calendar

import (
	"testing"
	"time"

	"github.com/dori/clockin/internal/model"
)

// fullMonthEntries records 8 hours on every weekday of March 2026.
func fullMonthEntries(t *testing.T) []model.TimesheetEntry {
	t.Helper()
	var entries []model.TimesheetEntry
	for day := 1; day <= DaysInMonth(2026, time.March); day++ {
		if IsWeekend(2026, time.March, day) {
			continue
		}
		entries = append(entries, hourEntry(FormatDate(2026, time.March, day), 8))
	}
	return entries
}

func TestMissingDaysEmptyWhenComplete(t *testing.T) {
	idx := NewMonthIndex(fullMonthEntries(t), nil, nil)
	missing := MissingDays(idx, 2026, time.March, "2026-03-31")
	if len(missing) != 0 {
		t.Errorf("complete month should have no missing days, got %v", missing)
	}
}

func TestMissingDaysReinstatesRemovedEntry(t *testing.T) {
	entries := fullMonthEntries(t)
	var without []model.TimesheetEntry
	for _, e := range entries {
		if e.Date != "2026-03-12" {
			without = append(without, e)
		}
	}
	idx := NewMonthIndex(without, nil, nil)
	missing := MissingDays(idx, 2026, time.March, "2026-03-31")
	if len(missing) != 1 || missing[0] != "2026-03-12" {
		t.Errorf("got %v, want exactly [2026-03-12]", missing)
	}
}

func TestMissingDaysAscendingAndFiltered(t *testing.T) {
	idx := NewMonthIndex(
		[]model.TimesheetEntry{hourEntry("2026-03-03", 8)},
		[]model.TimeOffRequest{
			{Type: model.TimeOffType{Name: "PTO"}, Dates: map[string]float64{"2026-03-04": 8}},
		},
		[]model.Holiday{{Name: "Holiday", Start: "2026-03-05", End: "2026-03-05"}},
	)
	missing := MissingDays(idx, 2026, time.March, "2026-03-09")
	want := []string{"2026-03-02", "2026-03-06", "2026-03-09"}
	if len(missing) != len(want) {
		t.Fatalf("got %v, want %v", missing, want)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("got %v, want %v", missing, want)
		}
	}
}

func TestMissingDaysCutoffPolicies(t *testing.T) {
	idx := NewMonthIndex(nil, nil, nil)

	// Headless policy: nothing after "today".
	upToToday := MissingDays(idx, 2026, time.March, "2026-03-10")
	for _, d := range upToToday {
		if d > "2026-03-10" {
			t.Errorf("date %s is after the cutoff", d)
		}
	}

	// Interactive policy: whole month, future days included.
	wholeMonth := MissingDays(idx, 2026, time.March, "2026-03-31")
	if len(wholeMonth) <= len(upToToday) {
		t.Errorf("whole-month list (%d) should exceed the cutoff list (%d)", len(wholeMonth), len(upToToday))
	}
	if last := wholeMonth[len(wholeMonth)-1]; last != "2026-03-31" {
		t.Errorf("last missing day = %s, want 2026-03-31", last)
	}
}

func TestMissingDaysDoesNotMutateFeeds(t *testing.T) {
	entries := []model.TimesheetEntry{hourEntry("2026-03-02", 8)}
	idx := NewMonthIndex(entries, nil, nil)
	a := MissingDays(idx, 2026, time.March, "2026-03-31")
	b := MissingDays(idx, 2026, time.March, "2026-03-31")
	if len(a) != len(b) {
		t.Fatalf("repeat calls disagree: %d vs %d", len(a), len(b))
	}
	a[0] = "mutated"
	if b[0] == "mutated" {
		t.Error("calls must return fresh slices")
	}
}

func TestLastWorkingDay(t *testing.T) {
	// 2026-05-31 is a Sunday; plain month ends Friday the 29th.
	got := LastWorkingDay(2026, time.May, nil, nil)
	if got.Format(ISODate) != "2026-05-29" {
		t.Errorf("got %s, want 2026-05-29", got.Format(ISODate))
	}

	// A holiday on the 29th pushes back to Thursday the 28th.
	got = LastWorkingDay(2026, time.May, []model.Holiday{{Name: "Bridge", Start: "2026-05-29", End: "2026-05-29"}}, nil)
	if got.Format(ISODate) != "2026-05-28" {
		t.Errorf("got %s, want 2026-05-28", got.Format(ISODate))
	}

	// Time off on the 28th pushes back one more.
	got = LastWorkingDay(2026, time.May,
		[]model.Holiday{{Name: "Bridge", Start: "2026-05-29", End: "2026-05-29"}},
		[]model.TimeOffRequest{{Type: model.TimeOffType{Name: "PTO"}, Dates: map[string]float64{"2026-05-28": 8}}})
	if got.Format(ISODate) != "2026-05-27" {
		t.Errorf("got %s, want 2026-05-27", got.Format(ISODate))
	}
}
