package timefield

import (
	"testing"

	"github.com/dori/clockin/internal/model"
)

func TestPadTime(t *testing.T) {
	cases := []struct{ in, want string }{
		{"09:00", "09:00"},
		{"9:5", "09:05"},
		{"9", "09:00"},
		{"", "00:00"},
		{":30", "00:30"},
		{"14:", "14:00"},
	}
	for _, c := range cases {
		if got := PadTime(c.in); got != c.want {
			t.Errorf("PadTime(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestAdjustTimeDigit(t *testing.T) {
	cases := []struct {
		in       string
		position int
		delta    int
		want     string
	}{
		// Hour tens wraps in [0,23] by tens.
		{"09:00", 0, 1, "19:00"},
		{"19:00", 0, 1, "00:00"},
		{"23:59", 0, 1, "00:59"},
		{"03:00", 0, -1, "23:00"},
		// Hour units.
		{"09:00", 1, 1, "10:00"},
		{"23:00", 1, 1, "00:00"},
		{"00:00", 1, -1, "23:00"},
		// Minute tens wraps in [0,59].
		{"09:50", 2, 1, "09:00"},
		{"09:00", 2, -1, "09:59"},
		// Minute units.
		{"09:09", 3, 1, "09:10"},
		{"09:59", 3, 1, "09:00"},
		{"09:00", 3, -1, "09:59"},
	}
	for _, c := range cases {
		if got := AdjustTimeDigit(c.in, c.position, c.delta); got != c.want {
			t.Errorf("AdjustTimeDigit(%q, %d, %+d) = %q, want %q", c.in, c.position, c.delta, got, c.want)
		}
	}
}

// Incrementing then decrementing the same digit must restore the original
// value, including at the wrap boundaries.
func TestAdjustTimeDigitRoundTrip(t *testing.T) {
	values := []string{"00:00", "09:30", "13:59", "23:00", "23:59"}
	for _, v := range values {
		for pos := 0; pos <= 3; pos++ {
			up := AdjustTimeDigit(v, pos, 1)
			back := AdjustTimeDigit(up, pos, -1)
			if back != v {
				t.Errorf("round trip %q pos %d: +1 gave %q, -1 gave %q", v, pos, up, back)
			}
		}
	}
}

func TestAdjustTimeDigitMalformedInput(t *testing.T) {
	if got := AdjustTimeDigit("junk", 1, 1); got != "01:00" {
		t.Errorf("non-numeric input: got %q, want 01:00", got)
	}
	if got := AdjustTimeDigit("", 3, 1); got != "00:01" {
		t.Errorf("empty input: got %q, want 00:01", got)
	}
}

func TestCycleField(t *testing.T) {
	e := NewEditor(model.DefaultWorkSchedule())
	order := []Field{FieldMorningEnd, FieldAfternoonStart, FieldAfternoonEnd, FieldMorningStart}
	for _, want := range order {
		e = e.CycleField(true)
		if e.Active != want {
			t.Fatalf("forward cycle: got %v, want %v", e.Active, want)
		}
	}
	e = e.CycleField(false)
	if e.Active != FieldAfternoonEnd {
		t.Errorf("backward cycle from first field: got %v, want afternoon end", e.Active)
	}
}

func TestCycleFieldResetsCursor(t *testing.T) {
	e := NewEditor(model.DefaultWorkSchedule()).MoveCursor(3)
	if e.Cursor != 3 {
		t.Fatalf("setup: cursor = %d", e.Cursor)
	}
	e = e.CycleField(true)
	if e.Cursor != 0 {
		t.Errorf("cursor after cycle = %d, want 0", e.Cursor)
	}
}

func TestMoveCursorClamps(t *testing.T) {
	e := NewEditor(model.DefaultWorkSchedule())
	e = e.MoveCursor(-1)
	if e.Cursor != 0 {
		t.Errorf("cursor below 0: got %d", e.Cursor)
	}
	for i := 0; i < 10; i++ {
		e = e.MoveCursor(1)
	}
	if e.Cursor != 3 {
		t.Errorf("cursor above 3: got %d", e.Cursor)
	}
}

func TestAdjustDigitEditsActiveFieldOnly(t *testing.T) {
	e := NewEditor(model.DefaultWorkSchedule())
	e = e.CycleField(true) // morning end
	e = e.MoveCursor(1)    // hour units
	e = e.AdjustDigit(1)
	if got := e.Schedule.Morning.End; got != "13:00" {
		t.Errorf("morning end = %q, want 13:00", got)
	}
	if got := e.Schedule.Morning.Start; got != "09:00" {
		t.Errorf("morning start changed: %q", got)
	}
}

func TestEditorDoesNotAliasInput(t *testing.T) {
	src := model.DefaultWorkSchedule()
	e := NewEditor(src)
	e = e.AdjustDigit(1)
	if src.Morning.Start != "09:00" {
		t.Errorf("source schedule mutated: %q", src.Morning.Start)
	}
}

func TestTotalHours(t *testing.T) {
	s := model.WorkSchedule{
		Morning:   model.TimeSpan{Start: "09:00", End: "12:00"},
		Afternoon: model.TimeSpan{Start: "14:00", End: "18:00"},
	}
	if got := TotalHours(s); got != 7.0 {
		t.Errorf("TotalHours = %v, want 7.0", got)
	}
}

func TestTotalHoursReversedSpanIsZero(t *testing.T) {
	s := model.WorkSchedule{
		Morning:   model.TimeSpan{Start: "10:00", End: "09:00"},
		Afternoon: model.TimeSpan{Start: "14:00", End: "18:00"},
	}
	if got := TotalHours(s); got != 4.0 {
		t.Errorf("TotalHours = %v, want 4.0 (reversed morning contributes zero)", got)
	}
}

func TestTotalHoursFractional(t *testing.T) {
	s := model.WorkSchedule{
		Morning:   model.TimeSpan{Start: "09:15", End: "12:00"},
		Afternoon: model.TimeSpan{Start: "14:00", End: "17:30"},
	}
	if got := TotalHours(s); got != 6.25 {
		t.Errorf("TotalHours = %v, want 6.25", got)
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{7, "7h"},
		{7.5, "7h30m"},
		{0, "0h"},
		{6.25, "6h15m"},
	}
	for _, c := range cases {
		if got := FormatHours(c.in); got != c.want {
			t.Errorf("FormatHours(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
