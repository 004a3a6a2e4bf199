// Package timefield implements the cursor-addressed HH:MM editing engine used
// by the edit and settings modals. The editor is a value: every operation
// returns the next state, so callers can keep a buffer per modal session and
// throw it away on cancel.
package timefield

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dori/clockin/internal/model"
)

// Field addresses one of the four editable HH:MM fields, cycled in this order.
type Field int

const (
	FieldMorningStart Field = iota
	FieldMorningEnd
	FieldAfternoonStart
	FieldAfternoonEnd

	numFields = 4
)

func (f Field) String() string {
	switch f {
	case FieldMorningStart:
		return "morning start"
	case FieldMorningEnd:
		return "morning end"
	case FieldAfternoonStart:
		return "afternoon start"
	default:
		return "afternoon end"
	}
}

// maxCursor is the last addressable digit: hour tens, hour units, minute tens,
// minute units. The colon is not addressable.
const maxCursor = 3

// Editor is the edit-buffer state machine: a schedule copy, the active field
// and the digit cursor.
type Editor struct {
	Schedule model.WorkSchedule
	Active   Field
	Cursor   int
}

// NewEditor starts an editor over an independent copy of the schedule.
func NewEditor(s model.WorkSchedule) Editor {
	return Editor{Schedule: s.Copy(), Active: FieldMorningStart}
}

// CycleField advances (or retreats) through the fixed field order, wrapping,
// and resets the cursor to the first digit.
func (e Editor) CycleField(forward bool) Editor {
	if forward {
		e.Active = (e.Active + 1) % numFields
	} else {
		e.Active = (e.Active + numFields - 1) % numFields
	}
	e.Cursor = 0
	return e
}

// MoveCursor shifts the digit cursor by delta, clamped to [0,3]. Moving past
// either end is a no-op, not a wrap.
func (e Editor) MoveCursor(delta int) Editor {
	e.Cursor += delta
	if e.Cursor < 0 {
		e.Cursor = 0
	}
	if e.Cursor > maxCursor {
		e.Cursor = maxCursor
	}
	return e
}

// AdjustDigit increments or decrements the digit under the cursor in the
// active field.
func (e Editor) AdjustDigit(delta int) Editor {
	e = e.setValue(e.Active, AdjustTimeDigit(e.Value(e.Active), e.Cursor, delta))
	return e
}

// Value returns the raw stored value of a field.
func (e Editor) Value(f Field) string {
	switch f {
	case FieldMorningStart:
		return e.Schedule.Morning.Start
	case FieldMorningEnd:
		return e.Schedule.Morning.End
	case FieldAfternoonStart:
		return e.Schedule.Afternoon.Start
	default:
		return e.Schedule.Afternoon.End
	}
}

func (e Editor) setValue(f Field, v string) Editor {
	switch f {
	case FieldMorningStart:
		e.Schedule.Morning.Start = v
	case FieldMorningEnd:
		e.Schedule.Morning.End = v
	case FieldAfternoonStart:
		e.Schedule.Afternoon.Start = v
	default:
		e.Schedule.Afternoon.End = v
	}
	return e
}

// TotalHours returns the edited schedule's duration in fractional hours.
func (e Editor) TotalHours() float64 {
	return TotalHours(e.Schedule)
}

// PadTime normalizes a stored time value to "HH:MM". Missing or short parts
// are padded with zeros; a value with no colon is treated as hours only.
func PadTime(v string) string {
	parts := strings.SplitN(v, ":", 2)
	hours := "00"
	minutes := "00"
	if len(parts) > 0 && parts[0] != "" {
		hours = parts[0]
	}
	if len(parts) > 1 && parts[1] != "" {
		minutes = parts[1]
	}
	if len(hours) < 2 {
		hours = strings.Repeat("0", 2-len(hours)) + hours
	}
	if len(minutes) < 2 {
		minutes = strings.Repeat("0", 2-len(minutes)) + minutes
	}
	return hours + ":" + minutes
}

// parseClock splits a normalized value into hour and minute numbers.
// Non-numeric parts read as zero so malformed stored values still display.
func parseClock(v string) (int, int) {
	padded := PadTime(v)
	h, _ := strconv.Atoi(padded[:2])
	m, _ := strconv.Atoi(padded[3:5])
	return h, m
}

// wrap adds delta and wraps modularly into [min, max]: exceeding max resets
// to min, going below min resets to max.
func wrap(value, delta, min, max int) int {
	v := value + delta
	if v > max {
		v = min
	}
	if v < min {
		v = max
	}
	return v
}

// AdjustTimeDigit adjusts exactly one displayed digit of an HH:MM value.
// Position 0/1 are hour tens/units wrapping in [0,23]; 2/3 are minute
// tens/units wrapping in [0,59]. Tens and units wrap independently, so 23:00
// tens-incremented becomes 03:00, not 33 mod 24.
func AdjustTimeDigit(timeStr string, position, delta int) string {
	hours, minutes := parseClock(timeStr)
	switch position {
	case 0:
		hours = wrap(hours, delta*10, 0, 23)
	case 1:
		hours = wrap(hours, delta, 0, 23)
	case 2:
		minutes = wrap(minutes, delta*10, 0, 59)
	case 3:
		minutes = wrap(minutes, delta, 0, 59)
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// TotalHours computes the schedule's total duration in fractional hours.
// A reversed half contributes zero rather than subtracting.
func TotalHours(s model.WorkSchedule) float64 {
	return spanHours(s.Morning) + spanHours(s.Afternoon)
}

func spanHours(span model.TimeSpan) float64 {
	sh, sm := parseClock(span.Start)
	eh, em := parseClock(span.End)
	hours := float64(eh) + float64(em)/60 - float64(sh) - float64(sm)/60
	if hours < 0 {
		return 0
	}
	return hours
}

// FormatHours renders fractional hours as "7h" or "7h30m".
func FormatHours(hours float64) string {
	h := int(hours)
	m := int(hours*60+0.5) - h*60
	if m == 60 {
		h++
		m = 0
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}
