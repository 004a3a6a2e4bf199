package calendar

import (
	"fmt"
	"time"

	"github.com/dori/clockin/internal/model"
)

// DayStatus is the derived classification of one calendar day. It is computed
// from the three feeds on demand and never stored.
type DayStatus int

const (
	StatusWeekend DayStatus = iota
	StatusHoliday
	StatusTimeOff
	StatusHasHours
	StatusFuture
	StatusMissing
)

func (s DayStatus) String() string {
	switch s {
	case StatusWeekend:
		return "weekend"
	case StatusHoliday:
		return "holiday"
	case StatusTimeOff:
		return "timeOff"
	case StatusHasHours:
		return "hasHours"
	case StatusFuture:
		return "future"
	default:
		return "missing"
	}
}

// MonthIndex is the three feeds of one month expanded into per-date lookups.
// Built once per feed load; the input slices are never mutated.
type MonthIndex struct {
	holidaysByDate map[string][]string
	timeOffByDate  map[string]string
	hoursByDate    map[string]float64
}

// NewMonthIndex expands timesheet entries, time-off requests and holiday
// ranges into date-keyed maps.
//
// Holidays are continuous closed ranges and get walked day by day with
// calendar arithmetic, so ranges spanning month or year boundaries expand
// correctly. Time off is the opposite: its Dates set is authoritative and is
// iterated directly. Hour totals sum hour-type entries only.
func NewMonthIndex(entries []model.TimesheetEntry, timeOff []model.TimeOffRequest, holidays []model.Holiday) *MonthIndex {
	idx := &MonthIndex{
		holidaysByDate: make(map[string][]string),
		timeOffByDate:  make(map[string]string),
		hoursByDate:    make(map[string]float64),
	}

	for _, h := range holidays {
		start, err := time.ParseInLocation(ISODate, h.Start, time.Local)
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation(ISODate, h.End, time.Local)
		if err != nil {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			key := d.Format(ISODate)
			idx.holidaysByDate[key] = append(idx.holidaysByDate[key], h.Name)
		}
	}

	for _, r := range timeOff {
		for date := range r.Dates {
			idx.timeOffByDate[date] = r.Label()
		}
	}

	for _, e := range entries {
		idx.hoursByDate[e.Date] += e.Hours
	}

	return idx
}

// Hours returns the recorded hour total for a date.
func (idx *MonthIndex) Hours(date string) float64 {
	return idx.hoursByDate[date]
}

// HolidayNames returns the holidays covering a date, nil when none.
func (idx *MonthIndex) HolidayNames(date string) []string {
	return idx.holidaysByDate[date]
}

// TimeOffLabel returns the time-off label for a date and whether one exists.
func (idx *MonthIndex) TimeOffLabel(date string) (string, bool) {
	label, ok := idx.timeOffByDate[date]
	return label, ok
}

// Classify returns the status of one day. Precedence, highest first:
// weekend > holiday > timeOff > hasHours > future > missing. A holiday with
// logged hours is still a holiday; a weekend is never missing.
func (idx *MonthIndex) Classify(year int, month time.Month, day int, today time.Time) DayStatus {
	if IsWeekend(year, month, day) {
		return StatusWeekend
	}
	date := FormatDate(year, month, day)
	if len(idx.holidaysByDate[date]) > 0 {
		return StatusHoliday
	}
	if _, ok := idx.timeOffByDate[date]; ok {
		return StatusTimeOff
	}
	if idx.hoursByDate[date] > 0 {
		return StatusHasHours
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	endOfToday := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.Local)
	if t.After(endOfToday) {
		return StatusFuture
	}
	return StatusMissing
}

// Label returns the display label for a date: "N holidays" when several
// holidays coincide, the holiday name when one, otherwise the time-off label.
// The second return is false when the date has no label.
func (idx *MonthIndex) Label(date string) (string, bool) {
	names := idx.holidaysByDate[date]
	if len(names) > 1 {
		return fmt.Sprintf("%d holidays", len(names)), true
	}
	if len(names) == 1 {
		return names[0], true
	}
	if label, ok := idx.timeOffByDate[date]; ok {
		return label, true
	}
	return "", false
}
