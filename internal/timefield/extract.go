package timefield

import (
	"time"

	"github.com/dori/clockin/internal/model"
)

// clockLayouts are the timestamp shapes the service has been seen returning.
var clockLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseClockStamp(v string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractSchedule reconstructs the morning/afternoon split actually worked on
// a day from its clock-type entries, for pre-filling the edit buffer.
//
// Entries ending before 14:00 inform the morning; entries starting at or after
// 12:00 inform the afternoon. A short midday entry can land in both
// partitions, which is intended: it should tighten both boundaries. Each
// non-empty partition takes its earliest start and latest end, truncated to
// HH:MM; an empty partition keeps the default's half. With no clock entries
// at all the default is returned as a copy, untouched.
func ExtractSchedule(entries []model.TimesheetEntry, def model.WorkSchedule) model.WorkSchedule {
	type clockEntry struct {
		start, end time.Time
	}
	var clocks []clockEntry
	for _, e := range entries {
		if e.Type != model.EntryTypeClock || e.Start == "" || e.End == "" {
			continue
		}
		start, ok := parseClockStamp(e.Start)
		if !ok {
			continue
		}
		end, ok := parseClockStamp(e.End)
		if !ok {
			continue
		}
		clocks = append(clocks, clockEntry{start: start, end: end})
	}

	out := def.Copy()
	if len(clocks) == 0 {
		return out
	}

	var morning, afternoon []clockEntry
	for _, c := range clocks {
		if c.end.Hour() < 14 {
			morning = append(morning, c)
		}
		if c.start.Hour() >= 12 {
			afternoon = append(afternoon, c)
		}
	}

	bounds := func(part []clockEntry) (string, string) {
		earliest, latest := part[0].start, part[0].end
		for _, c := range part[1:] {
			if c.start.Before(earliest) {
				earliest = c.start
			}
			if c.end.After(latest) {
				latest = c.end
			}
		}
		return earliest.Format("15:04"), latest.Format("15:04")
	}

	if len(morning) > 0 {
		out.Morning.Start, out.Morning.End = bounds(morning)
	}
	if len(afternoon) > 0 {
		out.Afternoon.Start, out.Afternoon.End = bounds(afternoon)
	}
	return out
}
