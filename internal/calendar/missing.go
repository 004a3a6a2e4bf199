package calendar

import (
	"time"

	"github.com/dori/clockin/internal/model"
)

// MissingDays returns, in ascending order, the workdays of the month with no
// holiday, no time off and zero recorded hours, up to and including the
// "until" date (ISO). The two entry points deliberately disagree on the
// cutoff: the interactive bulk view passes the last day of the month (future
// days included, the whole operation disabled for future months) while the
// headless submit flow passes today. Callers own that policy.
func MissingDays(idx *MonthIndex, year int, month time.Month, until string) []string {
	daysInMonth := DaysInMonth(year, month)
	var missing []string
	for day := 1; day <= daysInMonth; day++ {
		if IsWeekend(year, month, day) {
			continue
		}
		date := FormatDate(year, month, day)
		if date > until {
			break
		}
		if len(idx.holidaysByDate[date]) > 0 {
			continue
		}
		if _, ok := idx.timeOffByDate[date]; ok {
			continue
		}
		if idx.hoursByDate[date] > 0 {
			continue
		}
		missing = append(missing, date)
	}
	return missing
}

// LastWorkingDay walks back from the end of the month to the last day that is
// neither a weekend, a holiday, nor time off. Falls back to the last calendar
// day when the whole month is non-working.
func LastWorkingDay(year int, month time.Month, holidays []model.Holiday, timeOff []model.TimeOffRequest) time.Time {
	idx := NewMonthIndex(nil, timeOff, holidays)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	for d := last; d.Month() == month; d = d.AddDate(0, 0, -1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		date := d.Format(ISODate)
		if len(idx.holidaysByDate[date]) > 0 {
			continue
		}
		if _, ok := idx.timeOffByDate[date]; ok {
			continue
		}
		return d
	}
	return last
}
