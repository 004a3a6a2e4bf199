package calendar

import "time"

// ISODate is the wire format for calendar days.
const ISODate = "2006-01-02"

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// FormatDate renders a calendar day as "YYYY-MM-DD".
func FormatDate(year int, month time.Month, day int) string {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(ISODate)
}

// IsWeekend reports whether the given day falls on Saturday or Sunday.
func IsWeekend(year int, month time.Month, day int) bool {
	wd := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// NextWeekday moves from day by delta (+1 or -1), skipping weekends. When the
// walk runs off either end of the month it returns day unchanged.
func NextWeekday(year int, month time.Month, day, delta, daysInMonth int) int {
	next := day + delta
	for next >= 1 && next <= daysInMonth && IsWeekend(year, month, next) {
		next += delta
	}
	if next < 1 || next > daysInMonth {
		return day
	}
	return next
}

// InitialWeekday returns the first non-weekend day at or after day, falling
// back to the nearest earlier weekday when the month ends in a weekend run.
func InitialWeekday(year int, month time.Month, day int) int {
	daysInMonth := DaysInMonth(year, month)
	d := day
	for d <= daysInMonth && IsWeekend(year, month, d) {
		d++
	}
	if d > daysInMonth {
		d = day
		for d >= 1 && IsWeekend(year, month, d) {
			d--
		}
	}
	if d < 1 {
		return 1
	}
	return d
}

// IsFutureMonth reports whether year/month is strictly after now's month.
func IsFutureMonth(year int, month time.Month, now time.Time) bool {
	return year > now.Year() || (year == now.Year() && month > now.Month())
}

// NextMonth returns the month after year/month, rolling over the year.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// FirstWeekdayIndex returns the Monday-based column (0-6) of the 1st of the
// month, for laying out the grid.
func FirstWeekdayIndex(year int, month time.Month) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday()
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// WeeksGrid lays the month out as rows of seven day numbers, zero where a cell
// belongs to an adjacent month.
func WeeksGrid(daysInMonth, firstWeekday int) [][7]int {
	var weeks [][7]int
	var week [7]int
	col := firstWeekday
	for day := 1; day <= daysInMonth; day++ {
		week[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = [7]int{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}
