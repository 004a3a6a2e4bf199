package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dori/clockin/internal/calendar"
	"github.com/dori/clockin/internal/timefield"
	"github.com/dori/clockin/internal/ui/theme"
)

// dayModal shows the details of one day: status, recorded hours, holiday or
// time-off labels. From here 'e' jumps to the span editor for days that can
// take hours.
type dayModal struct {
	year  int
	month time.Month
	day   int

	status calendar.DayStatus
	hours  float64
	label  string
}

func newDayModal(year int, month time.Month, day int, idx *calendar.MonthIndex) dayModal {
	date := calendar.FormatDate(year, month, day)
	label, _ := idx.Label(date)
	return dayModal{
		year:   year,
		month:  month,
		day:    day,
		status: idx.Classify(year, month, day, time.Now()),
		hours:  idx.Hours(date),
		label:  label,
	}
}

// editable reports whether the span editor makes sense for this day. Time
// off, holidays and weekends never take hours; future days are read-only.
func (m dayModal) editable() bool {
	switch m.status {
	case calendar.StatusMissing, calendar.StatusHasHours:
		return true
	default:
		return false
	}
}

func (m dayModal) Update(msg tea.Msg) (dayModal, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter", "esc":
			return m, func() tea.Msg { return modalClosedMsg{} }
		case "e":
			if m.editable() {
				day := m.day
				return m, func() tea.Msg { return modalClosedMsg{OpenEdit: true, Day: day} }
			}
		}
	}
	return m, nil
}

func (m dayModal) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	date := time.Date(m.year, m.month, m.day, 0, 0, 0, 0, time.Local)
	var b strings.Builder
	b.WriteString(styles.Title.Render(date.Format("Monday, 2 January 2006")))
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Status  "))
	b.WriteString(renderStatus(m.status, m.status.String()))
	b.WriteString("\n")

	if m.label != "" {
		b.WriteString(styles.Label.Render("Label   "))
		b.WriteString(m.label)
		b.WriteString("\n")
	}

	if m.hours > 0 {
		b.WriteString(styles.Label.Render("Hours   "))
		b.WriteString(timefield.FormatHours(m.hours))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	hints := "enter/esc: close"
	if m.editable() {
		hints = "e: edit hours • " + hints
	}
	b.WriteString(styles.HelpDesc.Render(hints))

	panel := styles.Panel.BorderForeground(t.Primary)
	return panel.Render(b.String())
}

// renderStatus styles text with the day status color.
func renderStatus(s calendar.DayStatus, text string) string {
	styles := theme.Current.Styles
	switch s {
	case calendar.StatusWeekend:
		return styles.DayWeekend.Render(text)
	case calendar.StatusHoliday:
		return styles.DayHoliday.Render(text)
	case calendar.StatusTimeOff:
		return styles.DayTimeOff.Render(text)
	case calendar.StatusHasHours:
		return styles.DayHasHours.Render(text)
	case calendar.StatusFuture:
		return styles.DayFuture.Render(text)
	default:
		return styles.DayMissing.Render(text)
	}
}
