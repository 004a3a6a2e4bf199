package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dori/clockin/internal/calendar"
	"github.com/dori/clockin/internal/timefield"
	"github.com/dori/clockin/internal/ui/theme"
)

// renderMonth renders the calendar grid next to the selected-day summary.
func (m RootModel) renderMonth() string {
	calWidth := 30
	grid := m.renderGrid(calWidth)
	sidebar := m.renderSidebar(m.width - calWidth - 6)
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, sidebar)
}

// renderGrid renders the month as Monday-first weeks, one styled cell per
// day.
func (m RootModel) renderGrid(width int) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Width(width).
		Align(lipgloss.Center)

	var lines []string
	lines = append(lines, headerStyle.Render(fmt.Sprintf("%s %d", m.month.String(), m.year)))
	lines = append(lines, styles.Label.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))

	now := time.Now()
	isCurrentMonth := m.year == now.Year() && m.month == now.Month()
	today := now.Day()

	daysInMonth := calendar.DaysInMonth(m.year, m.month)
	first := calendar.FirstWeekdayIndex(m.year, m.month)

	for _, week := range calendar.WeeksGrid(daysInMonth, first) {
		var cells []string
		for _, day := range week {
			if day == 0 {
				cells = append(cells, "    ")
				continue
			}

			status := m.idx.Classify(m.year, m.month, day, now)
			cell := fmt.Sprintf(" %2d ", day)

			style := lipgloss.NewStyle()
			switch status {
			case calendar.StatusWeekend:
				style = style.Foreground(t.DayWeekend)
			case calendar.StatusHoliday:
				style = style.Foreground(t.DayHoliday)
			case calendar.StatusTimeOff:
				style = style.Foreground(t.DayTimeOff)
			case calendar.StatusHasHours:
				style = style.Foreground(t.DayHasHours)
			case calendar.StatusFuture:
				style = style.Foreground(t.DayFuture)
			case calendar.StatusMissing:
				style = style.Foreground(t.DayMissing).Bold(true)
			}
			if isCurrentMonth && day == today {
				style = style.Underline(true)
			}
			if day == m.selectedDay {
				style = style.Background(t.Highlight).Bold(true)
			}

			cells = append(cells, style.Render(cell))
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	lines = append(lines, "")
	lines = append(lines, m.renderLegend())

	return styles.PanelBorder.Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func (m RootModel) renderLegend() string {
	styles := theme.Current.Styles
	parts := []string{
		styles.DayHasHours.Render("■ done"),
		styles.DayMissing.Render("■ missing"),
		styles.DayTimeOff.Render("■ off"),
		styles.DayHoliday.Render("■ holiday"),
	}
	return strings.Join(parts, " ")
}

// renderSidebar renders the selected day's details and the month summary.
func (m RootModel) renderSidebar(width int) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	if width < 20 {
		width = 20
	}

	date := time.Date(m.year, m.month, m.selectedDay, 0, 0, 0, 0, time.Local)
	isoDate := calendar.FormatDate(m.year, m.month, m.selectedDay)
	status := m.idx.Classify(m.year, m.month, m.selectedDay, time.Now())

	var lines []string
	lines = append(lines, styles.Title.Render(date.Format("Monday, 2 January")))
	lines = append(lines, "")
	lines = append(lines, styles.Label.Render("Status  ")+renderStatus(status, status.String()))

	if label, ok := m.idx.Label(isoDate); ok {
		lines = append(lines, styles.Label.Render("Label   ")+label)
	}
	if hours := m.idx.Hours(isoDate); hours > 0 {
		lines = append(lines, styles.Label.Render("Hours   ")+timefield.FormatHours(hours))
	}

	// Month summary
	until := calendar.FormatDate(m.year, m.month, calendar.DaysInMonth(m.year, m.month))
	missing := calendar.MissingDays(m.idx, m.year, m.month, until)

	lines = append(lines, "")
	if calendar.IsFutureMonth(m.year, m.month, time.Now()) {
		lines = append(lines, styles.Subtitle.Render("Future month"))
	} else if len(missing) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Success).Render("Month complete"))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Warning).
			Render(fmt.Sprintf("%d missing days", len(missing))))
	}

	return styles.PanelBorder.Padding(0, 1).Width(width).Render(strings.Join(lines, "\n"))
}
