package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/clockin/internal/model"
	"github.com/dori/clockin/internal/notify"
	"github.com/dori/clockin/internal/timefield"
	"github.com/dori/clockin/internal/ui/theme"
)

type bulkState int

const (
	bulkIdle bulkState = iota
	bulkRunning
	bulkDone
	bulkFailed
)

// bulkModal fills every missing workday of the month with the configured
// schedule. Days are written strictly one after another; a failure halts the
// run and keeps the days already written.
type bulkModal struct {
	monthName string
	days      []string
	schedule  model.WorkSchedule

	writer   timeWriter
	recorder submissionRecorder
	notifier *notify.Notifier

	state    bulkState
	progress int
	errMsg   string
	failedAt string
}

func newBulkModal(monthName string, days []string, schedule model.WorkSchedule, writer timeWriter, recorder submissionRecorder, notifier *notify.Notifier) bulkModal {
	return bulkModal{
		monthName: monthName,
		days:      days,
		schedule:  schedule.Copy(),
		writer:    writer,
		recorder:  recorder,
		notifier:  notifier,
	}
}

func (m bulkModal) Update(msg tea.Msg) (bulkModal, tea.Cmd) {
	switch msg := msg.(type) {
	case bulkDayDoneMsg:
		if msg.Err != nil {
			m.state = bulkFailed
			m.errMsg = msg.Err.Error()
			m.failedAt = msg.Date
			if m.notifier != nil {
				m.notifier.SendBulkFailed(msg.Date)
			}
			return m, nil
		}
		m.progress = msg.Index + 1
		if m.progress < len(m.days) {
			return m, m.submitDay(m.progress)
		}
		m.state = bulkDone
		if m.notifier != nil {
			m.notifier.SendBulkComplete(len(m.days), m.monthName)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// No cancel mid-run; the in-flight day has to settle first.
			if m.state != bulkRunning {
				return m, func() tea.Msg { return modalClosedMsg{} }
			}
		case "enter":
			switch m.state {
			case bulkIdle:
				if len(m.days) == 0 {
					return m, func() tea.Msg { return modalClosedMsg{} }
				}
				m.state = bulkRunning
				return m, m.submitDay(0)
			case bulkDone, bulkFailed:
				return m, func() tea.Msg { return modalClosedMsg{} }
			}
		}
	}
	return m, nil
}

// submitDay writes the two spans for one missing day.
func (m bulkModal) submitDay(index int) tea.Cmd {
	date := m.days[index]
	schedule := m.schedule.Copy()
	writer := m.writer
	recorder := m.recorder
	return func() tea.Msg {
		ctx := context.Background()
		for _, span := range []model.TimeSpan{schedule.Morning, schedule.Afternoon} {
			if err := writer.StoreClockEntry(ctx, date, span.Start, span.End); err != nil {
				return bulkDayDoneMsg{Index: index, Date: date, Err: err}
			}
			if recorder != nil {
				if _, err := recorder.RecordSubmission(date, span.Start, span.End); err != nil {
					return bulkDayDoneMsg{Index: index, Date: date, Err: err}
				}
			}
		}
		return bulkDayDoneMsg{Index: index, Date: date}
	}
}

func (m bulkModal) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder
	b.WriteString(styles.Title.Render("Fill missing days — " + m.monthName))
	b.WriteString("\n\n")

	perDay := timefield.FormatHours(timefield.TotalHours(m.schedule))

	switch m.state {
	case bulkIdle:
		if len(m.days) == 0 {
			b.WriteString(styles.Subtitle.Render("Nothing to fill; the month is complete."))
			b.WriteString("\n\n")
			b.WriteString(styles.HelpDesc.Render("enter/esc: close"))
		} else {
			fmt.Fprintf(&b, "%d missing days, %s each:\n\n", len(m.days), perDay)
			for _, date := range m.days {
				parsed, _ := time.Parse("2006-01-02", date)
				fmt.Fprintf(&b, "  %s\n", parsed.Format("Mon 2 Jan"))
			}
			b.WriteString("\n")
			b.WriteString(styles.HelpDesc.Render("enter: submit all • esc: cancel"))
		}

	case bulkRunning:
		fmt.Fprintf(&b, "Submitting %d/%d...\n\n", m.progress+1, len(m.days))
		b.WriteString(m.renderProgress())

	case bulkDone:
		fmt.Fprintf(&b, "Submitted %d days.\n\n", len(m.days))
		b.WriteString(m.renderProgress())
		b.WriteString("\n")
		b.WriteString(styles.HelpDesc.Render("enter/esc: close"))

	case bulkFailed:
		b.WriteString(m.renderProgress())
		b.WriteString("\n")
		errStyle := lipgloss.NewStyle().Foreground(t.Error)
		fmt.Fprintf(&b, "%s\n", errStyle.Render(fmt.Sprintf("Failed at %s: %s", m.failedAt, m.errMsg)))
		fmt.Fprintf(&b, "%d days were submitted before the failure and were kept.\n\n", m.progress)
		b.WriteString(styles.HelpDesc.Render("enter/esc: close"))
	}

	return styles.Panel.BorderForeground(t.Primary).Render(b.String())
}

func (m bulkModal) renderProgress() string {
	styles := theme.Current.Styles
	var b strings.Builder
	for i, date := range m.days {
		parsed, _ := time.Parse("2006-01-02", date)
		label := parsed.Format("Mon 2 Jan")
		switch {
		case i < m.progress:
			b.WriteString(styles.DayHasHours.Render("  ✓ " + label))
		case m.state == bulkFailed && date == m.failedAt:
			b.WriteString(styles.DayMissing.Render("  ✗ " + label))
		case m.state == bulkRunning && i == m.progress:
			b.WriteString("  … " + label)
		default:
			b.WriteString(styles.Label.Render("    " + label))
		}
		b.WriteString("\n")
	}
	return b.String()
}
