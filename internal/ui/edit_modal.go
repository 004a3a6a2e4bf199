package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/clockin/internal/model"
	"github.com/dori/clockin/internal/store"
	"github.com/dori/clockin/internal/timefield"
	"github.com/dori/clockin/internal/ui/theme"
)

// timeWriter is the slice of the service client the editor needs.
type timeWriter interface {
	StoreClockEntry(ctx context.Context, date, start, end string) error
}

// submissionRecorder is the slice of the local store the editor needs.
type submissionRecorder interface {
	RecordSubmission(date, start, end string) (*store.Submission, error)
}

// editModal edits the two spans of one day digit by digit. While a save is
// in flight every key is ignored, including escape; the pending write has to
// settle before the dialog can go away.
type editModal struct {
	date   string
	editor timefield.Editor

	writer   timeWriter
	recorder submissionRecorder

	saving bool
	errMsg string
}

func newEditModal(date string, seed model.WorkSchedule, writer timeWriter, recorder submissionRecorder) editModal {
	return editModal{
		date:     date,
		editor:   timefield.NewEditor(seed),
		writer:   writer,
		recorder: recorder,
	}
}

func (m editModal) Update(msg tea.Msg) (editModal, tea.Cmd) {
	switch msg := msg.(type) {
	case entrySavedMsg:
		m.saving = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return modalClosedMsg{} }

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		m.errMsg = ""

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return modalClosedMsg{} }

		case "tab":
			m.editor = m.editor.CycleField(true)
		case "shift+tab":
			m.editor = m.editor.CycleField(false)

		case "left", "h":
			m.editor = m.editor.MoveCursor(-1)
		case "right", "l":
			m.editor = m.editor.MoveCursor(1)

		case "up", "k":
			m.editor = m.editor.AdjustDigit(1)
		case "down", "j":
			m.editor = m.editor.AdjustDigit(-1)

		case "enter":
			total := m.editor.TotalHours()
			if total < 0 || total > 24 {
				m.errMsg = fmt.Sprintf("total of %s is not a valid workday", timefield.FormatHours(total))
				return m, nil
			}
			m.saving = true
			return m, m.save()
		}
	}
	return m, nil
}

// save writes both spans in order. The afternoon is only attempted after the
// morning succeeds, so a failure can leave the day half written; the error
// keeps the dialog open for a retry.
func (m editModal) save() tea.Cmd {
	date := m.date
	schedule := m.editor.Schedule.Copy()
	writer := m.writer
	recorder := m.recorder
	return func() tea.Msg {
		ctx := context.Background()
		for _, span := range []model.TimeSpan{schedule.Morning, schedule.Afternoon} {
			if err := writer.StoreClockEntry(ctx, date, span.Start, span.End); err != nil {
				return entrySavedMsg{Date: date, Err: err}
			}
			if recorder != nil {
				if _, err := recorder.RecordSubmission(date, span.Start, span.End); err != nil {
					return entrySavedMsg{Date: date, Err: err}
				}
			}
		}
		return entrySavedMsg{Date: date}
	}
}

func (m editModal) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	parsed, _ := time.Parse("2006-01-02", m.date)
	var b strings.Builder
	b.WriteString(styles.Title.Render("Edit hours — " + parsed.Format("Monday, 2 January")))
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Morning    "))
	b.WriteString(m.renderSpan(timefield.FieldMorningStart, timefield.FieldMorningEnd))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render("Afternoon  "))
	b.WriteString(m.renderSpan(timefield.FieldAfternoonStart, timefield.FieldAfternoonEnd))
	b.WriteString("\n\n")

	b.WriteString(styles.Label.Render("Total      "))
	b.WriteString(timefield.FormatHours(m.editor.TotalHours()))
	b.WriteString("\n\n")

	if m.saving {
		b.WriteString(styles.Subtitle.Render("Saving..."))
	} else if m.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render(m.errMsg))
	} else {
		b.WriteString(styles.HelpDesc.Render("tab: field • ←/→: digit • ↑/↓: adjust • enter: save • esc: cancel"))
	}

	return styles.Panel.BorderForeground(t.Primary).Render(b.String())
}

// renderSpan renders "HH:MM - HH:MM" with the active digit highlighted.
func (m editModal) renderSpan(start, end timefield.Field) string {
	return m.renderField(start) + " - " + m.renderField(end)
}

func (m editModal) renderField(f timefield.Field) string {
	styles := theme.Current.Styles
	value := m.editor.Value(f)
	if f != m.editor.Active {
		return value
	}

	// Map cursor position 0-3 onto the HH:MM string, skipping the colon.
	pos := m.editor.Cursor
	if pos >= 2 {
		pos++
	}
	var b strings.Builder
	for i, r := range value {
		if i == pos {
			b.WriteString(styles.DaySelected.Render(string(r)))
		} else {
			b.WriteString(string(r))
		}
	}
	return b.String()
}
