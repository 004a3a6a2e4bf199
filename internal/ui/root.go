package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/clockin/internal/app"
	"github.com/dori/clockin/internal/calendar"
	"github.com/dori/clockin/internal/model"
	"github.com/dori/clockin/internal/timefield"
	"github.com/dori/clockin/internal/ui/theme"
)

// Debug logging (enable by setting CLOCKIN_DEBUG=1)
var rootDebugLog *os.File

func init() {
	if os.Getenv("CLOCKIN_DEBUG") == "1" {
		rootDebugLog, _ = os.OpenFile("/tmp/clockin-debug.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	}
}

func rootDebugf(format string, args ...interface{}) {
	if rootDebugLog != nil {
		fmt.Fprintf(rootDebugLog, format+"\n", args...)
		rootDebugLog.Sync()
	}
}

// modalKind says which dialog is open. Only one can be open at a time; the
// field doubles as the guard that blocks a second dialog from opening.
type modalKind int

const (
	modalNone modalKind = iota
	modalDay
	modalEdit
	modalBulk
	modalConfig
)

// RootModel is the main application model. It owns the displayed month, the
// feeds backing it, and whichever dialog is open.
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	year        int
	month       time.Month
	selectedDay int

	employee *model.Employee
	idx      *calendar.MonthIndex
	entries  []model.TimesheetEntry
	loading  bool
	loadErr  error

	modal       modalKind
	dayModal    dayModal
	editModal   editModal
	bulkModal   bulkModal
	configModal configModal

	statusMsg string
	errorMsg  string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App) RootModel {
	h := help.New()
	h.ShowAll = false

	now := time.Now()
	day := now.Day()
	if calendar.IsWeekend(now.Year(), now.Month(), day) {
		day = calendar.InitialWeekday(now.Year(), now.Month(), day)
	}

	return RootModel{
		app:         application,
		keys:        DefaultKeyMap(),
		help:        h,
		year:        now.Year(),
		month:       now.Month(),
		selectedDay: day,
		loading:     true,
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	rootDebugf("RootModel.Init()")
	return m.loadEmployee()
}

// loadEmployee fetches the profile once; the month feeds need its ID.
func (m RootModel) loadEmployee() tea.Cmd {
	client := m.app.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		emp, err := client.GetEmployee(ctx, "")
		return employeeLoadedMsg{Employee: emp, Err: err}
	}
}

// loadMonth fetches all three feeds for the displayed month in one command
// so the grid never renders half-updated.
func (m RootModel) loadMonth() tea.Cmd {
	client := m.app.Client
	year, month := m.year, m.month
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		start := calendar.FormatDate(year, month, 1)
		end := calendar.FormatDate(year, month, calendar.DaysInMonth(year, month))

		entries, err := client.GetTimesheetEntries(ctx, start, end)
		if err != nil {
			return monthDataMsg{Year: year, Month: int(month), Err: err}
		}
		timeOff, err := client.GetTimeOffRequests(ctx, start, end)
		if err != nil {
			return monthDataMsg{Year: year, Month: int(month), Err: err}
		}
		holidays, err := client.GetHolidays(ctx, start, end)
		if err != nil {
			return monthDataMsg{Year: year, Month: int(month), Err: err}
		}
		return monthDataMsg{Year: year, Month: int(month), Entries: entries, TimeOff: timeOff, Holidays: holidays}
	}
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	rootDebugf("RootModel.Update received msg type: %T", msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case employeeLoadedMsg:
		if msg.Err != nil {
			m.loading = false
			m.loadErr = msg.Err
			return m, nil
		}
		m.employee = msg.Employee
		return m, m.loadMonth()

	case monthDataMsg:
		// A stale fetch for a month we already navigated away from.
		if msg.Year != m.year || time.Month(msg.Month) != m.month {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			if m.idx == nil {
				m.loadErr = msg.Err
			} else {
				m.errorMsg = msg.Err.Error()
			}
			return m, nil
		}
		m.loadErr = nil
		m.entries = msg.Entries
		m.idx = calendar.NewMonthIndex(msg.Entries, msg.TimeOff, msg.Holidays)
		return m, nil

	case entrySavedMsg:
		if m.modal == modalEdit {
			var cmd tea.Cmd
			m.editModal, cmd = m.editModal.Update(msg)
			if msg.Err == nil {
				m.statusMsg = fmt.Sprintf("Saved %s", msg.Date)
				return m, tea.Batch(cmd, m.loadMonth())
			}
			return m, cmd
		}
		return m, nil

	case bulkDayDoneMsg:
		if m.modal == modalBulk {
			var cmd tea.Cmd
			m.bulkModal, cmd = m.bulkModal.Update(msg)
			if m.bulkModal.state == bulkDone || m.bulkModal.state == bulkFailed {
				return m, tea.Batch(cmd, m.loadMonth())
			}
			return m, cmd
		}
		return m, nil

	case settingsSavedMsg:
		if msg.Err == nil {
			m.app.Settings.WorkSchedule = msg.Settings
		}
		if m.modal == modalConfig {
			var cmd tea.Cmd
			m.configModal, cmd = m.configModal.Update(msg)
			return m, cmd
		}
		return m, nil

	case mailVerifiedMsg:
		if m.modal == modalConfig {
			var cmd tea.Cmd
			m.configModal, cmd = m.configModal.Update(msg)
			return m, cmd
		}
		return m, nil

	case modalClosedMsg:
		m.modal = modalNone
		if msg.OpenEdit {
			return m.openEditModal(msg.Day)
		}
		return m, nil

	case ErrorMsg:
		m.errorMsg = msg.Err.Error()
		return m, nil

	case StatusMsg:
		m.statusMsg = msg.Message
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m RootModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	m.errorMsg = ""

	// ctrl+c always quits, even with a dialog open
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// An open dialog owns the keyboard.
	if m.modal != modalNone {
		var cmd tea.Cmd
		switch m.modal {
		case modalDay:
			m.dayModal, cmd = m.dayModal.Update(msg)
		case modalEdit:
			m.editModal, cmd = m.editModal.Update(msg)
		case modalBulk:
			m.bulkModal, cmd = m.bulkModal.Update(msg)
		case modalConfig:
			m.configModal, cmd = m.configModal.Update(msg)
		}
		return m, cmd
	}

	if m.loadErr != nil {
		switch msg.String() {
		case "r":
			m.loading = true
			m.loadErr = nil
			return m, m.loadEmployee()
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	days := calendar.DaysInMonth(m.year, m.month)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevDay):
		m.selectedDay = calendar.NextWeekday(m.year, m.month, m.selectedDay, -1, days)
	case key.Matches(msg, m.keys.NextDay):
		m.selectedDay = calendar.NextWeekday(m.year, m.month, m.selectedDay, 1, days)
	case key.Matches(msg, m.keys.PrevWeek):
		m.selectedDay = calendar.NextWeekday(m.year, m.month, m.selectedDay, -7, days)
	case key.Matches(msg, m.keys.NextWeek):
		m.selectedDay = calendar.NextWeekday(m.year, m.month, m.selectedDay, 7, days)

	case key.Matches(msg, m.keys.PrevMonth):
		m.month--
		if m.month < time.January {
			m.month = time.December
			m.year--
		}
		return m.enterMonth()
	case key.Matches(msg, m.keys.NextMonth):
		m.month++
		if m.month > time.December {
			m.month = time.January
			m.year++
		}
		return m.enterMonth()

	case key.Matches(msg, m.keys.OpenDay):
		if m.idx == nil {
			return m, nil
		}
		m.dayModal = newDayModal(m.year, m.month, m.selectedDay, m.idx)
		m.modal = modalDay

	case key.Matches(msg, m.keys.Edit):
		return m.openEditModal(m.selectedDay)

	case key.Matches(msg, m.keys.BulkFill):
		if m.idx == nil {
			return m, nil
		}
		if calendar.IsFutureMonth(m.year, m.month, time.Now()) {
			m.errorMsg = "cannot fill a future month"
			return m, nil
		}
		until := calendar.FormatDate(m.year, m.month, calendar.DaysInMonth(m.year, m.month))
		missing := calendar.MissingDays(m.idx, m.year, m.month, until)
		monthName := fmt.Sprintf("%s %d", m.month.String(), m.year)
		m.bulkModal = newBulkModal(monthName, missing, m.app.Settings.WorkSchedule, m.app.Client, m.app.Store, m.app.Notifier)
		m.modal = modalBulk

	case key.Matches(msg, m.keys.Settings):
		m.configModal = newConfigModal(m.app.Settings)
		m.modal = modalConfig
	}

	return m, nil
}

// enterMonth resets the selection after a month switch and refetches.
func (m RootModel) enterMonth() (tea.Model, tea.Cmd) {
	m.selectedDay = calendar.InitialWeekday(m.year, m.month, 1)
	m.loading = true
	m.idx = nil
	return m, m.loadMonth()
}

// openEditModal opens the span editor for a day, redirecting to the detail
// dialog when the day cannot take hours.
func (m RootModel) openEditModal(day int) (tea.Model, tea.Cmd) {
	if m.idx == nil {
		return m, nil
	}
	status := m.idx.Classify(m.year, m.month, day, time.Now())
	switch status {
	case calendar.StatusMissing, calendar.StatusHasHours:
		date := calendar.FormatDate(m.year, m.month, day)
		// Seed from what is already recorded that day, falling back to the
		// configured schedule.
		seed := timefield.ExtractSchedule(m.dayEntries(date), m.app.Settings.WorkSchedule)
		m.editModal = newEditModal(date, seed, m.app.Client, m.app.Store)
		m.modal = modalEdit
	default:
		// Nothing to edit; show the day details instead.
		m.dayModal = newDayModal(m.year, m.month, day, m.idx)
		m.modal = modalDay
	}
	return m, nil
}

// dayEntries returns the month's raw entries for one date.
func (m RootModel) dayEntries(date string) []model.TimesheetEntry {
	var out []model.TimesheetEntry
	for _, e := range m.entries {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.loadErr != nil {
		return m.renderLoadError()
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	var content string
	if m.modal != modalNone {
		content = m.renderModal(contentHeight)
	} else if m.loading || m.idx == nil {
		content = theme.Current.Styles.Subtitle.Render("Loading month...")
	} else {
		content = m.renderMonth()
	}

	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)

	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n")
}

func (m RootModel) renderModal(height int) string {
	var view string
	switch m.modal {
	case modalDay:
		view = m.dayModal.View()
	case modalEdit:
		view = m.editModal.View()
	case modalBulk:
		view = m.bulkModal.View()
	case modalConfig:
		view = m.configModal.View()
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, view)
}

func (m RootModel) renderLoadError() string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	msg := lipgloss.NewStyle().Foreground(t.Error).Render(m.loadErr.Error())
	body := styles.Title.Render("Could not load timesheet data") + "\n\n" +
		msg + "\n\n" +
		styles.HelpDesc.Render("r: retry • q: quit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styles.Panel.BorderForeground(t.Error).Render(body))
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("clockin")

	sub := lipgloss.NewStyle().Foreground(t.Subtle).Padding(0, 1)
	monthLabel := sub.Render(fmt.Sprintf("[%s %d]", m.month.String(), m.year))

	var who string
	if m.employee != nil {
		who = sub.Render(m.employee.Name())
	}

	leftSide := lipgloss.JoinHorizontal(lipgloss.Center, title, monthLabel)
	gap := m.width - lipgloss.Width(leftSide) - lipgloss.Width(who)
	if gap < 0 {
		gap = 0
	}
	return leftSide + strings.Repeat(" ", gap) + who
}

// renderFooter renders the footer/status bar
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	keyHint := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var statusLine string
	if m.errorMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Error).Render(m.errorMsg)
	} else if m.statusMsg != "" {
		statusLine = lipgloss.NewStyle().Foreground(t.Info).Render(m.statusMsg)
	}

	var line1, line2 string
	if m.modal != modalNone {
		line1 = keyHint("esc", "close") + sep + keyHint("ctrl+c", "quit")
	} else {
		line1 = keyHint("←/→", "day") + sep +
			keyHint("↑/↓", "week") + sep +
			keyHint("p/n", "month") + sep +
			keyHint("enter", "details")
		line2 = keyHint("e", "edit hours") + sep +
			keyHint("s", "fill month") + sep +
			keyHint("c", "settings") + sep +
			keyHint("q", "quit")
	}

	var lines []string
	if statusLine != "" {
		lines = append(lines, statusLine)
	}
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}
	return strings.Join(lines, "\n")
}
