package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dori/clockin/internal/browser"
	"github.com/dori/clockin/internal/config"
	"github.com/dori/clockin/internal/mail"
	"github.com/dori/clockin/internal/timefield"
	"github.com/dori/clockin/internal/ui/theme"
)

type configTab int

const (
	tabSchedule configTab = iota
	tabConnection
	tabMail
	numTabs
)

func (t configTab) String() string {
	switch t {
	case tabSchedule:
		return "Schedule"
	case tabConnection:
		return "Connection"
	default:
		return "Mail"
	}
}

type connectionStep int

const (
	connIdle connectionStep = iota
	connDomain
	connAPIKey
)

type mailStep int

const (
	mailIdle mailStep = iota
	mailEmail
	mailPassword
	mailVerifying
)

// appPasswordLen is the length of a Google app password once its display
// spaces are stripped.
const appPasswordLen = 16

// configModal is the settings dialog. While a text input is focused it
// swallows every key except escape, so typed characters never trigger
// shortcuts underneath.
type configModal struct {
	tab configTab

	// Schedule tab
	editor   timefield.Editor
	settings config.Settings

	// Connection tab
	connStep    connectionStep
	domainInput textinput.Model
	keyInput    textinput.Model

	// Mail tab
	mailStep      mailStep
	emailInput    textinput.Model
	passwordInput textinput.Model
	mailEmailVal  string

	statusMsg string
	errMsg    string
}

func newConfigModal(settings config.Settings) configModal {
	domain := textinput.New()
	domain.Placeholder = "company domain"
	domain.CharLimit = 64

	apiKey := textinput.New()
	apiKey.Placeholder = "API key"
	apiKey.CharLimit = 128
	apiKey.EchoMode = textinput.EchoPassword

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "app password"
	password.CharLimit = 32
	password.EchoMode = textinput.EchoPassword

	return configModal{
		settings:      settings,
		editor:        timefield.NewEditor(settings.WorkSchedule),
		domainInput:   domain,
		keyInput:      apiKey,
		emailInput:    email,
		passwordInput: password,
	}
}

// inputFocused reports whether a text input owns the keyboard.
func (m configModal) inputFocused() bool {
	return m.connStep == connDomain || m.connStep == connAPIKey ||
		m.mailStep == mailEmail || m.mailStep == mailPassword
}

func (m configModal) Update(msg tea.Msg) (configModal, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsSavedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
		} else {
			m.statusMsg = "Schedule saved"
			m.settings.WorkSchedule = msg.Settings
		}
		return m, nil

	case mailVerifiedMsg:
		if m.mailStep != mailVerifying {
			return m, nil
		}
		if msg.Err != nil {
			m.mailStep = mailPassword
			m.errMsg = fmt.Sprintf("verification failed: %v", msg.Err)
			return m, nil
		}
		cfg := &config.MailConfig{
			Email:       m.mailEmailVal,
			AppPassword: strippedPassword(m.passwordInput.Value()),
		}
		if err := config.SaveMailConfig(cfg); err != nil {
			m.mailStep = mailPassword
			m.errMsg = err.Error()
			return m, nil
		}
		m.mailStep = mailIdle
		m.passwordInput.Reset()
		m.passwordInput.Blur()
		m.statusMsg = "Mail configured"
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""

		if msg.String() == "esc" {
			if m.inputFocused() {
				return m.cancelInput(), nil
			}
			if m.mailStep == mailVerifying {
				// Verification has to settle first.
				return m, nil
			}
			return m, func() tea.Msg { return modalClosedMsg{} }
		}

		if m.inputFocused() {
			return m.updateInput(msg)
		}

		switch msg.String() {
		case ",", "<":
			m.tab = (m.tab + numTabs - 1) % numTabs
			m.errMsg = ""
			return m, nil
		case ".", ">":
			m.tab = (m.tab + 1) % numTabs
			m.errMsg = ""
			return m, nil
		}

		switch m.tab {
		case tabSchedule:
			return m.updateSchedule(msg)
		case tabConnection:
			if msg.String() == "enter" {
				m.connStep = connDomain
				m.domainInput.Focus()
				m.errMsg = ""
			}
		case tabMail:
			if msg.String() == "enter" && m.mailStep == mailIdle {
				m.mailStep = mailEmail
				m.emailInput.Focus()
				m.errMsg = ""
			}
		}
	}
	return m, nil
}

func (m configModal) updateSchedule(msg tea.KeyMsg) (configModal, tea.Cmd) {
	switch msg.String() {
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
		schedule := m.editor.Schedule.Copy()
		return m, func() tea.Msg {
			s := config.Settings{WorkSchedule: schedule}
			if err := config.SaveSettings(s); err != nil {
				return settingsSavedMsg{Err: err}
			}
			return settingsSavedMsg{Settings: schedule}
		}
	}
	return m, nil
}

// cancelInput backs out of whichever text input is focused.
func (m configModal) cancelInput() configModal {
	switch {
	case m.connStep == connDomain || m.connStep == connAPIKey:
		m.connStep = connIdle
		m.domainInput.Blur()
		m.keyInput.Blur()
	case m.mailStep == mailEmail || m.mailStep == mailPassword:
		m.mailStep = mailIdle
		m.emailInput.Blur()
		m.passwordInput.Blur()
	}
	m.errMsg = ""
	return m
}

func (m configModal) updateInput(msg tea.KeyMsg) (configModal, tea.Cmd) {
	if msg.String() == "enter" {
		return m.confirmInput()
	}

	var cmd tea.Cmd
	switch {
	case m.connStep == connDomain:
		m.domainInput, cmd = m.domainInput.Update(msg)
	case m.connStep == connAPIKey:
		m.keyInput, cmd = m.keyInput.Update(msg)
	case m.mailStep == mailEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	case m.mailStep == mailPassword:
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m configModal) confirmInput() (configModal, tea.Cmd) {
	switch {
	case m.connStep == connDomain:
		domain := strings.TrimSpace(m.domainInput.Value())
		if domain == "" {
			m.errMsg = "domain is required"
			return m, nil
		}
		m.connStep = connAPIKey
		m.domainInput.Blur()
		m.keyInput.Focus()
		// Take the user to where the key is issued.
		url := fmt.Sprintf("https://%s.bamboohr.com/settings/permissions/api.php", domain)
		return m, func() tea.Msg {
			browser.Open(url)
			return nil
		}

	case m.connStep == connAPIKey:
		apiKey := strings.TrimSpace(m.keyInput.Value())
		if apiKey == "" {
			m.errMsg = "API key is required"
			return m, nil
		}
		creds := &config.Credentials{
			Type:          config.CredentialBasic,
			CompanyDomain: strings.TrimSpace(m.domainInput.Value()),
			APIKey:        apiKey,
		}
		if err := config.SaveCredentials(creds); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.connStep = connIdle
		m.keyInput.Reset()
		m.keyInput.Blur()
		m.statusMsg = "Connection saved; restart to use the new credentials"
		return m, nil

	case m.mailStep == mailEmail:
		email := strings.TrimSpace(m.emailInput.Value())
		if !strings.Contains(email, "@") {
			m.errMsg = "enter a valid email address"
			return m, nil
		}
		m.mailEmailVal = email
		m.mailStep = mailPassword
		m.emailInput.Blur()
		m.passwordInput.Focus()
		return m, nil

	case m.mailStep == mailPassword:
		// App passwords paste with display spaces; strip whitespace only,
		// everything else is part of the secret.
		password := strippedPassword(m.passwordInput.Value())
		if len(password) != appPasswordLen {
			m.errMsg = fmt.Sprintf("app passwords are %d characters, got %d", appPasswordLen, len(password))
			return m, nil
		}
		m.mailStep = mailVerifying
		m.errMsg = ""
		email := m.mailEmailVal
		return m, func() tea.Msg {
			cfg := &config.MailConfig{Email: email, AppPassword: password}
			return mailVerifiedMsg{Err: mail.Verify(context.Background(), cfg)}
		}
	}
	return m, nil
}

func strippedPassword(v string) string {
	return strings.Join(strings.Fields(v), "")
}

func (m configModal) View() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	var b strings.Builder

	// Tab bar
	var tabs []string
	for tab := configTab(0); tab < numTabs; tab++ {
		label := " " + tab.String() + " "
		if tab == m.tab {
			tabs = append(tabs, styles.DaySelected.Render(label))
		} else {
			tabs = append(tabs, styles.Label.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, styles.HelpSeparator.Render("│")))
	b.WriteString("\n\n")

	switch m.tab {
	case tabSchedule:
		b.WriteString(m.viewSchedule())
	case tabConnection:
		b.WriteString(m.viewConnection())
	case tabMail:
		b.WriteString(m.viewMail())
	}

	b.WriteString("\n")
	switch {
	case m.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(t.Error).Render(m.errMsg))
	case m.statusMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(t.Success).Render(m.statusMsg))
	case m.inputFocused():
		b.WriteString(styles.HelpDesc.Render("enter: confirm • esc: back"))
	default:
		b.WriteString(styles.HelpDesc.Render(",/. tabs • esc: close"))
	}

	return styles.Panel.BorderForeground(t.Primary).Render(b.String())
}

func (m configModal) viewSchedule() string {
	styles := theme.Current.Styles
	var b strings.Builder
	b.WriteString("Default workday:\n\n")
	b.WriteString(styles.Label.Render("Morning    "))
	b.WriteString(m.renderField(timefield.FieldMorningStart) + " - " + m.renderField(timefield.FieldMorningEnd))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render("Afternoon  "))
	b.WriteString(m.renderField(timefield.FieldAfternoonStart) + " - " + m.renderField(timefield.FieldAfternoonEnd))
	b.WriteString("\n\n")
	b.WriteString(styles.Label.Render("Total      "))
	b.WriteString(timefield.FormatHours(m.editor.TotalHours()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("tab: field • ←/→: digit • ↑/↓: adjust • enter: save"))
	return b.String()
}

func (m configModal) renderField(f timefield.Field) string {
	styles := theme.Current.Styles
	value := m.editor.Value(f)
	if f != m.editor.Active {
		return value
	}
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

func (m configModal) viewConnection() string {
	styles := theme.Current.Styles
	var b strings.Builder
	switch m.connStep {
	case connIdle:
		b.WriteString("HR service connection.\n\n")
		b.WriteString(styles.HelpDesc.Render("enter: reconfigure"))
	case connDomain:
		b.WriteString("Company domain (the part before .bamboohr.com):\n\n")
		b.WriteString(m.domainInput.View())
	case connAPIKey:
		b.WriteString("A browser tab was opened where the API key is issued.\nPaste the key here:\n\n")
		b.WriteString(m.keyInput.View())
	}
	return b.String()
}

func (m configModal) viewMail() string {
	styles := theme.Current.Styles
	var b strings.Builder
	switch m.mailStep {
	case mailIdle:
		b.WriteString("Monthly reminder mail (Gmail app password).\n\n")
		b.WriteString(styles.HelpDesc.Render("enter: reconfigure"))
	case mailEmail:
		b.WriteString("Gmail address:\n\n")
		b.WriteString(m.emailInput.View())
	case mailPassword:
		b.WriteString("App password (pasted spaces are fine):\n\n")
		b.WriteString(m.passwordInput.View())
	case mailVerifying:
		b.WriteString(styles.Subtitle.Render("Verifying against the mail server..."))
	}
	return b.String()
}
