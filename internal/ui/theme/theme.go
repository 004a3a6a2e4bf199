package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the UI
type Theme struct {
	Name string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Day cell colors
	DayWeekend  lipgloss.Color
	DayHoliday  lipgloss.Color
	DayTimeOff  lipgloss.Color
	DayHasHours lipgloss.Color
	DayFuture   lipgloss.Color
	DayMissing  lipgloss.Color
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Label    lipgloss.Style

	// Day cell styles
	DayWeekend  lipgloss.Style
	DayHoliday  lipgloss.Style
	DayTimeOff  lipgloss.Style
	DayHasHours lipgloss.Style
	DayFuture   lipgloss.Style
	DayMissing  lipgloss.Style
	DaySelected lipgloss.Style
	DayToday    lipgloss.Style

	// Input styles
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Placeholder  lipgloss.Style

	// Panel styles
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelBorder lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style
}

// Default is the built-in palette.
var Default = Theme{
	Name: "nord",

	Background: lipgloss.Color("#2E3440"),
	Foreground: lipgloss.Color("#D8DEE9"),
	Subtle:     lipgloss.Color("#4C566A"),
	Highlight:  lipgloss.Color("#434C5E"),
	Border:     lipgloss.Color("#3B4252"),

	Primary:   lipgloss.Color("#88C0D0"),
	Secondary: lipgloss.Color("#81A1C1"),
	Success:   lipgloss.Color("#A3BE8C"),
	Warning:   lipgloss.Color("#EBCB8B"),
	Error:     lipgloss.Color("#BF616A"),
	Info:      lipgloss.Color("#5E81AC"),

	DayWeekend:  lipgloss.Color("#4C566A"),
	DayHoliday:  lipgloss.Color("#B48EAD"),
	DayTimeOff:  lipgloss.Color("#81A1C1"),
	DayHasHours: lipgloss.Color("#A3BE8C"),
	DayFuture:   lipgloss.Color("#616E88"),
	DayMissing:  lipgloss.Color("#BF616A"),
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Foreground),

		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),

		Label: lipgloss.NewStyle().
			Foreground(t.Subtle),

		DayWeekend: lipgloss.NewStyle().
			Foreground(t.DayWeekend),

		DayHoliday: lipgloss.NewStyle().
			Foreground(t.DayHoliday),

		DayTimeOff: lipgloss.NewStyle().
			Foreground(t.DayTimeOff),

		DayHasHours: lipgloss.NewStyle().
			Foreground(t.DayHasHours),

		DayFuture: lipgloss.NewStyle().
			Foreground(t.DayFuture),

		DayMissing: lipgloss.NewStyle().
			Foreground(t.DayMissing).
			Bold(true),

		DaySelected: lipgloss.NewStyle().
			Background(t.Highlight).
			Bold(true),

		DayToday: lipgloss.NewStyle().
			Underline(true),

		Input: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Subtle),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),

		PanelTitle: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		PanelBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Border),
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  Default,
	Styles: NewStyles(Default),
}
