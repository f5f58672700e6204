// Package styles defines the color palette and pre-built lipgloss
// styles shared by the toast widget and the demo application.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for toast rendering.
type Theme struct {
	// Pill surface
	Surface lipgloss.Color // pill background
	Border  lipgloss.Color // pill border

	// Text hierarchy
	FgBase  lipgloss.Color // title text
	FgMuted lipgloss.Color // subtitle text

	// Terminal background, used as the fade target for opacity blending.
	BgTerminal lipgloss.Color

	// Accents per semantic preset
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color
	Heart   lipgloss.Color
	Accent  lipgloss.Color // loading / neutral

	styles *Styles
}

// Styles contains pre-built lipgloss styles for toast content.
type Styles struct {
	Title    lipgloss.Style // bold, bright
	Subtitle lipgloss.Style // dimmed
	Pill     lipgloss.Style // rounded border + surface background
}

var defaultTheme = Theme{
	Surface: lipgloss.Color("#262626"),
	Border:  lipgloss.Color("#585858"),

	FgBase:  lipgloss.Color("#d0d0d0"),
	FgMuted: lipgloss.Color("#808080"),

	BgTerminal: lipgloss.Color("#121212"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
	Heart:   lipgloss.Color("#f472b6"),
	Accent:  lipgloss.Color("#a78bfa"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.Surface).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Background(t.Surface),
		Pill: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Background(t.Surface).
			Padding(0, 1),
	}
}
