package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Fade blends a color toward the terminal background by the given
// opacity. Opacity 1 returns the color unchanged, 0 returns the
// background. Non-hex colors are returned as-is.
func (t *Theme) Fade(c lipgloss.Color, opacity float64) lipgloss.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bg, err := colorful.Hex(string(t.BgTerminal))
	if err != nil {
		return c
	}
	return lipgloss.Color(bg.BlendLab(fg, opacity).Clamped().Hex())
}

// FadedStyles returns the content styles with every color blended
// toward the terminal background by opacity. Used by center-anchored
// toasts which fade in and out instead of sliding.
func (t *Theme) FadedStyles(opacity float64) *Styles {
	if opacity >= 1 {
		return t.S()
	}
	surface := t.Fade(t.Surface, opacity)
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Fade(t.FgBase, opacity)).
			Background(surface).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(t.Fade(t.FgMuted, opacity)).
			Background(surface),
		Pill: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Fade(t.Border, opacity)).
			Background(surface).
			Padding(0, 1),
	}
}

// FadeAccent blends a preset accent color toward the background.
func (t *Theme) FadeAccent(c lipgloss.Color, opacity float64) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(t.Fade(c, opacity)).
		Background(t.Fade(t.Surface, opacity)).
		Bold(true)
}
