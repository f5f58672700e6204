package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pveldrane/pill/internal/overlay"
	"github.com/pveldrane/pill/internal/preset"
	"github.com/pveldrane/pill/internal/render"
	"github.com/pveldrane/pill/internal/styles"
)

// View renders the pill at its current animation frame. Center-anchored
// toasts fade with the transform's opacity; top and bottom toasts slide
// at full opacity.
func (m Model) View() string {
	switch m.state {
	case StateIdle, StatePreparing, StateRemoved:
		return ""
	}

	tr := m.currentTransform()
	st := m.theme.S()
	if m.side == SideCenter {
		st = m.theme.FadedStyles(tr.Opacity)
	}

	pill := st.Pill.Render(m.renderContent(st, tr.Opacity))
	if m.zones != nil {
		pill = m.zones.Mark(m.zoneID, pill)
	}
	return pill
}

// Compose draws the toast over a fully rendered base view at its
// current position, clipping whatever hangs past the host edges.
func (m Model) Compose(base string) string {
	pill := m.View()
	if pill == "" || m.host == nil {
		return base
	}
	frame := m.host.Frame()
	return overlay.Place(base, pill, frame.Width, frame.Height,
		m.currentTransform().TranslateY, m.col())
}

// renderContent builds the rows between the pill borders: icon column
// then the stacked title/subtitle block, both padded so every row is
// the same width.
func (m Model) renderContent(st *styles.Styles, opacity float64) string {
	l := m.layout
	blockHeight := l.contentHeight(m.metrics)

	iconArea := 0
	if m.icon != nil {
		iconArea = l.IconWidth + m.metrics.IconSpacing
	}
	textArea := l.Size.Width - m.metrics.Margins.Horizontal() - iconArea

	iconStyle := m.theme.FadeAccent(m.accentColor(), opacity)
	filler := st.Subtitle // carries the surface background

	relIcon := l.IconRow - m.metrics.Margins.Top
	relText := l.TextRow - m.metrics.Margins.Top

	var b strings.Builder
	for r := 0; r < blockHeight; r++ {
		if r > 0 {
			b.WriteString("\n")
		}
		if m.icon != nil {
			if r == relIcon {
				b.WriteString(iconStyle.Render(render.Pad(m.icon.Glyph(), l.IconWidth)))
			} else {
				b.WriteString(filler.Render(strings.Repeat(" ", l.IconWidth)))
			}
			b.WriteString(filler.Render(strings.Repeat(" ", m.metrics.IconSpacing)))
		}
		line, style := m.textLineAt(r-relText, st)
		b.WriteString(style.Render(render.Pad(line, textArea)))
	}
	return b.String()
}

// textLineAt maps a row inside the text block to its line and style.
// Rows outside the block render as background filler.
func (m Model) textLineAt(idx int, st *styles.Styles) (string, lipgloss.Style) {
	titleCount := len(m.layout.TitleLines)
	if idx >= 0 && idx < titleCount {
		return m.layout.TitleLines[idx], st.Title
	}
	subIdx := idx - titleCount - m.metrics.TitleSpacing
	if len(m.layout.SubtitleLines) > 0 && subIdx >= 0 && subIdx < len(m.layout.SubtitleLines) {
		return m.layout.SubtitleLines[subIdx], st.Subtitle
	}
	return "", st.Subtitle
}

func (m Model) accentColor() lipgloss.Color {
	switch m.pre {
	case preset.Done:
		return m.theme.Success
	case preset.Error:
		return m.theme.Error
	case preset.Warning:
		return m.theme.Warning
	case preset.Heart:
		return m.theme.Heart
	case preset.Loading:
		return m.theme.Accent
	default:
		return m.theme.FgBase
	}
}
