package toast

import (
	"github.com/pveldrane/pill/internal/geometry"
	"github.com/pveldrane/pill/internal/preset"
	"github.com/pveldrane/pill/internal/render"
)

// Content is the text and optional icon a toast displays.
type Content struct {
	Title    string
	Subtitle string // optional; empty contributes no height
}

// Layout is the result of a sizing and positioning pass. All positions
// are relative to the widget's top-left corner, in cells.
type Layout struct {
	// Size is the full fitted widget size, border included. Width is
	// always the metrics' fixed maximum width.
	Size geometry.Size

	// CornerRadius is half the fitted height, recomputed every pass.
	CornerRadius float64

	// Icon placement; IconRow is -1 when there is no icon.
	IconRow, IconCol int
	IconWidth        int

	// Text block placement and wrapped lines.
	TextRow, TextCol int
	TextWidth        int
	TitleLines       []string
	SubtitleLines    []string
}

// computeLayout runs the sizing pass followed by the positioning pass.
//
// Sizing: height = top margin + max(icon height, stacked text height)
// + bottom margin; width is the fixed maximum. Text wraps to the width
// remaining after the icon and inter-element spacing when an icon is
// present, scaled by the title area factor.
//
// Positioning: the icon sits left-aligned and vertically centered in
// the content block; title and subtitle stack left-aligned to its
// right, centered as a block against the taller of icon and text.
func computeLayout(c Content, icon preset.Icon, m Metrics) Layout {
	textWidth := m.MaxContentWidth - m.Margins.Horizontal()

	iconWidth := 0
	iconHeight := 0
	if icon != nil {
		iconWidth = icon.Width()
		iconHeight = 1
		textWidth -= iconWidth + m.IconSpacing
	}
	textWidth = int(float64(textWidth) * m.TitleAreaFactor)
	if textWidth < 1 {
		textWidth = 1
	}

	titleLines := render.Wrap(c.Title, textWidth)
	var subtitleLines []string
	if c.Subtitle != "" {
		subtitleLines = render.Wrap(c.Subtitle, textWidth)
	}

	textHeight := len(titleLines) + len(subtitleLines)
	if len(subtitleLines) > 0 {
		textHeight += m.TitleSpacing
	}

	blockHeight := max(iconHeight, textHeight)
	if blockHeight == 0 {
		blockHeight = 1
	}
	height := m.Margins.Top + blockHeight + m.Margins.Bottom

	l := Layout{
		Size:          geometry.Size{Width: m.MaxContentWidth, Height: height},
		CornerRadius:  float64(height) / 2,
		IconRow:       -1,
		IconWidth:     iconWidth,
		TextWidth:     textWidth,
		TitleLines:    titleLines,
		SubtitleLines: subtitleLines,
	}

	l.TextRow = m.Margins.Top + (blockHeight-textHeight)/2
	l.TextCol = m.Margins.Left
	if icon != nil {
		l.IconRow = m.Margins.Top + (blockHeight-iconHeight)/2
		l.IconCol = m.Margins.Left
		l.TextCol += iconWidth + m.IconSpacing
	}

	return l
}

// contentHeight is the number of rows between the margins.
func (l Layout) contentHeight(m Metrics) int {
	return l.Size.Height - m.Margins.Vertical()
}
