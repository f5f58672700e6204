// Package overlay composites a widget on top of a rendered base view.
package overlay

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws widget over base with the widget's top-left corner at
// (row, col). The base is treated as a width×height cell grid; widget
// lines that fall outside it are clipped, so a partially off-screen
// widget (mid slide-in, or dragged past the edge) renders its visible
// remainder only. Both strings may contain ANSI styling.
//
// row is fractional because animation positions are; it is rounded to
// the nearest cell.
func Place(base, widget string, width, height int, row float64, col int) string {
	if widget == "" || width <= 0 || height <= 0 {
		return base
	}

	baseLines := strings.Split(base, "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	baseLines = baseLines[:height]

	top := int(math.Round(row))
	widgetLines := strings.Split(widget, "\n")

	for i, wline := range widgetLines {
		y := top + i
		if y < 0 || y >= height {
			continue // clipped
		}

		wWidth := ansi.StringWidth(wline)
		if wWidth == 0 {
			continue
		}

		left := col
		if left < 0 {
			// Clip the overhanging left portion.
			wline = ansi.Cut(wline, -left, wWidth)
			wWidth += left
			left = 0
			if wWidth <= 0 {
				continue
			}
		}
		if left >= width {
			continue
		}
		if left+wWidth > width {
			wline = ansi.Cut(wline, 0, width-left)
			wWidth = width - left
		}

		baseLine := baseLines[y]
		baseWidth := ansi.StringWidth(baseLine)
		if baseWidth < width {
			baseLine += strings.Repeat(" ", width-baseWidth)
		}

		result := ansi.Cut(baseLine, 0, left) + wline
		if left+wWidth < width {
			result += ansi.Cut(baseLine, left+wWidth, width)
		}
		baseLines[y] = result
	}

	return strings.Join(baseLines, "\n")
}
