package toast

import "github.com/pveldrane/pill/internal/geometry"

// Metrics is the immutable layout parameter snapshot selected at
// construction. Margins fold the pill border into the outer cell ring:
// one row top/bottom (border), two columns left/right (border plus one
// cell of padding).
type Metrics struct {
	// Margins around the content block, in cells.
	Margins geometry.Insets

	// IconSpacing is the gap between icon and text, in columns.
	IconSpacing int

	// TitleSpacing is the gap between title and subtitle, in rows.
	TitleSpacing int

	// TitleAreaFactor weights how much of the remaining width the
	// text block may use.
	TitleAreaFactor float64

	// MaxContentWidth is the fixed total widget width in columns.
	// Fitted sizes always use exactly this width.
	MaxContentWidth int
}

// PresetMetrics returns the layout snapshot for icon-preset toasts.
func PresetMetrics() Metrics {
	return Metrics{
		Margins:         geometry.Insets{Top: 1, Left: 2, Bottom: 1, Right: 2},
		IconSpacing:     1,
		TitleSpacing:    0,
		TitleAreaFactor: 1.0,
		MaxContentWidth: 40,
	}
}

// MessageMetrics returns the layout snapshot for plain message toasts:
// wider, with the text area slightly inset since no icon balances it.
func MessageMetrics() Metrics {
	return Metrics{
		Margins:         geometry.Insets{Top: 1, Left: 2, Bottom: 1, Right: 2},
		IconSpacing:     1,
		TitleSpacing:    0,
		TitleAreaFactor: 0.92,
		MaxContentWidth: 48,
	}
}
