package toast

import "github.com/pveldrane/pill/internal/geometry"

// Host supplies the surface a toast is presented on. Geometry is
// queried live at every animation frame, never cached, so the toast
// tracks terminal resizes and chrome changes between prepare and
// visible phases.
type Host interface {
	// Frame returns the host surface size in cells.
	Frame() geometry.Size

	// SafeInsets returns rows/columns occupied by host chrome
	// (header bars, status bars) the toast should clear.
	SafeInsets() geometry.Insets
}

const (
	// offscreenPad pushes the prepared transform fully past the edge.
	offscreenPad = 3.0

	// insetFloor is the minimum distance from the host edge when no
	// chrome reserves more.
	insetFloor = 2.0

	// visibleAdjust nudges the resting position back toward the edge.
	visibleAdjust = 1.0

	// centerPreparedScale is the starting scale for center toasts.
	centerPreparedScale = 0.9
)

// preparedTransform is the fully off-screen (or, for center, fully
// transparent) starting pose, computed from live host geometry. The
// user offset only shifts the resting pose, never the starting one.
func preparedTransform(side Side, host Host, height int) geometry.Transform {
	frame := host.Frame()
	insets := host.SafeInsets()

	switch side {
	case SideBottom:
		return geometry.Transform{
			TranslateY: float64(frame.Height+insets.Bottom) + offscreenPad,
			Scale:      1,
			Opacity:    1,
		}
	case SideCenter:
		return geometry.Transform{
			TranslateY: centerRow(frame, height),
			Scale:      centerPreparedScale,
			Opacity:    0,
		}
	default: // SideTop
		return geometry.Transform{
			TranslateY: -(float64(insets.Top+height) + offscreenPad),
			Scale:      1,
			Opacity:    1,
		}
	}
}

// visibleTransform is the resting on-screen pose, computed from live
// host geometry.
func visibleTransform(side Side, host Host, height int, userOffset float64) geometry.Transform {
	frame := host.Frame()
	insets := host.SafeInsets()

	switch side {
	case SideBottom:
		row := float64(frame.Height) - max(float64(insets.Bottom), insetFloor) -
			float64(height) - visibleAdjust - userOffset
		return geometry.Transform{TranslateY: row, Scale: 1, Opacity: 1}
	case SideCenter:
		return geometry.Transform{
			TranslateY: centerRow(frame, height),
			Scale:      1,
			Opacity:    1,
		}
	default: // SideTop
		row := max(float64(insets.Top), insetFloor) - visibleAdjust + userOffset
		return geometry.Transform{TranslateY: row, Scale: 1, Opacity: 1}
	}
}

func centerRow(frame geometry.Size, height int) float64 {
	return float64(frame.Height-height) / 2
}
