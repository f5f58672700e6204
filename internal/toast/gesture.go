package toast

import "math"

const (
	// maxDragOffset clamps the damped drag displacement, in rows.
	maxDragOffset = 6.0

	// flingThreshold is the raw translation, in rows toward the
	// dismiss direction, beyond which a release commits to dismissal.
	flingThreshold = 2.0
)

// dragSession tracks one press-to-release gesture. It is created on
// press inside the pill and destroyed on release or removal.
type dragSession struct {
	startY int
	raw    float64 // latest raw vertical translation, + is down

	// pendingDismiss is set when the display timer fires mid-drag;
	// the release handler honors it after the gesture settles.
	pendingDismiss bool
}

// dampedOffset converts a raw vertical translation into the rubber-band
// displacement drawn on top of the visible transform. The magnitude is
// the square root of the raw magnitude, so small drags track nearly
// 1:1 and large drags flatten, clamped to maxDragOffset.
//
// Direction is constrained to the side's dismiss direction: a top
// toast only follows upward drags, a bottom toast only downward ones.
// Center toasts follow both directions symmetrically.
func dampedOffset(raw float64, side Side) float64 {
	switch side {
	case SideTop:
		if raw >= 0 {
			return 0
		}
	case SideBottom:
		if raw <= 0 {
			return 0
		}
	}

	damped := math.Sqrt(math.Abs(raw))
	if damped > maxDragOffset {
		damped = maxDragOffset
	}
	if raw < 0 {
		return -damped
	}
	return damped
}

// flungToDismiss decides commit-vs-snap-back at release. The decision
// deliberately compares the raw translation, not the damped one the
// live feedback uses: the rubber band is visual, the release decision
// is about how far the finger actually traveled.
func flungToDismiss(raw float64, side Side) bool {
	switch side {
	case SideTop:
		return raw < -flingThreshold
	case SideBottom:
		return raw > flingThreshold
	default: // SideCenter: either direction counts
		return math.Abs(raw) > flingThreshold
	}
}
