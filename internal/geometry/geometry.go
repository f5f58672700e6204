// Package geometry provides value types for widget sizing and placement.
package geometry

// Size is a width/height pair in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Insets describes reserved space around a rectangle, in cells.
// For a host surface these are the rows/columns occupied by chrome
// (header bars, status bars) that a widget should avoid.
type Insets struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// Vertical returns the combined top and bottom insets.
func (i Insets) Vertical() int {
	return i.Top + i.Bottom
}

// Horizontal returns the combined left and right insets.
func (i Insets) Horizontal() int {
	return i.Left + i.Right
}

// Transform describes where and how a widget is drawn.
// TranslateY is the row of the widget's top edge (fractional while
// animating, may be negative when off-screen). Scale and Opacity are
// in [0, 1].
type Transform struct {
	TranslateY float64
	Scale      float64
	Opacity    float64
}

// Lerp linearly interpolates between two transforms.
// t is clamped to [0, 1].
func Lerp(a, b Transform, t float64) Transform {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Transform{
		TranslateY: a.TranslateY + (b.TranslateY-a.TranslateY)*t,
		Scale:      a.Scale + (b.Scale-a.Scale)*t,
		Opacity:    a.Opacity + (b.Opacity-a.Opacity)*t,
	}
}
