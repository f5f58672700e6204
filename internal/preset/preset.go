// Package preset resolves semantic toast presets to icon views.
//
// Icons are either static glyphs or animatable frame sequences. The
// Animatable capability is queried once by the widget at present time;
// icons that do not implement it are rendered as-is.
package preset

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/pveldrane/pill/internal/render"
)

// Preset identifies a semantic toast kind.
type Preset int

const (
	// None renders a plain message toast without an icon.
	None Preset = iota
	Done
	Error
	Warning
	Heart
	Loading
)

// String returns the preset name for debugging.
func (p Preset) String() string {
	switch p {
	case Done:
		return "done"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Heart:
		return "heart"
	case Loading:
		return "loading"
	default:
		return "none"
	}
}

// Icon is a resolved icon view. Glyph returns the current frame.
type Icon interface {
	Glyph() string
	Width() int
}

// Animatable marks icons that play an animation once presented.
// Animate starts the sequence; Step advances one frame and reports
// whether further frames are coming.
type Animatable interface {
	Icon
	Animate()
	Step() bool
}

// Style selects the glyph set.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleASCII   Style = "ascii"
)

// glyphSet holds the static glyphs and animation frames per style.
type glyphSet struct {
	err     string
	warning string
	heart   string
	// done animates a short draw-on sequence ending on the final glyph
	doneFrames []string
	// loading cycles forever
	loadingFrames []string
}

var (
	nerdGlyphs = glyphSet{
		err:           "", // nf-fa-times
		warning:       "", // nf-fa-warning
		heart:         "", // nf-fa-heart
		doneFrames:    []string{"", "", ""},
		loadingFrames: spinner.MiniDot.Frames,
	}

	unicodeGlyphs = glyphSet{
		err:           "✕",
		warning:       "⚠",
		heart:         "♥",
		doneFrames:    []string{"·", "∙", "✓"},
		loadingFrames: spinner.MiniDot.Frames,
	}

	asciiGlyphs = glyphSet{
		err:           "x",
		warning:       "!",
		heart:         "<3",
		doneFrames:    []string{".", "o", "v"},
		loadingFrames: spinner.Line.Frames,
	}

	current = unicodeGlyphs
)

// Init selects the glyph style. Call once at startup.
func Init(style Style) {
	switch style {
	case StyleNerd:
		current = nerdGlyphs
	case StyleASCII:
		current = asciiGlyphs
	default:
		current = unicodeGlyphs
	}
}

// Resolve returns the icon view for a preset, or nil for None.
func Resolve(p Preset) Icon {
	switch p {
	case Done:
		return newAnimatedIcon(current.doneFrames, false)
	case Error:
		return staticIcon{glyph: current.err}
	case Warning:
		return staticIcon{glyph: current.warning}
	case Heart:
		return staticIcon{glyph: current.heart}
	case Loading:
		return newAnimatedIcon(current.loadingFrames, true)
	default:
		return nil
	}
}

type staticIcon struct {
	glyph string
}

func (s staticIcon) Glyph() string { return s.glyph }

func (s staticIcon) Width() int { return render.Width(s.glyph) }

// stepDivider slows frame advancement relative to the widget's
// animation tick rate (~60/s) to roughly 10 icon frames per second.
const stepDivider = 6

type animatedIcon struct {
	frames  []string
	idx     int
	ticks   int
	running bool
	loop    bool
}

func newAnimatedIcon(frames []string, loop bool) *animatedIcon {
	return &animatedIcon{frames: frames, loop: loop}
}

func (a *animatedIcon) Glyph() string {
	return a.frames[a.idx]
}

func (a *animatedIcon) Width() int {
	w := 0
	for _, f := range a.frames {
		if fw := render.Width(f); fw > w {
			w = fw
		}
	}
	return w
}

func (a *animatedIcon) Animate() {
	a.running = true
	a.idx = 0
	a.ticks = 0
}

func (a *animatedIcon) Step() bool {
	if !a.running {
		return false
	}
	a.ticks++
	if a.ticks%stepDivider != 0 {
		return true
	}
	if a.idx < len(a.frames)-1 {
		a.idx++
		return true
	}
	if a.loop {
		a.idx = 0
		return true
	}
	a.running = false
	return false
}
