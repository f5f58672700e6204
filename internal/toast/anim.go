package toast

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// frameRate drives animation stepping.
	frameRate = 60

	// defaultAnimDuration is the presentation/dismissal motion length.
	defaultAnimDuration = 600 * time.Millisecond

	// snapBackDuration is the quicker spring pulling a released drag
	// offset back to rest.
	snapBackDuration = 300 * time.Millisecond
)

// animator springs a scalar between 0 (prepared) and 1 (visible).
// Critically damped, so the motion eases out without overshoot and can
// be retargeted mid-flight when a gesture interrupts it.
type animator struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newAnimator(d time.Duration) animator {
	if d <= 0 {
		d = defaultAnimDuration
	}
	// One natural period per requested duration.
	freq := 2 * math.Pi / d.Seconds()
	return animator{
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), freq, 1.0),
	}
}

func (a *animator) retarget(t float64) {
	a.target = t
}

// step advances one frame and reports whether the spring has settled.
func (a *animator) step() bool {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < 0.001 && math.Abs(a.vel) < 0.01 {
		a.pos = a.target
		a.vel = 0
		return true
	}
	return false
}

func (a *animator) settled() bool {
	return a.pos == a.target && a.vel == 0
}
