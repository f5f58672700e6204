// Package toast implements a transient, auto-dismissing pill toast for
// bubbletea programs. A toast presents from the top, bottom, or center
// of its host surface with a spring animation, stays for a display
// duration, and can be flicked away by a mouse drag when drag-dismiss
// is enabled.
package toast

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	zone "github.com/lrstanley/bubblezone"

	"github.com/pveldrane/pill/internal/haptic"
	"github.com/pveldrane/pill/internal/preset"
	"github.com/pveldrane/pill/internal/styles"
)

// DefaultDisplayDuration is how long a toast rests on screen before
// dismissing itself.
const DefaultDisplayDuration = 1500 * time.Millisecond

// nextID disambiguates mouse hit zones between live toasts.
var nextID int

// Model is a toast widget. Construct with New or NewMessage, configure
// before presenting, then drive it through Update like any bubbletea
// child component.
//
// Present must not be called again while the toast is on screen; wait
// for DismissedMsg first. Side and offset are read-only once visible.
type Model struct {
	content Content
	pre     preset.Preset
	icon    preset.Icon
	metrics Metrics
	theme   *styles.Theme

	side        Side
	duration    time.Duration
	animDur     time.Duration
	userOffset  float64
	dragEnabled bool

	host        Host
	resolveHost func() Host
	feedback    haptic.Feedback
	completion  func()
	zones       *zone.Manager
	zoneID      string

	state           State
	gen             int // invalidates stale timers and frames
	anim            animator
	snap            harmonica.Spring
	layout          Layout
	drag            *dragSession
	dragOffset      float64
	dragVel         float64
	deferredDismiss bool
	completionFired bool
	iconAnimating   bool
	framePending    bool // one frame chain at a time
}

// DismissedMsg is emitted exactly once when a toast finishes its exit
// animation and detaches from the host. Parents drop the widget on
// receipt.
type DismissedMsg struct{}

// internal scheduling messages, all generation-guarded
type frameMsg struct{ gen int }
type displayElapsedMsg struct{ gen int }
type iconAnimateMsg struct{ gen int }

// New creates an icon-preset toast.
func New(title, subtitle string, p preset.Preset) Model {
	nextID++
	return Model{
		content:     Content{Title: title, Subtitle: subtitle},
		pre:         p,
		icon:        preset.Resolve(p),
		metrics:     PresetMetrics(),
		theme:       styles.T(),
		side:        SideTop,
		duration:    DefaultDisplayDuration,
		animDur:     defaultAnimDuration,
		dragEnabled: true,
		zoneID:      fmt.Sprintf("toast-%d", nextID),
		snap: harmonica.NewSpring(
			harmonica.FPS(frameRate), 2*math.Pi/snapBackDuration.Seconds(), 1.0),
	}
}

// NewMessage creates a plain message toast without an icon, using the
// wider message layout.
func NewMessage(title, subtitle string) Model {
	m := New(title, subtitle, preset.None)
	m.metrics = MessageMetrics()
	return m
}

// SetSide anchors the toast. Must be called before Present.
func (m *Model) SetSide(s Side) { m.side = s }

// Side returns the configured anchor.
func (m Model) Side() Side { return m.side }

// SetDuration sets the on-screen display duration.
func (m *Model) SetDuration(d time.Duration) {
	if d > 0 {
		m.duration = d
	}
}

// SetOffset adds extra rows between the toast and its anchor edge.
func (m *Model) SetOffset(rows float64) { m.userOffset = rows }

// SetDragDismiss toggles drag-to-dismiss. Takes effect immediately,
// even mid-lifecycle: disabling it mid-drag abandons the gesture and
// snaps the toast back. If the display timer already fired during the
// abandoned gesture the returned command carries the deferred
// dismissal; the caller must schedule it.
func (m *Model) SetDragDismiss(enabled bool) tea.Cmd {
	m.dragEnabled = enabled
	if enabled || m.drag == nil {
		return nil
	}
	m.deferredDismiss = m.drag.pendingDismiss
	m.drag = nil
	m.dragOffset = 0
	m.dragVel = 0
	if m.state == StateDragging {
		m.state = StateVisible
	}
	if m.deferredDismiss && !m.framePending {
		m.framePending = true
		return m.frameCmd()
	}
	return nil
}

// SetMaxWidth overrides the fixed widget width in columns. Values below
// 20 are ignored. Must be called before Present.
func (m *Model) SetMaxWidth(cols int) {
	if cols >= 20 {
		m.metrics.MaxContentWidth = cols
	}
}

// SetHost assigns the host surface explicitly.
func (m *Model) SetHost(h Host) { m.host = h }

// SetHostResolver installs the fallback used when no host has been
// assigned by Present time.
func (m *Model) SetHostResolver(f func() Host) { m.resolveHost = f }

// SetFeedback assigns the presentation feedback collaborator.
func (m *Model) SetFeedback(f haptic.Feedback) { m.feedback = f }

// SetZoneManager enables bubblezone-based mouse hit testing. Without
// one the toast falls back to its own computed bounds.
func (m *Model) SetZoneManager(z *zone.Manager) { m.zones = z }

// State returns the current lifecycle phase.
func (m Model) State() State { return m.state }

// Layout returns the result of the last sizing pass.
func (m Model) Layout() Layout { return m.layout }

// Present shows the toast with the default display duration.
// Returns the updated model and the command driving the entrance.
//
// If no host is assigned and the resolver yields none, presenting is a
// silent no-op: the model stays Idle and no command is returned.
func (m Model) Present(kind haptic.Kind, completion func()) (Model, tea.Cmd) {
	return m.PresentFor(m.duration, kind, completion)
}

// PresentFor is Present with an explicit display duration.
func (m Model) PresentFor(d time.Duration, kind haptic.Kind, completion func()) (Model, tea.Cmd) {
	if m.state != StateIdle {
		return m, nil
	}

	host := m.host
	if host == nil && m.resolveHost != nil {
		host = m.resolveHost()
	}
	if host == nil {
		return m, nil
	}

	m.host = host
	if d > 0 {
		m.duration = d
	}
	m.completion = completion
	m.state = StatePreparing
	m.layout = computeLayout(m.content, m.icon, m.metrics)
	m.anim = newAnimator(m.animDur)
	m.anim.retarget(1)

	// The widget is visible (not hidden) before the motion starts.
	m.state = StateAnimatingIn
	if m.feedback != nil {
		_ = m.feedback.Trigger(kind)
	}

	m.framePending = true
	cmds := []tea.Cmd{m.frameCmd()}
	if _, ok := m.icon.(preset.Animatable); ok {
		// Overlap the icon animation with the entrance motion.
		cmds = append(cmds, m.iconAnimateCmd(m.animDur/3))
	}
	return m, tea.Batch(cmds...)
}

// Dismiss starts the exit animation. Safe to call at any time from any
// state; dismissing a toast that is already leaving or gone is a
// no-op, and the completion callback still fires exactly once.
func (m Model) Dismiss() (Model, tea.Cmd) {
	switch m.state {
	case StateAnimatingIn, StateVisible, StateDragging:
		return m.beginDismiss()
	default:
		return m, nil
	}
}

// beginDismiss transitions to AnimatingOut and invalidates any armed
// display timer.
func (m Model) beginDismiss() (Model, tea.Cmd) {
	m.gen++
	m.state = StateAnimatingOut
	m.drag = nil
	m.deferredDismiss = false
	m.anim.retarget(0)
	m.framePending = true
	return m, m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(time.Second/frameRate, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

func (m Model) displayTimerCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.duration, func(time.Time) tea.Msg {
		return displayElapsedMsg{gen: gen}
	})
}

func (m Model) iconAnimateCmd(after time.Duration) tea.Cmd {
	gen := m.gen
	return tea.Tick(after, func(time.Time) tea.Msg {
		return iconAnimateMsg{gen: gen}
	})
}

func dismissedCmd() tea.Cmd {
	return func() tea.Msg { return DismissedMsg{} }
}
