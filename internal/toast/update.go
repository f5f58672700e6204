package toast

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pveldrane/pill/internal/geometry"
	"github.com/pveldrane/pill/internal/preset"
)

// Update drives the presentation lifecycle. Route every message from
// the parent program here while the toast is live.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.stepFrame()

	case displayElapsedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.displayElapsed()

	case iconAnimateMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.startIconAnimation()

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// stepFrame advances one animation frame: the entrance/exit spring,
// the drag snap-back spring, and the icon frame sequence.
func (m Model) stepFrame() (Model, tea.Cmd) {
	m.framePending = false
	var cmds []tea.Cmd

	if m.iconAnimating {
		if a, ok := m.icon.(preset.Animatable); ok {
			if !a.Step() {
				m.iconAnimating = false
			}
		} else {
			m.iconAnimating = false
		}
	}

	switch m.state {
	case StateAnimatingIn:
		if m.anim.step() {
			m.state = StateVisible
			// Arm the one-shot display timer; the generation guard
			// keeps at most one timer effective per toast.
			cmds = append(cmds, m.displayTimerCmd())
		}

	case StateVisible:
		m.settleDrag()
		if m.deferredDismiss && m.dragSettled() {
			m.deferredDismiss = false
			var cmd tea.Cmd
			m, cmd = m.beginDismiss()
			return m, tea.Batch(append(cmds, cmd)...)
		}

	case StateAnimatingOut:
		m.settleDrag()
		if m.anim.step() {
			return m.finishRemoval(cmds)
		}
	}

	if m.needsFrames() {
		var cmd tea.Cmd
		m, cmd = m.scheduleFrame()
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// finishRemoval detaches from the host and fires the completion
// callback exactly once, then notifies the parent.
func (m Model) finishRemoval(cmds []tea.Cmd) (Model, tea.Cmd) {
	m.state = StateRemoved
	m.host = nil
	m.drag = nil
	m.dragOffset = 0
	m.dragVel = 0
	if !m.completionFired {
		m.completionFired = true
		if m.completion != nil {
			m.completion()
		}
	}
	return m, tea.Batch(append(cmds, dismissedCmd())...)
}

// displayElapsed handles the dismiss timer. If a drag is in flight the
// dismissal is deferred: the flag is set on the session and honored
// when the gesture settles, so the timer logically wins but its effect
// waits for the gesture's own completion.
func (m Model) displayElapsed() (Model, tea.Cmd) {
	switch m.state {
	case StateDragging:
		if m.drag != nil {
			m.drag.pendingDismiss = true
		}
		return m, nil
	case StateVisible:
		return m.beginDismiss()
	default:
		return m, nil
	}
}

func (m Model) startIconAnimation() (Model, tea.Cmd) {
	if m.state != StateAnimatingIn && m.state != StateVisible && m.state != StateDragging {
		return m, nil
	}
	a, ok := m.icon.(preset.Animatable)
	if !ok {
		return m, nil
	}
	a.Animate()
	m.iconAnimating = true
	return m.scheduleFrame()
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.dragEnabled {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.state != StateVisible {
			return m, nil
		}
		if !m.hitTest(msg) {
			return m, nil
		}
		m.drag = &dragSession{startY: msg.Y}
		m.state = StateDragging
		return m, nil

	case tea.MouseActionMotion:
		if m.state != StateDragging || m.drag == nil {
			return m, nil
		}
		m.drag.raw = float64(msg.Y - m.drag.startY)
		m.dragOffset = dampedOffset(m.drag.raw, m.side)
		m.dragVel = 0
		return m, nil

	case tea.MouseActionRelease:
		if m.state != StateDragging || m.drag == nil {
			return m, nil
		}
		raw, pending := m.drag.raw, m.drag.pendingDismiss
		m.drag = nil
		if flungToDismiss(raw, m.side) {
			return m.beginDismiss()
		}
		// Snap back, then honor a dismissal deferred mid-drag.
		m.state = StateVisible
		m.deferredDismiss = pending
		return m.scheduleFrame()
	}
	return m, nil
}

// settleDrag springs the released drag offset back toward rest.
func (m *Model) settleDrag() {
	if m.drag != nil {
		return
	}
	if m.dragOffset == 0 && m.dragVel == 0 {
		return
	}
	m.dragOffset, m.dragVel = m.snap.Update(m.dragOffset, m.dragVel, 0)
	if math.Abs(m.dragOffset) < 0.01 && math.Abs(m.dragVel) < 0.01 {
		m.dragOffset = 0
		m.dragVel = 0
	}
}

func (m Model) dragSettled() bool {
	return m.drag == nil && m.dragOffset == 0 && m.dragVel == 0
}

func (m Model) needsFrames() bool {
	switch {
	case m.state == StateAnimatingIn || m.state == StateAnimatingOut:
		return true
	case m.iconAnimating:
		return true
	case m.state == StateVisible && !m.dragSettled():
		return true
	}
	return false
}

// scheduleFrame starts a frame chain unless one is already running.
func (m Model) scheduleFrame() (Model, tea.Cmd) {
	if m.framePending {
		return m, nil
	}
	m.framePending = true
	return m, m.frameCmd()
}

// currentTransform recomputes the pose from live host geometry, never
// from a cached frame, so resizes between prepare and visible phases
// are tracked.
func (m Model) currentTransform() geometry.Transform {
	if m.host == nil {
		return geometry.Transform{Scale: 1, Opacity: 1}
	}
	prepared := preparedTransform(m.side, m.host, m.layout.Size.Height)
	visible := visibleTransform(m.side, m.host, m.layout.Size.Height, m.userOffset)
	tr := geometry.Lerp(prepared, visible, m.anim.pos)
	tr.TranslateY += m.dragOffset
	return tr
}

// hitTest reports whether a mouse event lands on the pill.
func (m Model) hitTest(msg tea.MouseMsg) bool {
	if m.zones != nil {
		return m.zones.Get(m.zoneID).InBounds(msg)
	}
	row := int(math.Round(m.currentTransform().TranslateY))
	col := m.col()
	return msg.X >= col && msg.X < col+m.layout.Size.Width &&
		msg.Y >= row && msg.Y < row+m.layout.Size.Height
}

// col centers the pill horizontally in the host.
func (m Model) col() int {
	if m.host == nil {
		return 0
	}
	return (m.host.Frame().Width - m.layout.Size.Width) / 2
}
