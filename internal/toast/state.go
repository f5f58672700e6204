package toast

// State is the presentation lifecycle phase of a toast.
//
// Transitions:
//
//	Idle → Preparing → AnimatingIn → Visible → AnimatingOut → Removed
//
// Visible and Dragging alternate while the user holds the toast; a
// dismiss that fires mid-drag is deferred and honored after the
// gesture settles.
type State int

const (
	StateIdle State = iota
	StatePreparing
	StateAnimatingIn
	StateVisible
	StateDragging
	StateAnimatingOut
	StateRemoved
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePreparing:
		return "preparing"
	case StateAnimatingIn:
		return "animating-in"
	case StateVisible:
		return "visible"
	case StateDragging:
		return "dragging"
	case StateAnimatingOut:
		return "animating-out"
	case StateRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Side anchors the toast on the host surface. It must be set before
// Present and not changed while the toast is on screen.
type Side int

const (
	SideTop Side = iota
	SideBottom
	SideCenter
)

// String returns the side name for debugging.
func (s Side) String() string {
	switch s {
	case SideBottom:
		return "bottom"
	case SideCenter:
		return "center"
	default:
		return "top"
	}
}
