// Package keymap defines key bindings and action dispatch for the demo.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit Action = "quit"

	// Toast presentation
	ActionToastDone    Action = "toast_done"
	ActionToastError   Action = "toast_error"
	ActionToastWarning Action = "toast_warning"
	ActionToastHeart   Action = "toast_heart"
	ActionToastLoading Action = "toast_loading"
	ActionToastMessage Action = "toast_message"

	// Toast control
	ActionCycleSide  Action = "cycle_side"
	ActionToggleDrag Action = "toggle_drag"
	ActionDismiss    Action = "dismiss"
)

// Binding describes the keys attached to one action.
type Binding struct {
	Keys        []string
	Description string
	Action      Action
}

// Default returns the built-in key bindings.
func Default() []Binding {
	return []Binding{
		{[]string{"q", "ctrl+c"}, "Quit", ActionQuit},

		{[]string{"d"}, "Done toast", ActionToastDone},
		{[]string{"e"}, "Error toast", ActionToastError},
		{[]string{"w"}, "Warning toast", ActionToastWarning},
		{[]string{"f"}, "Heart toast", ActionToastHeart},
		{[]string{"l"}, "Loading toast", ActionToastLoading},
		{[]string{"m"}, "Message toast", ActionToastMessage},

		{[]string{"s"}, "Cycle side", ActionCycleSide},
		{[]string{"g"}, "Toggle drag dismiss", ActionToggleDrag},
		{[]string{"x", "esc"}, "Dismiss toast", ActionDismiss},
	}
}
