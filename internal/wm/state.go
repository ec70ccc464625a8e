package wm

// State is a window's lifecycle state.
type State int

const (
	// Normal windows are visible at their own geometry.
	Normal State = iota
	// Minimized windows live in the dock; they stay registered.
	Minimized
	// Maximized windows fill the viewport between menu bar and dock.
	Maximized
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Minimized:
		return "minimized"
	case Maximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// Event names a lifecycle transition.
type Event int

const (
	EventMinimize Event = iota
	EventRestore
	EventMaximize
	EventUnmaximize
	EventFocus
	EventClose
)

func (e Event) String() string {
	switch e {
	case EventMinimize:
		return "minimize"
	case EventRestore:
		return "restore"
	case EventMaximize:
		return "maximize"
	case EventUnmaximize:
		return "unmaximize"
	case EventFocus:
		return "focus"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Allows reports whether ev may fire from s. Disallowed events are no-ops.
func (s State) Allows(ev Event) bool {
	switch ev {
	case EventMinimize, EventFocus:
		return s == Normal || s == Maximized
	case EventRestore:
		return s == Minimized
	case EventMaximize:
		return s == Normal
	case EventUnmaximize:
		return s == Maximized
	case EventClose:
		return true
	default:
		return false
	}
}
