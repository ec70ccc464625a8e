package wm

import "time"

// Window is the record kept for one open application instance.
type Window struct {
	AppID string
	ID    string // per-instance UUID

	State    State
	Geometry Rect
	// SavedGeometry holds the pre-maximize geometry. It is set exactly while
	// the window is maximized, or minimized on its way back to maximized.
	SavedGeometry *Rect
	ZIndex        int

	Content Content
	// Visible is the render visibility. Minimize clears it only once its
	// animation completes; the logical state changes immediately.
	Visible bool

	CreatedAt time.Time

	restoreTo State
}

// Title returns the content title, falling back to the app ID.
func (w *Window) Title() string {
	if w.Content != nil {
		if t := w.Content.Title(); t != "" {
			return t
		}
	}
	return w.AppID
}

// IsMinimized reports whether the window is in the dock.
func (w *Window) IsMinimized() bool { return w.State == Minimized }

// IsMaximized reports whether the window is maximized.
func (w *Window) IsMaximized() bool { return w.State == Maximized }

// RestoresTo returns the state a minimized window returns to. For other
// states it returns the current state.
func (w *Window) RestoresTo() State {
	if w.State == Minimized {
		return w.restoreTo
	}
	return w.State
}
