package wm

// Content is the body an App Host renders into a window.
type Content interface {
	Title() string
}

// AppHost supplies window content and receives lifecycle callbacks.
type AppHost interface {
	// DefaultSize returns the initial size for appID, with a fallback for
	// unknown IDs.
	DefaultSize(appID string) Size
	// RenderContent builds the window body. Called once, at creation.
	RenderContent(appID string) Content
	// OnMount runs once after a new window is registered and wired.
	OnMount(appID string, w *Window)
}

// FocusObserver is an optional AppHost extension. OnFocus runs after an
// existing window is brought to the front by focus, restore or a drag.
// New windows get OnMount instead.
type FocusObserver interface {
	OnFocus(appID string, w *Window)
}
