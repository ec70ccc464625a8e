package wm

import "slices"

// Registry maps an application ID to its single live window.
// It is the only authority on whether a window exists.
type Registry struct {
	byApp map[string]*Window
	order []*Window // open order, used for stable iteration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byApp: make(map[string]*Window)}
}

// Get returns the live window for appID.
func (r *Registry) Get(appID string) (*Window, bool) {
	w, ok := r.byApp[appID]
	return w, ok
}

// Insert adds w. It reports false, leaving the registry untouched, when a
// window for the same app already exists.
func (r *Registry) Insert(w *Window) bool {
	if _, exists := r.byApp[w.AppID]; exists {
		return false
	}
	r.byApp[w.AppID] = w
	r.order = append(r.order, w)
	return true
}

// Remove deletes the window for appID and returns it.
func (r *Registry) Remove(appID string) (*Window, bool) {
	w, ok := r.byApp[appID]
	if !ok {
		return nil, false
	}
	delete(r.byApp, appID)
	if i := slices.Index(r.order, w); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return w, true
}

// Len returns the number of live windows.
func (r *Registry) Len() int { return len(r.order) }

// All returns the live windows in the order they were opened.
func (r *Registry) All() []*Window {
	return slices.Clone(r.order)
}
