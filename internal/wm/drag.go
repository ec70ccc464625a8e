package wm

// HitZone says which part of a window a pointer event landed on.
type HitZone int

const (
	HitNone HitZone = iota
	HitBody
	HitTitleBar
	HitClose
	HitMinimize
	HitMaximize
)

// IsControl reports whether the zone is one of the chrome buttons.
func (z HitZone) IsControl() bool {
	return z == HitClose || z == HitMinimize || z == HitMaximize
}

// dragSession snapshots the pointer and window origin at drag start. The
// manager holds at most one, so only one drag can ever be live.
type dragSession struct {
	appID     string
	startX    int
	startY    int
	startLeft int
	startTop  int
}

// BeginDrag starts moving the window for appID. It only starts from the
// title bar, and not while another window is being dragged. The window is
// focused before the session exists. Maximized windows are focused but not
// dragged. It reports whether a session started.
func (m *Manager) BeginDrag(appID string, x, y int, zone HitZone) bool {
	if zone != HitTitleBar {
		return false
	}
	if m.drag != nil && m.drag.appID != appID {
		m.logger.Debug("drag already active", "app", m.drag.appID, "requested", appID)
		return false
	}
	w, ok := m.registry.Get(appID)
	if !ok || w.State == Minimized {
		return false
	}

	m.Focus(appID)
	if w.State == Maximized {
		return false
	}

	m.drag = &dragSession{
		appID:     appID,
		startX:    x,
		startY:    y,
		startLeft: w.Geometry.Left,
		startTop:  w.Geometry.Top,
	}
	m.logger.Debug("drag started", "app", appID, "x", x, "y", y)
	return true
}

// UpdateDrag moves the dragged window so the pointer keeps its offset from
// the start snapshot, clamped to the viewport.
func (m *Manager) UpdateDrag(x, y int) {
	if m.drag == nil {
		return
	}
	w, ok := m.registry.Get(m.drag.appID)
	if !ok {
		m.drag = nil
		return
	}
	left, top := Clamp(
		m.drag.startLeft+(x-m.drag.startX),
		m.drag.startTop+(y-m.drag.startY),
		m.viewportWidth, m.viewportHeight, m.cfg.Clamp,
	)
	w.Geometry.Left = left
	w.Geometry.Top = top
}

// EndDrag clears the drag session, if any.
func (m *Manager) EndDrag() {
	if m.drag != nil {
		m.logger.Debug("drag ended", "app", m.drag.appID)
	}
	m.drag = nil
}

// DragTarget returns the app being dragged.
func (m *Manager) DragTarget() (string, bool) {
	if m.drag == nil {
		return "", false
	}
	return m.drag.appID, true
}
