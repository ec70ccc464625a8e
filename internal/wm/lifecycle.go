package wm

// Minimize sends the window to the dock. The logical state changes now; the
// window stays visible until the minimize animation completes.
func (m *Manager) Minimize(appID string) {
	w, ok := m.registry.Get(appID)
	if !ok || !w.State.Allows(EventMinimize) {
		m.ignored(EventMinimize, appID, w)
		return
	}
	if m.drag != nil && m.drag.appID == appID {
		m.drag = nil
	}

	w.restoreTo = w.State
	w.State = Minimized
	m.logger.Info("window minimized", "app", appID, "restores_to", w.restoreTo)

	m.animator.Animate(Transition{
		AppID:    appID,
		Kind:     TransitionMinimize,
		From:     Frame{Rect: w.Geometry, Opacity: 1},
		To:       Frame{Rect: m.dockRect(appID, w.Geometry), Opacity: 0},
		Duration: m.cfg.Durations.Minimize,
	}, func() {
		if w.State == Minimized {
			w.Visible = false
		}
	})
}

// Restore brings a minimized window back to the state it was minimized from
// and puts it in front.
func (m *Manager) Restore(appID string) {
	w, ok := m.registry.Get(appID)
	if !ok || !w.State.Allows(EventRestore) {
		m.ignored(EventRestore, appID, w)
		return
	}

	w.State = w.restoreTo
	w.restoreTo = Normal
	w.Visible = true
	m.raise(w)
	m.logger.Info("window restored", "app", appID, "state", w.State, "z", w.ZIndex)

	m.animator.Animate(Transition{
		AppID:    appID,
		Kind:     TransitionRestore,
		From:     Frame{Rect: m.dockRect(appID, w.Geometry), Opacity: 0},
		To:       Frame{Rect: w.Geometry, Opacity: 1},
		Duration: m.cfg.Durations.Restore,
	}, nil)
}

// Maximize saves the current geometry and fills the viewport between the
// menu bar and the dock reserve.
func (m *Manager) Maximize(appID string) {
	w, ok := m.registry.Get(appID)
	if !ok || !w.State.Allows(EventMaximize) {
		m.ignored(EventMaximize, appID, w)
		return
	}
	if m.drag != nil && m.drag.appID == appID {
		m.drag = nil
	}

	saved := w.Geometry
	w.SavedGeometry = &saved
	w.State = Maximized
	w.Geometry = m.maximizedRect()
	m.logger.Info("window maximized", "app", appID)

	m.animator.Animate(Transition{
		AppID:    appID,
		Kind:     TransitionMaximize,
		From:     Frame{Rect: saved, Opacity: 1},
		To:       Frame{Rect: w.Geometry, Opacity: 1},
		Duration: m.cfg.Durations.Maximize,
	}, nil)
}

// Unmaximize puts back the geometry saved by Maximize.
func (m *Manager) Unmaximize(appID string) {
	w, ok := m.registry.Get(appID)
	if !ok || !w.State.Allows(EventUnmaximize) {
		m.ignored(EventUnmaximize, appID, w)
		return
	}

	from := w.Geometry
	if w.SavedGeometry != nil {
		w.Geometry = *w.SavedGeometry
	}
	w.SavedGeometry = nil
	w.State = Normal
	m.logger.Info("window unmaximized", "app", appID)

	m.animator.Animate(Transition{
		AppID:    appID,
		Kind:     TransitionUnmaximize,
		From:     Frame{Rect: from, Opacity: 1},
		To:       Frame{Rect: w.Geometry, Opacity: 1},
		Duration: m.cfg.Durations.Maximize,
	}, nil)
}

// ToggleMaximize maximizes a normal window and unmaximizes a maximized one.
func (m *Manager) ToggleMaximize(appID string) {
	w, ok := m.registry.Get(appID)
	if !ok {
		m.ignored(EventMaximize, appID, nil)
		return
	}
	switch w.State {
	case Normal:
		m.Maximize(appID)
	case Maximized:
		m.Unmaximize(appID)
	default:
		m.ignored(EventMaximize, appID, w)
	}
}

// dockRect is the small rectangle a window shrinks into at the dock.
func (m *Manager) dockRect(appID string, from Rect) Rect {
	x, y := m.dockAnchor(appID)
	w := max(from.Width/10, 1)
	h := max(from.Height/10, 1)
	return Rect{Left: x - w/2, Top: y, Width: w, Height: h}
}
