// Package wm implements the desktop window manager: window identity,
// geometry, stacking order and the Normal/Minimized/Maximized lifecycle.
//
// Every operation is synchronous and meant to be called from a single event
// loop. Invalid transitions and operations on absent windows are silent
// no-ops.
package wm

import (
	"cmp"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Durations are the visual transition lengths per lifecycle event.
type Durations struct {
	Open     time.Duration
	Close    time.Duration
	Minimize time.Duration
	Restore  time.Duration
	Maximize time.Duration
}

// Config holds the manager's placement and animation settings.
type Config struct {
	Clamp ClampConfig

	// DefaultLeft and DefaultTop position newly created windows.
	DefaultLeft int
	DefaultTop  int

	// DockReserve is the space kept clear at the bottom by maximized windows.
	DockReserve int

	Durations Durations
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Clamp:       DefaultClampConfig(),
		DefaultLeft: 100,
		DefaultTop:  100,
		DockReserve: 80,
		Durations: Durations{
			Open:     600 * time.Millisecond,
			Close:    300 * time.Millisecond,
			Minimize: 600 * time.Millisecond,
			Restore:  600 * time.Millisecond,
			Maximize: 400 * time.Millisecond,
		},
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.cfg = cfg }
}

// WithAnimator sets the animator that plays visual transitions.
func WithAnimator(a Animator) Option {
	return func(m *Manager) { m.animator = a }
}

// WithLogger sets the logger transitions are reported to.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithDockAnchor sets where minimized windows fly to and restore from.
func WithDockAnchor(fn func(appID string) (x, y int)) Option {
	return func(m *Manager) { m.dockAnchor = fn }
}

// WithViewport sets the initial viewport size.
func WithViewport(width, height int) Option {
	return func(m *Manager) {
		m.viewportWidth = width
		m.viewportHeight = height
	}
}

// Manager composes the registry, z-order, lifecycle and drag controller.
type Manager struct {
	cfg        Config
	host       AppHost
	animator   Animator
	logger     *log.Logger
	dockAnchor func(appID string) (int, int)

	registry *Registry
	drag     *dragSession

	viewportWidth  int
	viewportHeight int
}

// New creates a manager that asks host for window content.
func New(host AppHost, opts ...Option) *Manager {
	m := &Manager{
		cfg:            DefaultConfig(),
		host:           host,
		animator:       NopAnimator{},
		registry:       NewRegistry(),
		viewportWidth:  1280,
		viewportHeight: 800,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}
	if m.dockAnchor == nil {
		m.dockAnchor = func(string) (int, int) {
			return m.viewportWidth / 2, m.viewportHeight - m.cfg.DockReserve
		}
	}
	return m
}

// Config returns the active configuration.
func (m *Manager) Config() Config { return m.cfg }

// Reconfigure swaps the configuration, refits maximized windows and clamps
// the rest under the new bounds.
func (m *Manager) Reconfigure(cfg Config) {
	m.cfg = cfg
	m.refitMaximized()
	m.reclampNormal()
}

// Viewport returns the current viewport size.
func (m *Manager) Viewport() (int, int) {
	return m.viewportWidth, m.viewportHeight
}

// SetViewport records a new viewport size. Maximized windows, including
// minimized ones that will come back maximized, are refitted.
func (m *Manager) SetViewport(width, height int) {
	if width == m.viewportWidth && height == m.viewportHeight {
		return
	}
	m.viewportWidth = width
	m.viewportHeight = height
	m.refitMaximized()
}

func (m *Manager) refitMaximized() {
	full := m.maximizedRect()
	for _, w := range m.registry.order {
		if w.RestoresTo() == Maximized {
			w.Geometry = full
		}
	}
}

func (m *Manager) reclampNormal() {
	for _, w := range m.registry.order {
		if w.RestoresTo() != Normal {
			continue
		}
		left, top := Clamp(w.Geometry.Left, w.Geometry.Top, m.viewportWidth, m.viewportHeight, m.cfg.Clamp)
		if left != w.Geometry.Left || top != w.Geometry.Top {
			m.logger.Debug("window clamped", "app", w.AppID, "left", left, "top", top)
			w.Geometry.Left, w.Geometry.Top = left, top
		}
	}
}

func (m *Manager) maximizedRect() Rect {
	top := m.cfg.Clamp.TitlebarHeight
	return Rect{
		Left:   0,
		Top:    top,
		Width:  max(m.viewportWidth, 1),
		Height: max(m.viewportHeight-top-m.cfg.DockReserve, 1),
	}
}

// Open shows the window for appID. An existing window is restored when
// minimized and focused otherwise; a missing one is created, registered and
// mounted. Unknown app IDs get the host's fallback content.
func (m *Manager) Open(appID string) *Window {
	if w, ok := m.registry.Get(appID); ok {
		if w.State == Minimized {
			m.Restore(appID)
		} else {
			m.Focus(appID)
		}
		return w
	}

	size := m.host.DefaultSize(appID)
	w := &Window{
		AppID: appID,
		ID:    uuid.NewString(),
		State: Normal,
		Geometry: Rect{
			Left:   m.cfg.DefaultLeft,
			Top:    m.cfg.DefaultTop,
			Width:  size.Width,
			Height: size.Height,
		},
		ZIndex:    TopIndex(m.registry) + 1,
		Visible:   true,
		CreatedAt: time.Now(),
	}
	w.Content = m.host.RenderContent(appID)
	m.registry.Insert(w)

	m.logger.Info("window opened", "app", appID, "id", w.ID[:8], "z", w.ZIndex,
		"width", size.Width, "height", size.Height)

	m.host.OnMount(appID, w)

	m.animator.Animate(Transition{
		AppID:    appID,
		Kind:     TransitionOpen,
		From:     Frame{Rect: scaleRect(w.Geometry, 0.3), Opacity: 0},
		To:       Frame{Rect: w.Geometry, Opacity: 1},
		Duration: m.cfg.Durations.Open,
	}, nil)
	return w
}

// Close destroys the window for appID from any state.
func (m *Manager) Close(appID string) {
	w, ok := m.registry.Remove(appID)
	if !ok {
		m.ignored(EventClose, appID, nil)
		return
	}
	if m.drag != nil && m.drag.appID == appID {
		m.drag = nil
	}

	m.logger.Info("window closed", "app", appID, "id", w.ID[:8], "state", w.State)

	if w.Visible {
		m.animator.Animate(Transition{
			AppID:    appID,
			Kind:     TransitionClose,
			From:     Frame{Rect: w.Geometry, Opacity: 1},
			To:       Frame{Rect: scaleRect(w.Geometry, 0.3), Opacity: 0},
			Duration: m.cfg.Durations.Close,
		}, nil)
	}
}

// Focus brings the window for appID to the front. Minimized windows must be
// restored instead.
func (m *Manager) Focus(appID string) {
	w, ok := m.registry.Get(appID)
	if !ok || !w.State.Allows(EventFocus) {
		m.ignored(EventFocus, appID, w)
		return
	}
	m.raise(w)
	m.logger.Debug("window focused", "app", appID, "z", w.ZIndex)
}

// raise brings w to the front and tells the host.
func (m *Manager) raise(w *Window) {
	bringToFront(m.registry, w)
	if fo, ok := m.host.(FocusObserver); ok {
		fo.OnFocus(w.AppID, w)
	}
}

// TopIndex returns the highest z-index in use, or ZFloor.
func (m *Manager) TopIndex() int { return TopIndex(m.registry) }

// Window returns the live window for appID.
func (m *Manager) Window(appID string) (*Window, bool) {
	return m.registry.Get(appID)
}

// Windows returns every live window in open order.
func (m *Manager) Windows() []*Window { return m.registry.All() }

// Len returns the number of live windows.
func (m *Manager) Len() int { return m.registry.Len() }

// Stack returns every live window ordered back to front.
func (m *Manager) Stack() []*Window {
	ws := m.registry.All()
	slices.SortFunc(ws, func(a, b *Window) int { return cmp.Compare(a.ZIndex, b.ZIndex) })
	return ws
}

// Frontmost returns the non-minimized window with the highest z-index.
func (m *Manager) Frontmost() (*Window, bool) {
	var front *Window
	for _, w := range m.registry.order {
		if w.State == Minimized {
			continue
		}
		if front == nil || w.ZIndex > front.ZIndex {
			front = w
		}
	}
	return front, front != nil
}

// WindowAt returns the topmost non-minimized window under the point.
func (m *Manager) WindowAt(x, y int) (*Window, bool) {
	stack := m.Stack()
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		if w.State != Minimized && w.Geometry.Contains(x, y) {
			return w, true
		}
	}
	return nil, false
}

func (m *Manager) ignored(ev Event, appID string, w *Window) {
	if w == nil {
		m.logger.Debug("ignored event for absent window", "event", ev, "app", appID)
		return
	}
	m.logger.Debug("ignored event", "event", ev, "app", appID, "state", w.State)
}

func scaleRect(r Rect, f float64) Rect {
	w := max(int(float64(r.Width)*f), 1)
	h := max(int(float64(r.Height)*f), 1)
	return Rect{
		Left:   r.Left + (r.Width-w)/2,
		Top:    r.Top + (r.Height-h)/2,
		Width:  w,
		Height: h,
	}
}
