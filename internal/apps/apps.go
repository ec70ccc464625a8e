// Package apps holds the built-in desktop applications and the registry that
// serves them to the window manager.
package apps

import (
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// FallbackSize is the window size for app IDs with no spec.
var FallbackSize = wm.Size{Width: 48, Height: 14}

// Instance is the running state of one app window. Every window owns its own
// instance, so two calculators never share a display.
type Instance interface {
	wm.Content

	// View renders the body into exactly width x height cells.
	View(width, height int) string

	// HandleKey receives keys while the window is frontmost.
	HandleKey(msg tea.KeyPressMsg)

	// HandleClick receives a primary click at body-relative coordinates.
	HandleClick(x, y int, width, height int)
}

// Mounter is implemented by instances that need a hook once their window is
// registered, such as focusing an input.
type Mounter interface {
	Mount(w *wm.Window)
}

// Focuser is implemented by instances that track whether their window is
// the front one.
type Focuser interface {
	Focus()
	Blur()
}

// Env carries what app instances need from the outside world.
type Env struct {
	Now func() time.Time
}

// Spec describes an installable app.
type Spec struct {
	ID   string
	Name string
	Icon string
	Size wm.Size
	New  func(env Env) Instance
}

// Registry implements wm.AppHost over a fixed set of app specs.
type Registry struct {
	specs  map[string]Spec
	order  []string
	user   *config.UserConfig
	env    Env
	logger *log.Logger
	active *wm.Window
}

// Option configures a Registry.
type Option func(*Registry)

// WithUserConfig applies per-app size overrides from the user config.
func WithUserConfig(cfg *config.UserConfig) Option {
	return func(r *Registry) { r.user = cfg }
}

// WithClock sets the time source handed to app instances.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.env.Now = now }
}

// WithLogger sets the registry logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// NewRegistry returns a registry serving specs, in dock order.
func NewRegistry(specs []Spec, opts ...Option) *Registry {
	r := &Registry{
		specs: make(map[string]Spec, len(specs)),
		env:   Env{Now: time.Now},
	}
	for _, s := range specs {
		if _, dup := r.specs[s.ID]; dup {
			continue
		}
		r.specs[s.ID] = s
		r.order = append(r.order, s.ID)
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	return r
}

// Builtin returns the specs of the built-in apps in dock order.
func Builtin() []Spec {
	return []Spec{
		{ID: "finder", Name: "Finder", Icon: "◰", Size: wm.Size{Width: 64, Height: 20}, New: NewFinder},
		{ID: "safari", Name: "Safari", Icon: "◎", Size: wm.Size{Width: 72, Height: 22}, New: NewSafari},
		{ID: "calculator", Name: "Calculator", Icon: "▦", Size: wm.Size{Width: 30, Height: 17}, New: NewCalculator},
		{ID: "terminal", Name: "Terminal", Icon: ">_", Size: wm.Size{Width: 60, Height: 18}, New: NewTerminal},
	}
}

// DefaultRegistry serves the built-in apps.
func DefaultRegistry(opts ...Option) *Registry {
	return NewRegistry(Builtin(), opts...)
}

// SetUserConfig swaps the size overrides; windows opened afterwards use them.
func (r *Registry) SetUserConfig(cfg *config.UserConfig) { r.user = cfg }

// Specs returns the registered specs in dock order.
func (r *Registry) Specs() []Spec {
	out := make([]Spec, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.specs[id])
	}
	return out
}

// Spec returns the spec for appID.
func (r *Registry) Spec(appID string) (Spec, bool) {
	s, ok := r.specs[appID]
	return s, ok
}

// DefaultSize returns the app's window size, with user overrides applied.
// Unknown apps get FallbackSize.
func (r *Registry) DefaultSize(appID string) wm.Size {
	size := FallbackSize
	if s, ok := r.specs[appID]; ok {
		size = s.Size
	}
	if r.user != nil {
		size = r.user.AppSize(appID, size)
	}
	return size
}

// RenderContent creates a fresh instance for appID, or the placeholder for
// unknown IDs.
func (r *Registry) RenderContent(appID string) wm.Content {
	s, ok := r.specs[appID]
	if !ok {
		r.logger.Warn("unknown app, using placeholder", "app", appID)
		return NewPlaceholder(appID)
	}
	return s.New(r.env)
}

// OnMount runs the instance's mount hook, if it has one. A new window is
// the front one, so the previous front instance is blurred.
func (r *Registry) OnMount(appID string, w *wm.Window) {
	r.activate(w)
	if m, ok := w.Content.(Mounter); ok {
		m.Mount(w)
		r.logger.Debug("app mounted", "app", appID)
	}
}

// OnFocus moves input focus to the instance in w.
func (r *Registry) OnFocus(appID string, w *wm.Window) {
	r.activate(w)
	r.logger.Debug("app focused", "app", appID)
}

func (r *Registry) activate(w *wm.Window) {
	if r.active == w {
		return
	}
	if r.active != nil {
		if f, ok := r.active.Content.(Focuser); ok {
			f.Blur()
		}
	}
	r.active = w
	if f, ok := w.Content.(Focuser); ok {
		f.Focus()
	}
}
