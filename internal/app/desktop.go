// Package app provides the tuidesk desktop: the Bubble Tea model that owns
// the window manager, the running apps, the menu bar and the dock.
package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuidesk/internal/apps"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/ui"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// SplashPhase tracks the boot splash.
type SplashPhase int

const (
	// SplashShowing is the splash at full opacity.
	SplashShowing SplashPhase = iota
	// SplashExiting is the fade-out before the desktop appears.
	SplashExiting
	// SplashDone means the desktop is interactive.
	SplashDone
)

// Desktop is the application state: one per local run or remote session.
type Desktop struct {
	WM       *wm.Manager
	Apps     *apps.Registry
	Animator *ui.Animator
	Config   *config.UserConfig
	Keybinds *config.KeybindRegistry
	Logger   *log.Logger

	Width  int
	Height int

	Splash          SplashPhase
	SplashStart     time.Time
	SplashExitStart time.Time

	// OpenMenu is the index of the open dropdown, or -1.
	OpenMenu int
	// HoverMenuItem is the highlighted dropdown row, or -1.
	HoverMenuItem int
	// HoverDock is the dock item under the pointer, or -1.
	HoverDock int

	Clock      time.Time
	CPUHistory []float64 // last samples, oldest first
	MemUsage   float64

	overrides config.Overrides
	reloads   <-chan config.ConfigReloadedMsg
	now       func() time.Time
	splash    bool
}

// Option configures a Desktop.
type Option func(*Desktop)

// WithLogger sets the logger shared by the desktop and the window manager.
func WithLogger(l *log.Logger) Option {
	return func(d *Desktop) { d.Logger = l }
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Desktop) { d.now = now }
}

// WithSize sets the initial terminal size, before the first WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(d *Desktop) {
		d.Width = width
		d.Height = height
	}
}

// WithOverrides keeps the CLI overrides so config reloads do not undo them.
func WithOverrides(o config.Overrides) Option {
	return func(d *Desktop) { d.overrides = o }
}

// WithConfigReloads subscribes the desktop to config file reloads.
func WithConfigReloads(ch <-chan config.ConfigReloadedMsg) Option {
	return func(d *Desktop) { d.reloads = ch }
}

// WithSplash overrides config.ShowSplash.
func WithSplash(show bool) Option {
	return func(d *Desktop) { d.splash = show }
}

// New creates a desktop from cfg. A nil cfg uses the defaults.
func New(cfg *config.UserConfig, opts ...Option) *Desktop {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	d := &Desktop{
		Config:        cfg,
		Keybinds:      config.NewKeybindRegistry(cfg),
		Width:         80,
		Height:        24,
		OpenMenu:      -1,
		HoverMenuItem: -1,
		HoverDock:     -1,
		now:           time.Now,
		splash:        config.ShowSplash,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}

	d.Animator = ui.NewAnimator()
	d.Animator.SetClock(d.now)
	d.Apps = apps.DefaultRegistry(
		apps.WithUserConfig(cfg),
		apps.WithClock(d.now),
		apps.WithLogger(d.Logger),
	)
	d.WM = wm.New(d.Apps,
		wm.WithConfig(cfg.WMConfig()),
		wm.WithAnimator(d.Animator),
		wm.WithLogger(d.Logger),
		wm.WithDockAnchor(d.dockAnchor),
		wm.WithViewport(d.Width, d.Height),
	)

	d.Clock = d.now()
	d.SplashStart = d.Clock
	if !d.splash {
		d.Splash = SplashDone
	}
	return d
}

// Reconfigure applies a reloaded config. Window sizes and animation
// settings apply to windows opened afterwards; the viewport constraints
// apply immediately.
func (d *Desktop) Reconfigure(cfg *config.UserConfig) {
	if cfg == nil {
		return
	}
	config.ApplyOverrides(d.overrides, cfg)
	d.Config = cfg
	d.Keybinds = config.NewKeybindRegistry(cfg)
	d.Apps.SetUserConfig(cfg)
	d.WM.Reconfigure(cfg.WMConfig())
	d.Logger.Info("config applied")
}

// Resize records the terminal size and refits maximized windows.
func (d *Desktop) Resize(width, height int) {
	d.Width = width
	d.Height = height
	d.WM.SetViewport(width, height)
}

// Interactive reports whether the desktop accepts input beyond the splash.
func (d *Desktop) Interactive() bool { return d.Splash == SplashDone }

// DismissSplash starts the splash exit. It is a no-op once the exit began.
func (d *Desktop) DismissSplash() {
	if d.Splash != SplashShowing {
		return
	}
	d.Splash = SplashExiting
	d.SplashExitStart = d.now()
	if config.GetSplashExitDuration() == 0 {
		d.Splash = SplashDone
	}
}

// advanceSplash moves the splash along its timeline.
func (d *Desktop) advanceSplash(now time.Time) {
	switch d.Splash {
	case SplashShowing:
		if now.Sub(d.SplashStart) >= config.SplashDuration {
			d.DismissSplash()
		}
	case SplashExiting:
		if now.Sub(d.SplashExitStart) >= config.GetSplashExitDuration() {
			d.Splash = SplashDone
			d.Logger.Debug("splash finished")
		}
	}
}

// SplashProgress returns how far the splash timer has run, in [0, 1].
func (d *Desktop) SplashProgress() float64 {
	if d.Splash != SplashShowing {
		return 1
	}
	return min(float64(d.now().Sub(d.SplashStart))/float64(config.SplashDuration), 1)
}

// Frontmost returns the front window and its app instance.
func (d *Desktop) Frontmost() (*wm.Window, apps.Instance, bool) {
	w, ok := d.WM.Frontmost()
	if !ok {
		return nil, nil, false
	}
	inst, _ := w.Content.(apps.Instance)
	return w, inst, true
}

// ActiveAppName is the name shown in bold after the system menu.
func (d *Desktop) ActiveAppName() string {
	if w, ok := d.WM.Frontmost(); ok {
		if spec, ok := d.Apps.Spec(w.AppID); ok {
			return spec.Name
		}
		return w.AppID
	}
	return "Finder"
}

// MinimizeFrontmost minimizes the front window, if any.
func (d *Desktop) MinimizeFrontmost() {
	if w, ok := d.WM.Frontmost(); ok {
		d.WM.Minimize(w.AppID)
	}
}

// ZoomFrontmost toggles maximize on the front window, if any.
func (d *Desktop) ZoomFrontmost() {
	if w, ok := d.WM.Frontmost(); ok {
		d.WM.ToggleMaximize(w.AppID)
	}
}

// CloseFrontmost closes the front window, if any.
func (d *Desktop) CloseFrontmost() {
	if w, ok := d.WM.Frontmost(); ok {
		d.WM.Close(w.AppID)
	}
}

// Busy reports whether the next frames change without input, so the tick
// should run at full rate.
func (d *Desktop) Busy() bool {
	if d.Splash != SplashDone || d.Animator.Active() {
		return true
	}
	_, dragging := d.WM.DragTarget()
	return dragging
}
