package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

// TickerMsg represents a periodic tick event for animations and the splash.
// This is exported so it can be used by the input package.
type TickerMsg time.Time

// ClockMsg refreshes the menu bar clock.
type ClockMsg time.Time

// InputHandler is a function type that handles input messages.
// This allows the Update method to delegate to the input package without creating a circular dependency.
type InputHandler func(msg tea.Msg, d *Desktop) (tea.Model, tea.Cmd)

// inputHandler is the registered input handler function.
// This will be set by the main package to break the circular dependency.
var inputHandler InputHandler

// SetInputHandler registers the input handler function.
// This must be called during initialization before the Update loop runs.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick, the clock, the system info sampler and the config
// reload listener.
func (d *Desktop) Init() tea.Cmd {
	cmds := []tea.Cmd{
		TickCmd(),
		d.ClockCmd(),
	}
	if config.ShowSysInfo {
		cmds = append(cmds, SysInfoCmd(0))
	}
	if d.reloads != nil {
		cmds = append(cmds, ListenForConfigReload(d.reloads))
	}
	return tea.Batch(cmds...)
}

// TickCmd creates a command that generates tick messages at 60 FPS.
// This drives animations, drags and the splash.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// IdleTickCmd ticks at a low rate while nothing moves.
func IdleTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.IdleFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// ClockCmd fires on the next minute boundary.
func (d *Desktop) ClockCmd() tea.Cmd {
	now := d.now()
	next := now.Truncate(config.ClockInterval).Add(config.ClockInterval)
	return tea.Tick(next.Sub(now), func(t time.Time) tea.Msg {
		return ClockMsg(t)
	})
}

// ListenForConfigReload waits for the next config reload.
// It stops listening once the watcher closes the channel.
func ListenForConfigReload(ch <-chan config.ConfigReloadedMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Update handles all incoming messages and updates the desktop state.
func (d *Desktop) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickerMsg:
		d.Animator.Update()
		d.advanceSplash(time.Time(msg))
		if d.Busy() {
			return d, TickCmd()
		}
		return d, IdleTickCmd()

	case ClockMsg:
		d.Clock = time.Time(msg)
		return d, d.ClockCmd()

	case SysInfoMsg:
		d.recordSysInfo(msg)
		if !config.ShowSysInfo {
			return d, nil
		}
		return d, SysInfoCmd(config.SysInfoInterval)

	case config.ConfigReloadedMsg:
		if msg.Err != nil {
			d.Logger.Warn("keeping previous config", "err", msg.Err)
		} else {
			d.Reconfigure(msg.Config)
		}
		if d.reloads == nil {
			return d, nil
		}
		return d, ListenForConfigReload(d.reloads)

	case tea.WindowSizeMsg:
		d.Resize(msg.Width, msg.Height)
		return d, nil

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg:
		// Delegate to the registered input handler
		if inputHandler != nil {
			return inputHandler(msg, d)
		}
		return d, nil
	}

	return d, nil
}
