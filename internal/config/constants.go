// Package config provides desktop constants, user settings and the config
// file watcher.
package config

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the refresh rate while something animates or is dragged
	NormalFPS = 60

	// IdleFPS is the refresh rate when nothing moves
	IdleFPS = 10
)

// =============================================================================
// Desktop Layout (cells)
// =============================================================================

const (
	// MenuBarHeight is the number of rows taken by the menu bar
	MenuBarHeight = 1

	// DockHeight is the number of rows reserved for the dock, including the
	// row that magnified items grow into
	DockHeight = 3

	// DockItemWidth is the width of one dock item at rest
	DockItemWidth = 9

	// DockItemGap is the number of columns between dock items
	DockItemGap = 1

	// MinVisibleWidth keeps this many columns of a window on screen
	MinVisibleWidth = 20

	// MinVisibleHeight keeps this many rows of a window on screen
	MinVisibleHeight = 3

	// DefaultWindowLeft is the column new windows open at
	DefaultWindowLeft = 4

	// DefaultWindowTop is the row new windows open at
	DefaultWindowTop = 2

	// DropdownWidth is the width of menu bar dropdowns
	DropdownWidth = 24
)

// =============================================================================
// Layer Z Bands
// =============================================================================

// Windows use the window manager's z-index (above wm.ZFloor and growing with
// every focus), so chrome layers sit in a band far above it.
const (
	ZDesktop  = 0
	ZMenuBar  = 1 << 24
	ZDock     = ZMenuBar + 1
	ZTooltip  = ZMenuBar + 2
	ZDropdown = ZMenuBar + 3
	ZSplash   = ZMenuBar + 16
)

// =============================================================================
// Animation Durations
// =============================================================================

const (
	// OpenAnimationDuration is how long a new window takes to grow in
	OpenAnimationDuration = 600 * time.Millisecond

	// CloseAnimationDuration is how long a closing window takes to fade out
	CloseAnimationDuration = 300 * time.Millisecond

	// MinimizeAnimationDuration is how long a window takes to fly to the dock
	MinimizeAnimationDuration = 600 * time.Millisecond

	// RestoreAnimationDuration is how long a window takes to come back from the dock
	RestoreAnimationDuration = 600 * time.Millisecond

	// MaximizeAnimationDuration is used for both maximize and unmaximize
	MaximizeAnimationDuration = 400 * time.Millisecond
)

// =============================================================================
// Timeouts and Intervals
// =============================================================================

const (
	// SplashDuration is how long the boot splash stays up without a click
	SplashDuration = 3 * time.Second

	// SplashExitDuration is the splash fade-out length
	SplashExitDuration = 500 * time.Millisecond

	// ClockInterval is how often the menu bar clock refreshes
	ClockInterval = time.Minute

	// SysInfoInterval is how often CPU and memory usage are sampled
	SysInfoInterval = 2 * time.Second
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// AnimationsEnabled controls whether window transitions animate.
// Set via --no-animations flag or appearance.animations_enabled config
var AnimationsEnabled = true

// ShowSplash controls whether the boot splash is shown.
// Set via --no-splash flag or appearance.show_splash config
var ShowSplash = true

// HideClock hides the menu bar clock.
var HideClock = false

// ShowSysInfo shows CPU and memory usage in the menu bar.
var ShowSysInfo = true

// BorderStyle controls which border style windows use.
// Set via --border-style flag or appearance.border_style config
var BorderStyle = "rounded"

// GetAnimationDurations returns the per-transition durations for the window
// manager. All durations are zero when animations are disabled, so every
// transition completes immediately.
func GetAnimationDurations() wm.Durations {
	if !AnimationsEnabled {
		return wm.Durations{}
	}
	return wm.Durations{
		Open:     OpenAnimationDuration,
		Close:    CloseAnimationDuration,
		Minimize: MinimizeAnimationDuration,
		Restore:  RestoreAnimationDuration,
		Maximize: MaximizeAnimationDuration,
	}
}

// GetSplashExitDuration returns the splash fade-out length, or 0 when
// animations are disabled.
func GetSplashExitDuration() time.Duration {
	if !AnimationsEnabled {
		return 0
	}
	return SplashExitDuration
}

// BorderStyles lists the accepted border_style values.
var BorderStyles = []string{"rounded", "normal", "thick", "double", "hidden", "block", "ascii"}

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "ascii":
		return lipgloss.ASCIIBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// Window control glyphs, left to right as on the title bar.
const (
	WindowButtonClose    = "●"
	WindowButtonMinimize = "●"
	WindowButtonMaximize = "●"
)
