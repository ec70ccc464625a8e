// Package theme provides the desktop color palette, optionally driven by a
// bubbletint theme.
package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// If themeName is empty, theming is disabled and the built-in palette is used.
// An unknown name falls back to the registry default and is reported.
func Initialize(themeName string) error {
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	if ok := tint.SetTintID(themeName); !ok {
		tint.SetTintID("default")
		return fmt.Errorf("unknown theme %q", themeName)
	}
	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// Desktop wallpaper
func DesktopBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1e2a44")
	}
	return t.Bg
}

func DesktopPattern() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#2b3a5c")
	}
	return t.BrightBlack
}

// Menu bar colors
func MenuBarBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

func MenuBarFg() color.Color {
	return lipgloss.Color("#e5e5ea")
}

func MenuBarActive() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0a84ff"), lipgloss.Color("#ffffff")
	}
	return t.Blue, t.BrightWhite
}

func MenuBarDimmed() color.Color {
	return lipgloss.Color("#a0a0b0")
}

// Dropdown colors
func DropdownBg() color.Color {
	return lipgloss.Color("#323246")
}

func DropdownFg() color.Color {
	return lipgloss.Color("#e5e5ea")
}

func DropdownHover() (bg color.Color, fg color.Color) {
	return MenuBarActive()
}

func DropdownShortcut() color.Color {
	return lipgloss.Color("#8e8e9a")
}

func DropdownSeparator() color.Color {
	return lipgloss.Color("#4a4a5e")
}

// Window chrome colors
func TitleBarFocused() (bg color.Color, fg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#3a3a4e"), lipgloss.Color("#ffffff")
	}
	return t.BrightBlack, t.BrightWhite
}

func TitleBarUnfocused() (bg color.Color, fg color.Color) {
	return lipgloss.Color("#2a2a36"), lipgloss.Color("#8e8e9a")
}

func BorderFocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#8ab4f8")
	}
	return t.BrightCyan
}

func BorderUnfocused() color.Color {
	return lipgloss.Color("#5a5a6e")
}

func WindowBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#1c1c24")
	}
	return t.Bg
}

func WindowFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// Window control buttons, in title bar order
func ButtonClose() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff5f57")
	}
	return t.Red
}

func ButtonMinimize() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#febc2e")
	}
	return t.Yellow
}

func ButtonMaximize() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#28c840")
	}
	return t.Green
}

// Dock styling colors
func DockBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

func DockFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

func DockHighlight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ffffff")
	}
	return t.BrightWhite
}

func DockRunning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#8ab4f8")
	}
	return t.BrightBlue
}

func DockTooltip() (bg color.Color, fg color.Color) {
	return lipgloss.Color("#e5e5ea"), lipgloss.Color("#1c1c24")
}

// App accent colors
func Accent() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0a84ff")
	}
	return t.Blue
}

func Muted() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#8e8e9a")
	}
	return t.BrightBlack
}

func Operator() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff9f0a")
	}
	return t.Yellow
}

func Prompt() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#30d158")
	}
	return t.Green
}

func ErrorText() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#ff453a")
	}
	return t.Red
}

// Splash colors
func SplashBg() color.Color {
	return lipgloss.Color("#000000")
}

func SplashFg() color.Color {
	return lipgloss.Color("#ffffff")
}

func SplashProgress() color.Color {
	return lipgloss.Color("#5a5a6e")
}
