package config

import (
	"github.com/charmbracelet/log"

	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// BorderStyle overrides the window border style
	BorderStyle string

	// NoAnimations disables window transitions
	NoAnimations bool

	// NoSplash skips the boot splash
	NoSplash bool

	// HideClock overrides hiding the clock
	HideClock bool

	// NoSysInfo hides the CPU and memory widget
	NoSysInfo bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Animations - disabled by flag, otherwise user config
	AnimationsEnabled = true
	if overrides.NoAnimations {
		AnimationsEnabled = false
	} else if userConfig != nil && userConfig.Appearance.AnimationsEnabled != nil {
		AnimationsEnabled = *userConfig.Appearance.AnimationsEnabled
	}

	ShowSplash = true
	if overrides.NoSplash {
		ShowSplash = false
	} else if userConfig != nil && userConfig.Appearance.ShowSplash != nil {
		ShowSplash = *userConfig.Appearance.ShowSplash
	}

	ShowSysInfo = true
	if overrides.NoSysInfo {
		ShowSysInfo = false
	} else if userConfig != nil && userConfig.Appearance.ShowSysInfo != nil {
		ShowSysInfo = *userConfig.Appearance.ShowSysInfo
	}

	// Hide Clock - OR of CLI flag and user config
	if userConfig != nil {
		HideClock = overrides.HideClock || userConfig.Appearance.HideClock
	} else {
		HideClock = overrides.HideClock
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil {
		themeName = userConfig.Appearance.Theme
	}
	if err := theme.Initialize(themeName); err != nil {
		log.Warn("failed to load theme", "theme", themeName, "err", err)
	}
}
