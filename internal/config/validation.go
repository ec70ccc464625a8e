package config

import (
	"fmt"
	"slices"
)

// ValidationIssue is a single problem found in the user config.
type ValidationIssue struct {
	Field   string
	Key     string
	Message string
}

// ValidationResult collects config errors (fatal) and warnings (the value is
// replaced by its default).
type ValidationResult struct {
	Errors   []ValidationIssue
	Warnings []ValidationIssue
}

// HasErrors reports whether any fatal issue was found.
func (v *ValidationResult) HasErrors() bool { return len(v.Errors) > 0 }

// HasWarnings reports whether any non-fatal issue was found.
func (v *ValidationResult) HasWarnings() bool { return len(v.Warnings) > 0 }

func (v *ValidationResult) errorf(field, key, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

func (v *ValidationResult) warnf(field, key, format string, args ...any) {
	v.Warnings = append(v.Warnings, ValidationIssue{Field: field, Key: key, Message: fmt.Sprintf(format, args...)})
}

// ValidateConfig checks a filled config. Recoverable values are reset to
// their defaults and reported as warnings.
func ValidateConfig(cfg *UserConfig) *ValidationResult {
	v := &ValidationResult{}
	defaults := DefaultConfig()

	if !slices.Contains(BorderStyles, cfg.Appearance.BorderStyle) {
		v.warnf("appearance", "border_style", "unknown style %q, using %q",
			cfg.Appearance.BorderStyle, defaults.Appearance.BorderStyle)
		cfg.Appearance.BorderStyle = defaults.Appearance.BorderStyle
	}

	vp := cfg.Viewport
	if vp.TitlebarHeight > 10 {
		v.warnf("viewport", "titlebar_height", "%d rows is larger than the menu bar", vp.TitlebarHeight)
	}
	if vp.DefaultLeft != nil && *vp.DefaultLeft < 0 {
		v.errorf("viewport", "default_left", "must not be negative, got %d", *vp.DefaultLeft)
	}
	if vp.DefaultTop != nil && *vp.DefaultTop < 0 {
		v.errorf("viewport", "default_top", "must not be negative, got %d", *vp.DefaultTop)
	}

	for id, app := range cfg.Apps {
		field := "apps." + id
		if app.Width < 0 {
			v.errorf(field, "width", "must not be negative, got %d", app.Width)
		}
		if app.Height < 0 {
			v.errorf(field, "height", "must not be negative, got %d", app.Height)
		}
	}

	for action, keys := range cfg.Keybindings {
		if _, known := defaults.Keybindings[action]; !known {
			v.warnf("keybindings", action, "unknown action")
			continue
		}
		if len(keys) == 0 {
			v.warnf("keybindings", action, "no keys bound, using defaults")
			cfg.Keybindings[action] = defaults.Keybindings[action]
		}
	}

	return v
}
