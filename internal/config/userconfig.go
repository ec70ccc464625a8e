package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

const configRelPath = "tuidesk/config.toml"

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig     `toml:"appearance"`
	Viewport    ViewportConfig       `toml:"viewport"`
	Keybindings map[string][]string  `toml:"keybindings"`
	Apps        map[string]AppConfig `toml:"apps"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	Theme             string `toml:"theme"`              // Color theme name (e.g., dracula, nord)
	BorderStyle       string `toml:"border_style"`       // Window border style: rounded, normal, thick, double, hidden, block, ascii
	AnimationsEnabled *bool  `toml:"animations_enabled"` // Animate window transitions (default: true)
	ShowSplash        *bool  `toml:"show_splash"`        // Show the boot splash (default: true)
	HideClock         bool   `toml:"hide_clock"`         // Hide the menu bar clock (default: false)
	ShowSysInfo       *bool  `toml:"show_sysinfo"`       // Show CPU and memory usage in the menu bar (default: true)
}

// ViewportConfig holds window placement settings, in cells
type ViewportConfig struct {
	MinVisibleWidth  int  `toml:"min_visible_width"`  // Columns of a dragged window kept on screen
	MinVisibleHeight int  `toml:"min_visible_height"` // Rows of a dragged window kept on screen
	TitlebarHeight   int  `toml:"titlebar_height"`    // Windows never go above this row
	DockReserve      int  `toml:"dock_reserve"`       // Rows kept clear for the dock by maximized windows
	DefaultLeft      *int `toml:"default_left"`       // Column new windows open at
	DefaultTop       *int `toml:"default_top"`        // Row new windows open at
}

// AppConfig overrides an app's default window size. Zero keeps the built-in
// value for that dimension.
type AppConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	animations := true
	splash := true
	sysinfo := true
	left := DefaultWindowLeft
	top := DefaultWindowTop

	return &UserConfig{
		Appearance: AppearanceConfig{
			Theme:             "",
			BorderStyle:       "rounded",
			AnimationsEnabled: &animations,
			ShowSplash:        &splash,
			HideClock:         false,
			ShowSysInfo:       &sysinfo,
		},
		Viewport: ViewportConfig{
			MinVisibleWidth:  MinVisibleWidth,
			MinVisibleHeight: MinVisibleHeight,
			TitlebarHeight:   MenuBarHeight,
			DockReserve:      DockHeight,
			DefaultLeft:      &left,
			DefaultTop:       &top,
		},
		Keybindings: getDefaultKeybinds(),
		Apps:        map[string]AppConfig{},
	}
}

// LoadUserConfig loads the user configuration from XDG config directory,
// writing the defaults on first run.
func LoadUserConfig() (*UserConfig, error) {
	configPath, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		return createDefaultConfig()
	}
	return LoadUserConfigFrom(configPath)
}

// LoadUserConfigFrom reads, fills and validates the config file at path.
// Warnings are logged; errors fail the load.
func LoadUserConfigFrom(path string) (*UserConfig, error) {
	// #nosec G304 - path is the user's own config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, validation, err := ParseUserConfig(data)
	if err != nil {
		return nil, err
	}

	if validation.HasErrors() {
		for _, issue := range validation.Errors {
			log.Error("config error", "section", issue.Field, "key", issue.Key, "msg", issue.Message)
		}
		return nil, fmt.Errorf("configuration has %d error(s), please fix and restart", len(validation.Errors))
	}
	for _, issue := range validation.Warnings {
		log.Warn("config warning", "section", issue.Field, "key", issue.Key, "msg", issue.Message)
	}

	return cfg, nil
}

// ParseUserConfig decodes TOML, fills missing values with defaults and
// validates the result.
func ParseUserConfig(data []byte) (*UserConfig, *ValidationResult, error) {
	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingViewport(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)
	if cfg.Apps == nil {
		cfg.Apps = map[string]AppConfig{}
	}

	return &cfg, ValidateConfig(&cfg), nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	configPath, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	if err := WriteDefaultConfig(configPath); err != nil {
		return nil, err
	}
	return DefaultConfig(), nil
}

// WriteDefaultConfig writes the commented default config to path,
// replacing whatever is there.
func WriteDefaultConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := MarshalDefaultConfig(configPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MarshalDefaultConfig renders the default config with its header comments.
func MarshalDefaultConfig(configPath string) ([]byte, error) {
	cfg := DefaultConfig()
	cfg.Apps = map[string]AppConfig{
		"terminal": {Width: 0, Height: 0},
	}

	var body bytes.Buffer
	enc := toml.NewEncoder(&body)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# tuidesk configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# Changes are picked up while tuidesk is running.\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord). Empty uses terminal colors.\n")
	sb.WriteString("# border_style: rounded, normal, thick, double, hidden, block, ascii\n")
	sb.WriteString("# animations_enabled: Animate open, close, minimize and maximize\n")
	sb.WriteString("# show_splash: Show the boot screen on start\n")
	sb.WriteString("# hide_clock: Hide the menu bar clock\n")
	sb.WriteString("# show_sysinfo: Show CPU and memory usage in the menu bar\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# VIEWPORT (all values in terminal cells)\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# min_visible_width / min_visible_height: How much of a dragged window\n")
	sb.WriteString("#   always stays on screen\n")
	sb.WriteString("# titlebar_height: Windows can never be dragged above this row\n")
	sb.WriteString("# dock_reserve: Rows maximized windows leave free for the dock\n")
	sb.WriteString("# default_left / default_top: Where new windows open\n")
	sb.WriteString("#\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# [apps.<id>] width/height override an app's window size (0 = built-in).\n")
	sb.WriteString("#   Ids: finder, safari, calculator, terminal. Run: tuidesk apps list\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.Write(body.Bytes())
	return []byte(sb.String()), nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.AnimationsEnabled == nil {
		cfg.Appearance.AnimationsEnabled = defaultCfg.Appearance.AnimationsEnabled
	}
	if cfg.Appearance.ShowSplash == nil {
		cfg.Appearance.ShowSplash = defaultCfg.Appearance.ShowSplash
	}
	if cfg.Appearance.ShowSysInfo == nil {
		cfg.Appearance.ShowSysInfo = defaultCfg.Appearance.ShowSysInfo
	}
}

// fillMissingViewport fills in unset or non-positive sizes with defaults
func fillMissingViewport(cfg, defaultCfg *UserConfig) {
	vp, def := &cfg.Viewport, defaultCfg.Viewport
	if vp.MinVisibleWidth <= 0 {
		vp.MinVisibleWidth = def.MinVisibleWidth
	}
	if vp.MinVisibleHeight <= 0 {
		vp.MinVisibleHeight = def.MinVisibleHeight
	}
	if vp.TitlebarHeight <= 0 {
		vp.TitlebarHeight = def.TitlebarHeight
	}
	if vp.DockReserve <= 0 {
		vp.DockReserve = def.DockReserve
	}
	if vp.DefaultLeft == nil {
		vp.DefaultLeft = def.DefaultLeft
	}
	if vp.DefaultTop == nil {
		vp.DefaultTop = def.DefaultTop
	}
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	if cfg.Keybindings == nil {
		cfg.Keybindings = make(map[string][]string)
	}
	for k, v := range defaultCfg.Keybindings {
		if _, exists := cfg.Keybindings[k]; !exists {
			cfg.Keybindings[k] = v
		}
	}
}

// WMConfig converts the user config into window manager settings. Durations
// follow AnimationsEnabled.
func (c *UserConfig) WMConfig() wm.Config {
	vp := c.Viewport
	cfg := wm.Config{
		Clamp: wm.ClampConfig{
			MinVisibleWidth:  vp.MinVisibleWidth,
			MinVisibleHeight: vp.MinVisibleHeight,
			TitlebarHeight:   vp.TitlebarHeight,
		},
		DefaultLeft: DefaultWindowLeft,
		DefaultTop:  DefaultWindowTop,
		DockReserve: vp.DockReserve,
		Durations:   GetAnimationDurations(),
	}
	if vp.DefaultLeft != nil {
		cfg.DefaultLeft = *vp.DefaultLeft
	}
	if vp.DefaultTop != nil {
		cfg.DefaultTop = *vp.DefaultTop
	}
	return cfg
}

// AppSize returns the configured size override for appID, merged over
// fallback one dimension at a time.
func (c *UserConfig) AppSize(appID string, fallback wm.Size) wm.Size {
	app, ok := c.Apps[appID]
	if !ok {
		return fallback
	}
	if app.Width > 0 {
		fallback.Width = app.Width
	}
	if app.Height > 0 {
		fallback.Height = app.Height
	}
	return fallback
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile(configRelPath)
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile(configRelPath)
	}
	return path, nil
}
