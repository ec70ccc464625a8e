package config

import (
	"slices"
	"strings"
)

// Desktop actions that can be bound to keys.
const (
	ActionMinimizeWindow = "minimize_window"
	ActionZoomWindow     = "zoom_window"
	ActionCloseWindow    = "close_window"
	ActionCloseMenus     = "close_menus"
	ActionQuit           = "quit"
)

// ActionDescriptions maps each action to its help text
var ActionDescriptions = map[string]string{
	ActionMinimizeWindow: "Minimize frontmost window",
	ActionZoomWindow:     "Zoom (maximize/restore) frontmost window",
	ActionCloseWindow:    "Close frontmost window",
	ActionCloseMenus:     "Close open menus",
	ActionQuit:           "Quit tuidesk",
}

func getDefaultKeybinds() map[string][]string {
	return map[string][]string{
		ActionMinimizeWindow: {"alt+m"},
		ActionZoomWindow:     {"alt+z"},
		ActionCloseWindow:    {"alt+w"},
		ActionCloseMenus:     {"esc"},
		ActionQuit:           {"ctrl+c"},
	}
}

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves pressed keys to desktop actions.
type KeybindRegistry struct {
	byKey    map[string]string
	byAction map[string][]string
}

// NewKeybindRegistry builds a registry from the user's keybindings.
// A nil config uses the defaults.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	binds := getDefaultKeybinds()
	if cfg != nil && cfg.Keybindings != nil {
		binds = cfg.Keybindings
	}

	r := &KeybindRegistry{
		byKey:    make(map[string]string),
		byAction: make(map[string][]string),
	}
	for action, keys := range binds {
		for _, key := range keys {
			key = normalizeKey(key)
			r.byKey[key] = action
			r.byAction[action] = append(r.byAction[action], key)
		}
	}
	return r
}

// GetAction returns the action bound to key, as reported by
// tea.KeyPressMsg.String, or "" when the key is unbound.
func (r *KeybindRegistry) GetAction(key string) string {
	return r.byKey[normalizeKey(key)]
}

// GetKeys returns the keys bound to action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return slices.Clone(r.byAction[action])
}

// GetKeysForDisplay formats the keys bound to action for menus and help,
// e.g. "Alt+M".
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.byAction[action]
	if len(keys) == 0 {
		return ""
	}
	display := make([]string, len(keys))
	for i, k := range keys {
		display[i] = displayKey(k)
	}
	return strings.Join(display, ", ")
}

// GetKeybindings returns all keybinding sections for help output
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	window := KeybindingSection{Title: "WINDOW"}
	addBinding(&window, registry, ActionMinimizeWindow)
	addBinding(&window, registry, ActionZoomWindow)
	addBinding(&window, registry, ActionCloseWindow)

	desktop := KeybindingSection{Title: "DESKTOP"}
	addBinding(&desktop, registry, ActionCloseMenus)
	addBinding(&desktop, registry, ActionQuit)

	return []KeybindingSection{window, desktop, {
		Title: "MOUSE",
		Bindings: []Keybinding{
			{"Click dock item", "Open or restore app"},
			{"Drag title bar", "Move window"},
			{"Click window", "Bring to front"},
			{"Red / yellow / green", "Close / minimize / zoom"},
		},
	}}
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: ActionDescriptions[action],
		})
	}
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func displayKey(k string) string {
	parts := strings.Split(k, "+")
	for i, p := range parts {
		switch {
		case p == "esc":
			parts[i] = "Esc"
		case len(p) == 1:
			parts[i] = strings.ToUpper(p)
		default:
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "+")
}
