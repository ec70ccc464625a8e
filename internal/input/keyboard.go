package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

// HandleKeyPress resolves a key through the keybind registry. Quit always
// wins; Esc closes an open dropdown; window actions apply to the frontmost
// window; everything else is typed into the frontmost app.
func HandleKeyPress(msg tea.KeyPressMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	action := d.Keybinds.GetAction(msg.String())
	if action == config.ActionQuit {
		d.Logger.Info("quit requested")
		return d, tea.Quit
	}

	if !d.Interactive() {
		d.DismissSplash()
		return d, nil
	}

	switch action {
	case config.ActionCloseMenus:
		if d.OpenMenu >= 0 {
			d.CloseMenus()
			return d, nil
		}
	case config.ActionMinimizeWindow:
		d.MinimizeFrontmost()
		return d, nil
	case config.ActionZoomWindow:
		d.ZoomFrontmost()
		return d, nil
	case config.ActionCloseWindow:
		d.CloseFrontmost()
		return d, nil
	}

	if _, inst, ok := d.Frontmost(); ok && inst != nil {
		inst.HandleKey(msg)
	}
	return d, nil
}
