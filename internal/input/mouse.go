package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Gaurav-Gosain/tuidesk/internal/app"
	"github.com/Gaurav-Gosain/tuidesk/internal/apps"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// handleMouseClick handles mouse click events. Hit testing goes top down:
// splash, menu bar, open dropdown, dock, then windows.
func handleMouseClick(msg tea.MouseClickMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return d, nil
	}
	X, Y := mouse.X, mouse.Y

	if !d.Interactive() {
		d.DismissSplash()
		return d, nil
	}

	// Menu bar
	if Y == 0 {
		if i := d.MenuAt(X); i >= 0 {
			d.ToggleMenu(i)
		} else {
			d.CloseMenus()
		}
		return d, nil
	}

	// A click outside an open dropdown closes it and still reaches whatever
	// is underneath
	if d.OpenMenu >= 0 {
		if row, ok := d.DropdownItemAt(X, Y); ok {
			return d, d.ActivateMenuItem(row)
		}
		d.CloseMenus()
	}

	// Dock
	if d.DockRect().Contains(X, Y) {
		if i := d.DockItemAt(X, Y); i >= 0 {
			spec := d.Apps.Specs()[i]
			d.WM.Open(spec.ID)
		}
		return d, nil
	}

	w, ok := d.WM.WindowAt(X, Y)
	if !ok {
		return d, nil
	}

	switch zone := app.HitTest(w, X, Y); zone {
	case wm.HitClose:
		d.WM.Close(w.AppID)
	case wm.HitMinimize:
		d.WM.Minimize(w.AppID)
	case wm.HitMaximize:
		d.WM.ToggleMaximize(w.AppID)
	case wm.HitTitleBar:
		d.WM.BeginDrag(w.AppID, X, Y, zone)
	case wm.HitBody:
		d.WM.Focus(w.AppID)
		if inst, ok := w.Content.(apps.Instance); ok {
			bx, by := app.BodyOrigin(w)
			bw, bh := app.BodySize(w)
			if X >= bx && Y >= by && X-bx < bw && Y-by < bh {
				inst.HandleClick(X-bx, Y-by, bw, bh)
			}
		}
	}
	return d, nil
}

// handleMouseMotion moves the dragged window, or updates hover state.
func handleMouseMotion(msg tea.MouseMotionMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	mouse := msg.Mouse()
	X, Y := mouse.X, mouse.Y

	if _, dragging := d.WM.DragTarget(); dragging {
		d.WM.UpdateDrag(X, Y)
		return d, nil
	}
	if !d.Interactive() {
		return d, nil
	}

	d.HoverMenuItem = -1
	if d.OpenMenu >= 0 {
		if Y == 0 {
			// Sliding along the menu bar switches the open dropdown
			if i := d.MenuAt(X); i >= 0 && i != d.OpenMenu {
				d.ToggleMenu(i)
			}
		} else if row, ok := d.DropdownItemAt(X, Y); ok {
			d.HoverMenuItem = row
		}
	}

	d.SetDockHover(X, Y)
	return d, nil
}

// handleMouseRelease ends any drag.
func handleMouseRelease(_ tea.MouseReleaseMsg, d *app.Desktop) (*app.Desktop, tea.Cmd) {
	d.WM.EndDrag()
	return d, nil
}
