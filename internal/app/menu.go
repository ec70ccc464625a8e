package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// SystemMenuTitle is the leftmost menu bar title.
const SystemMenuTitle = "◆"

// MenuItem is one dropdown row.
type MenuItem struct {
	Label     string
	Separator bool
	Disabled  bool
	// Action names the keybinding whose keys are shown as the shortcut.
	Action string
	Run    func(d *Desktop) tea.Cmd
}

// Menu is a menu bar title with its dropdown.
type Menu struct {
	Title string
	Bold  bool
	Items []MenuItem
}

// MenuSpan is where a menu title sits on the menu bar.
type MenuSpan struct {
	X     int
	Width int
}

func separator() MenuItem { return MenuItem{Separator: true} }

func openApp(appID string) func(d *Desktop) tea.Cmd {
	return func(d *Desktop) tea.Cmd {
		d.WM.Open(appID)
		return nil
	}
}

// Menus returns the menu bar contents. The app menu and the Window menu
// follow the frontmost window.
func (d *Desktop) Menus() []Menu {
	name := d.ActiveAppName()
	_, hasFront := d.WM.Frontmost()

	return []Menu{
		{
			Title: SystemMenuTitle,
			Items: []MenuItem{
				{Label: "About tuidesk", Disabled: true},
				separator(),
				{Label: "Quit tuidesk", Action: config.ActionQuit, Run: func(*Desktop) tea.Cmd { return tea.Quit }},
			},
		},
		{
			Title: name,
			Bold:  true,
			Items: []MenuItem{
				{Label: "About " + name, Disabled: true},
				separator(),
				{Label: "Quit " + name, Disabled: !hasFront, Run: func(d *Desktop) tea.Cmd {
					d.CloseFrontmost()
					return nil
				}},
			},
		},
		{
			Title: "File",
			Items: []MenuItem{
				{Label: "New Finder Window", Run: openApp("finder")},
				{Label: "New Terminal Window", Run: openApp("terminal")},
				separator(),
				{Label: "Close Window", Action: config.ActionCloseWindow, Disabled: !hasFront, Run: func(d *Desktop) tea.Cmd {
					d.CloseFrontmost()
					return nil
				}},
			},
		},
		{
			Title: "Edit",
			Items: []MenuItem{
				{Label: "Undo", Disabled: true},
				{Label: "Redo", Disabled: true},
				separator(),
				{Label: "Cut", Disabled: true},
				{Label: "Copy", Disabled: true},
				{Label: "Paste", Disabled: true},
			},
		},
		{
			Title: "Window",
			Items: []MenuItem{
				{Label: "Minimize", Action: config.ActionMinimizeWindow, Disabled: !hasFront, Run: func(d *Desktop) tea.Cmd {
					d.MinimizeFrontmost()
					return nil
				}},
				{Label: "Zoom", Action: config.ActionZoomWindow, Disabled: !hasFront, Run: func(d *Desktop) tea.Cmd {
					d.ZoomFrontmost()
					return nil
				}},
				separator(),
				{Label: "Close", Action: config.ActionCloseWindow, Disabled: !hasFront, Run: func(d *Desktop) tea.Cmd {
					d.CloseFrontmost()
					return nil
				}},
			},
		},
		{
			Title: "Help",
			Items: []MenuItem{
				{Label: "tuidesk Help", Disabled: true},
			},
		},
	}
}

// MenuSpans lays out the menu titles left to right, one padding cell on
// each side of a title.
func MenuSpans(menus []Menu) []MenuSpan {
	spans := make([]MenuSpan, len(menus))
	x := 1
	for i, m := range menus {
		w := ansi.StringWidth(m.Title) + 2
		spans[i] = MenuSpan{X: x, Width: w}
		x += w
	}
	return spans
}

// MenuAt returns the menu title under column x on the menu bar, or -1.
func (d *Desktop) MenuAt(x int) int {
	for i, s := range MenuSpans(d.Menus()) {
		if x >= s.X && x < s.X+s.Width {
			return i
		}
	}
	return -1
}

// ToggleMenu opens menu i, or closes it when it is already open. Only one
// dropdown is open at a time.
func (d *Desktop) ToggleMenu(i int) {
	if d.OpenMenu == i {
		d.CloseMenus()
		return
	}
	d.OpenMenu = i
	d.HoverMenuItem = -1
}

// CloseMenus closes any open dropdown.
func (d *Desktop) CloseMenus() {
	d.OpenMenu = -1
	d.HoverMenuItem = -1
}

// DropdownRect returns the open dropdown's rectangle.
func (d *Desktop) DropdownRect() (wm.Rect, bool) {
	menus := d.Menus()
	if d.OpenMenu < 0 || d.OpenMenu >= len(menus) {
		return wm.Rect{}, false
	}
	span := MenuSpans(menus)[d.OpenMenu]
	x := max(min(span.X, d.Width-config.DropdownWidth), 0)
	return wm.Rect{
		Left:   x,
		Top:    config.MenuBarHeight,
		Width:  config.DropdownWidth,
		Height: len(menus[d.OpenMenu].Items),
	}, true
}

// DropdownItemAt returns the row of the open dropdown under the point.
func (d *Desktop) DropdownItemAt(x, y int) (int, bool) {
	r, ok := d.DropdownRect()
	if !ok || !r.Contains(x, y) {
		return -1, false
	}
	return y - r.Top, true
}

// ActivateMenuItem runs row i of the open dropdown and closes the menus.
// Separators and disabled rows do nothing and keep the dropdown open.
func (d *Desktop) ActivateMenuItem(i int) tea.Cmd {
	menus := d.Menus()
	if d.OpenMenu < 0 || d.OpenMenu >= len(menus) {
		return nil
	}
	items := menus[d.OpenMenu].Items
	if i < 0 || i >= len(items) {
		return nil
	}
	item := items[i]
	if item.Separator || item.Disabled || item.Run == nil {
		return nil
	}
	d.CloseMenus()
	d.Logger.Debug("menu item", "label", item.Label)
	return item.Run(d)
}
