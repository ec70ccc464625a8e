package app

import (
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// DockSlot is one laid out dock item.
type DockSlot struct {
	AppID string
	Name  string
	Icon  string
	X     int
	Width int
	// Level is the magnification: 3 under the pointer, 2 and 1 for the
	// neighbours at distance one and two, 0 otherwise.
	Level int
}

// Center returns the slot's middle column.
func (s DockSlot) Center() int { return s.X + s.Width/2 }

// Magnification returns the level of item i when item hovered is under the
// pointer. hovered < 0 means nothing is hovered.
func Magnification(hovered, i int) int {
	if hovered < 0 {
		return 0
	}
	switch d := abs(i - hovered); d {
	case 0:
		return 3
	case 1, 2:
		return 3 - d
	default:
		return 0
	}
}

// magnifiedExtra is the extra width a level adds to an item.
var magnifiedExtra = [...]int{0, 0, 2, 4}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// DockLayout lays out the dock items, centered, for the given hover index.
func (d *Desktop) DockLayout(hovered int) []DockSlot {
	specs := d.Apps.Specs()
	slots := make([]DockSlot, len(specs))

	total := 0
	for i, s := range specs {
		level := Magnification(hovered, i)
		slots[i] = DockSlot{
			AppID: s.ID,
			Name:  s.Name,
			Icon:  s.Icon,
			Width: config.DockItemWidth + magnifiedExtra[level],
			Level: level,
		}
		total += slots[i].Width
	}
	if len(slots) > 1 {
		total += (len(slots) - 1) * config.DockItemGap
	}

	x := (d.Width - total) / 2
	for i := range slots {
		slots[i].X = x
		x += slots[i].Width + config.DockItemGap
	}
	return slots
}

// DockRect returns the dock panel, one column of padding around the items.
// The row above the panel holds the tooltip.
func (d *Desktop) DockRect() wm.Rect {
	slots := d.DockLayout(d.HoverDock)
	if len(slots) == 0 {
		return wm.Rect{}
	}
	first, last := slots[0], slots[len(slots)-1]
	return wm.Rect{
		Left:   first.X - 1,
		Top:    d.Height - config.DockHeight + 1,
		Width:  last.X + last.Width - first.X + 2,
		Height: config.DockHeight - 1,
	}
}

// DockItemAt returns the dock item drawn under the point, or -1.
func (d *Desktop) DockItemAt(x, y int) int {
	return d.itemAt(d.DockLayout(d.HoverDock), x, y)
}

// SetDockHover updates the hovered dock item from a pointer position,
// resolved against the dock at rest.
func (d *Desktop) SetDockHover(x, y int) {
	d.HoverDock = d.itemAt(d.DockLayout(-1), x, y)
}

func (d *Desktop) itemAt(slots []DockSlot, x, y int) int {
	if !d.DockRect().Contains(x, y) {
		return -1
	}
	for i, s := range slots {
		if x >= s.X && x < s.X+s.Width {
			return i
		}
	}
	return -1
}

// dockAnchor is where a window of appID flies to when minimized: the top
// of its dock item at rest.
func (d *Desktop) dockAnchor(appID string) (int, int) {
	for _, s := range d.DockLayout(-1) {
		if s.AppID == appID {
			return s.Center(), d.Height - config.DockHeight
		}
	}
	return d.Width / 2, d.Height - config.DockHeight
}

// Running reports whether appID has a live window, minimized or not.
func (d *Desktop) Running(appID string) bool {
	_, ok := d.WM.Window(appID)
	return ok
}
