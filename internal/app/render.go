package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/apps"
	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/pool"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// ghostOpacity is the opacity below which a window draws only its outline.
const ghostOpacity = 0.5

// GetCanvas composes every desktop layer into a canvas of the terminal size.
func (d *Desktop) GetCanvas() *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(d.Width, d.Height)

	layersPtr := pool.GetLayerSlice()
	layers := (*layersPtr)[:0]
	defer pool.PutLayerSlice(layersPtr)

	layers = append(layers, d.renderWallpaper())
	layers = d.appendWindows(layers)
	layers = append(layers, d.renderMenuBar())
	if dropdown := d.renderDropdown(); dropdown != nil {
		layers = append(layers, dropdown)
	}
	layers = append(layers, d.renderDock()...)
	if d.Splash != SplashDone {
		layers = append(layers, d.renderSplash())
	}

	// The compositor places each layer at its X/Y and draws in z order.
	canvas.Compose(lipgloss.NewCompositor(layers...))
	*layersPtr = layers
	return canvas
}

// Render returns the composed frame as a string.
func (d *Desktop) Render() string {
	return lipgloss.Sprint(d.GetCanvas().Render())
}

func (d *Desktop) View() tea.View {
	var view tea.View
	view.SetContent(d.Render())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion
	return view
}

func (d *Desktop) renderWallpaper() *lipgloss.Layer {
	style := lipgloss.NewStyle().Background(theme.DesktopBg()).Foreground(theme.DesktopPattern())

	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	row := make([]byte, 0, d.Width)
	for y := range d.Height {
		row = row[:0]
		for x := range d.Width {
			if y%4 == 2 && (x+y)%8 == 0 {
				row = append(row, '.')
			} else {
				row = append(row, ' ')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(style.Render(string(row)))
	}
	return lipgloss.NewLayer(sb.String()).X(0).Y(0).Z(config.ZDesktop).ID("wallpaper")
}

// appendWindows adds a layer per visible window, back to front, followed by
// the ghosts of windows still fading out after a close.
func (d *Desktop) appendWindows(layers []*lipgloss.Layer) []*lipgloss.Layer {
	front, _ := d.WM.Frontmost()

	for _, w := range d.WM.Stack() {
		if !w.Visible {
			continue
		}
		frame := wm.Frame{Rect: w.Geometry, Opacity: 1}
		if f, ok := d.Animator.Frame(w.AppID); ok {
			frame = f
		}

		c := chrome{
			title:   w.Title(),
			width:   frame.Width,
			height:  frame.Height,
			focused: w == front,
			ghost:   frame.Opacity < ghostOpacity,
		}
		body := ""
		if inst, ok := w.Content.(apps.Instance); ok && !c.ghost {
			body = inst.View(max(frame.Width-2, 0), max(frame.Height-2, 0))
		}

		if layer := d.windowLayer(renderChrome(c, body), frame.Rect, w.ZIndex, w.ID); layer != nil {
			layers = append(layers, layer)
		}
	}

	top := d.WM.TopIndex()
	for i, anim := range d.Animator.Closing() {
		frame := anim.Current()
		title := anim.AppID
		if spec, ok := d.Apps.Spec(anim.AppID); ok {
			title = spec.Name
		}
		c := chrome{title: title, width: frame.Width, height: frame.Height, ghost: true}
		if layer := d.windowLayer(renderChrome(c, ""), frame.Rect, top+1+i, "closing-"+anim.AppID); layer != nil {
			layers = append(layers, layer)
		}
	}
	return layers
}

func (d *Desktop) windowLayer(content string, r wm.Rect, z int, id string) *lipgloss.Layer {
	clipped, x, y := clipWindowContent(content, r.Left, r.Top, d.Width, d.Height)
	if clipped == "" {
		return nil
	}
	return lipgloss.NewLayer(clipped).X(x).Y(y).Z(z).ID(id)
}

// menuBarRight is the status text on the right of the menu bar.
func (d *Desktop) menuBarRight() string {
	var parts []string
	if config.ShowSysInfo {
		parts = append(parts, d.GetCPUGraph(), d.GetMemUsage())
	}
	if !config.HideClock {
		parts = append(parts, d.Clock.Format("15:04"))
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ") + " "
}

func (d *Desktop) renderMenuBar() *lipgloss.Layer {
	base := lipgloss.NewStyle().Background(theme.MenuBarBg()).Foreground(theme.MenuBarFg())
	activeBg, activeFg := theme.MenuBarActive()

	menus := d.Menus()
	spans := MenuSpans(menus)

	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	sb.WriteString(base.Render(" "))
	used := 1
	for i, m := range menus {
		style := base.Bold(m.Bold)
		if i == d.OpenMenu {
			style = style.Background(activeBg).Foreground(activeFg)
		}
		if used+spans[i].Width > d.Width {
			break
		}
		sb.WriteString(style.Render(" " + m.Title + " "))
		used += spans[i].Width
	}

	right := d.menuBarRight()
	rw := ansi.StringWidth(right)
	if used+rw > d.Width {
		right, rw = "", 0
	}
	sb.WriteString(base.Render(strings.Repeat(" ", max(d.Width-used-rw, 0))))
	if right != "" {
		sb.WriteString(base.Foreground(theme.MenuBarDimmed()).Render(right))
	}

	return lipgloss.NewLayer(sb.String()).X(0).Y(0).Z(config.ZMenuBar).ID("menubar")
}

func (d *Desktop) renderDropdown() *lipgloss.Layer {
	r, ok := d.DropdownRect()
	if !ok {
		return nil
	}
	items := d.Menus()[d.OpenMenu].Items

	base := lipgloss.NewStyle().Background(theme.DropdownBg()).Foreground(theme.DropdownFg())
	hoverBg, hoverFg := theme.DropdownHover()

	lines := make([]string, len(items))
	for i, item := range items {
		if item.Separator {
			lines[i] = base.Foreground(theme.DropdownSeparator()).
				Render(" " + strings.Repeat("─", r.Width-2) + " ")
			continue
		}

		shortcut := ""
		if item.Action != "" {
			shortcut = d.Keybinds.GetKeysForDisplay(item.Action) + " "
		}
		sw := ansi.StringWidth(shortcut)

		style := base
		shortcutStyle := base.Foreground(theme.DropdownShortcut())
		switch {
		case item.Disabled:
			style = style.Foreground(theme.MenuBarDimmed())
			shortcutStyle = style
		case i == d.HoverMenuItem:
			style = style.Background(hoverBg).Foreground(hoverFg)
			shortcutStyle = style
		}
		lines[i] = style.Render(padCells(" "+item.Label, r.Width-sw)) + shortcutStyle.Render(shortcut)
	}

	return lipgloss.NewLayer(strings.Join(lines, "\n")).
		X(r.Left).Y(r.Top).Z(config.ZDropdown).ID("dropdown")
}

func (d *Desktop) renderDock() []*lipgloss.Layer {
	slots := d.DockLayout(d.HoverDock)
	if len(slots) == 0 {
		return nil
	}
	rect := d.DockRect()

	base := lipgloss.NewStyle().Background(theme.DockBg()).Foreground(theme.DockFg())
	running := base.Foreground(theme.DockRunning())

	var icons, dots strings.Builder
	icons.WriteString(base.Render(" "))
	dots.WriteString(base.Render(" "))
	for i, s := range slots {
		if i > 0 {
			gap := strings.Repeat(" ", config.DockItemGap)
			icons.WriteString(base.Render(gap))
			dots.WriteString(base.Render(gap))
		}

		style := base
		switch s.Level {
		case 3:
			style = style.Bold(true).Foreground(theme.DockHighlight()).Background(theme.Accent())
		case 2:
			style = style.Bold(true).Foreground(theme.DockHighlight())
		case 1:
			style = style.Foreground(theme.DockHighlight())
		}
		icons.WriteString(style.Render(centerCells(s.Icon, s.Width)))

		if d.Running(s.AppID) {
			dots.WriteString(running.Render(centerCells("•", s.Width)))
		} else {
			dots.WriteString(base.Render(strings.Repeat(" ", s.Width)))
		}
	}
	icons.WriteString(base.Render(" "))
	dots.WriteString(base.Render(" "))

	content, x, y := clipWindowContent(icons.String()+"\n"+dots.String(), rect.Left, rect.Top, d.Width, d.Height)
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(content).X(x).Y(y).Z(config.ZDock).ID("dock"),
	}

	if d.HoverDock >= 0 && d.HoverDock < len(slots) {
		s := slots[d.HoverDock]
		bg, fg := theme.DockTooltip()
		tip := " " + s.Name + " "
		tw := ansi.StringWidth(tip)
		tx := max(min(s.Center()-tw/2, d.Width-tw), 0)
		layers = append(layers, lipgloss.NewLayer(
			lipgloss.NewStyle().Background(bg).Foreground(fg).Render(tip),
		).X(tx).Y(rect.Top-1).Z(config.ZTooltip).ID("tooltip"))
	}
	return layers
}

var splashLogo = []string{
	"  ▄▄▄▄▄  ",
	" ███████ ",
	" ███████ ",
	"  ▀▀▀▀▀  ",
}

const splashBarWidth = 24

func (d *Desktop) renderSplash() *lipgloss.Layer {
	bg := lipgloss.NewStyle().Background(theme.SplashBg())
	fg := bg.Foreground(theme.SplashFg())
	if d.Splash == SplashExiting {
		fg = fg.Faint(true)
	}

	filled := int(d.SplashProgress() * splashBarWidth)
	bar := fg.Render(strings.Repeat("━", filled)) +
		bg.Foreground(theme.SplashProgress()).Render(strings.Repeat("━", splashBarWidth-filled))

	block := make([]string, 0, len(splashLogo)+4)
	for _, l := range splashLogo {
		block = append(block, fg.Render(l))
	}
	block = append(block, "", fg.Bold(true).Render("tuidesk"), "", bar)

	top := max((d.Height-len(block))/2, 0)
	lines := make([]string, d.Height)
	for y := range lines {
		row := ""
		if i := y - top; i >= 0 && i < len(block) {
			row = block[i]
		}
		rw := ansi.StringWidth(row)
		left := max((d.Width-rw)/2, 0)
		lines[y] = bg.Render(strings.Repeat(" ", left)) + row +
			bg.Render(strings.Repeat(" ", max(d.Width-rw-left, 0)))
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).X(0).Y(0).Z(config.ZSplash).ID("splash")
}
