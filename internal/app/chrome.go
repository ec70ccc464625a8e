package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
	"github.com/Gaurav-Gosain/tuidesk/internal/theme"
	"github.com/Gaurav-Gosain/tuidesk/internal/wm"
)

// buttonsWidth is the title bar span holding the three window controls,
// " ● ● ● " right after the left corner.
const buttonsWidth = 7

// HitTest says which part of w the point lands on. The top border is the
// title bar; the controls sit at its left end, close first.
func HitTest(w *wm.Window, x, y int) wm.HitZone {
	g := w.Geometry
	if !g.Contains(x, y) {
		return wm.HitNone
	}
	if y != g.Top {
		return wm.HitBody
	}
	switch x - g.Left {
	case 1, 2:
		return wm.HitClose
	case 3, 4:
		return wm.HitMinimize
	case 5, 6:
		return wm.HitMaximize
	}
	return wm.HitTitleBar
}

// BodyOrigin returns the top-left cell of w's content area.
func BodyOrigin(w *wm.Window) (int, int) {
	return w.Geometry.Left + 1, w.Geometry.Top + 1
}

// BodySize returns the size of w's content area.
func BodySize(w *wm.Window) (int, int) {
	return max(w.Geometry.Width-2, 0), max(w.Geometry.Height-2, 0)
}

// chrome is what a window frame needs to draw itself.
type chrome struct {
	title   string
	width   int
	height  int
	focused bool
	// ghost frames draw the outline over a blank body, for fading windows
	ghost bool
}

// renderChrome draws a window frame of c.width x c.height around body,
// which is fitted to the content area.
func renderChrome(c chrome, body string) string {
	if c.width < 2 || c.height < 2 {
		return lipgloss.NewStyle().Foreground(theme.BorderUnfocused()).Render("▪")
	}

	border := getBorder()
	borderColor := theme.BorderUnfocused()
	if c.focused {
		borderColor = theme.BorderFocused()
	}
	if c.ghost {
		borderColor = theme.Muted()
	}
	bs := lipgloss.NewStyle().Foreground(borderColor)

	innerWidth := c.width - 2
	var sb strings.Builder
	sb.WriteString(bs.Render(border.TopLeft))
	sb.WriteString(titleBar(c, border, bs, innerWidth))
	sb.WriteString(bs.Render(border.TopRight))

	lines := fitBlock(body, innerWidth, c.height-2)
	if c.ghost {
		fill := lipgloss.NewStyle().Background(theme.WindowBg()).Render(strings.Repeat(" ", innerWidth))
		for i := range lines {
			lines[i] = fill
		}
	}
	left, right := bs.Render(border.Left), bs.Render(border.Right)
	for _, line := range lines {
		sb.WriteByte('\n')
		sb.WriteString(left)
		sb.WriteString(line)
		sb.WriteString(right)
	}

	sb.WriteByte('\n')
	sb.WriteString(bs.Render(border.BottomLeft + strings.Repeat(border.Bottom, innerWidth) + border.BottomRight))
	return sb.String()
}

// titleBar renders the inside of the top border: the controls then the
// title, centered in what is left.
func titleBar(c chrome, border lipgloss.Border, bs lipgloss.Style, width int) string {
	if width < buttonsWidth+2 {
		return bs.Render(strings.Repeat(border.Top, max(width, 0)))
	}

	closeColor, minColor, maxColor := theme.ButtonClose(), theme.ButtonMinimize(), theme.ButtonMaximize()
	if !c.focused || c.ghost {
		closeColor, minColor, maxColor = theme.Muted(), theme.Muted(), theme.Muted()
	}
	buttons := " " +
		lipgloss.NewStyle().Foreground(closeColor).Render(config.WindowButtonClose) + " " +
		lipgloss.NewStyle().Foreground(minColor).Render(config.WindowButtonMinimize) + " " +
		lipgloss.NewStyle().Foreground(maxColor).Render(config.WindowButtonMaximize) + " "

	rest := width - buttonsWidth
	title := ansi.Truncate(c.title, max(rest-2, 0), "…")
	label := " " + title + " "
	if title == "" {
		label = ""
	}
	fill := rest - ansi.StringWidth(label)
	leftFill := fill / 2
	rightFill := fill - leftFill

	_, titleFg := theme.TitleBarFocused()
	if !c.focused {
		_, titleFg = theme.TitleBarUnfocused()
	}
	titleStyle := lipgloss.NewStyle().Foreground(titleFg).Bold(c.focused)

	return buttons +
		bs.Render(strings.Repeat(border.Top, leftFill)) +
		titleStyle.Render(label) +
		bs.Render(strings.Repeat(border.Top, rightFill))
}
