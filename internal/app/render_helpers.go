package app

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

func getBorder() lipgloss.Border {
	return config.GetBorderForStyle()
}

// padCells truncates s to w cells or pads it with spaces up to w.
func padCells(s string, w int) string {
	if w <= 0 {
		return ""
	}
	sw := ansi.StringWidth(s)
	if sw > w {
		return ansi.Truncate(s, w, "")
	}
	return s + strings.Repeat(" ", w-sw)
}

// centerCells places s in the middle of w cells.
func centerCells(s string, w int) string {
	sw := ansi.StringWidth(s)
	if sw >= w {
		return padCells(s, w)
	}
	left := (w - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-sw-left)
}

// fitBlock returns exactly h lines of exactly w cells from s.
func fitBlock(s string, w, h int) []string {
	if h <= 0 {
		return nil
	}
	var src []string
	if s != "" {
		src = strings.Split(s, "\n")
	}
	lines := make([]string, h)
	for i := range lines {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		lines[i] = padCells(line, w)
	}
	return lines
}

// clipWindowContent clips a rendered block to the viewport. It returns the
// visible part and where to place it; an empty string means nothing shows.
func clipWindowContent(content string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(content, "\n")
	windowHeight := len(lines)

	windowWidth := 0
	if len(lines) > 0 {
		windowWidth = ansi.StringWidth(lines[0])
	}

	if x+windowWidth <= 0 || x >= viewportWidth || y+windowHeight <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	clipTop := 0
	clipLeft := 0
	finalX := x
	finalY := y

	if y < 0 {
		clipTop = -y
		finalY = 0
	}

	if x < 0 {
		clipLeft = -x
		finalX = 0
	}

	visibleLines := lines[clipTop:]

	maxVisibleLines := viewportHeight - finalY
	if maxVisibleLines < len(visibleLines) {
		visibleLines = visibleLines[:maxVisibleLines]
	}

	maxWidth := viewportWidth - finalX
	if clipLeft > 0 || windowWidth-clipLeft > maxWidth {
		clippedLines := make([]string, len(visibleLines))
		for i, line := range visibleLines {
			clippedLines[i] = ansi.Cut(line, clipLeft, clipLeft+maxWidth)
		}
		return strings.Join(clippedLines, "\n"), finalX, finalY
	}

	return strings.Join(visibleLines, "\n"), finalX, finalY
}
