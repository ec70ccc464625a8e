package apps

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// fitLines cuts or pads every line to width cells and the block to height
// lines.
func fitLines(lines []string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var sb strings.Builder
	for i := range height {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		sb.WriteString(padRight(line, width))
		if i < height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// padRight truncates s to w cells or pads it with spaces up to w.
func padRight(s string, w int) string {
	if w <= 0 {
		return ""
	}
	sw := ansi.StringWidth(s)
	if sw > w {
		return ansi.Truncate(s, w, "")
	}
	return s + strings.Repeat(" ", w-sw)
}

// padLeft right-aligns s in w cells, keeping its tail when it is too long.
func padLeft(s string, w int) string {
	if w <= 0 {
		return ""
	}
	sw := ansi.StringWidth(s)
	if sw > w {
		return ansi.Cut(s, sw-w, sw)
	}
	return strings.Repeat(" ", w-sw) + s
}

// center places s in the middle of w cells.
func center(s string, w int) string {
	sw := ansi.StringWidth(s)
	if sw >= w {
		return padRight(s, w)
	}
	left := (w - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-sw-left)
}

// wrap hard-wraps s to width cells.
func wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	if s == "" {
		return []string{""}
	}
	return strings.Split(ansi.Hardwrap(s, width, true), "\n")
}
