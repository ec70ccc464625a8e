package wm

// Rect is a window's position and size in viewport units.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Left+r.Width &&
		y >= r.Top && y < r.Top+r.Height
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// ClampConfig holds the viewport constraints applied to dragged windows.
type ClampConfig struct {
	// MinVisibleWidth is how much of a window must stay on screen horizontally.
	MinVisibleWidth int
	// MinVisibleHeight is how much of a window must stay on screen vertically.
	MinVisibleHeight int
	// TitlebarHeight is the height of the desktop menu bar windows may not cover.
	TitlebarHeight int
}

// DefaultClampConfig returns the stock constraints (200, 100, 28).
func DefaultClampConfig() ClampConfig {
	return ClampConfig{
		MinVisibleWidth:  200,
		MinVisibleHeight: 100,
		TitlebarHeight:   28,
	}
}

// Clamp constrains a proposed top-left corner to the visible area.
// The lower bound is applied before the upper bound, so on a viewport smaller
// than the minimum visible area the upper bound wins.
func Clamp(left, top, viewportWidth, viewportHeight int, c ClampConfig) (int, int) {
	left = min(max(left, 0), viewportWidth-c.MinVisibleWidth)
	top = min(max(top, c.TitlebarHeight), viewportHeight-c.MinVisibleHeight)
	return left, top
}
