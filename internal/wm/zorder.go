package wm

// ZFloor is the stacking base returned when no window exists.
const ZFloor = 1000

// TopIndex returns the highest z-index among all live windows, in any state,
// or ZFloor when the registry is empty.
func TopIndex(r *Registry) int {
	top := ZFloor
	for _, w := range r.order {
		top = max(top, w.ZIndex)
	}
	return top
}

// bringToFront gives w a z-index above every other live window. Repeated
// calls keep climbing; the counter never reuses a value.
func bringToFront(r *Registry, w *Window) {
	w.ZIndex = TopIndex(r) + 1
}
