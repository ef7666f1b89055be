package camera

// DragTracker turns absolute cursor positions into look offsets while a drag is
// active. The first sample of a drag only records the position so the view
// doesn't jump.
type DragTracker struct {
	dragging bool
	lastX    float32
	lastY    float32
}

// Begin starts a drag at the given cursor position.
func (d *DragTracker) Begin(x, y float32) {
	d.dragging = true
	d.lastX = x
	d.lastY = y
}

// End stops the current drag.
func (d *DragTracker) End() {
	d.dragging = false
}

// Dragging reports whether a drag is active.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}

// Move records a cursor position and returns the look offset since the last
// one. Y is reversed because screen coordinates grow downwards.
func (d *DragTracker) Move(x, y float32) (xOffset, yOffset float32, ok bool) {
	if !d.dragging {
		d.lastX = x
		d.lastY = y
		return 0, 0, false
	}
	xOffset = x - d.lastX
	yOffset = d.lastY - y
	d.lastX = x
	d.lastY = y
	return xOffset, yOffset, true
}
