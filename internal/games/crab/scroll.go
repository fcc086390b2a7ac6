package crab

// Scroll moves an entity that has left the screen back to the far end of
// its lane.
type Scroll struct {
	JumpDistance float32
}

// offLeft reports whether a sprite of the given width at x is fully past the
// left edge of the screen.
func offLeft(x, width float32) bool {
	return width+x < 0
}
