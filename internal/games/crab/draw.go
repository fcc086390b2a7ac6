package crab

import (
	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/core"
)

// DrawCommand asks the renderer to place one sprite. The renderer batches and
// presents them; the simulation never touches pixels.
type DrawCommand struct {
	Sprite   atlas.Sprite
	Dest     core.Vec2
	Scale    core.Vec2
	Offset   core.Vec2 // Anchor as a fraction of the sprite size
	Rotation float32   // Radians
	FlipY    bool
}

// Bounds returns the area covered by the command, ignoring rotation.
func (c DrawCommand) Bounds() core.AABB {
	w, h := c.Sprite.Width, c.Sprite.Height
	b := core.AABB{
		X: c.Dest.X - c.Offset.X*w,
		Y: c.Dest.Y - c.Offset.Y*h,
		W: w,
		H: h,
	}
	if c.FlipY {
		b.Y -= h
	}
	return b
}

// rescaleRange maps value from [oldMin, oldMax] into [newMin, newMax],
// clamping at the ends.
func rescaleRange(value, oldMin, oldMax, newMin, newMax float32) float32 {
	oldRange := oldMax - oldMin
	newRange := newMax - newMin
	return ((core.ClampF(value, oldMin, oldMax)-oldMin)*newRange)/oldRange + newMin
}
