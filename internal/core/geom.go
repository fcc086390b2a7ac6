// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Vec2 is a 2D float pair used for positions, velocities and accelerations.
type Vec2 struct {
	X, Y float32
}

// V creates a new vector.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AABB is an axis-aligned bounding box in world units.
type AABB struct {
	X, Y float32 // Top-left corner
	W, H float32
}

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float32 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float32 {
	return b.Y + b.H
}

// Intersects returns true if the boxes overlap.
// Boxes that only touch along an edge do not intersect.
func (b AABB) Intersects(other AABB) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Inset shrinks the box by d on every side. The size never goes negative.
func (b AABB) Inset(d float32) AABB {
	w := b.W - 2*d
	h := b.H - 2*d
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return AABB{X: b.X + d, Y: b.Y + d, W: w, H: h}
}

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float32 value to be within [min, max].
func ClampF(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
