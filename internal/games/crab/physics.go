package crab

import "github.com/vovakirdan/flappy-crab/internal/core"

// Physics is the motion state owned by a single entity.
type Physics struct {
	Velocity     core.Vec2
	Acceleration core.Vec2
	Gravity      bool
}

// ResetAcceleration recomputes the acceleration for a new tick.
// It is never accumulated across ticks.
func (p *Physics) ResetAcceleration(g float32) {
	if p.Gravity {
		p.Acceleration = core.V(0, g)
	} else {
		p.Acceleration = core.V(0, 0)
	}
}

// Integrate advances pos by one tick.
//
// Both the acceleration and the velocity are divided by delta before being
// applied. Hosts scale delta so a nominal frame is 1.
// A non-positive delta is a no-op tick.
func (p *Physics) Integrate(pos *core.Vec2, delta float32) {
	if delta <= 0 {
		return
	}
	inv := 1 / delta

	p.Acceleration = p.Acceleration.Scale(inv)
	p.Velocity = p.Velocity.Add(p.Acceleration)
	p.Velocity = p.Velocity.Scale(inv)
	*pos = pos.Add(p.Velocity)
}

// Jump overwrites the motion with an upward impulse.
func (p *Physics) Jump(g, impulse float32) {
	p.Acceleration = core.V(0, -g)
	p.Velocity = core.V(0, -impulse)
}
