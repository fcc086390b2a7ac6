package crab

import (
	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/config"
	"github.com/vovakirdan/flappy-crab/internal/core"
)

// PlayerEntity is the crab. Gravity is always on.
type PlayerEntity struct {
	Position core.Vec2
	Sprites  [2]atlas.Sprite // Rising and falling frames
	Physics  Physics
	// CanJump debounces the jump key: it re-arms only after a tick in which
	// the key is released.
	CanJump bool
	inset   float32
}

// NewPlayer creates the crab at its spawn point.
func NewPlayer(cfg config.Config, a *atlas.Atlas) *PlayerEntity {
	return &PlayerEntity{
		Position: core.V(cfg.Player.X, cfg.Player.StartY),
		Sprites:  [2]atlas.Sprite{a.CreateSprite(atlas.Crab0), a.CreateSprite(atlas.Crab1)},
		Physics:  Physics{Gravity: true},
		CanJump:  true,
		inset:    cfg.Player.HitboxInset,
	}
}

// Bounds returns the crab's collision box. The sprite is drawn centered on
// Position, and the box is shrunk by the configured inset.
func (p *PlayerEntity) Bounds() core.AABB {
	s := p.Sprites[0]
	return core.AABB{
		X: p.Position.X - s.Width/2,
		Y: p.Position.Y - s.Height/2,
		W: s.Width,
		H: s.Height,
	}.Inset(p.inset)
}

// Rising reports whether the crab is moving up.
func (p *PlayerEntity) Rising() bool {
	return p.Physics.Velocity.Y < 0
}

// Draw emits the crab's draw command, tilted by its vertical speed.
func (p *PlayerEntity) Draw() DrawCommand {
	s := p.Sprites[1]
	if p.Rising() {
		s = p.Sprites[0]
	}
	return DrawCommand{
		Sprite:   s,
		Dest:     p.Position,
		Scale:    s.Scale,
		Offset:   core.V(0.5, 0.5),
		Rotation: rescaleRange(p.Physics.Velocity.Y, -7, 7, -0.6, 0.6),
	}
}

// handleInput applies the jump key. Returns true if a jump was triggered.
func (p *PlayerEntity) handleInput(pressed bool, cfg config.PhysicsConfig) bool {
	if !pressed {
		p.CanJump = true
		return false
	}
	if !p.CanJump {
		return false
	}
	p.Physics.Jump(cfg.Gravity, cfg.JumpImpulse)
	p.CanJump = false
	return true
}

// autoJump bounces the crab on the start screen once it sinks below y.
func (p *PlayerEntity) autoJump(y float32, cfg config.PhysicsConfig) {
	if p.Position.Y > y {
		p.Physics.Jump(cfg.Gravity, cfg.JumpImpulse)
	}
}

// clampTop keeps the crab from leaving through the top of the screen.
func (p *PlayerEntity) clampTop(top float32) {
	if p.Position.Y < top {
		p.Position.Y = top
	}
}
