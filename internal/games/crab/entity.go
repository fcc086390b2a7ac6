package crab

import (
	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/core"
)

// ScoringPipe tracks whether a pipe tip has credited the player this pass.
type ScoringPipe int

const (
	// Dormant segments carry no scoring state.
	Dormant ScoringPipe = iota
	ReadyToScore
	Scored
)

// String returns a human-readable name for the scoring state.
func (s ScoringPipe) String() string {
	switch s {
	case Dormant:
		return "Dormant"
	case ReadyToScore:
		return "ReadyToScore"
	case Scored:
		return "Scored"
	default:
		return "Unknown"
	}
}

// Drawable is implemented by every entity kind.
type Drawable interface {
	Draw() DrawCommand
}

// PipeEntity is one stacked segment of a pipe obstacle.
type PipeEntity struct {
	Position core.Vec2
	Sprite   atlas.Sprite
	Scroll   Scroll
	Scoring  ScoringPipe
	Tip      bool
}

// Bounds returns the segment's collision box.
func (p *PipeEntity) Bounds() core.AABB {
	return p.Sprite.Bounds(p.Position)
}

// Draw emits the segment's draw command.
func (p *PipeEntity) Draw() DrawCommand {
	return DrawCommand{
		Sprite: p.Sprite,
		Dest:   p.Position,
		Scale:  p.Sprite.Scale,
		FlipY:  p.Sprite.Flipped(),
	}
}

// move translates the segment left by speed and recycles it once it is fully
// off screen.
func (p *PipeEntity) move(speed float32, tracker *PipeTracker) {
	p.Position.X -= speed
	p.recycle(tracker)
}

// recycle moves the segment to the far end of its lane with a fresh height.
func (p *PipeEntity) recycle(tracker *PipeTracker) bool {
	if !offLeft(p.Position.X, p.Sprite.Width) {
		return false
	}
	p.Position.Y += tracker.PipeDifference()
	if p.Scoring != Dormant {
		p.Scoring = ReadyToScore
	}
	p.Position.X += p.Scroll.JumpDistance
	return true
}

// checkScore marks a ready tip as scored once it passes lineX.
// Returns true exactly once per pass.
func (p *PipeEntity) checkScore(lineX float32) bool {
	if p.Scoring != ReadyToScore || p.Position.X >= lineX {
		return false
	}
	p.Scoring = Scored
	return true
}

// TileEntity is a floor tile. Tiles only move when scrolling is enabled.
type TileEntity struct {
	Position core.Vec2
	Sprite   atlas.Sprite
	Scroll   *Scroll
}

// Draw emits the tile's draw command.
func (t *TileEntity) Draw() DrawCommand {
	return DrawCommand{
		Sprite: t.Sprite,
		Dest:   t.Position,
		Scale:  t.Sprite.Scale,
	}
}

// move scrolls the tile left and wraps it around its lane.
func (t *TileEntity) move(speed float32) {
	if t.Scroll == nil {
		return
	}
	t.Position.X -= speed
	if offLeft(t.Position.X, t.Sprite.Width) {
		t.Position.X += t.Scroll.JumpDistance
	}
}
