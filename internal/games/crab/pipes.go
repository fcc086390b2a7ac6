package crab

import (
	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/config"
	"github.com/vovakirdan/flappy-crab/internal/core"
)

// PipeLayout describes the horizontal arrangement of the pipe lane.
type PipeLayout struct {
	Width     float32 // Width of one pipe
	Pitch     float32 // Distance between consecutive pipes
	TotalDist float32 // Lane length: a recycled segment jumps this far
}

// NewPipeLayout computes the lane from the tip sprite and config.
func NewPipeLayout(cfg config.PipesConfig, tip atlas.Sprite) PipeLayout {
	space := tip.Width * cfg.SpaceMultiplier
	pitch := tip.Width + space
	return PipeLayout{
		Width:     tip.Width,
		Pitch:     pitch,
		TotalDist: pitch * float32(cfg.Count),
	}
}

// CreatePipes builds every segment of every pipe, asking the tracker for one
// initial top per pipe.
//
// Each logical pipe is a bottom half (tip at top, bodies below) and a top
// half (flipped tip ending at top-gap, bodies above). Only the upper tip
// carries scoring state.
func CreatePipes(cfg config.Config, a *atlas.Atlas, tracker *PipeTracker) []*PipeEntity {
	tip := a.CreateSprite(atlas.PipeTop)
	body := a.CreateSprite(atlas.PipeBottom)
	layout := NewPipeLayout(cfg.Pipes, tip)

	pipes := make([]*PipeEntity, 0, cfg.Pipes.Count*cfg.SegmentsPerPipe())
	for i := 0; i < cfg.Pipes.Count; i++ {
		x := cfg.Pipes.StartX + layout.Pitch*float32(i)
		top := tracker.InitPipeTop()
		scroll := Scroll{JumpDistance: layout.TotalDist}

		// Bottom half
		for j := 0; j < cfg.Pipes.Segments; j++ {
			y := top + tip.Height + body.Height*float32(j)
			pipes = append(pipes, &PipeEntity{Position: core.V(x, y), Sprite: body, Scroll: scroll})
		}
		pipes = append(pipes, &PipeEntity{Position: core.V(x, top), Sprite: tip, Scroll: scroll, Tip: true})

		// Top half
		gapTop := top - cfg.Pipes.VerticalGap
		for j := 0; j < cfg.Pipes.Segments; j++ {
			y := gapTop - tip.Height - body.Height*float32(j+1)
			pipes = append(pipes, &PipeEntity{Position: core.V(x, y), Sprite: body, Scroll: scroll})
		}
		flipped := tip
		flipped.Scale.Y = -1
		pipes = append(pipes, &PipeEntity{
			Position: core.V(x, gapTop),
			Sprite:   flipped,
			Scroll:   scroll,
			Scoring:  ReadyToScore,
			Tip:      true,
		})
	}
	return pipes
}
