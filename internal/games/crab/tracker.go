package crab

import (
	"time"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/flappy-crab/internal/config"
)

// Noise is a smooth 2D noise function with output in roughly [-1, 1].
type Noise interface {
	Noise2D(x, y float64) float64
}

// NewPerlinNoise creates the Perlin generator configured for gap placement.
// A zero seed picks a time based one; gap sequences need not repeat across runs.
func NewPerlinNoise(cfg config.NoiseConfig) Noise {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return perlin.NewPerlin(cfg.Alpha, cfg.Beta, cfg.Octaves, seed)
}

// PipeTracker generates vertical gap placements for a rolling window of pipes.
//
// window holds the most recent pipe tops, oldest first. Each recycling pipe
// segment asks for the difference between a fresh top and the oldest entry,
// so every segment of one pipe shifts by the same amount. After refresh
// queries the oldest entry is replaced and the time cursor moves on.
type PipeTracker struct {
	noise    Noise
	window   []float32
	capacity int
	time     float32
	seen     int
	step     float32
	refresh  int
	lo, hi   float32
}

// NewPipeTracker creates a tracker with an empty window.
func NewPipeTracker(cfg config.Config, noise Noise) *PipeTracker {
	lo, hi := cfg.GapBand()
	return &PipeTracker{
		noise:    noise,
		window:   make([]float32, 0, cfg.Pipes.Count),
		capacity: cfg.Pipes.Count,
		seen:     1,
		step:     cfg.Pipes.GapDeviance,
		refresh:  cfg.RefreshPeriod(),
		lo:       lo,
		hi:       hi,
	}
}

// PipeTop samples the noise at the current time cursor and maps it into the
// legal gap band.
func (t *PipeTracker) PipeTop() float32 {
	t.seen++
	n := float32(t.noise.Noise2D(float64(t.time), float64(t.time)))
	n = (n + 1) / 2
	if n < 0 {
		n = 0
	} else if n > 1 {
		n = 1
	}
	return t.lo + n*(t.hi-t.lo)
}

// InitPipeTop places one pipe during level construction and records its top
// as the baseline for that pipe's future recycles.
func (t *PipeTracker) InitPipeTop() float32 {
	t.time += t.step
	top := t.PipeTop()
	t.seen = 0
	t.push(top)
	return top
}

// PipeDifference returns how far a recycling pipe segment must move
// vertically. Panics if no pipe was placed with InitPipeTop.
func (t *PipeTracker) PipeDifference() float32 {
	if len(t.window) == 0 {
		panic("crab: pipe tracker queried before any pipe was placed")
	}
	last := t.window[0]
	now := t.PipeTop()

	if t.seen == t.refresh {
		t.window = t.window[1:]
		t.push(now)
		t.seen = 0
		t.time += t.step
	}
	return now - last
}

func (t *PipeTracker) push(top float32) {
	if t.capacity > 0 && len(t.window) == t.capacity {
		t.window = t.window[1:]
	}
	t.window = append(t.window, top)
}

// Window returns a copy of the recorded tops, oldest first.
func (t *PipeTracker) Window() []float32 {
	out := make([]float32, len(t.window))
	copy(out, t.window)
	return out
}

// Time returns the current time cursor.
func (t *PipeTracker) Time() float32 {
	return t.time
}

// Seen returns the number of tops emitted since the window last changed.
func (t *PipeTracker) Seen() int {
	return t.seen
}
