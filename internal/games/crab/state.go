package crab

import (
	"time"

	"github.com/vovakirdan/flappy-crab/internal/core"
)

// Phase is a state of the play state machine.
type Phase int

const (
	StartScreen Phase = iota
	Play
	Dead
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case StartScreen:
		return "StartScreen"
	case Play:
		return "Play"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// PlayState is the current phase plus, when dead, the moment of death
// measured on the frame driver's clock.
//
//	StartScreen --jump--> Play --hit/ground--> Dead --cooldown--> StartScreen
type PlayState struct {
	Phase  Phase
	DeadAt time.Duration
}

// Playing reports whether collisions and scoring are live.
func (s PlayState) Playing() bool {
	return s.Phase == Play
}

// corePhase converts the phase for host consumption.
func (s PlayState) corePhase() core.Phase {
	switch s.Phase {
	case Play:
		return core.PhasePlay
	case Dead:
		return core.PhaseDead
	default:
		return core.PhaseStartScreen
	}
}
