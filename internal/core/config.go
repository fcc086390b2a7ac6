package core

// RuntimeConfig contains host parameters passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the frame driver
	Seed     int64 // Noise seed, 0 means time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase names the coarse game phase reported to the host.
type Phase string

const (
	PhaseStartScreen Phase = "start"
	PhasePlay        Phase = "play"
	PhaseDead        Phase = "dead"
)

// GameState summarizes the game for the host after each tick.
type GameState struct {
	Score     int
	BestScore int
	Phase     Phase
	Paused    bool
}

// StepResult is returned after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
