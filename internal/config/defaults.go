package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/crab.yaml
var defaultYAML []byte

// Default returns the canonical configuration baseline.
// It mirrors defaults/crab.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity:     0.28,
			JumpImpulse: 2.75,
			TimeScale:   60,
		},
		Player: PlayerConfig{
			X:           40,
			StartY:      -16,
			ScreenTop:   -16,
			GroundY:     135,
			AutoJumpY:   75,
			HitboxInset: 1,
		},
		Pipes: PipesConfig{
			Count:           4,
			Segments:        4,
			Speed:           1.0,
			SpaceMultiplier: 1.5,
			StartX:          200,
			VerticalGap:     57,
			GapDeviance:     0.6,
			ScoreLineX:      20,
		},
		Noise: NoiseConfig{
			Alpha:   2,
			Beta:    2,
			Octaves: 3,
		},
		Tiles: TilesConfig{
			Count: 14,
			Y:     145,
		},
		World: WorldConfig{
			Width:        200,
			Height:       150,
			RestartAfter: time.Second,
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.4,
			SampleRate: 44100,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
