// Package config provides YAML-based game configuration loading and
// difficulty presets for Flappy Crab.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the single immutable configuration injected into the game at
// construction. All tunables that used to be scattered constants live here.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Noise   NoiseConfig   `yaml:"noise"`
	Tiles   TilesConfig   `yaml:"tiles"`
	World   WorldConfig   `yaml:"world"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// PhysicsConfig defines the integrator constants.
type PhysicsConfig struct {
	Gravity     float32 `yaml:"gravity"`
	JumpImpulse float32 `yaml:"jump_impulse"`
	// TimeScale converts elapsed seconds into the delta fed to the integrator.
	TimeScale float32 `yaml:"time_scale"`
}

// PlayerConfig defines the crab's fixed column and vertical limits.
type PlayerConfig struct {
	X           float32 `yaml:"x"`
	StartY      float32 `yaml:"start_y"`
	ScreenTop   float32 `yaml:"screen_top"`
	GroundY     float32 `yaml:"ground_y"`
	AutoJumpY   float32 `yaml:"auto_jump_y"`
	HitboxInset float32 `yaml:"hitbox_inset"`
}

// PipesConfig defines pipe layout, motion and scoring.
type PipesConfig struct {
	Count           int     `yaml:"count"`
	Segments        int     `yaml:"segments"`
	Speed           float32 `yaml:"speed"`
	SpaceMultiplier float32 `yaml:"space_multiplier"`
	StartX          float32 `yaml:"start_x"`
	VerticalGap     float32 `yaml:"vertical_gap"`
	GapDeviance     float32 `yaml:"gap_deviance"`
	ScoreLineX      float32 `yaml:"score_line_x"`
	// RefreshEvery is the number of difference queries between window
	// rotations. Zero means one per pipe segment.
	RefreshEvery int `yaml:"refresh_every"`
}

// NoiseConfig parameterizes the Perlin generator behind gap placement.
type NoiseConfig struct {
	Seed    int64   `yaml:"seed"` // 0 = time based
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
}

// TilesConfig defines the floor tiles.
type TilesConfig struct {
	Count  int     `yaml:"count"`
	Y      float32 `yaml:"y"`
	Scroll bool    `yaml:"scroll"`
}

// WorldConfig defines the internal coordinate space.
type WorldConfig struct {
	Width        float32       `yaml:"width"`
	Height       float32       `yaml:"height"`
	RestartAfter time.Duration `yaml:"restart_after"`
}

// AudioConfig controls the sound collaborator.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// AssetsConfig points at replaceable asset files.
type AssetsConfig struct {
	Atlas string `yaml:"atlas"` // Empty uses the embedded atlas
}

// SegmentsPerPipe returns how many entities make up one logical pipe:
// body segments plus one tip for each half.
func (c Config) SegmentsPerPipe() int {
	return (c.Pipes.Segments + 1) * 2
}

// RefreshPeriod returns the effective tracker window rotation period.
func (c Config) RefreshPeriod() int {
	if c.Pipes.RefreshEvery > 0 {
		return c.Pipes.RefreshEvery
	}
	return c.SegmentsPerPipe()
}

// GapBand returns the legal range for a pipe top.
func (c Config) GapBand() (lo, hi float32) {
	return c.Pipes.VerticalGap + 5, c.World.Height - c.Pipes.VerticalGap
}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse > 0, "physics.jump_impulse must be positive, got %v", c.Physics.JumpImpulse)
	check(c.Physics.TimeScale > 0, "physics.time_scale must be positive, got %v", c.Physics.TimeScale)
	check(c.Player.GroundY > c.Player.ScreenTop, "player.ground_y (%v) must be below player.screen_top (%v)", c.Player.GroundY, c.Player.ScreenTop)
	check(c.Player.HitboxInset >= 0, "player.hitbox_inset must not be negative")
	check(c.Pipes.Count >= 1, "pipes.count must be at least 1, got %d", c.Pipes.Count)
	check(c.Pipes.Segments >= 0, "pipes.segments must not be negative, got %d", c.Pipes.Segments)
	check(c.Pipes.Speed > 0, "pipes.speed must be positive, got %v", c.Pipes.Speed)
	check(c.Pipes.SpaceMultiplier >= 0, "pipes.space_multiplier must not be negative")
	check(c.Pipes.GapDeviance > 0, "pipes.gap_deviance must be positive, got %v", c.Pipes.GapDeviance)
	check(c.Pipes.RefreshEvery >= 0, "pipes.refresh_every must not be negative")
	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.RestartAfter >= 0, "world.restart_after must not be negative")
	check(c.Tiles.Count >= 0, "tiles.count must not be negative")
	if lo, hi := c.GapBand(); lo >= hi {
		errs = append(errs, fmt.Errorf("pipes.vertical_gap %v leaves no room for gaps (band [%v, %v])", c.Pipes.VerticalGap, lo, hi))
	}
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume must be within [0, 1], got %v", c.Audio.Volume)
	check(!c.Audio.Enabled || c.Audio.SampleRate > 0, "audio.sample_rate must be positive when audio is enabled")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
