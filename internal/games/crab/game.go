// Package crab implements the Flappy Crab simulation: the crab jumps against
// gravity through a stream of procedurally placed pipe pairs.
//
// The package is frame driven and single threaded. The host calls Step once
// per rendered frame with the elapsed delta and the input state, then Draw
// to collect sprite commands for its renderer.
package crab

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/config"
	"github.com/vovakirdan/flappy-crab/internal/core"
)

// Frame is what the frame driver supplies for one tick.
type Frame struct {
	Delta float32       // Integrator delta, see config.PhysicsConfig.TimeScale
	Now   time.Duration // Time since the driver started
	Input core.InputFrame
}

// Game is the root aggregate. Entities and the tracker are rebuilt on every
// restart; the best score lives as long as the Game.
type Game struct {
	cfg      config.Config
	atlas    *atlas.Atlas
	newNoise func() Noise
	logger   *log.Logger

	player  *PlayerEntity
	pipes   []*PipeEntity
	tiles   []*TileEntity
	tracker *PipeTracker

	state     PlayState
	score     int
	bestScore int
	paused    bool
	pauseHeld bool
	tickCount int
	rounds    int

	pending []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithNoise replaces the Perlin noise factory. A new source is requested on
// every restart.
func WithNoise(f func() Noise) Option {
	return func(g *Game) {
		if f != nil {
			g.newNoise = f
		}
	}
}

// New creates a game on the start screen.
func New(cfg config.Config, a *atlas.Atlas, opts ...Option) *Game {
	g := &Game{
		cfg:   cfg,
		atlas: a,
		newNoise: func() Noise {
			return NewPerlinNoise(cfg.Noise)
		},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.tiles = CreateTiles(cfg.Tiles, a)
	g.buildRound()
	g.emit(core.EventBegin)
	return g
}

// buildRound creates a fresh tracker, pipes and player.
func (g *Game) buildRound() {
	g.tracker = NewPipeTracker(g.cfg, g.newNoise())
	g.pipes = CreatePipes(g.cfg, g.atlas, g.tracker)
	g.player = NewPlayer(g.cfg, g.atlas)
	g.state = PlayState{Phase: StartScreen}
	g.rounds++
}

// Step advances the simulation by one frame.
func (g *Game) Step(f Frame) core.StepResult {
	g.togglePause(f.Input.Has(core.ActionPause))
	if g.paused {
		return g.result()
	}
	g.tickCount++

	g.handleAfterLosing(f.Now)

	for _, t := range g.tiles {
		t.move(g.cfg.Pipes.Speed)
	}
	if g.state.Phase != StartScreen {
		for _, p := range g.pipes {
			p.move(g.cfg.Pipes.Speed, g.tracker)
		}
	}
	g.updatePlayer(f)
	g.checkCollisions(f.Now)

	return g.result()
}

// togglePause flips pause on the press edge of the pause key.
func (g *Game) togglePause(pressed bool) {
	if pressed && !g.pauseHeld {
		g.paused = !g.paused
	}
	g.pauseHeld = pressed
}

// handleAfterLosing restarts once the death cooldown has elapsed.
func (g *Game) handleAfterLosing(now time.Duration) {
	if g.state.Phase != Dead {
		return
	}
	if now-g.state.DeadAt >= g.cfg.World.RestartAfter {
		g.Restart()
	}
}

// updatePlayer runs input, the attract-mode bounce and the integrator.
func (g *Game) updatePlayer(f Frame) {
	p := g.player
	phys := g.cfg.Physics
	p.Physics.ResetAcceleration(phys.Gravity)

	if g.state.Phase == StartScreen || g.state.Phase == Play {
		if p.handleInput(f.Input.Has(core.ActionJump), phys) && g.state.Phase == StartScreen {
			g.setState(PlayState{Phase: Play})
		}
	}
	if g.state.Phase == StartScreen {
		p.autoJump(g.cfg.Player.AutoJumpY, phys)
	}

	p.Physics.Integrate(&p.Position, f.Delta)
	p.clampTop(g.cfg.Player.ScreenTop)
}

// checkCollisions scores passed pipes and detects deaths. Each segment is
// score-checked before it is hit-checked; after a death nothing else counts.
func (g *Game) checkCollisions(now time.Duration) {
	if !g.state.Playing() {
		return
	}
	bounds := g.player.Bounds()
	for _, p := range g.pipes {
		if !g.state.Playing() {
			return
		}
		if p.checkScore(g.cfg.Pipes.ScoreLineX) {
			g.score++
			g.emit(core.EventScore)
		}
		if bounds.Intersects(p.Bounds()) {
			g.die(now, "pipe")
		}
	}
	if g.state.Playing() && g.player.Position.Y > g.cfg.Player.GroundY {
		g.die(now, "ground")
	}
}

func (g *Game) die(now time.Duration, cause string) {
	g.setState(PlayState{Phase: Dead, DeadAt: now})
	g.emit(core.EventOuch)
	g.logger.Debug("crab died", "cause", cause, "score", g.score, "at", now)
}

func (g *Game) setState(s PlayState) {
	if s.Phase != g.state.Phase {
		g.logger.Debug("phase change", "from", g.state.Phase, "to", s.Phase, "tick", g.tickCount)
	}
	g.state = s
}

// Restart promotes the score, rebuilds pipes, tracker and player and returns
// to the start screen. Tiles and the best score are kept.
func (g *Game) Restart() {
	if g.score > g.bestScore {
		g.bestScore = g.score
	}
	g.logger.Info("round over", "round", g.rounds, "score", g.score, "best", g.bestScore)
	g.score = 0
	g.buildRound()
	g.emit(core.EventBegin)
}

func (g *Game) emit(e core.Event) {
	g.pending = append(g.pending, e)
}

// result drains pending events into a StepResult.
func (g *Game) result() core.StepResult {
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// Draw returns the frame's draw commands: tiles, then pipes, then the crab.
func (g *Game) Draw() []DrawCommand {
	cmds := make([]DrawCommand, 0, len(g.tiles)+len(g.pipes)+1)
	for _, t := range g.tiles {
		cmds = append(cmds, t.Draw())
	}
	for _, p := range g.pipes {
		cmds = append(cmds, p.Draw())
	}
	return append(cmds, g.player.Draw())
}

// State returns the summary reported to the host.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		BestScore: g.bestScore,
		Phase:     g.state.corePhase(),
		Paused:    g.paused,
	}
}

// PlayState returns the state machine's current state.
func (g *Game) PlayState() PlayState { return g.state }

// Score returns the current round's score.
func (g *Game) Score() int { return g.score }

// BestScore returns the best score since the process started.
func (g *Game) BestScore() int { return g.bestScore }

// Player returns the crab.
func (g *Game) Player() *PlayerEntity { return g.player }

// Pipes returns every pipe segment.
func (g *Game) Pipes() []*PipeEntity { return g.pipes }

// Tiles returns the floor tiles.
func (g *Game) Tiles() []*TileEntity { return g.tiles }

// Tracker returns the current round's pipe tracker.
func (g *Game) Tracker() *PipeTracker { return g.tracker }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config { return g.cfg }

// Ticks returns the number of unpaused ticks simulated.
func (g *Game) Ticks() int { return g.tickCount }

// Rounds returns how many rounds have been built, including the current one.
func (g *Game) Rounds() int { return g.rounds }
