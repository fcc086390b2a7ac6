package crab

import (
	"testing"
	"time"

	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/config"
	"github.com/vovakirdan/flappy-crab/internal/core"
)

func newTestGame(t *testing.T, mutate func(*config.Config)) *Game {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return New(cfg, atlas.Default(), WithNoise(func() Noise { return sineNoise() }))
}

// driver feeds frames at a fixed delta with a 60 Hz clock.
type driver struct {
	g     *Game
	delta float32
	n     int
}

func (d *driver) now() time.Duration {
	return time.Duration(d.n) * time.Second / 60
}

func (d *driver) step(actions ...core.Action) core.StepResult {
	d.n++
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return d.g.Step(Frame{Delta: d.delta, Now: d.now(), Input: in})
}

func hasEvent(res core.StepResult, e core.Event) bool {
	for _, got := range res.Events {
		if got == e {
			return true
		}
	}
	return false
}

func TestNewStartsOnStartScreen(t *testing.T) {
	g := newTestGame(t, nil)

	if g.PlayState().Phase != StartScreen {
		t.Errorf("phase = %v, expected StartScreen", g.PlayState().Phase)
	}
	if g.Player().Position != core.V(40, -16) {
		t.Errorf("player spawned at %+v", g.Player().Position)
	}
	if len(g.Pipes()) != 40 {
		t.Errorf("pipes = %d segments, expected 40", len(g.Pipes()))
	}
	if len(g.Tiles()) != 14 {
		t.Errorf("tiles = %d, expected 14", len(g.Tiles()))
	}
	if g.Score() != 0 || g.BestScore() != 0 {
		t.Errorf("scores = %d/%d, expected 0/0", g.Score(), g.BestScore())
	}
	if g.Rounds() != 1 {
		t.Errorf("Rounds() = %d, expected 1", g.Rounds())
	}
}

func TestBeginEventOnFirstStep(t *testing.T) {
	d := &driver{g: newTestGame(t, nil), delta: 1}

	res := d.step()
	if len(res.Events) != 1 || res.Events[0] != core.EventBegin {
		t.Errorf("first step events = %v, expected [begin]", res.Events)
	}
	if res := d.step(); len(res.Events) != 0 {
		t.Errorf("second step events = %v, expected none", res.Events)
	}
}

func TestScenarioBFreeFallUnitDelta(t *testing.T) {
	g := newTestGame(t, nil)
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1}

	prevY, prevV := g.Player().Position.Y, g.Player().Physics.Velocity.Y
	for i := 1; i <= 32; i++ {
		d.step()
		if g.PlayState().Phase != Play {
			t.Fatalf("tick %d: died early at y=%v", i, g.Player().Position.Y)
		}
		y, v := g.Player().Position.Y, g.Player().Physics.Velocity.Y
		if y <= prevY || v <= prevV {
			t.Fatalf("tick %d: drift not monotonic: y %v -> %v, vel %v -> %v", i, prevY, y, prevV, v)
		}
		prevY, prevV = y, v
	}
	if y := g.Player().Position.Y; !approx(y, 131.84, 1e-3) {
		t.Errorf("after 32 ticks y = %v, expected 131.84", y)
	}

	res := d.step()
	if g.PlayState().Phase != Dead {
		t.Fatalf("tick 33: phase = %v at y=%v, expected Dead", g.PlayState().Phase, g.Player().Position.Y)
	}
	if g.PlayState().DeadAt != d.now() {
		t.Errorf("DeadAt = %v, expected %v", g.PlayState().DeadAt, d.now())
	}
	if !hasEvent(res, core.EventOuch) {
		t.Errorf("death tick events = %v, expected ouch", res.Events)
	}
	if res.State.Phase != core.PhaseDead {
		t.Errorf("reported phase = %v", res.State.Phase)
	}
}

func TestScenarioBFreeFallSixtyHertzDelta(t *testing.T) {
	g := newTestGame(t, nil)
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1.0 / 60.0}

	d.step()
	if g.PlayState().Phase != Dead {
		t.Errorf("a raw 60 Hz delta should send the crab through the ground in one tick, y=%v", g.Player().Position.Y)
	}
}

func TestScenarioCPipeHit(t *testing.T) {
	g := newTestGame(t, nil)
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1}

	// A body segment straddling the crab's box.
	g.Pipes()[0].Position = core.V(35, -20)

	res := d.step()
	if g.PlayState().Phase != Dead {
		t.Fatalf("phase = %v, expected Dead", g.PlayState().Phase)
	}
	if g.PlayState().DeadAt != d.now() {
		t.Errorf("DeadAt = %v, expected %v", g.PlayState().DeadAt, d.now())
	}
	ouches := 0
	for _, e := range res.Events {
		if e == core.EventOuch {
			ouches++
		}
	}
	if ouches != 1 {
		t.Errorf("got %d ouch events, expected 1", ouches)
	}
}

func TestCollisionsOffOutsidePlay(t *testing.T) {
	g := newTestGame(t, nil)
	d := &driver{g: g, delta: 1}

	g.Pipes()[0].Position = core.V(35, -20)
	d.step()
	if g.PlayState().Phase != StartScreen {
		t.Errorf("start screen crab should be intangible, phase = %v", g.PlayState().Phase)
	}
}

func TestScenarioDRecycledPipeShiftsTogether(t *testing.T) {
	g := newTestGame(t, nil)
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1}

	per := g.Config().SegmentsPerPipe()
	group := g.Pipes()[:per]
	before := make([]float32, per)
	for i, p := range group {
		p.Position.X = -26
		before[i] = p.Position.Y
	}
	window := g.Tracker().Window()
	want := expectedTop(sineNoiseAt(g.Tracker())) - window[0]

	d.step()

	for i, p := range group {
		if p.Position.X != -26-1+260 {
			t.Errorf("segment %d: x = %v, expected %v", i, p.Position.X, float32(-26-1+260))
		}
		if dy := p.Position.Y - before[i]; !approx(dy, want, 1e-4) {
			t.Errorf("segment %d: dy = %v, expected %v", i, dy, want)
		}
	}

	// Ten queries rotate the window once.
	after := g.Tracker().Window()
	if len(after) != len(window) {
		t.Fatalf("window length changed to %d", len(after))
	}
	if after[0] != window[1] {
		t.Errorf("window did not rotate: before %v after %v", window, after)
	}
	if !approx(g.Tracker().Time(), 0.6*5, 1e-5) {
		t.Errorf("tracker time = %v, expected 3.0", g.Tracker().Time())
	}
}

func TestScoringOncePerPipe(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.Player.X = 150 })
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1}

	upper := g.Pipes()[g.Config().SegmentsPerPipe()-1]
	if upper.Scoring != ReadyToScore {
		t.Fatalf("upper tip Scoring = %v", upper.Scoring)
	}
	upper.Position.X = 20.5

	res := d.step()
	if g.Score() != 1 {
		t.Fatalf("score = %d, expected 1", g.Score())
	}
	if !hasEvent(res, core.EventScore) {
		t.Errorf("events = %v, expected score", res.Events)
	}
	if res.State.Score != 1 {
		t.Errorf("reported score = %d", res.State.Score)
	}

	for i := 0; i < 3; i++ {
		if res := d.step(); hasEvent(res, core.EventScore) {
			t.Errorf("tick %d: scored again", i+2)
		}
	}
	if g.Score() != 1 {
		t.Errorf("score = %d after passing, expected 1", g.Score())
	}
	if upper.Scoring != Scored {
		t.Errorf("tip Scoring = %v, expected Scored", upper.Scoring)
	}
}

func TestJumpStartsPlay(t *testing.T) {
	g := newTestGame(t, nil)
	d := &driver{g: g, delta: 1}

	xs := make([]float32, len(g.Pipes()))
	for i, p := range g.Pipes() {
		xs[i] = p.Position.X
	}

	d.step(core.ActionJump)
	if g.PlayState().Phase != Play {
		t.Fatalf("phase = %v, expected Play", g.PlayState().Phase)
	}
	if v := g.Player().Physics.Velocity.Y; !approx(v, -3.03, 1e-5) {
		t.Errorf("velocity after jump = %v, expected -3.03", v)
	}
	for i, p := range g.Pipes() {
		if p.Position.X != xs[i] {
			t.Fatalf("pipes moved on the tick that left the start screen")
		}
	}

	d.step(core.ActionJump)
	if g.Pipes()[0].Position.X != xs[0]-1 {
		t.Errorf("pipes should scroll in Play, x = %v", g.Pipes()[0].Position.X)
	}
}

func TestHeldJumpDoesNotRepeat(t *testing.T) {
	g := newTestGame(t, nil)
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1}

	d.step(core.ActionJump)
	v1 := g.Player().Physics.Velocity.Y
	d.step(core.ActionJump)
	v2 := g.Player().Physics.Velocity.Y
	if !approx(v2, v1+0.28, 1e-5) {
		t.Errorf("held jump: velocity %v -> %v, expected gravity only", v1, v2)
	}

	d.step()
	d.step(core.ActionJump)
	if v := g.Player().Physics.Velocity.Y; !approx(v, -3.03, 1e-5) {
		t.Errorf("jump after release: velocity = %v, expected -3.03", v)
	}
}

func TestAttractModeBounces(t *testing.T) {
	g := newTestGame(t, nil)
	d := &driver{g: g, delta: 1}

	xs := g.Pipes()[0].Position.X
	for i := 0; i < 600; i++ {
		d.step()
		y := g.Player().Position.Y
		if y < -16 || y > 90 {
			t.Fatalf("tick %d: crab wandered to y=%v", i+1, y)
		}
		if g.PlayState().Phase != StartScreen {
			t.Fatalf("tick %d: left the start screen without input", i+1)
		}
	}
	if g.Pipes()[0].Position.X != xs {
		t.Error("pipes should stay frozen on the start screen")
	}
}

func TestTopClamp(t *testing.T) {
	g := newTestGame(t, nil)
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1}

	for i := 0; i < 5; i++ {
		d.step()
		d.step(core.ActionJump)
		if y := g.Player().Position.Y; y < -16 {
			t.Fatalf("crab above the screen top: y=%v", y)
		}
	}
}

func TestDeathCooldownAndRestart(t *testing.T) {
	g := newTestGame(t, nil)
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1}
	d.step()

	g.score = 7
	g.die(d.now(), "test")
	deadAt := g.PlayState().DeadAt

	// Input is ignored while dead.
	for d.now()+time.Second/60 < deadAt+time.Second {
		d.step(core.ActionJump)
		if g.PlayState().Phase != Dead {
			t.Fatalf("restarted %v after death, before the cooldown", d.now()-deadAt)
		}
	}

	res := d.step()
	if g.PlayState().Phase != StartScreen {
		t.Fatalf("phase = %v after cooldown, expected StartScreen", g.PlayState().Phase)
	}
	if g.Score() != 0 || g.BestScore() != 7 {
		t.Errorf("scores = %d/%d, expected 0/7", g.Score(), g.BestScore())
	}
	if !hasEvent(res, core.EventBegin) {
		t.Errorf("restart events = %v, expected begin", res.Events)
	}
	if g.Rounds() != 2 {
		t.Errorf("Rounds() = %d, expected 2", g.Rounds())
	}
	if g.Player().Position.Y < -16 || g.Player().Position.X != 40 {
		t.Errorf("player not respawned: %+v", g.Player().Position)
	}
}

func TestBestScoreKeepsMaximum(t *testing.T) {
	g := newTestGame(t, nil)

	g.score = 9
	g.Restart()
	g.score = 4
	g.Restart()

	if g.BestScore() != 9 {
		t.Errorf("BestScore() = %d, expected 9", g.BestScore())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, nil)
	g.setState(PlayState{Phase: Play})
	d := &driver{g: g, delta: 1}

	res := d.step(core.ActionPause)
	if !res.State.Paused {
		t.Fatal("pause press should pause")
	}
	y := g.Player().Position.Y
	ticks := g.Ticks()

	d.step(core.ActionPause)
	d.step()
	if !g.State().Paused {
		t.Fatal("holding pause must not toggle again")
	}
	if g.Player().Position.Y != y || g.Ticks() != ticks {
		t.Error("simulation advanced while paused")
	}

	d.step(core.ActionPause)
	if g.State().Paused {
		t.Error("second press should unpause")
	}
	if g.Ticks() != ticks+1 {
		t.Errorf("Ticks() = %d, expected %d", g.Ticks(), ticks+1)
	}
}

func TestTileScrollWraps(t *testing.T) {
	g := newTestGame(t, func(c *config.Config) { c.Tiles.Scroll = true })
	d := &driver{g: g, delta: 1}

	for i := 0; i < 16; i++ {
		d.step()
	}
	if x := g.Tiles()[0].Position.X; x != -16 {
		t.Fatalf("tile 0 at x=%v, expected -16", x)
	}
	d.step()
	if x := g.Tiles()[0].Position.X; x != 207 {
		t.Errorf("tile 0 wrapped to x=%v, expected 207", x)
	}
}

func TestStaticTilesStayPut(t *testing.T) {
	g := newTestGame(t, nil)
	d := &driver{g: g, delta: 1}

	d.step(core.ActionJump)
	for i := 0; i < 10; i++ {
		d.step()
	}
	if x := g.Tiles()[0].Position.X; x != 0 {
		t.Errorf("static tile moved to x=%v", x)
	}
}

func TestDrawOrder(t *testing.T) {
	g := newTestGame(t, nil)
	cmds := g.Draw()

	if len(cmds) != 14+40+1 {
		t.Fatalf("Draw() = %d commands, expected 55", len(cmds))
	}
	if cmds[0].Sprite.Name != atlas.FloorTile {
		t.Errorf("first command draws %s, expected tiles first", cmds[0].Sprite.Name)
	}
	if name := cmds[14].Sprite.Name; name != atlas.PipeBottom {
		t.Errorf("command 14 draws %s, expected pipes after tiles", name)
	}
	last := cmds[len(cmds)-1]
	if last.Sprite.Name != atlas.Crab0 && last.Sprite.Name != atlas.Crab1 {
		t.Errorf("last command draws %s, expected the crab", last.Sprite.Name)
	}

	flipped := 0
	for _, c := range cmds {
		if c.FlipY {
			flipped++
		}
	}
	if flipped != 4 {
		t.Errorf("%d flipped commands, expected one per pipe", flipped)
	}
}
