package crab

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-crab/internal/core"
)

const (
	testGravity = 0.28
	testImpulse = 2.75
)

func approx(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}

// tick mirrors the game's per-tick order for a free falling body.
func tick(p *Physics, pos *core.Vec2, delta float32) {
	p.ResetAcceleration(testGravity)
	p.Integrate(pos, delta)
}

func TestIntegrateGoldenUnitDelta(t *testing.T) {
	p := Physics{Gravity: true}
	pos := core.V(0, 0)

	// At delta 1 both divisions vanish: v += G, y += v.
	want := []struct{ vel, y float32 }{
		{0.28, 0.28},
		{0.56, 0.84},
		{0.84, 1.68},
		{1.12, 2.80},
	}
	for i, w := range want {
		tick(&p, &pos, 1)
		if !approx(p.Velocity.Y, w.vel, 1e-5) || !approx(pos.Y, w.y, 1e-5) {
			t.Errorf("tick %d: vel=%v y=%v, expected vel=%v y=%v", i+1, p.Velocity.Y, pos.Y, w.vel, w.y)
		}
		if pos.X != 0 {
			t.Errorf("tick %d: gravity should not move x, got %v", i+1, pos.X)
		}
	}
}

func TestIntegrateGoldenSixtyHertz(t *testing.T) {
	p := Physics{Gravity: true}
	pos := core.V(0, 0)
	delta := float32(1.0 / 60.0)

	// acc = G*60 = 16.8; vel = (vel + 16.8) * 60
	want := []struct{ vel, y float32 }{
		{1008, 1008},
		{61488, 62496},
	}
	for i, w := range want {
		tick(&p, &pos, delta)
		if !approx(p.Velocity.Y, w.vel, w.vel*1e-4) || !approx(pos.Y, w.y, w.y*1e-4) {
			t.Errorf("tick %d: vel=%v y=%v, expected vel=%v y=%v", i+1, p.Velocity.Y, pos.Y, w.vel, w.y)
		}
	}
}

func TestGravityIncreasesVelocity(t *testing.T) {
	for _, delta := range []float32{1, 0.5, 1.0 / 60.0} {
		p := Physics{Gravity: true}
		pos := core.V(40, 0)
		prev := p.Velocity.Y

		for i := 0; i < 5; i++ {
			tick(&p, &pos, delta)
			if p.Velocity.Y <= prev {
				t.Fatalf("delta=%v tick %d: velocity %v did not increase from %v", delta, i+1, p.Velocity.Y, prev)
			}
			prev = p.Velocity.Y
		}
	}
}

func TestJumpOverridesMotion(t *testing.T) {
	p := Physics{Gravity: true, Velocity: core.V(3, 42), Acceleration: core.V(1, 9)}
	p.Jump(testGravity, testImpulse)

	if p.Velocity != core.V(0, -testImpulse) {
		t.Errorf("Velocity = %+v, expected (0, -%v)", p.Velocity, testImpulse)
	}
	if p.Acceleration != core.V(0, -testGravity) {
		t.Errorf("Acceleration = %+v, expected (0, -%v)", p.Acceleration, testGravity)
	}
}

func TestJumpThenIntegrate(t *testing.T) {
	p := Physics{Gravity: true}
	pos := core.V(0, 50)

	p.ResetAcceleration(testGravity)
	p.Jump(testGravity, testImpulse)
	p.Integrate(&pos, 1)

	// The jump acceleration is applied on the jump tick as well.
	if !approx(p.Velocity.Y, -3.03, 1e-5) {
		t.Errorf("velocity after jump tick = %v, expected -3.03", p.Velocity.Y)
	}
	if !approx(pos.Y, 46.97, 1e-4) {
		t.Errorf("y after jump tick = %v, expected 46.97", pos.Y)
	}
}

func TestIntegrateNonPositiveDeltaIsNoop(t *testing.T) {
	for _, delta := range []float32{0, -1} {
		p := Physics{Gravity: true, Velocity: core.V(1, 2)}
		p.ResetAcceleration(testGravity)
		pos := core.V(5, 5)
		p.Integrate(&pos, delta)

		if pos != core.V(5, 5) || p.Velocity != core.V(1, 2) {
			t.Errorf("delta=%v should not move anything: pos=%+v vel=%+v", delta, pos, p.Velocity)
		}
	}
}

func TestResetAccelerationWithoutGravity(t *testing.T) {
	p := Physics{Acceleration: core.V(4, 4)}
	p.ResetAcceleration(testGravity)
	if p.Acceleration != core.V(0, 0) {
		t.Errorf("Acceleration = %+v, expected zero without gravity", p.Acceleration)
	}
}
