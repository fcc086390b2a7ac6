package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/config"
	"github.com/vovakirdan/flappy-crab/internal/core"
	"github.com/vovakirdan/flappy-crab/internal/games/crab"
)

type flatNoise struct{}

func (flatNoise) Noise2D(_, _ float64) float64 { return 0 }

func newGame(t *testing.T) *crab.Game {
	t.Helper()
	return crab.New(config.Default(), atlas.Default(), crab.WithNoise(func() crab.Noise { return flatNoise{} }))
}

func TestSimulateWithoutFlapsStaysOnStartScreen(t *testing.T) {
	sum := simulation{Ticks: 300, FPS: 60}.run(newGame(t))

	if sum.Phase != core.PhaseStartScreen {
		t.Errorf("phase = %v, expected start", sum.Phase)
	}
	if sum.Ticks != 300 || sum.Rounds != 1 || sum.Deaths != 0 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestSimulateSingleFlapFallsAndRestarts(t *testing.T) {
	// One flap starts a round; the crab then drops to the ground and the
	// game restarts after the cooldown.
	sum := simulation{Ticks: 200, FlapEvery: 150, FPS: 60}.run(newGame(t))

	if sum.Deaths != 1 {
		t.Fatalf("deaths = %d, expected 1", sum.Deaths)
	}
	if sum.Rounds != 1 {
		t.Errorf("rounds = %d, expected the cooldown to still be running", sum.Rounds)
	}
	if sum.Phase != core.PhaseDead {
		t.Errorf("phase = %v, expected dead", sum.Phase)
	}
}

func TestSimulateRestartsAfterCooldown(t *testing.T) {
	sum := simulation{Ticks: 300, FlapEvery: 150, FPS: 60}.run(newGame(t))

	if sum.Rounds < 2 {
		t.Errorf("rounds = %d, expected a restart", sum.Rounds)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, summary{Ticks: 10, Rounds: 2, Passed: 3, Best: 3, Phase: core.PhasePlay})

	out := buf.String()
	for _, want := range []string{"ticks", "10", "pipes passed", "best score", "play"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestPrintSprites(t *testing.T) {
	var buf bytes.Buffer
	printSprites(&buf, atlas.Default())

	out := buf.String()
	for _, want := range []string{atlas.Crab0, atlas.PipeTop, atlas.FloorTile, "0, 0, 17, 12"} {
		if !strings.Contains(out, want) {
			t.Errorf("sprite list missing %q:\n%s", want, out)
		}
	}
}

func TestLoadAtlasDefault(t *testing.T) {
	if _, err := loadAtlas(config.Default()); err != nil {
		t.Fatalf("loadAtlas() = %v", err)
	}
}
