package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-crab/internal/core"
	"github.com/vovakirdan/flappy-crab/internal/games/crab"
)

var (
	flagTicks     int
	flagFlapEvery int
	flagDelta     float32
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game without a terminal UI",
	Long: `Step the game headless with a scripted flap pattern and print a summary.
The clock advances 1/fps seconds per tick.

Examples:
  flappycrab simulate --ticks 600
  flappycrab simulate --ticks 3600 --flap-every 18 --seed 7
  flappycrab simulate --delta 0.0166 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of ticks to run")
	simulateCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 0, "Press flap every N ticks (0 = never)")
	simulateCmd.Flags().Float32Var(&flagDelta, "delta", 0, "Integrator delta per tick (0 = 1/fps scaled by physics.time_scale)")
}

// simulation describes a scripted headless run.
type simulation struct {
	Ticks     int
	FlapEvery int
	Delta     float32
	FPS       int
}

// summary is the outcome of a headless run.
type summary struct {
	Ticks  int
	Rounds int
	Deaths int
	Passed int
	Score  int
	Best   int
	Phase  core.Phase
}

// run steps g. A flap is a one tick press, so every flap re-arms.
func (s simulation) run(g *crab.Game) summary {
	step := time.Second / time.Duration(s.FPS)
	delta := s.Delta
	if delta <= 0 {
		delta = float32(step.Seconds()) * g.Config().Physics.TimeScale
	}

	var sum summary
	var st core.GameState
	for i := 1; i <= s.Ticks; i++ {
		in := core.NewInputFrame()
		if s.FlapEvery > 0 && i%s.FlapEvery == 0 {
			in.Set(core.ActionJump)
		}
		res := g.Step(crab.Frame{Delta: delta, Now: time.Duration(i) * step, Input: in})
		st = res.State
		for _, e := range res.Events {
			switch e {
			case core.EventScore:
				sum.Passed++
			case core.EventOuch:
				sum.Deaths++
			}
		}
	}

	sum.Ticks = g.Ticks()
	sum.Rounds = g.Rounds()
	sum.Score = st.Score
	sum.Best = max(st.BestScore, st.Score)
	sum.Phase = st.Phase
	return sum
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 || flagFlapEvery < 0 {
		return fmt.Errorf("--ticks and --flap-every must not be negative")
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	a, err := loadAtlas(cfg)
	if err != nil {
		return err
	}

	g := crab.New(cfg, a, crab.WithLogger(logger))
	sim := simulation{Ticks: flagTicks, FlapEvery: flagFlapEvery, Delta: flagDelta, FPS: flagFPS}
	printSummary(cmd.OutOrStdout(), sim.run(g))
	return nil
}

func printSummary(w io.Writer, s summary) {
	fmt.Fprintf(w, "  %-12s %d\n", "ticks", s.Ticks)
	fmt.Fprintf(w, "  %-12s %d\n", "rounds", s.Rounds)
	fmt.Fprintf(w, "  %-12s %d\n", "deaths", s.Deaths)
	fmt.Fprintf(w, "  %-12s %d\n", "pipes passed", s.Passed)
	fmt.Fprintf(w, "  %-12s %d\n", "score", s.Score)
	fmt.Fprintf(w, "  %-12s %d\n", "best score", s.Best)
	fmt.Fprintf(w, "  %-12s %s\n", "phase", s.Phase)
}
