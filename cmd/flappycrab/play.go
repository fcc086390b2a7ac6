package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-crab/internal/audio"
	"github.com/vovakirdan/flappy-crab/internal/core"
	"github.com/vovakirdan/flappy-crab/internal/games/crab"
	"github.com/vovakirdan/flappy-crab/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Crab",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W  - Flap (also starts a round)
  P/Esc       - Pause
  Q/Ctrl+C    - Quit

After a crash the game returns to the start screen on its own.

Difficulty options:
  easy    - Wider gaps, slower pipes
  normal  - The configured values
  hard    - Narrower gaps, faster pipes

Examples:
  flappycrab play
  flappycrab play --difficulty hard --mute
  flappycrab play --log-file crab.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns stdout, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
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

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sounds := audio.New(cfg.Audio, logger)
	if err := sounds.Init(); err != nil {
		// Keep playing without sound.
		logger.Debug("continuing muted", "err", err)
	}
	defer sounds.Close()

	game := crab.New(cfg, a, crab.WithLogger(logger))
	logger.Info("starting", "fps", flagFPS, "size", fmt.Sprintf("%dx%d", width, height), "sound", sounds.Enabled())

	err = tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     cfg.Noise.Seed,
		},
		Events: sounds,
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("bye", "best", game.BestScore(), "rounds", game.Rounds())
	return nil
}
