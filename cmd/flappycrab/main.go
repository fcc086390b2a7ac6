// flappycrab is Flappy Crab for the terminal: steer a crab through an endless
// stream of pipe pairs.
//
// Usage:
//
//	flappycrab [play]        - Play (default)
//	flappycrab simulate      - Run the game headless and print a summary
//	flappycrab config        - Print the effective configuration
//	flappycrab sprites       - List the sprites in the texture atlas
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set the gap noise seed (0 = random)
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
//	--mute                - Disable sound
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/config"
)

var (
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappycrab",
	Short: "Flappy Crab - flap through the pipes in your terminal",
	Long: `Flappy Crab is a one-button arcade game. Press space to flap and keep
the crab between the pipes for as long as you can.

Available commands:
  play      - Play the game (default)
  simulate  - Run the game without a terminal UI
  config    - Print the effective configuration
  sprites   - List the texture atlas sprites

Examples:
  flappycrab
  flappycrab play --difficulty hard
  flappycrab simulate --ticks 3600 --flap-every 20
  flappycrab config --difficulty easy > my-crab.yaml
  flappycrab play --config ./my-crab.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "Gap noise seed (0 = use config, random if unset)")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(spritesCmd)
}

// newLogger builds the process logger. With no log file, logs go to
// fallback; the caller picks io.Discard when the terminal is taken.
// The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappycrab",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig resolves the configuration from files, then applies the
// difficulty preset and command line overrides.
func loadConfig(logger *log.Logger) (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, source, err := config.LoadFrom(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "source", source, "difficulty", preset)

	config.ApplyPreset(&cfg, preset)
	if flagSeed != 0 {
		cfg.Noise.Seed = flagSeed
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func loadAtlas(cfg config.Config) (*atlas.Atlas, error) {
	a, err := atlas.Load(cfg.Assets.Atlas)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{atlas.Crab0, atlas.Crab1, atlas.PipeTop, atlas.PipeBottom, atlas.FloorTile} {
		if _, ok := a.Lookup(name); !ok {
			return nil, fmt.Errorf("atlas: missing sprite %q", name)
		}
	}
	return a, nil
}
