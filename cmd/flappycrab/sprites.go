package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-crab/internal/atlas"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the texture atlas sprites",
	Long:  `Shows every sprite in the texture atlas with its frame rectangle.`,
	Args:  cobra.NoArgs,
	RunE:  runSprites,
}

func runSprites(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	a, err := atlas.Load(cfg.Assets.Atlas)
	if err != nil {
		return err
	}
	printSprites(cmd.OutOrStdout(), a)
	return nil
}

func printSprites(w io.Writer, a *atlas.Atlas) {
	names := a.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No sprites in atlas.")
		return
	}

	maxLen := len("Name")
	for _, n := range names {
		maxLen = max(maxLen, len(n))
	}

	fmt.Fprintf(w, "Atlas image: %s\n\n", a.Image())
	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "Name", "Frame (x, y, w, h)")
	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "----", "------------------")
	for _, n := range names {
		s, _ := a.Lookup(n)
		f := s.Frame
		fmt.Fprintf(w, "  %-*s  %d, %d, %d, %d\n", maxLen, n, f.X, f.Y, f.W, f.H)
	}
}
