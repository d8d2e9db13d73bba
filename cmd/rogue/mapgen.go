package main

import (
	"fmt"

	"cognitive-rogue/pkg/dungeon"
	"cognitive-rogue/pkg/rng"

	"github.com/spf13/cobra"
)

var mapgenCmd = &cobra.Command{
	Use:   "mapgen",
	Short: "Print a generated map as ASCII",
	Long:  `Generate a level for the given seed and print it: '#' wall, '.' floor, '@' start position.`,
	RunE:  runMapgen,
}

func runMapgen(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	seed := cfg.ResolveSeed()

	m, err := dungeon.Generate(rng.New(seed), cfg.Map.Params())
	if err != nil {
		return fmt.Errorf("seed %d: %w", seed, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, m.String())
	fmt.Fprintf(out, "seed: %d  size: %dx%d  rooms: %d  start: %s\n",
		seed, m.Width, m.Height, len(m.Rooms), m.StartPos)
	return nil
}
