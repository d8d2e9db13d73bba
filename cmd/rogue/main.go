// Package main - консольный рогалик: игра в терминале, превью карты и безголовая симуляция.
package main

import (
	"fmt"
	"os"

	"cognitive-rogue/pkg/logger"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rogue",
	Short: "Turn-based terminal roguelike",
	Long: `rogue generates a dungeon from a seed, places the player and monsters,
and runs a strictly turn-based simulation: field of view, monster pursuit and melee.`,
	SilenceUsage: true,
}

func init() {
	logger.Init()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a YAML config (defaults are used when empty)")
	pf.Int64Var(&flags.seed, "seed", 0, "world seed (0 for random)")
	pf.IntVar(&flags.width, "width", 0, "map width override")
	pf.IntVar(&flags.height, "height", 0, "map height override")
	pf.IntVar(&flags.rooms, "rooms", 0, "max room placement attempts override")

	rootCmd.AddCommand(playCmd, mapgenCmd, simulateCmd, replayCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
