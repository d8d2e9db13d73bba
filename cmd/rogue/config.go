package main

import (
	"os"

	"cognitive-rogue/internal/config"

	"github.com/spf13/cobra"
)

// Общие флаги всех команд
var flags struct {
	configPath string
	seed       int64
	width      int
	height     int
	rooms      int
}

// loadConfig собирает конфиг по слоям: умолчания, YAML, окружение, флаги.
// Флаги применяются, только если их явно передали.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}

	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Seed = flags.seed
	}
	if f.Changed("width") {
		cfg.Map.Width = flags.width
	}
	if f.Changed("height") {
		cfg.Map.Height = flags.height
	}
	if f.Changed("rooms") {
		cfg.Map.MaxRooms = flags.rooms
	}
	return cfg, nil
}
