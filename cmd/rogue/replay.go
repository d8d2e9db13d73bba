package main

import (
	"fmt"
	"os"

	"cognitive-rogue/internal/agent"
	"cognitive-rogue/internal/engine"
	"cognitive-rogue/internal/infrastructure/storage"
	"cognitive-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file.rgrp>",
	Short: "Replay a recorded session headlessly",
	Long: `Regenerate the level from the recorded seed and map size, feed the recorded
commands back into the session and print the summary. Creature templates come from the current config.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	rec, err := storage.NewReplayService("").Load(args[0])
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}
	cfg.Seed = rec.Seed
	cfg.Map.Width = rec.Width
	cfg.Map.Height = rec.Height
	cfg.Map.MaxRooms = rec.MaxRooms
	cfg.Map.MinRoomSize = rec.MinRoomSize
	cfg.Map.MaxRoomSize = rec.MaxRoomSize
	cfg.Map.Margin = rec.Margin

	session, err := engine.NewSession(cfg)
	if err != nil {
		return err
	}
	pb := agent.NewPlayback(rec)
	if err := session.Run(pb); err != nil {
		return err
	}

	sum := session.Summary()
	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"file":      args[0],
		"commands":  len(rec.Commands),
		"diverged":  pb.Diverged,
	}).Info("Replay finished")

	printSummary(cmd, sum)
	fmt.Fprintf(cmd.OutOrStdout(), "diverged:  %d of %d commands\n", pb.Diverged, len(rec.Commands))
	return nil
}

// saveReplay пишет запись сессии, если задан каталог --record
func saveReplay(cmd *cobra.Command, dir string, s *engine.Session) error {
	if dir == "" {
		return nil
	}
	path, err := storage.NewReplayService(dir).Save(s.Replay)
	if err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "replay:    %s\n", path)
	return nil
}
