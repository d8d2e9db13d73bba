package main

import (
	"fmt"
	"os"

	"cognitive-rogue/internal/agent"
	"cognitive-rogue/internal/engine"
	"cognitive-rogue/pkg/logger"
	"cognitive-rogue/pkg/rng"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var simulateFlags struct {
	turns     int
	agentSeed int64
	recordDir string
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session with an autoplay agent",
	Long: `Run the simulation without a terminal. The agent attacks adjacent monsters,
walks toward the nearest visible one, and otherwise wanders. Prints a summary.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&simulateFlags.turns, "turns", 500, "maximum number of agent commands")
	simulateCmd.Flags().Int64Var(&simulateFlags.agentSeed, "agent-seed", 0, "agent dice seed (0 uses the world seed)")
	simulateCmd.Flags().StringVar(&simulateFlags.recordDir, "record", "", "directory to save the session replay into")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Configure(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	session, err := engine.NewSession(cfg)
	if err != nil {
		return err
	}

	agentSeed := simulateFlags.agentSeed
	if agentSeed == 0 {
		agentSeed = session.Seed
	}
	bot := agent.NewBot(rng.New(agentSeed), simulateFlags.turns)
	if err := session.Run(bot); err != nil {
		return err
	}

	sum := session.Summary()
	logger.Log.WithFields(logrus.Fields{
		"component": "simulate",
		"session":   sum.SessionID,
		"turns":     sum.Turns,
		"state":     sum.State.String(),
	}).Info("Simulation finished")

	printSummary(cmd, sum)
	fmt.Fprintf(cmd.OutOrStdout(), "commands:  %d\n", bot.Issued)
	return saveReplay(cmd, simulateFlags.recordDir, session)
}

func printSummary(cmd *cobra.Command, sum engine.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:      %d\n", sum.Seed)
	fmt.Fprintf(out, "turns:     %d\n", sum.Turns)
	fmt.Fprintf(out, "state:     %s\n", sum.State)
	fmt.Fprintf(out, "player hp: %d/%d\n", sum.PlayerHP, sum.PlayerMaxHP)
	fmt.Fprintf(out, "monsters:  %d alive in %d rooms\n", sum.MonstersAlive, sum.Rooms)
	fmt.Fprintf(out, "revealed:  %d tiles\n", sum.Revealed)
}
