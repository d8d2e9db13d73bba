package main

import (
	"fmt"

	"cognitive-rogue/internal/engine"
	"cognitive-rogue/internal/terminal"
	"cognitive-rogue/internal/version"
	"cognitive-rogue/pkg/logger"

	"github.com/spf13/cobra"
)

var playRecordDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive session. Arrows or hjkl move, yubn move diagonally,
'.' or space waits a turn, q or Esc quits. Logs go to the file from log.file.`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playRecordDir, "record", "", "directory to save the session replay into")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// stdout занят экраном: логи только в файл
	logFile, err := logger.OpenFile(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger.Configure(cfg.Log.Level, cfg.Log.Format, logFile)
	logger.Log.Info(version.String())

	session, err := engine.NewSession(cfg)
	if err != nil {
		return err
	}

	term, err := terminal.Open(cfg.UI.LogLines)
	if err != nil {
		return err
	}
	if err := runTerminal(session, term); err != nil {
		return err
	}

	sum := session.Summary()
	out := cmd.OutOrStdout()
	if sum.State == engine.StateGameOver {
		fmt.Fprintf(out, "You died on turn %d. Seed: %d\n", sum.Turns, sum.Seed)
	} else {
		fmt.Fprintf(out, "Quit on turn %d with %d/%d hp. Seed: %d\n", sum.Turns, sum.PlayerHP, sum.PlayerMaxHP, sum.Seed)
	}
	return saveReplay(cmd, playRecordDir, session)
}

// runTerminal играет сессию и возвращает терминал в исходное состояние,
// даже если Run паникует. Итог печатается уже после Close.
func runTerminal(session *engine.Session, term *terminal.Terminal) error {
	defer term.Close()
	return session.Run(term)
}
