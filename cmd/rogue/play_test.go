package main

import (
	"testing"

	"cognitive-rogue/internal/config"
	"cognitive-rogue/internal/engine"
	"cognitive-rogue/internal/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simTerminal(t *testing.T) (*terminal.Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 60)
	return terminal.New(screen, 5), screen
}

func TestRunTerminal_ClosesOnQuit(t *testing.T) {
	term, screen := simTerminal(t)

	cfg := config.Default()
	cfg.Seed = 3
	session, err := engine.NewSession(cfg)
	require.NoError(t, err)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	require.NoError(t, runTerminal(session, term))

	// После Close экран больше не отдаёт события
	_, err = term.NextCommand()
	assert.ErrorIs(t, err, terminal.ErrScreenClosed)
}

func TestRunTerminal_ClosesOnPanic(t *testing.T) {
	term, _ := simTerminal(t)

	var session *engine.Session
	assert.Panics(t, func() { _ = runTerminal(session, term) })

	_, err := term.NextCommand()
	assert.ErrorIs(t, err, terminal.ErrScreenClosed)
}
