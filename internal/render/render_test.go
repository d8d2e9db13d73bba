package render

import (
	"os"
	"testing"

	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/engine"
	"cognitive-rogue/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// testFrame - карта 4x2: известный пол, неизвестная клетка и игрок
func testFrame() engine.Frame {
	f := engine.Frame{
		Width:  4,
		Height: 2,
		Cells:  make([]engine.Cell, 8),
		Status: engine.Status{Name: "Player", HP: 12, MaxHP: 30, Turn: 7, State: engine.StatePaused},
		Log: []domain.LogEntry{
			{Text: "Goblin #1 hits Player, for 3 hp.", Type: domain.LogTypeCombat},
			{Text: "Goblin #1 is dead", Type: domain.LogTypeDeath},
		},
	}
	f.Cells[0] = engine.Cell{Glyph: engine.FloorGlyph, Known: true}
	f.Cells[1] = engine.Cell{Glyph: engine.FloorGlyph.Greyscale(), Known: true}
	f.Cells[2] = engine.Cell{Glyph: types.MakeGlyph(0xFFFF00, '@'), Known: true}
	return f
}

func cellAt(t *testing.T, s tcell.SimulationScreen, x, y int) (rune, tcell.Color) {
	t.Helper()
	ch, _, style, _ := s.GetContent(x, y)
	fg, _, _ := style.Decompose()
	return ch, fg
}

func TestRenderer_DrawMap(t *testing.T) {
	screen := newScreen(t, 40, 10)
	New(screen).Draw(testFrame())

	tests := []struct {
		name  string
		x, y  int
		char  rune
		color tcell.Color
	}{
		{name: "visible floor", x: 0, y: 0, char: '.', color: tcell.NewRGBColor(0x80, 0x80, 0x80)},
		{name: "remembered floor", x: 1, y: 0, char: '.', color: tcell.NewRGBColor(0x80, 0x80, 0x80)},
		{name: "player", x: 2, y: 0, char: '@', color: tcell.NewRGBColor(0xFF, 0xFF, 0x00)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, fg := cellAt(t, screen, tt.x, tt.y)
			assert.Equal(t, tt.char, ch)
			assert.Equal(t, tt.color, fg)
		})
	}

	t.Run("unknown cell stays blank", func(t *testing.T) {
		ch, _ := cellAt(t, screen, 3, 0)
		assert.Equal(t, ' ', ch)
	})
}

func TestRenderer_DrawsGreyscaleWall(t *testing.T) {
	screen := newScreen(t, 10, 5)
	f := engine.Frame{Width: 1, Height: 1, Cells: []engine.Cell{{Glyph: engine.WallGlyph.Greyscale(), Known: true}}}
	New(screen).Draw(f)

	ch, fg := cellAt(t, screen, 0, 0)
	assert.Equal(t, '#', ch)
	// Зелёный 0x00FF00 по BT.601 даёт 0x95
	assert.Equal(t, tcell.NewRGBColor(0x95, 0x95, 0x95), fg)
}

func readRow(s tcell.SimulationScreen, y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		ch, _, _, _ := s.GetContent(x, y)
		out = append(out, ch)
	}
	return string(out)
}

func TestRenderer_StatusAndLog(t *testing.T) {
	screen := newScreen(t, 60, 10)
	New(screen).Draw(testFrame())

	assert.Contains(t, readRow(screen, 2, 60), "Player  HP: 12 / 30  Turn: 7")
	assert.Contains(t, readRow(screen, 3, 60), "Goblin #1 hits Player, for 3 hp.")
	assert.Contains(t, readRow(screen, 4, 60), "Goblin #1 is dead")

	_, fg := cellAt(t, screen, 0, 4)
	assert.Equal(t, tcell.ColorRed, fg)
}

func TestRenderer_GameOverBanner(t *testing.T) {
	screen := newScreen(t, 80, 6)
	f := testFrame()
	f.Status.State = engine.StateGameOver
	New(screen).Draw(f)

	assert.Contains(t, readRow(screen, 2, 80), "YOU ARE DEAD")
}

func TestRenderer_ClipsToScreen(t *testing.T) {
	screen := newScreen(t, 2, 1)
	assert.NotPanics(t, func() { New(screen).Draw(testFrame()) })

	ch, _ := cellAt(t, screen, 0, 0)
	assert.Equal(t, '.', ch)
}
