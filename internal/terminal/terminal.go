// Package terminal - интерактивный фронтенд сессии поверх tcell.
package terminal

import (
	"errors"
	"fmt"

	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/engine"
	"cognitive-rogue/internal/input"
	"cognitive-rogue/internal/render"
	"cognitive-rogue/pkg/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// ErrScreenClosed - экран закрыт, событий больше не будет
var ErrScreenClosed = errors.New("terminal: screen closed")

// Terminal реализует engine.Frontend: рисует кадр и блокируется на вводе.
type Terminal struct {
	screen   tcell.Screen
	renderer *render.Renderer
	logLines int

	last *engine.Session // Для перерисовки при изменении размера окна
	log  *logrus.Entry
}

var _ engine.Frontend = (*Terminal)(nil)

// New оборачивает уже инициализированный экран (в тестах - SimulationScreen).
func New(screen tcell.Screen, logLines int) *Terminal {
	return &Terminal{
		screen:   screen,
		renderer: render.New(screen),
		logLines: logLines,
		log:      logger.Log.WithField("component", "terminal"),
	}
}

// Open создает и инициализирует экран реального терминала.
func Open(logLines int) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.HideCursor()
	return New(screen, logLines), nil
}

// Close возвращает терминал в исходное состояние
func (t *Terminal) Close() {
	t.screen.Fini()
}

func (t *Terminal) Draw(s *engine.Session) {
	t.last = s
	t.renderer.Draw(s.BuildFrame(t.logLines))
}

// NextCommand ждёт клавишу, которая что-то значит. Остальные события игнорируются.
func (t *Terminal) NextCommand() (domain.Command, error) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return domain.Command{}, ErrScreenClosed
		case *tcell.EventResize:
			t.screen.Sync()
			if t.last != nil {
				t.Draw(t.last)
			}
		case *tcell.EventKey:
			cmd, ok := input.Decode(ev)
			if !ok {
				t.log.WithField("key", ev.Name()).Debug("Unmapped key")
				continue
			}
			return cmd, nil
		}
	}
}
