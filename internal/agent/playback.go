package agent

import (
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/engine"
	"cognitive-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Playback проигрывает записанные команды. Реализует engine.Frontend.
// Если номер хода сессии не совпал с записанным, партия разошлась с записью
// (другой конфиг существ или другая версия правил): команда всё равно отдаётся,
// а расхождение считается.
type Playback struct {
	Diverged int

	commands []domain.ReplayCommand
	next     int
	session  *engine.Session
	log      *logrus.Entry
}

var _ engine.Frontend = (*Playback)(nil)

func NewPlayback(r *domain.Replay) *Playback {
	return &Playback{
		commands: r.Commands,
		log:      logger.Log.WithField("component", "playback"),
	}
}

func (p *Playback) Draw(s *engine.Session) {
	p.session = s
}

func (p *Playback) NextCommand() (domain.Command, error) {
	if p.next >= len(p.commands) || p.session == nil || p.session.State == engine.StateGameOver {
		return domain.QuitCommand(), nil
	}
	rc := p.commands[p.next]
	p.next++

	if turn := p.session.Turn(); turn != rc.Turn {
		p.Diverged++
		p.log.WithFields(logrus.Fields{
			"recorded_turn": rc.Turn,
			"session_turn":  turn,
			"command":       rc.Command.String(),
		}).Warn("Replay diverged")
	}
	return rc.Command, nil
}

// Remaining - сколько команд ещё не проиграно
func (p *Playback) Remaining() int {
	return len(p.commands) - p.next
}
