// Package agent - автоигрок для безголового режима.
package agent

import (
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/engine"
	"cognitive-rogue/pkg/logger"
	"cognitive-rogue/pkg/pathfind"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/sirupsen/logrus"
)

// Bot представляет собой "Игрока-компьютера" (Headless Agent).
// Реализует engine.Frontend так же, как терминал: получает кадр через Draw
// и на основе увиденного решает, какую команду вернуть из NextCommand.
//
// Жизненный цикл:
//  1. NewBot -> лимит ходов и кубик для случайных блужданий.
//  2. Session.Run(bot) -> Draw запоминает сессию, NextCommand выбирает действие.
//  3. По исчерпании лимита или после смерти игрока бот возвращает Quit.
type Bot struct {
	MaxTurns int
	Issued   int // Сколько команд отдано

	roller  dice.Roller
	session *engine.Session
	log     *logrus.Entry
}

var _ engine.Frontend = (*Bot)(nil)

// Направления для случайного шага: 1d4
var cardinal = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func NewBot(roller dice.Roller, maxTurns int) *Bot {
	return &Bot{
		MaxTurns: maxTurns,
		roller:   roller,
		log:      logger.Log.WithField("component", "agent"),
	}
}

// Draw - бот ничего не рисует, только запоминает сессию для следующего решения.
func (b *Bot) Draw(s *engine.Session) {
	b.session = s
}

// NextCommand - это мозг бота.
func (b *Bot) NextCommand() (domain.Command, error) {
	s := b.session
	if s == nil || s.State == engine.StateGameOver || b.Issued >= b.MaxTurns {
		return domain.QuitCommand(), nil
	}
	b.Issued++

	// --- ШАГ 1: ЦЕЛЬ - ближайший видимый монстр ---
	target, ok := b.nearestVisibleMonster()
	if ok {
		if cmd, ok := b.approach(target); ok {
			return cmd, nil
		}
	}

	// --- ШАГ 2: ЦЕЛИ НЕТ - блуждаем ---
	return b.wander(), nil
}

func (b *Bot) nearestVisibleMonster() (domain.Position, bool) {
	s := b.session
	vs, ok := s.C.Viewsheds.Get(s.Player())
	if !ok {
		return domain.Position{}, false
	}
	me := s.PlayerPos()

	var best domain.Position
	bestDist := -1
	for _, id := range s.C.Monsters.All() {
		if !s.World.Alive(id) {
			continue
		}
		pos, ok := s.C.Positions.Get(id)
		if !ok || !vs.Sees(pos) {
			continue
		}
		d := me.DistanceSquaredTo(pos)
		if bestDist < 0 || d < bestDist {
			best, bestDist = pos, d
		}
	}
	return best, bestDist >= 0
}

// approach - шаг к цели. Если цель рядом, шаг в неё превращается в атаку.
func (b *Bot) approach(target domain.Position) (domain.Command, bool) {
	s := b.session
	me := s.PlayerPos()
	if me.IsAdjacent(target) {
		return domain.MoveCommand(target.X-me.X, target.Y-me.Y), true
	}

	m := s.Map
	goal := m.IndexOf(target)
	path, err := pathfind.FindPath(m.PathGraph(goal), m.IndexOf(me), goal)
	if err != nil {
		b.log.WithFields(logrus.Fields{
			"from": me.String(),
			"to":   target.String(),
		}).Debug("No path to target")
		return domain.Command{}, false
	}
	next, ok := path.Next()
	if !ok {
		return domain.Command{}, false
	}
	step := m.PositionOf(next)
	return domain.MoveCommand(step.X-me.X, step.Y-me.Y), true
}

// wander бросает 1d4 на направление; если там стена или занято - ждём.
func (b *Bot) wander() domain.Command {
	roll, err := b.roller.Roll(len(cardinal))
	if err != nil {
		b.log.WithError(err).Warn("Dice roll failed")
		return domain.WaitCommand()
	}
	d := cardinal[roll-1]

	s := b.session
	next := s.PlayerPos().Shift(d[0], d[1])
	if !s.Map.InBounds(next.X, next.Y) || !s.Map.IsWalkable(s.Map.IndexOf(next)) {
		return domain.WaitCommand()
	}
	return domain.MoveCommand(d[0], d[1])
}
