package engine

import (
	"fmt"

	"cognitive-rogue/internal/domain"

	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=mock/mock_frontend.go -package=enginemock cognitive-rogue/internal/engine Frontend

// Frontend - внешний коллаборатор сессии: рисует кадр и отдаёт следующее действие игрока.
// Терминал (tcell) и автоигрок реализуют один и тот же контракт.
type Frontend interface {
	Draw(s *Session)
	NextCommand() (domain.Command, error)
}

// Run - главный цикл сессии. Шаг симуляции выполняется только после действия игрока,
// которое потратило ход. Возвращается по Quit или по ошибке фронтенда.
func (s *Session) Run(f Frontend) error {
	for {
		if s.State == StateRunning {
			s.Step()
			if s.State == StateRunning {
				s.State = StatePaused
			}
			continue
		}

		// Paused или GameOver: показываем кадр и ждём ввод
		f.Draw(s)
		cmd, err := f.NextCommand()
		if err != nil {
			return fmt.Errorf("frontend: %w", err)
		}

		if cmd.Action == domain.ActionQuit {
			s.log.WithFields(logrus.Fields{
				"turn":  s.ctx.Turn,
				"state": s.State.String(),
			}).Info("Session quit")
			return nil
		}

		acted, err := s.HandleCommand(cmd)
		if err != nil {
			// Некорректная команда не ломает сессию, просто ждём следующую
			continue
		}
		if acted {
			s.State = StateRunning
		}
	}
}

// Summary - итог сессии для режима simulate
type Summary struct {
	SessionID     string
	Seed          int64
	Turns         int
	State         RunState
	PlayerHP      int
	PlayerMaxHP   int
	MonstersAlive int
	Rooms         int
	Revealed      int
}

func (s *Session) Summary() Summary {
	st := s.PlayerStats()
	revealed := 0
	for _, r := range s.Map.Revealed {
		if r {
			revealed++
		}
	}
	return Summary{
		SessionID:     s.ID,
		Seed:          s.Seed,
		Turns:         s.ctx.Turn,
		State:         s.State,
		PlayerHP:      st.HP,
		PlayerMaxHP:   st.MaxHP,
		MonstersAlive: s.C.Monsters.Count(),
		Rooms:         len(s.Map.Rooms),
		Revealed:      revealed,
	}
}
