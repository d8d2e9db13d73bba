package engine

import (
	"fmt"
	"time"

	"cognitive-rogue/internal/config"
	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/ecs"
	"cognitive-rogue/internal/engine/handlers"
	"cognitive-rogue/internal/engine/handlers/actions"
	"cognitive-rogue/internal/systems"
	"cognitive-rogue/pkg/dungeon"
	"cognitive-rogue/pkg/logger"
	"cognitive-rogue/pkg/rng"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RunState - состояние сессии между кадрами
type RunState uint8

const (
	// StateRunning - выполнить один шаг симуляции и перейти в Paused
	StateRunning RunState = iota
	// StatePaused - ждём действие игрока
	StatePaused
	// StateGameOver - игрок мёртв, принимается только Quit
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

// Session владеет контекстом симуляции: миром, картой, логом и генератором случайных чисел.
// Живёт от старта до выхода из игры.
type Session struct {
	ID     string
	Config config.Config
	Seed   int64

	World *ecs.World
	C     *domain.Components
	Map   *domain.Map
	Rng   *rng.Source
	Log   *domain.GameLog

	State  RunState
	Replay *domain.Replay // Команды, потратившие ход: по ним партия повторяется
	ctx    *systems.Context

	handlers map[domain.ActionType]handlers.HandlerFunc
	log      *logrus.Entry
}

// NewSession генерирует уровень по конфигу и расставляет сущности.
// Ошибка генерации фатальна для старта и возвращается как есть (errors.Is(err, dungeon.ErrGeneration)).
func NewSession(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	seed := cfg.ResolveSeed()
	src := rng.New(seed)

	m, err := dungeon.Generate(src, cfg.Map.Params())
	if err != nil {
		return nil, fmt.Errorf("new session (seed=%d): %w", seed, err)
	}

	id := uuid.NewString()
	world := ecs.NewWorld()
	s := &Session{
		ID:       id,
		Config:   cfg,
		Seed:     seed,
		World:    world,
		C:        domain.NewComponents(world),
		Map:      m,
		Rng:      src,
		Log:      domain.NewGameLog(id, domain.DefaultLogCapacity),
		State:    StateRunning,
		Replay: &domain.Replay{
			Seed:      seed,
			Timestamp: time.Now().UnixMilli(),
			Width:     m.Width,
			Height:    m.Height,
			MaxRooms:  cfg.Map.MaxRooms,

			MinRoomSize: cfg.Map.MinRoomSize,
			MaxRoomSize: cfg.Map.MaxRoomSize,
			Margin:      cfg.Map.Margin,
		},
		handlers: make(map[domain.ActionType]handlers.HandlerFunc),
		log: logger.Log.WithFields(logrus.Fields{
			"component": "session",
			"session":   id,
		}),
	}
	s.registerHandlers()

	player, err := s.spawnAll()
	if err != nil {
		return nil, err
	}

	s.ctx = &systems.Context{
		World:     world,
		C:         s.C,
		Map:       m,
		Log:       s.Log,
		Player:    player,
		PlayerPos: m.StartPos,
	}
	// Индексы карты нужны до первого шага: по ним работает атака с разбега
	systems.MapIndexingSystem(s.ctx)

	s.Log.Add(0, domain.LogTypeInfo, "Welcome to the dungeon!")
	s.log.WithFields(logrus.Fields{
		"seed":     seed,
		"rooms":    len(m.Rooms),
		"entities": world.Count(),
	}).Info("Session started")

	return s, nil
}

func (s *Session) registerHandlers() {
	s.handlers[domain.ActionMove] = handlers.WithDirection(actions.HandleMove)
	s.handlers[domain.ActionWait] = handlers.WithEmptyPayload(actions.HandleWait)
}

// Context - контекст симуляции, который получают системы.
func (s *Session) Context() *systems.Context { return s.ctx }

func (s *Session) Player() types.EntityID { return s.ctx.Player }

func (s *Session) PlayerPos() domain.Position { return s.ctx.PlayerPos }

func (s *Session) Turn() int { return s.ctx.Turn }

// PlayerStats возвращает текущие боевые статы игрока
func (s *Session) PlayerStats() domain.CombatStats {
	st, _ := s.C.Stats.Get(s.ctx.Player)
	return st
}

// Step выполняет один шаг симуляции в фиксированном порядке систем,
// затем применяет отложенные удаления.
func (s *Session) Step() {
	for _, sys := range systems.StepOrder {
		sys.Run(s.ctx)
	}
	removed := s.World.Maintain()
	s.ctx.Turn++

	s.log.WithFields(logrus.Fields{
		"turn":    s.ctx.Turn,
		"removed": removed,
	}).Debug("Step complete")

	if s.ctx.PlayerDead {
		s.State = StateGameOver
		s.log.WithField("turn", s.ctx.Turn).Info("Player died, game over")
	}
}

// HandleCommand применяет действие игрока. Возвращает true, если ход потрачен
// и сессия должна выполнить шаг. Quit обрабатывает Run, а не хендлер.
func (s *Session) HandleCommand(cmd domain.Command) (bool, error) {
	if s.State == StateGameOver {
		return false, nil
	}

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		s.log.WithField("action", cmd.String()).Warn("Unknown action")
		return false, nil
	}

	res, err := handler(s.ctx, cmd)
	if err != nil {
		s.log.WithError(err).WithField("action", cmd.String()).Warn("Command rejected")
		return false, err
	}

	if res.Msg != "" {
		s.Log.Add(s.ctx.Turn, res.MsgType, res.Msg, s.ctx.Player)
	}
	if res.Acted {
		s.Replay.Record(s.ctx.Turn, cmd)
	}
	return res.Acted, nil
}
