package systems

import (
	"errors"

	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/core/types/enums"
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/pkg/logger"
	"cognitive-rogue/pkg/pathfind"

	"github.com/sirupsen/logrus"
)

// Decision - что монстр решил сделать на этом шаге. Между шагами не хранится.
type Decision struct {
	State   enums.AIState
	Next    domain.Position // Только для Pursue с найденным путём
	HasMove bool
	NoPath  bool // Игрок виден, но пути нет
}

// DecideMonsterAction решает, что делать монстру. Состояние мира не меняет.
func DecideMonsterAction(ctx *Context, id types.EntityID) Decision {
	c := ctx.C
	vs := c.Viewsheds.Ptr(id)
	pos, ok := c.Positions.Get(id)
	if vs == nil || !ok {
		return Decision{State: enums.AIStateIdle}
	}

	// 1. Не видим игрока - стоим
	if !vs.Sees(ctx.PlayerPos) {
		return Decision{State: enums.AIStateIdle}
	}

	// 2. Рядом (включая диагональ) - атакуем
	if pos.DistanceTo(ctx.PlayerPos) < MeleeRange {
		return Decision{State: enums.AIStateEngage}
	}

	// 3. Иначе ищем путь к игроку
	m := ctx.Map
	goal := m.IndexOf(ctx.PlayerPos)
	path, err := pathfind.FindPath(m.PathGraph(goal), m.IndexOf(pos), goal)
	if err != nil {
		if !errors.Is(err, pathfind.ErrNoPath) {
			logger.Log.WithError(err).WithField("component", "ai_system").Warn("Unexpected pathfinding error")
		}
		return Decision{State: enums.AIStateIdle, NoPath: true}
	}

	next, ok := path.Next()
	if !ok || next == goal {
		return Decision{State: enums.AIStatePursue}
	}
	return Decision{State: enums.AIStatePursue, Next: m.PositionOf(next), HasMove: true}
}

// MonsterAISystem принимает решения за всех монстров и сразу применяет их.
func MonsterAISystem(ctx *Context) {
	c := ctx.C
	ids := ctx.World.Query().With(c.Monsters).With(c.Viewsheds).With(c.Positions).Execute()

	for _, id := range ids {
		// Мёртвые (HP < 1) ждут DeathSweep и не действуют
		if s, ok := c.Stats.Get(id); ok && s.IsDead() {
			continue
		}

		d := DecideMonsterAction(ctx, id)
		aiLogger := logger.Log.WithFields(logrus.Fields{
			"component": "ai_system",
			"entity":    c.NameOf(id),
			"state":     d.State.String(),
		})

		switch d.State {
		case enums.AIStateEngage:
			c.Melee.Set(id, domain.WantsToMelee{Target: ctx.Player})
			aiLogger.Debug("Engaging player")

		case enums.AIStatePursue:
			if !d.HasMove {
				continue
			}
			// Перепроверка прямо перед ходом: клетку мог занять другой монстр
			if !ctx.Map.IsWalkable(ctx.Map.IndexOf(d.Next)) {
				aiLogger.WithField("next", d.Next.String()).Debug("Next tile taken, skipping move")
				continue
			}
			commitMove(ctx, id, d.Next)
			aiLogger.WithField("next", d.Next.String()).Debug("Pursuing player")

		case enums.AIStateIdle:
			if !d.NoPath {
				continue
			}
			// В журнал только то, что игрок видит сам
			if pos, ok := c.Positions.Get(id); ok && ctx.Map.Visible[ctx.Map.IndexOf(pos)] {
				ctx.Log.Addf(ctx.Turn, domain.LogTypeSpeech, "%s shouts insults", c.NameOf(id))
			} else {
				aiLogger.Debug("No path to player")
			}
		}
	}
}
