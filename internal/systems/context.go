package systems

import (
	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/ecs"
)

// Context - общее состояние симуляции, которое сессия передаёт в каждую систему.
// Глобальных синглтонов нет: карта и точка фокуса игрока живут здесь.
type Context struct {
	World *ecs.World
	C     *domain.Components
	Map   *domain.Map
	Log   *domain.GameLog

	Player    types.EntityID
	PlayerPos domain.Position

	Turn       int
	PlayerDead bool // Выставляется DeathSweep
}

// System - один проход по сущностям. Выполняется целиком, без приостановки.
type System struct {
	Name string
	Run  func(ctx *Context)
}

// StepOrder - фиксированный порядок систем одного шага симуляции.
var StepOrder = []System{
	{Name: "visibility", Run: VisibilitySystem},
	{Name: "monster_ai", Run: MonsterAISystem},
	{Name: "map_indexing", Run: MapIndexingSystem},
	{Name: "melee_combat", Run: MeleeCombatSystem},
	{Name: "damage", Run: DamageSystem},
	{Name: "death_sweep", Run: DeathSweep},
}
