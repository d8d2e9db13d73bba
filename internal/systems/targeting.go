package systems

import "cognitive-rogue/internal/core/types"

// MeleeRange - соседняя клетка, включая диагональ
const MeleeRange = 1.5

// ValidationResult - результат проверки цели
type ValidationResult struct {
	Valid  bool
	Reason string // Почему цель не годится, если Valid == false
}

// ValidateMeleeTarget проверяет, может ли attacker ударить target на этом шаге.
// Ссылка на уже удалённую сущность - не ошибка, а просто невалидная цель.
func ValidateMeleeTarget(ctx *Context, attacker, target types.EntityID) ValidationResult {
	c := ctx.C

	// 1. Поиск цели
	if !ctx.World.Alive(target) {
		return ValidationResult{Reason: "target is gone"}
	}
	stats, ok := c.Stats.Get(target)
	if !ok {
		return ValidationResult{Reason: "target has no combat stats"}
	}
	if stats.IsDead() {
		return ValidationResult{Reason: "target is already dead"}
	}

	// 2. Проверка дистанции: только соседняя клетка, себя не бьём
	from, ok1 := c.Positions.Get(attacker)
	to, ok2 := c.Positions.Get(target)
	if !ok1 || !ok2 {
		return ValidationResult{Reason: "no position"}
	}
	if !from.IsAdjacent(to) {
		return ValidationResult{Reason: "target out of reach"}
	}

	return ValidationResult{Valid: true}
}
