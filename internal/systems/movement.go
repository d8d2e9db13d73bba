package systems

import (
	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/domain"
)

// MovementResult - результат вычисления движения
type MovementResult struct {
	Target    domain.Position
	HasMoved  bool
	BlockedBy types.EntityID // Если врезались в кого-то с CombatStats (для атаки)
	IsWall    bool           // Если врезались в стену или край карты
	Occupied  bool           // Клетка занята блокирующей сущностью без боевых статов
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
func CalculateMove(ctx *Context, id types.EntityID, dx, dy int) MovementResult {
	pos, ok := ctx.C.Positions.Get(id)
	if !ok {
		return MovementResult{}
	}

	targetPos := pos.Shift(dx, dy)
	res := MovementResult{Target: targetPos}

	// 1. Проверка границ
	if !ctx.Map.InBounds(targetPos.X, targetPos.Y) {
		res.IsWall = true
		return res
	}
	idx := ctx.Map.IndexOf(targetPos)

	// 2. Проверка сущностей: живое тело в клетке - цель для атаки
	for _, other := range ctx.Map.TileContent[idx] {
		if other == id || !ctx.World.Alive(other) {
			continue
		}
		if ctx.C.Stats.Has(other) {
			res.BlockedBy = other
			return res
		}
	}

	// 3. Проверка стен
	if ctx.Map.Tiles[idx] == domain.TileWall {
		res.IsWall = true
		return res
	}

	// 4. Занятость
	if ctx.Map.Blocked[idx] {
		res.Occupied = true
		return res
	}

	res.HasMoved = true
	return res
}

// commitMove переносит сущность и сразу обновляет индексы карты,
// чтобы следующий участник этого же прохода видел новую занятость.
func commitMove(ctx *Context, id types.EntityID, to domain.Position) {
	c := ctx.C
	from, _ := c.Positions.Get(id)
	fromIdx := ctx.Map.IndexOf(from)
	toIdx := ctx.Map.IndexOf(to)

	if c.Blockers.Has(id) {
		ctx.Map.Blocked[fromIdx] = ctx.Map.Tiles[fromIdx] == domain.TileWall
		ctx.Map.Blocked[toIdx] = true
	}
	removeContent(ctx.Map, fromIdx, id)
	ctx.Map.TileContent[toIdx] = append(ctx.Map.TileContent[toIdx], id)

	c.Positions.Set(id, to)
	if vs := c.Viewsheds.Ptr(id); vs != nil {
		vs.Dirty = true
	}
	if id == ctx.Player {
		ctx.PlayerPos = to
	}
}

func removeContent(m *domain.Map, idx int, id types.EntityID) {
	content := m.TileContent[idx]
	for i, other := range content {
		if other == id {
			last := len(content) - 1
			content[i] = content[last]
			m.TileContent[idx] = content[:last]
			return
		}
	}
}

// TryMove двигает сущность, если клетка свободна. Возвращает результат проверки.
func TryMove(ctx *Context, id types.EntityID, dx, dy int) MovementResult {
	res := CalculateMove(ctx, id, dx, dy)
	if res.HasMoved {
		commitMove(ctx, id, res.Target)
	}
	return res
}

// PlayerMove - ход игрока. Шаг в клетку с живым телом превращается в атаку.
// Возвращает true, если действие потратило ход.
func PlayerMove(ctx *Context, dx, dy int) bool {
	res := TryMove(ctx, ctx.Player, dx, dy)
	if !res.BlockedBy.IsNil() {
		ctx.C.Melee.Set(ctx.Player, domain.WantsToMelee{Target: res.BlockedBy})
		return true
	}
	return res.HasMoved
}
