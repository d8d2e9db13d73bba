package systems

import (
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Мультипликаторы для трансформации координат в 8 октантов
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// ComputeVisibleTiles возвращает множество клеток, видимых из pos в радиусе radius.
// Рекурсивный shadowcasting, стены непрозрачны. Клетки вне карты не попадают в результат.
func ComputeVisibleTiles(m *domain.Map, pos domain.Position, radius int) map[domain.Position]struct{} {
	visible := make(map[domain.Position]struct{})
	if radius <= 0 || !m.InBounds(pos.X, pos.Y) {
		return visible // Слепой
	}

	// 1. Центр всегда виден
	visible[pos] = struct{}{}

	// 2. Запускаем рекурсивный Shadowcasting для 8 октантов
	for i := 0; i < 8; i++ {
		castLight(m, pos.X, pos.Y, 1, 1.0, 0.0, radius,
			multipliers[0][i], multipliers[1][i],
			multipliers[2][i], multipliers[3][i], visible)
	}

	return visible
}

func castLight(m *domain.Map, cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, visible map[domain.Position]struct{}) {
	if start < end {
		return
	}

	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			// Расчет наклонов (Slopes)
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Трансформация координат в глобальные
			X := cx + dx*xx + dy*xy
			Y := cy + dx*yx + dy*yy

			// Проверка границ и радиуса
			if m.InBounds(X, Y) && dx*dx+dy*dy < radiusSq {
				visible[domain.Position{X: X, Y: Y}] = struct{}{}
			}

			// Логика теней
			if blocked {
				// Мы идем вдоль стены...
				if isBlocking(m, X, Y) {
					newStart = rSlope
					continue
				}
				// Стена кончилась, началась пустота
				blocked = false
				start = newStart
			} else if isBlocking(m, X, Y) && j < radius {
				// Мы шли по пустоте и наткнулись на стену
				blocked = true
				castLight(m, cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

// isBlocking проверяет, блокирует ли клетка взгляд. Выход за границы блокирует.
func isBlocking(m *domain.Map, x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.IsOpaque(m.XYToIndex(x, y))
}

// VisibilitySystem пересчитывает обзор у сущностей с грязным Viewshed.
// Для игрока дополнительно обновляет маски карты: Revealed накапливается, Visible перезаписывается.
func VisibilitySystem(ctx *Context) {
	c := ctx.C
	ids := ctx.World.Query().With(c.Viewsheds).With(c.Positions).Execute()

	for _, id := range ids {
		vs := c.Viewsheds.Ptr(id)
		if !vs.Dirty {
			continue
		}
		pos, _ := c.Positions.Get(id)

		vs.VisibleTiles = ComputeVisibleTiles(ctx.Map, pos, vs.Range)
		vs.Dirty = false

		if !c.Players.Has(id) {
			continue
		}

		ctx.Map.ClearVisible()
		for p := range vs.VisibleTiles {
			idx := ctx.Map.IndexOf(p)
			ctx.Map.Revealed[idx] = true
			ctx.Map.Visible[idx] = true
		}

		logger.Log.WithFields(logrus.Fields{
			"component":     "fov_system",
			"observer_pos":  pos.String(),
			"radius":        vs.Range,
			"visible_tiles": len(vs.VisibleTiles),
		}).Debug("Player FOV recomputed")
	}
}
