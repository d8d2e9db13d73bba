package domain

import (
	"fmt"
	"math"
)

// Position - координата клетки на карте.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// DistanceTo возвращает точное расстояние до другой точки (float)
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(float64(p.X-other.X), float64(p.Y-other.Y))
}

// DistanceSquaredTo возвращает квадрат расстояния (int) для сравнения без корней
func (p Position) DistanceSquaredTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// IsAdjacent - соседи по Чебышёву: одна из восьми клеток вокруг, но не сама клетка.
func (p Position) IsAdjacent(other Position) bool {
	return max(abs(p.X-other.X), abs(p.Y-other.Y)) == 1
}

// Shift возвращает новую позицию со смещением, текущую не меняет
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
