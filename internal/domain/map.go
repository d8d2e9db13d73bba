package domain

import (
	"strings"

	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/pkg/pathfind"
)

// TileType - тип клетки. После генерации не меняется.
type TileType uint8

const (
	TileWall TileType = iota
	TileFloor
)

func (t TileType) String() string {
	switch t {
	case TileWall:
		return "WALL"
	case TileFloor:
		return "FLOOR"
	}
	return "UNKNOWN"
}

// Map - сетка уровня и все параллельные маски.
// Индекс клетки всегда считается через XYToIndex: y*Width + x.
type Map struct {
	Width  int
	Height int

	Tiles    []TileType
	Revealed []bool // Монотонна: раз открытая клетка остаётся открытой
	Visible  []bool // Только текущий кадр игрока

	// Пересобираются с нуля каждый шаг (MapIndexingSystem)
	Blocked     []bool
	TileContent [][]types.EntityID

	Rooms    []Rect
	StartPos Position
}

// NewMap создаёт карту, целиком залитую стеной.
func NewMap(width, height int) *Map {
	n := width * height
	m := &Map{
		Width:       width,
		Height:      height,
		Tiles:       make([]TileType, n),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]types.EntityID, n),
	}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}
	m.ResetBlocked()
	return m
}

// Len - количество клеток.
func (m *Map) Len() int {
	return m.Width * m.Height
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// XYToIndex - единственный способ получить индекс клетки.
// Вне границ - паника OutOfBoundsError.
func (m *Map) XYToIndex(x, y int) int {
	if !m.InBounds(x, y) {
		panic(OutOfBoundsError{X: x, Y: y, Width: m.Width, Height: m.Height})
	}
	return y*m.Width + x
}

// IndexToXY - обратное к XYToIndex.
func (m *Map) IndexToXY(idx int) (int, int) {
	if idx < 0 || idx >= m.Len() {
		panic(OutOfBoundsError{X: idx, Y: -1, Width: m.Width, Height: m.Height})
	}
	return idx % m.Width, idx / m.Width
}

func (m *Map) IndexOf(p Position) int {
	return m.XYToIndex(p.X, p.Y)
}

func (m *Map) PositionOf(idx int) Position {
	x, y := m.IndexToXY(idx)
	return Position{X: x, Y: y}
}

// SetTile меняет тип клетки. Используется только генератором.
func (m *Map) SetTile(x, y int, t TileType) {
	m.Tiles[m.XYToIndex(x, y)] = t
}

// TileAt - тип клетки по координатам.
func (m *Map) TileAt(x, y int) TileType {
	return m.Tiles[m.XYToIndex(x, y)]
}

// IsOpaque - клетка закрывает обзор.
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles[idx] == TileWall
}

// IsWalkable - пол и никто не стоит в клетке на этом шаге.
func (m *Map) IsWalkable(idx int) bool {
	return m.Tiles[idx] == TileFloor && !m.Blocked[idx]
}

// ResetBlocked сбрасывает индекс занятости: блокируют только стены.
func (m *Map) ResetBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContent очищает индекс сущностей по клеткам.
func (m *Map) ClearContent() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ClearVisible гасит маску видимости перед пересчётом.
func (m *Map) ClearVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

var cardinal = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Neighbors - 4-соседство, цена 1. Непроходимые соседи не возвращаются.
func (m *Map) Neighbors(idx int) []pathfind.Edge {
	return m.neighbors(idx, -1)
}

func (m *Map) neighbors(idx, goal int) []pathfind.Edge {
	x, y := m.IndexToXY(idx)
	out := make([]pathfind.Edge, 0, 4)
	for _, d := range cardinal {
		nx, ny := x+d[0], y+d[1]
		if !m.InBounds(nx, ny) {
			continue
		}
		n := m.XYToIndex(nx, ny)
		// Цель (обычно игрок) сама блокирует клетку, но дойти до неё можно
		if m.IsWalkable(n) || (n == goal && m.Tiles[n] == TileFloor) {
			out = append(out, pathfind.Edge{To: n, Cost: 1})
		}
	}
	return out
}

// Heuristic - манхэттенское расстояние, допустимое для 4-соседства.
func (m *Map) Heuristic(from, to int) int {
	fx, fy := m.IndexToXY(from)
	tx, ty := m.IndexToXY(to)
	return abs(fx-tx) + abs(fy-ty)
}

// PathGraph возвращает граф, в котором занятая клетка goal считается проходимой.
func (m *Map) PathGraph(goal int) pathfind.Graph {
	return goalGraph{m: m, goal: goal}
}

type goalGraph struct {
	m    *Map
	goal int
}

func (g goalGraph) Neighbors(idx int) []pathfind.Edge { return g.m.neighbors(idx, g.goal) }
func (g goalGraph) Heuristic(from, to int) int       { return g.m.Heuristic(from, to) }

var _ pathfind.Graph = (*Map)(nil)

// String рисует карту ASCII: '#' стена, '.' пол, '@' стартовая позиция.
func (m *Map) String() string {
	var sb strings.Builder
	sb.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			switch {
			case x == m.StartPos.X && y == m.StartPos.Y:
				sb.WriteByte('@')
			case m.TileAt(x, y) == TileFloor:
				sb.WriteByte('.')
			default:
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
