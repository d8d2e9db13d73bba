package pathfind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid - простая сетка для тестов: '#' стена, всё остальное проходимо.
type grid struct {
	w, h  int
	cells []byte
}

func newGrid(rows ...string) *grid {
	g := &grid{w: len(rows[0]), h: len(rows)}
	for _, r := range rows {
		g.cells = append(g.cells, r...)
	}
	return g
}

func (g *grid) idx(x, y int) int { return y*g.w + x }

func (g *grid) Neighbors(idx int) []Edge {
	x, y := idx%g.w, idx/g.w
	var out []Edge
	for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || ny < 0 || nx >= g.w || ny >= g.h {
			continue
		}
		if g.cells[g.idx(nx, ny)] == '#' {
			continue
		}
		out = append(out, Edge{To: g.idx(nx, ny), Cost: 1})
	}
	return out
}

func (g *grid) Heuristic(from, to int) int {
	dx := from%g.w - to%g.w
	dy := from/g.w - to/g.w
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func TestFindPath(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		start    [2]int
		goal     [2]int
		wantCost int
		wantErr  error
	}{
		{
			name:     "straight line",
			rows:     []string{".....", ".....", "....."},
			start:    [2]int{0, 1},
			goal:     [2]int{4, 1},
			wantCost: 4,
		},
		{
			name: "around a wall",
			rows: []string{
				".....",
				".###.",
				".....",
			},
			start:    [2]int{0, 1},
			goal:     [2]int{4, 1},
			wantCost: 6,
		},
		{
			name: "walled off",
			rows: []string{
				"..#..",
				"..#..",
				"..#..",
			},
			start:   [2]int{0, 0},
			goal:    [2]int{4, 2},
			wantErr: ErrNoPath,
		},
		{
			name:     "start equals goal",
			rows:     []string{"..."},
			start:    [2]int{1, 0},
			goal:     [2]int{1, 0},
			wantCost: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid(tt.rows...)
			start := g.idx(tt.start[0], tt.start[1])
			goal := g.idx(tt.goal[0], tt.goal[1])

			path, err := FindPath(g, start, goal)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, path.Steps)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, path.Cost)
			assert.Len(t, path.Steps, tt.wantCost+1)
			assert.Equal(t, start, path.Steps[0])
			assert.Equal(t, goal, path.Steps[len(path.Steps)-1])

			// Каждый шаг - сосед предыдущего
			for i := 1; i < len(path.Steps); i++ {
				assert.Equal(t, 1, g.Heuristic(path.Steps[i-1], path.Steps[i]))
			}
		})
	}
}

func TestFindPathBounded_Exhausted(t *testing.T) {
	g := newGrid(
		"..........",
		"..........",
		"..........",
	)

	_, err := FindPathBounded(g, g.idx(0, 0), g.idx(9, 2), 3)
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestPath_Next(t *testing.T) {
	next, ok := Path{Steps: []int{4, 5, 6}}.Next()
	assert.True(t, ok)
	assert.Equal(t, 5, next)

	_, ok = Path{Steps: []int{4}}.Next()
	assert.False(t, ok)
}
