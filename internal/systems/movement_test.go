package systems

import (
	"testing"

	"cognitive-rogue/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMove(t *testing.T) {
	ctx := newTestContext(
		"#####",
		"#...#",
		"#...#",
		"#####",
	)
	pid := addPlayer(ctx, domain.Position{X: 1, Y: 1}, defaultStats())
	m := addMonster(ctx, "Goblin #1", domain.Position{X: 3, Y: 2}, defaultStats())
	MapIndexingSystem(ctx)

	tests := []struct {
		name      string
		from      domain.Position
		dx, dy    int
		moved     bool
		wall      bool
		blockedBy bool
	}{
		{"free floor", domain.Position{X: 1, Y: 1}, 1, 0, true, false, false},
		{"wall", domain.Position{X: 1, Y: 1}, -1, 0, false, true, false},
		{"off map", domain.Position{X: 1, Y: 1}, -5, 0, false, true, false},
		{"into monster", domain.Position{X: 2, Y: 2}, 1, 0, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx.C.Positions.Set(pid, tt.from)
			res := CalculateMove(ctx, pid, tt.dx, tt.dy)

			assert.Equal(t, tt.moved, res.HasMoved)
			assert.Equal(t, tt.wall, res.IsWall)
			if tt.blockedBy {
				assert.Equal(t, m, res.BlockedBy)
			} else {
				assert.True(t, res.BlockedBy.IsNil())
			}

			// CalculateMove ничего не меняет
			pos, _ := ctx.C.Positions.Get(pid)
			assert.Equal(t, tt.from, pos)
		})
	}
}

func TestPlayerMove(t *testing.T) {
	ctx := newTestContext(
		"######",
		"#....#",
		"######",
	)
	pid := addPlayer(ctx, domain.Position{X: 1, Y: 1}, defaultStats())
	m := addMonster(ctx, "Goblin #1", domain.Position{X: 3, Y: 1}, defaultStats())
	MapIndexingSystem(ctx)
	VisibilitySystem(ctx)

	// В стену - ход не тратится
	assert.False(t, PlayerMove(ctx, 0, -1))
	assert.Equal(t, domain.Position{X: 1, Y: 1}, ctx.PlayerPos)

	// Шаг вправо
	require.True(t, PlayerMove(ctx, 1, 0))
	assert.Equal(t, domain.Position{X: 2, Y: 1}, ctx.PlayerPos)
	assert.True(t, ctx.C.Viewsheds.Ptr(pid).Dirty)
	assert.True(t, ctx.Map.Blocked[ctx.Map.XYToIndex(2, 1)])
	assert.False(t, ctx.Map.Blocked[ctx.Map.XYToIndex(1, 1)])

	// В монстра - атака вместо движения
	require.True(t, PlayerMove(ctx, 1, 0))
	assert.Equal(t, domain.Position{X: 2, Y: 1}, ctx.PlayerPos)
	intent, ok := ctx.C.Melee.Get(pid)
	require.True(t, ok)
	assert.Equal(t, m, intent.Target)
}

func TestPlayerMove_OccupiedByNonCombatant(t *testing.T) {
	ctx := openContext(5, 3)
	addPlayer(ctx, domain.Position{X: 1, Y: 1}, defaultStats())

	// Блокирующая сущность без CombatStats (например, статуя)
	statue := ctx.World.Create(0)
	ctx.C.Positions.Set(statue, domain.Position{X: 2, Y: 1})
	ctx.C.Blockers.Set(statue, domain.BlocksTile{})
	MapIndexingSystem(ctx)

	res := CalculateMove(ctx, ctx.Player, 1, 0)
	assert.True(t, res.Occupied)
	assert.False(t, PlayerMove(ctx, 1, 0))
}
