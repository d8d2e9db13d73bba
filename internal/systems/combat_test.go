package systems

import (
	"testing"

	"cognitive-rogue/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMelee(t *testing.T) {
	tests := []struct {
		name           string
		power, defence int
		want           int
	}{
		{"power beats defence", 5, 2, 3},
		{"defence beats power", 1, 5, 0},
		{"equal", 4, 4, 0},
		{"no defence", 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMelee(tt.power, tt.defence))
		})
	}
}

func TestMeleeCombatSystem(t *testing.T) {
	ctx := openContext(10, 5)
	pid := addPlayer(ctx, domain.Position{X: 2, Y: 2}, domain.CombatStats{MaxHP: 30, HP: 30, Defence: 2, Power: 5})
	m1 := addMonster(ctx, "Goblin #1", domain.Position{X: 3, Y: 2}, defaultStats())
	m2 := addMonster(ctx, "Orc #2", domain.Position{X: 2, Y: 3}, defaultStats())

	ctx.C.Melee.Set(pid, domain.WantsToMelee{Target: m1})
	ctx.C.Melee.Set(m1, domain.WantsToMelee{Target: pid})
	ctx.C.Melee.Set(m2, domain.WantsToMelee{Target: pid})

	MeleeCombatSystem(ctx)

	// Игрок: 5 - 1 = 4 по гоблину
	d, ok := ctx.C.Damage.Get(m1)
	require.True(t, ok)
	assert.Equal(t, []int{4}, d.Amounts)

	// Два монстра по игроку: (4 - 2) дважды
	d, ok = ctx.C.Damage.Get(pid)
	require.True(t, ok)
	assert.Equal(t, []int{2, 2}, d.Amounts)

	// Намерения потреблены
	assert.Equal(t, 0, ctx.C.Melee.Count())
	assert.Equal(t, 3, ctx.Log.Len())
}

func TestMeleeCombatSystem_ZeroDamage(t *testing.T) {
	ctx := openContext(10, 5)
	pid := addPlayer(ctx, domain.Position{X: 2, Y: 2}, domain.CombatStats{MaxHP: 30, HP: 30, Defence: 5, Power: 5})
	m := addMonster(ctx, "Goblin #1", domain.Position{X: 3, Y: 2}, domain.CombatStats{MaxHP: 5, HP: 5, Power: 1})

	ctx.C.Melee.Set(m, domain.WantsToMelee{Target: pid})
	MeleeCombatSystem(ctx)

	d, ok := ctx.C.Damage.Get(pid)
	require.True(t, ok, "zero damage is still queued")
	assert.Equal(t, []int{0}, d.Amounts)
	assert.Equal(t, "Goblin #1 is unable to hurt Player.", ctx.Log.Recent(1)[0].Text)

	DamageSystem(ctx)
	stats, _ := ctx.C.Stats.Get(pid)
	assert.Equal(t, 30, stats.HP)
	assert.False(t, ctx.C.Damage.Has(pid))
}

func TestMeleeCombatSystem_StaleTargetIsNoop(t *testing.T) {
	ctx := openContext(10, 5)
	pid := addPlayer(ctx, domain.Position{X: 2, Y: 2}, defaultStats())
	m := addMonster(ctx, "Goblin #1", domain.Position{X: 3, Y: 2}, defaultStats())

	ctx.C.Melee.Set(pid, domain.WantsToMelee{Target: m})
	ctx.World.Destroy(m)

	assert.NotPanics(t, func() { MeleeCombatSystem(ctx) })
	assert.Equal(t, 0, ctx.C.Damage.Count())
	assert.Equal(t, 0, ctx.C.Melee.Count())
}

func TestDamageSystem(t *testing.T) {
	ctx := openContext(10, 5)
	a := addMonster(ctx, "Goblin #1", domain.Position{X: 1, Y: 1}, defaultStats())
	b := addMonster(ctx, "Goblin #2", domain.Position{X: 3, Y: 1}, defaultStats())

	ctx.C.InflictDamage(a, 3)
	ctx.C.InflictDamage(a, 4)

	DamageSystem(ctx)

	sa, _ := ctx.C.Stats.Get(a)
	sb, _ := ctx.C.Stats.Get(b)
	assert.Equal(t, 16-7, sa.HP)
	assert.Equal(t, 16, sb.HP)
	assert.Equal(t, 0, ctx.C.Damage.Count(), "queues are cleared for everyone")

	// Повторный прогон не применяет урон второй раз
	DamageSystem(ctx)
	sa, _ = ctx.C.Stats.Get(a)
	assert.Equal(t, 9, sa.HP)
}

func TestDeathSweep(t *testing.T) {
	tests := []struct {
		name      string
		hp        int
		wantAlive bool
	}{
		{"hp 0 is removed", 0, false},
		{"negative hp is removed", -3, false},
		{"hp 1 survives", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := openContext(10, 5)
			addPlayer(ctx, domain.Position{X: 1, Y: 1}, defaultStats())
			pos := domain.Position{X: 5, Y: 2}
			m := addMonster(ctx, "Goblin #1", pos, domain.CombatStats{MaxHP: 16, HP: tt.hp, Power: 4})
			MapIndexingSystem(ctx)

			DeathSweep(ctx)

			// До границы шага сущность ещё существует
			assert.True(t, ctx.World.Alive(m))

			ctx.World.Maintain()

			assert.Equal(t, tt.wantAlive, ctx.World.Alive(m))
			assert.Equal(t, tt.wantAlive, ctx.C.Stats.Has(m))
			assert.Equal(t, tt.wantAlive, ctx.C.Positions.Has(m))
			assert.Equal(t, tt.wantAlive, ctx.Map.Blocked[ctx.Map.IndexOf(pos)])
		})
	}
}

func TestDeathSweep_PlayerIsKept(t *testing.T) {
	ctx := openContext(10, 5)
	pid := addPlayer(ctx, domain.Position{X: 1, Y: 1}, domain.CombatStats{MaxHP: 30, HP: 0})

	DeathSweep(ctx)
	DeathSweep(ctx)
	ctx.World.Maintain()

	assert.True(t, ctx.World.Alive(pid))
	assert.True(t, ctx.PlayerDead)
	assert.Equal(t, 1, ctx.Log.Len(), "death is reported once")
}

func TestStep_KillOverOneStep(t *testing.T) {
	ctx := openContext(10, 5)
	addPlayer(ctx, domain.Position{X: 2, Y: 2}, domain.CombatStats{MaxHP: 30, HP: 30, Defence: 2, Power: 20})
	m := addMonster(ctx, "Goblin #1", domain.Position{X: 3, Y: 2}, defaultStats())
	MapIndexingSystem(ctx)

	require.True(t, PlayerMove(ctx, 1, 0), "bump into monster attacks")
	runStep(ctx)

	assert.False(t, ctx.World.Alive(m))
	assert.False(t, ctx.PlayerDead)
}
