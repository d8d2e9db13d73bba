package systems

import (
	"fmt"

	"cognitive-rogue/internal/domain"
	"cognitive-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ResolveMelee - урон удара. Никогда не отрицательный.
func ResolveMelee(power, defence int) int {
	return max(0, power-defence)
}

// MeleeCombatSystem превращает намерения WantsToMelee в очередь урона и удаляет их.
func MeleeCombatSystem(ctx *Context) {
	c := ctx.C

	for _, attacker := range ctx.World.Query().With(c.Melee).With(c.Stats).Execute() {
		intent, _ := c.Melee.Get(attacker)
		atk, _ := c.Stats.Get(attacker)
		if atk.IsDead() {
			continue
		}

		combatLogger := logger.Log.WithFields(logrus.Fields{
			"component":     "combat_system",
			"attacker_id":   attacker.String(),
			"attacker_name": c.NameOf(attacker),
			"target_id":     intent.Target.String(),
		})

		// Устаревшая цель (уже удалена) - no-op
		if v := ValidateMeleeTarget(ctx, attacker, intent.Target); !v.Valid {
			combatLogger.WithField("reason", v.Reason).Debug("Melee intent dropped")
			continue
		}

		def, _ := c.Stats.Get(intent.Target)
		damage := ResolveMelee(atk.Power, def.Defence)

		combatLogger.WithFields(logrus.Fields{
			"power":        atk.Power,
			"defence":      def.Defence,
			"final_damage": damage,
		}).Info("Attack resolved.")

		// Нулевой урон тоже попадает в очередь: каждый разрешённый удар оставляет запись
		c.InflictDamage(intent.Target, damage)
		if damage == 0 {
			ctx.Log.Addf(ctx.Turn, domain.LogTypeCombat, "%s is unable to hurt %s.",
				c.NameOf(attacker), c.NameOf(intent.Target))
			continue
		}
		ctx.Log.Add(ctx.Turn, domain.LogTypeCombat,
			fmt.Sprintf("%s hits %s, for %d hp.", c.NameOf(attacker), c.NameOf(intent.Target), damage),
			attacker, intent.Target)
	}

	// Намерения живут ровно один шаг
	c.Melee.Clear()
}

// DamageSystem применяет накопленный урон один раз и очищает очереди у всех.
func DamageSystem(ctx *Context) {
	c := ctx.C

	for _, id := range ctx.World.Query().With(c.Damage).With(c.Stats).Execute() {
		d, _ := c.Damage.Get(id)
		stats := c.Stats.Ptr(id)
		hpBefore := stats.HP
		stats.TakeDamage(d.Total())

		logger.Log.WithFields(logrus.Fields{
			"component": "damage_system",
			"entity":    c.NameOf(id),
			"hits":      len(d.Amounts),
			"hp_before": hpBefore,
			"hp_after":  stats.HP,
		}).Debug("Damage applied")
	}

	c.Damage.Clear()
}

// DeathSweep удаляет сущности с HP < 1. Удаление отложено до World.Maintain().
//
// Исключение из правила "HP < 1 - удалить": игрок остаётся в мире.
// Вместо удаления выставляется PlayerDead, сессия переходит в GameOver,
// а последний кадр ещё рисует игрока на месте гибели.
func DeathSweep(ctx *Context) {
	c := ctx.C
	m := ctx.Map

	for _, id := range ctx.World.Query().With(c.Stats).Execute() {
		stats, _ := c.Stats.Get(id)
		if !stats.IsDead() {
			continue
		}

		if id == ctx.Player || c.Players.Has(id) {
			if !ctx.PlayerDead {
				ctx.PlayerDead = true
				ctx.Log.Add(ctx.Turn, domain.LogTypeDeath, "You are dead!", id)
			}
			continue
		}

		ctx.Log.Addf(ctx.Turn, domain.LogTypeDeath, "%s is dead", c.NameOf(id))

		// Клетка освобождается сразу: следующий шаг не должен видеть труп в индексе
		if pos, ok := c.Positions.Get(id); ok {
			idx := m.IndexOf(pos)
			m.Blocked[idx] = m.Tiles[idx] == domain.TileWall
			removeContent(m, idx, id)
		}
		ctx.World.DeferDestroy(id)
	}
}
