package domain

import (
	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/ecs"
)

// --- КОМПОНЕНТЫ ---

// Renderable - что рисовать в клетке сущности
type Renderable struct {
	Glyph types.Glyph
}

// Player - маркер сущности игрока (точка обзора для общих масок карты)
type Player struct{}

// Monster - маркер автономного агента
type Monster struct{}

// Name - имя для лога ("Goblin #3")
type Name struct {
	Name string
}

// Viewshed - что сущность видит сейчас.
// Dirty выставляется при каждом изменении Position и снимается после пересчёта.
type Viewshed struct {
	VisibleTiles map[Position]struct{}
	Range        int
	Dirty        bool
}

func NewViewshed(rangeTiles int) Viewshed {
	return Viewshed{
		VisibleTiles: make(map[Position]struct{}),
		Range:        rangeTiles,
		Dirty:        true,
	}
}

// Sees проверяет, входит ли клетка в текущий обзор.
func (v *Viewshed) Sees(p Position) bool {
	_, ok := v.VisibleTiles[p]
	return ok
}

// BlocksTile - сущность занимает клетку эксклюзивно
type BlocksTile struct{}

// CombatStats - боевые характеристики. HP может уйти в минус до DeathSweep.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defence int
	Power   int
}

// IsDead - условие смерти: HP < 1.
func (s *CombatStats) IsDead() bool {
	return s.HP < 1
}

// TakeDamage вычитает урон. Отрицательный урон не лечит.
func (s *CombatStats) TakeDamage(amount int) {
	if amount < 0 {
		amount = 0
	}
	s.HP -= amount
}

// WantsToMelee - намерение атаковать. Живёт до MeleeCombatSystem текущего шага.
type WantsToMelee struct {
	Target types.EntityID
}

// SufferDamage - очередь урона за шаг. Несколько атакующих дописывают сюда.
type SufferDamage struct {
	Amounts []int
}

func (d *SufferDamage) Total() int {
	sum := 0
	for _, a := range d.Amounts {
		sum += a
	}
	return sum
}

// Components - реестр типизированных хранилищ. Все хранилища зарегистрированы
// в мире, поэтому World.Destroy освобождает все компоненты сущности.
type Components struct {
	Positions   *ecs.Store[Position]
	Renderables *ecs.Store[Renderable]
	Players     *ecs.Store[Player]
	Monsters    *ecs.Store[Monster]
	Names       *ecs.Store[Name]
	Viewsheds   *ecs.Store[Viewshed]
	Blockers    *ecs.Store[BlocksTile]
	Stats       *ecs.Store[CombatStats]
	Melee       *ecs.Store[WantsToMelee]
	Damage      *ecs.Store[SufferDamage]
}

func NewComponents(w *ecs.World) *Components {
	return &Components{
		Positions:   ecs.NewStore[Position](w),
		Renderables: ecs.NewStore[Renderable](w),
		Players:     ecs.NewStore[Player](w),
		Monsters:    ecs.NewStore[Monster](w),
		Names:       ecs.NewStore[Name](w),
		Viewsheds:   ecs.NewStore[Viewshed](w),
		Blockers:    ecs.NewStore[BlocksTile](w),
		Stats:       ecs.NewStore[CombatStats](w),
		Melee:       ecs.NewStore[WantsToMelee](w),
		Damage:      ecs.NewStore[SufferDamage](w),
	}
}

// NameOf возвращает имя сущности или её ID, если имени нет.
func (c *Components) NameOf(id types.EntityID) string {
	if n, ok := c.Names.Get(id); ok {
		return n.Name
	}
	return id.String()
}

// InflictDamage дописывает урон в очередь жертвы.
func (c *Components) InflictDamage(victim types.EntityID, amount int) {
	if d := c.Damage.Ptr(victim); d != nil {
		d.Amounts = append(d.Amounts, amount)
		return
	}
	c.Damage.Set(victim, SufferDamage{Amounts: []int{amount}})
}
