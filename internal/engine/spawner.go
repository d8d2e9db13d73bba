package engine

import (
	"fmt"

	"cognitive-rogue/internal/config"
	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/core/types/enums"
	"cognitive-rogue/internal/domain"

	"github.com/sirupsen/logrus"
)

// spawnAll создает игрока и монстров.
// 1. Игрок - в StartPos (центр первой комнаты).
// 2. По одному монстру в центр каждой следующей комнаты, вид выбирается броском 1dN по шаблонам.
func (s *Session) spawnAll() (types.EntityID, error) {
	player, err := s.spawnPlayer(s.Config.Player, s.Map.StartPos)
	if err != nil {
		return types.NilEntityID, err
	}

	for i, room := range s.Map.Rooms {
		if i == 0 {
			continue // В первой комнате стоит игрок
		}
		tpl := s.Config.Monsters[s.Rng.RollDice(1, len(s.Config.Monsters))-1]
		glyph, err := tpl.ParseGlyph()
		if err != nil {
			return types.NilEntityID, fmt.Errorf("monster template %q: %w", tpl.Name, err)
		}
		name := fmt.Sprintf("%s #%d", tpl.Name, i)
		s.World.Spawn(enums.EntityKindMonster, func(id types.EntityID) {
			s.attachCreature(id, tpl, glyph, name, room.Center())
			s.C.Monsters.Set(id, domain.Monster{})
		})
	}

	// Отложенные спавны применяются здесь же, до первого шага
	s.World.Maintain()
	s.log.WithFields(logrus.Fields{
		"monsters": s.C.Monsters.Count(),
		"player":   player,
	}).Debug("Entities spawned")

	return player, nil
}

func (s *Session) spawnPlayer(tpl config.CreatureConfig, pos domain.Position) (types.EntityID, error) {
	glyph, err := tpl.ParseGlyph()
	if err != nil {
		return types.NilEntityID, fmt.Errorf("player template: %w", err)
	}
	id := s.World.Create(enums.EntityKindPlayer)
	s.attachCreature(id, tpl, glyph, tpl.Name, pos)
	s.C.Players.Set(id, domain.Player{})
	return id, nil
}

// attachCreature вешает общий набор компонентов живого существа
func (s *Session) attachCreature(id types.EntityID, tpl config.CreatureConfig, glyph types.Glyph, name string, pos domain.Position) {
	s.C.Positions.Set(id, pos)
	s.C.Renderables.Set(id, domain.Renderable{Glyph: glyph})
	s.C.Names.Set(id, domain.Name{Name: name})
	s.C.Viewsheds.Set(id, domain.NewViewshed(tpl.ViewRange))
	s.C.Blockers.Set(id, domain.BlocksTile{})
	s.C.Stats.Set(id, domain.CombatStats{
		MaxHP:   tpl.HP,
		HP:      tpl.HP,
		Defence: tpl.Defence,
		Power:   tpl.Power,
	})
}
