package engine

import (
	"cognitive-rogue/internal/core/types"
	"cognitive-rogue/internal/domain"
)

// Цвета тайлов
var (
	FloorGlyph = types.MakeGlyph(0x808080, '.')
	WallGlyph  = types.MakeGlyph(0x00FF00, '#')
)

// Cell - одна клетка кадра. Known=false означает "игрок здесь ещё не был".
type Cell struct {
	Glyph types.Glyph
	Known bool
}

// Status - строка состояния под картой
type Status struct {
	Name  string
	HP    int
	MaxHP int
	Turn  int
	State RunState
}

// Frame - снимок мира глазами игрока. Фронтенду не нужен доступ к ECS,
// он рисует только то, что здесь лежит.
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
	Log    []domain.LogEntry
	Status Status
}

// At возвращает клетку кадра; координаты должны быть в пределах карты.
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// BuildFrame собирает кадр для игрока.
// 1. Тайлы: открытые рисуются, запомненные но невидимые - в оттенках серого.
// 2. Сущности: только на клетках, видимых прямо сейчас. Игрок рисуется последним.
// 3. Последние logLines записей лога.
func (s *Session) BuildFrame(logLines int) Frame {
	m := s.Map
	frame := Frame{
		Width:  m.Width,
		Height: m.Height,
		Cells:  make([]Cell, m.Len()),
	}

	// 1. Карта
	for idx, tile := range m.Tiles {
		if !m.Revealed[idx] {
			continue
		}
		glyph := FloorGlyph
		if tile == domain.TileWall {
			glyph = WallGlyph
		}
		if !m.Visible[idx] {
			glyph = glyph.Greyscale()
		}
		frame.Cells[idx] = Cell{Glyph: glyph, Known: true}
	}

	// 2. Сущности
	ids := s.World.Query().
		With(s.C.Positions).
		With(s.C.Renderables).
		Execute()
	for _, id := range ids {
		if id == s.ctx.Player {
			continue
		}
		s.blit(&frame, id)
	}
	s.blit(&frame, s.ctx.Player)

	// 3. Лог и статус
	frame.Log = s.Log.Recent(logLines)
	st := s.PlayerStats()
	frame.Status = Status{
		Name:  s.C.NameOf(s.ctx.Player),
		HP:    st.HP,
		MaxHP: st.MaxHP,
		Turn:  s.ctx.Turn,
		State: s.State,
	}
	return frame
}

func (s *Session) blit(frame *Frame, id types.EntityID) {
	pos, ok := s.C.Positions.Get(id)
	if !ok || !s.Map.InBounds(pos.X, pos.Y) {
		return
	}
	r, ok := s.C.Renderables.Get(id)
	if !ok {
		return
	}
	idx := s.Map.IndexOf(pos)
	if !s.Map.Visible[idx] {
		return
	}
	frame.Cells[idx] = Cell{Glyph: r.Glyph, Known: true}
}
