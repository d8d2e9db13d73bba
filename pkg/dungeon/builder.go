package dungeon

import "cognitive-rogue/internal/domain"

// LevelBuilder предоставляет fluent API для создания уровней
type LevelBuilder struct {
	params   Params
	rng      Source
	rooms    []domain.Rect
	gameMap  *domain.Map
	attempts int
}

// NewLevel создает новый builder для уровня. Карта сразу залита стеной.
func NewLevel(rng Source, p Params) *LevelBuilder {
	return &LevelBuilder{
		params:  p,
		rng:     rng,
		gameMap: domain.NewMap(p.Width, p.Height),
	}
}

// WithRooms делает MaxRooms попыток разместить комнату.
// Пересекающиеся с уже принятыми кандидаты отбрасываются.
func (b *LevelBuilder) WithRooms() *LevelBuilder {
	p := b.params
	b.rooms = make([]domain.Rect, 0, p.MaxRooms)

	for i := 0; i < p.MaxRooms; i++ {
		b.attempts++

		w := b.rng.Range(p.MinRoomSize, min(p.MaxRoomSize, p.Width-2*p.Margin))
		h := b.rng.Range(p.MinRoomSize, min(p.MaxRoomSize, p.Height-2*p.Margin))
		x := b.rng.Range(p.Margin, p.Width-p.Margin-w)
		y := b.rng.Range(p.Margin, p.Height-p.Margin-h)

		newRoom := domain.NewRect(x, y, w, h)

		// Проверяем пересечения
		failed := false
		for _, other := range b.rooms {
			if newRoom.Intersects(other) {
				failed = true
				break
			}
		}

		if !failed {
			b.carveRoom(newRoom)
			b.rooms = append(b.rooms, newRoom)
		}
	}

	return b
}

// WithCorridors соединяет каждую комнату с предыдущей L-образным коридором.
// Порядок колен выбирается броском монеты.
func (b *LevelBuilder) WithCorridors() *LevelBuilder {
	for i := 1; i < len(b.rooms); i++ {
		prev := b.rooms[i-1].Center()
		curr := b.rooms[i].Center()

		if b.rng.CoinFlip() {
			b.carveHCorridor(prev.X, curr.X, prev.Y)
			b.carveVCorridor(prev.Y, curr.Y, curr.X)
		} else {
			b.carveVCorridor(prev.Y, curr.Y, prev.X)
			b.carveHCorridor(prev.X, curr.X, curr.Y)
		}
	}
	return b
}

// Rooms возвращает принятые комнаты
func (b *LevelBuilder) Rooms() []domain.Rect {
	return b.rooms
}

// Build собирает и возвращает готовую карту
func (b *LevelBuilder) Build() (*domain.Map, error) {
	if len(b.rooms) < MinRoomsReq {
		return nil, &GenerationError{
			Accepted: len(b.rooms),
			Required: MinRoomsReq,
			Attempts: b.attempts,
		}
	}

	b.gameMap.Rooms = b.rooms
	b.gameMap.StartPos = b.rooms[0].Center()
	b.gameMap.ResetBlocked()
	return b.gameMap, nil
}

// --- Вспомогательные функции ---

func (b *LevelBuilder) carveRoom(room domain.Rect) {
	for y := room.Y; y < room.Y2(); y++ {
		for x := room.X; x < room.X2(); x++ {
			b.gameMap.SetTile(x, y, domain.TileFloor)
		}
	}
}

func (b *LevelBuilder) carveHCorridor(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		b.gameMap.SetTile(x, y, domain.TileFloor)
	}
}

func (b *LevelBuilder) carveVCorridor(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		b.gameMap.SetTile(x, y, domain.TileFloor)
	}
}
