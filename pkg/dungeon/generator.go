// Package dungeon генерирует уровень: комнаты, коридоры и стартовую позицию.
package dungeon

import (
	"errors"
	"fmt"

	"cognitive-rogue/internal/domain"
	"cognitive-rogue/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Константы генерации по умолчанию
const (
	MapWidth    = 80
	MapHeight   = 50
	MaxRooms    = 30
	MinSize     = 6
	MaxSize     = 10
	RoomMargin  = 1
	MinRoomsReq = 2
)

var (
	// ErrGeneration - не удалось разместить минимум комнат за отведённые попытки.
	ErrGeneration = errors.New("dungeon: generation failed")

	// ErrInvalidParams - параметры, при которых комната не помещается в карту.
	ErrInvalidParams = errors.New("dungeon: invalid params")
)

// GenerationError описывает провал генерации. errors.Is(err, ErrGeneration) == true.
type GenerationError struct {
	Accepted int
	Required int
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("dungeon: placed %d of %d required rooms in %d attempts", e.Accepted, e.Required, e.Attempts)
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// Source - случайность, которая нужна генератору.
type Source interface {
	Range(min, max int) int
	CoinFlip() bool
}

// Params - параметры генерации.
type Params struct {
	Width       int
	Height      int
	MaxRooms    int // Число попыток разместить комнату
	MinRoomSize int
	MaxRoomSize int
	Margin      int // Отступ от края карты
}

// DefaultParams - параметры по умолчанию (80x50, 30 попыток, комнаты 6..10)
func DefaultParams() Params {
	return Params{
		Width:       MapWidth,
		Height:      MapHeight,
		MaxRooms:    MaxRooms,
		MinRoomSize: MinSize,
		MaxRoomSize: MaxSize,
		Margin:      RoomMargin,
	}
}

// Validate проверяет, что хотя бы самая маленькая комната помещается в карту.
func (p Params) Validate() error {
	var errs []error
	if p.MinRoomSize < 1 {
		errs = append(errs, fmt.Errorf("min room size %d < 1", p.MinRoomSize))
	}
	if p.MaxRoomSize < p.MinRoomSize {
		errs = append(errs, fmt.Errorf("max room size %d < min room size %d", p.MaxRoomSize, p.MinRoomSize))
	}
	if p.Margin < 0 {
		errs = append(errs, fmt.Errorf("margin %d < 0", p.Margin))
	}
	if p.MaxRooms < 1 {
		errs = append(errs, fmt.Errorf("max rooms %d < 1", p.MaxRooms))
	}
	inner := min(p.Width, p.Height) - 2*p.Margin
	if inner < p.MinRoomSize {
		errs = append(errs, fmt.Errorf("map %dx%d with margin %d cannot fit a %d-wide room",
			p.Width, p.Height, p.Margin, p.MinRoomSize))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
}

// Generate создает новый уровень.
// При одинаковых зерне и параметрах раскладка воспроизводима.
func Generate(rng Source, p Params) (*domain.Map, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m, err := NewLevel(rng, p).
		WithRooms().
		WithCorridors().
		Build()
	if err != nil {
		logger.Log.WithFields(logrus.Fields{
			"component": "dungeon",
			"width":     p.Width,
			"height":    p.Height,
			"attempts":  p.MaxRooms,
		}).WithError(err).Warn("Level generation failed")
		return nil, err
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon",
		"rooms":     len(m.Rooms),
		"start":     m.StartPos.String(),
	}).Debug("Level generated")

	return m, nil
}
