package handlers

import (
	"errors"
	"fmt"

	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/systems"
)

// ErrInvalidDirection - смещение не на соседнюю клетку
var ErrInvalidDirection = errors.New("invalid direction")

// DirectionHandlerFunc - "чистый" хендлер, который получает уже проверенное смещение
type DirectionHandlerFunc func(ctx *systems.Context, dx, dy int) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (WAIT)
type EmptyHandlerFunc func(ctx *systems.Context) (Result, error)

// WithDirection берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя валидацию смещения.
func WithDirection(handler DirectionHandlerFunc) HandlerFunc {
	return func(ctx *systems.Context, cmd domain.Command) (Result, error) {
		if cmd.Dx < -1 || cmd.Dx > 1 || cmd.Dy < -1 || cmd.Dy > 1 || (cmd.Dx == 0 && cmd.Dy == 0) {
			return Result{}, fmt.Errorf("%w: (%d,%d)", ErrInvalidDirection, cmd.Dx, cmd.Dy)
		}
		return handler(ctx, cmd.Dx, cmd.Dy)
	}
}

// WithEmptyPayload - обертка для команд без данных (WAIT)
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx *systems.Context, _ domain.Command) (Result, error) {
		return handler(ctx)
	}
}
