package actions

import (
	"cognitive-rogue/internal/engine/handlers"
	"cognitive-rogue/internal/systems"
)

// HandleMove - шаг игрока. В клетку с живым телом - атака.
// Стена и край карты не тратят ход.
func HandleMove(ctx *systems.Context, dx, dy int) (handlers.Result, error) {
	if !systems.PlayerMove(ctx, dx, dy) {
		return handlers.EmptyResult(), nil
	}
	return handlers.Result{Acted: true}, nil
}
