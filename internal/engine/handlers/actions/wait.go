package actions

import (
	"cognitive-rogue/internal/domain"
	"cognitive-rogue/internal/engine/handlers"
	"cognitive-rogue/internal/systems"
)

func HandleWait(ctx *systems.Context) (handlers.Result, error) {
	return handlers.Result{
		Acted:   true,
		Msg:     ctx.C.NameOf(ctx.Player) + " waits.",
		MsgType: domain.LogTypeInfo,
	}, nil
}
