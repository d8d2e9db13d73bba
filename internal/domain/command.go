package domain

import "fmt"

// Command - действие игрока, уже декодированное из ввода.
type Command struct {
	Action ActionType
	Dx, Dy int // Только для ActionMove
}

func MoveCommand(dx, dy int) Command {
	return Command{Action: ActionMove, Dx: dx, Dy: dy}
}

func WaitCommand() Command { return Command{Action: ActionWait} }
func QuitCommand() Command { return Command{Action: ActionQuit} }

func (c Command) String() string {
	if c.Action == ActionMove {
		return fmt.Sprintf("MOVE(%d,%d)", c.Dx, c.Dy)
	}
	return c.Action.String()
}
