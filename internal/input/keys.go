// Package input переводит нажатия клавиш tcell в команды игрока.
package input

import (
	"cognitive-rogue/internal/domain"

	"github.com/gdamore/tcell/v2"
)

// Стрелки
var arrowKeys = map[tcell.Key]domain.Command{
	tcell.KeyUp:    domain.MoveCommand(0, -1),
	tcell.KeyDown:  domain.MoveCommand(0, 1),
	tcell.KeyLeft:  domain.MoveCommand(-1, 0),
	tcell.KeyRight: domain.MoveCommand(1, 0),
	tcell.KeyHome:  domain.MoveCommand(-1, -1),
	tcell.KeyPgUp:  domain.MoveCommand(1, -1),
	tcell.KeyEnd:   domain.MoveCommand(-1, 1),
	tcell.KeyPgDn:  domain.MoveCommand(1, 1),
}

// Vi-клавиши и ожидание
var runeKeys = map[rune]domain.Command{
	'k': domain.MoveCommand(0, -1),
	'j': domain.MoveCommand(0, 1),
	'h': domain.MoveCommand(-1, 0),
	'l': domain.MoveCommand(1, 0),
	'y': domain.MoveCommand(-1, -1),
	'u': domain.MoveCommand(1, -1),
	'b': domain.MoveCommand(-1, 1),
	'n': domain.MoveCommand(1, 1),
	'.': domain.WaitCommand(),
	' ': domain.WaitCommand(),
	'q': domain.QuitCommand(),
}

// Decode возвращает команду для клавиши. ok=false - клавиша ничего не значит,
// симуляция остаётся на паузе.
func Decode(ev *tcell.EventKey) (domain.Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.QuitCommand(), true
	case tcell.KeyRune:
		cmd, ok := runeKeys[ev.Rune()]
		return cmd, ok
	}
	cmd, ok := arrowKeys[ev.Key()]
	return cmd, ok
}
