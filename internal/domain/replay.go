package domain

// ReplayCommand - действие игрока, потратившее ход, с номером хода.
type ReplayCommand struct {
	Turn    int
	Command Command
}

// Replay - всё, что нужно для повтора партии: зерно, параметры карты и команды.
// Шаблоны существ в запись не входят, повтор использует текущий конфиг.
type Replay struct {
	Seed      int64
	Timestamp int64
	Width     int
	Height    int
	MaxRooms  int

	// Размеры комнат и отступ: без них то же зерно строит другую карту
	MinRoomSize int
	MaxRoomSize int
	Margin      int

	Commands []ReplayCommand
}

// Record дописывает команду в запись
func (r *Replay) Record(turn int, cmd Command) {
	r.Commands = append(r.Commands, ReplayCommand{Turn: turn, Command: cmd})
}
