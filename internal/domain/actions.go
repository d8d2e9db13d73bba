package domain

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionMove
	ActionWait
	ActionQuit
)

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionMove: "MOVE",
	ActionWait: "WAIT",
	ActionQuit: "QUIT",
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

// AdvancesTurn - действие тратит ход игрока и запускает шаг симуляции.
func (a ActionType) AdvancesTurn() bool {
	return a == ActionMove || a == ActionWait
}
