package enums

// AIState - решение монстра на текущем шаге. Между шагами не хранится.
type AIState uint8

const (
	AIStateIdle AIState = iota
	AIStateEngage
	AIStatePursue
)

func (s AIState) String() string {
	switch s {
	case AIStateIdle:
		return "IDLE"
	case AIStateEngage:
		return "ENGAGE"
	case AIStatePursue:
		return "PURSUE"
	}
	return "UNKNOWN"
}
