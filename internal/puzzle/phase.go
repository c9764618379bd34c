package puzzle

// Phase is a state of the controller's cycle.
type Phase uint8

const (
	PhaseOpening Phase = iota
	PhaseMove
	PhaseCheck
	PhaseErase
	PhaseDrop
	PhaseAttack
)

// String returns the upper-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "OPENING"
	case PhaseMove:
		return "MOVE"
	case PhaseCheck:
		return "CHECK"
	case PhaseErase:
		return "ERASE"
	case PhaseDrop:
		return "DROP"
	case PhaseAttack:
		return "ATTACK"
	default:
		return "UNKNOWN"
	}
}
