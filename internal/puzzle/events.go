package puzzle

// Event is a notification emitted by the controller.
// Events are delivered synchronously; listeners must not call back into the
// controller while handling one.
type Event interface {
	// Phase returns the phase during which the event was emitted.
	Phase() Phase
}

// OpeningEvent is emitted once, after the initial board is populated.
type OpeningEvent struct {
	Board []Slot
}

func (OpeningEvent) Phase() Phase { return PhaseOpening }

// MoveEvent is emitted on entering MOVE.
type MoveEvent struct {
	Board []Slot
}

func (MoveEvent) Phase() Phase { return PhaseMove }

// CheckEvent is emitted after each detection pass.
type CheckEvent struct {
	Matched bool
	Marked  []int
	Cascade int // 1 for the first check of an episode
}

func (CheckEvent) Phase() Phase { return PhaseCheck }

// EraseEvent carries the regions removed by one erase pass.
type EraseEvent struct {
	Combos []ComboRecord
	Total  int // combos so far in the episode
}

func (EraseEvent) Phase() Phase { return PhaseErase }

// DropEvent carries the result of one gravity pass.
type DropEvent struct {
	Report DropReport
	Board  []Slot
}

func (DropEvent) Phase() Phase { return PhaseDrop }

// AttackEvent carries the resolved damage of an episode.
type AttackEvent struct {
	Attack Attack
}

func (AttackEvent) Phase() Phase { return PhaseAttack }

// GrabEvent is emitted when a gesture starts on Index.
type GrabEvent struct {
	Index int
}

func (GrabEvent) Phase() Phase { return PhaseMove }

// SwapEvent is emitted for each swap of a gesture: the block previously at
// From now occupies visual slot To, and the held block moved to From.
type SwapEvent struct {
	From int
	To   int
}

func (SwapEvent) Phase() Phase { return PhaseMove }

// CancelEvent is emitted when a gesture is cancelled.
type CancelEvent struct {
	Reverted bool // swaps were undone
	Swaps    int
}

func (CancelEvent) Phase() Phase { return PhaseMove }

// TruncatedEvent is emitted when an episode hits the cascade limit.
type TruncatedEvent struct {
	Cascades int
}

func (TruncatedEvent) Phase() Phase { return PhaseCheck }

// Listener receives controller events.
type Listener interface {
	HandleEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// HandleEvent calls f.
func (f ListenerFunc) HandleEvent(e Event) {
	f(e)
}
