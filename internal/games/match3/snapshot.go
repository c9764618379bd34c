package match3

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Board    string // puzzle.Grid text form, top row first
	Cursor   int
	Held     int // -1 when no block is held
	Phase    string
	Score    int
	Episodes int
	Combos   int // combos of the last episode
	Paused   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	held, ok := g.ctrl.Holding()
	if !ok {
		held = -1
	}
	return Snapshot{
		Tick:     g.tick,
		Variant:  g.variant.ID,
		Board:    g.ctrl.Board().String(),
		Cursor:   g.cursor,
		Held:     held,
		Phase:    g.ctrl.Phase().String(),
		Score:    g.ctrl.Stats().TotalDamage,
		Episodes: g.episodes,
		Combos:   g.last.Combos,
		Paused:   g.paused,
	}
}
