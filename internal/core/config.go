package core

// RuntimeConfig is what the platform hands a game on Reset: the drawable
// area, how often input is flushed, and the board seed.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // input flushes per second
	Seed     int64 // 0 lets the platform pick one from the clock
}

// DefaultRuntimeConfig is used when the terminal size cannot be probed.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score  int
	Moves  int // resolved gestures
	Paused bool
}

// StepResult is returned by Game.Step after each flushed input frame.
type StepResult struct {
	State GameState
	// Resolved is set when an input in this frame finished a swap episode.
	Resolved bool
}
