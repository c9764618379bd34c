package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every Config.Validate failure.
	ErrInvalidConfig = errors.New("puzzle: invalid config")
	// ErrAlreadyStarted is returned by a second call to Controller.Start.
	ErrAlreadyStarted = errors.New("puzzle: controller already started")
)

// CancelPolicy decides what a cancelled gesture does to the board.
type CancelPolicy string

const (
	// CancelRevert undoes every swap of the gesture and returns to MOVE.
	CancelRevert CancelPolicy = "revert"
	// CancelCommit keeps the swaps and resolves them as a release.
	CancelCommit CancelPolicy = "commit"
)

// Config holds the engine parameters.
type Config struct {
	Width          int
	Height         int
	BlockTypes     int
	MinRun         int
	AttackPerCombo int
	MaxCascades    int // bound on CHECK→ERASE→DROP loops per episode
	OnCancel       CancelPolicy
}

// DefaultConfig returns the reference 6×5 board with four block types.
func DefaultConfig() Config {
	return Config{
		Width:          6,
		Height:         5,
		BlockTypes:     4,
		MinRun:         DefaultMinRun,
		AttackPerCombo: DefaultAttackPerCombo,
		MaxCascades:    64,
		OnCancel:       CancelRevert,
	}
}

// Validate checks every parameter.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.BlockTypes < 1 || c.BlockTypes > MaxBlockTypes:
		return fmt.Errorf("%w: block types %d not in [1,%d]", ErrInvalidConfig, c.BlockTypes, MaxBlockTypes)
	case c.MinRun < 2:
		return fmt.Errorf("%w: min run %d below 2", ErrInvalidConfig, c.MinRun)
	case c.AttackPerCombo < 0:
		return fmt.Errorf("%w: negative attack per combo %d", ErrInvalidConfig, c.AttackPerCombo)
	case c.MaxCascades < 1:
		return fmt.Errorf("%w: max cascades %d below 1", ErrInvalidConfig, c.MaxCascades)
	}
	switch c.OnCancel {
	case CancelRevert, CancelCommit:
	default:
		return fmt.Errorf("%w: unknown cancel policy %q", ErrInvalidConfig, c.OnCancel)
	}
	return nil
}
