package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

//go:embed defaults/puzzle.yaml
var defaultPuzzleYAML []byte

// DefaultPuzzleConfig returns the default puzzle configuration.
func DefaultPuzzleConfig() PuzzleConfig {
	perCombo := puzzle.DefaultAttackPerCombo
	return PuzzleConfig{
		Board: BoardConfig{
			Width:      6,
			Height:     5,
			BlockTypes: 4,
		},
		Rules: RulesConfig{
			MinRun:      puzzle.DefaultMinRun,
			MaxCascades: 64,
			OnCancel:    string(puzzle.CancelRevert),
		},
		Attack: AttackConfig{
			PerCombo: &perCombo,
		},
	}
}
