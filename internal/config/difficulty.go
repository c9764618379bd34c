package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a flag value to a preset.
// The empty string maps to DifficultyFixed (keep the config file's values).
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// BlockTypesForPreset returns the number of block types a preset plays with.
// More types make runs rarer, so the board is harder to clear.
func BlockTypesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset keeps the configured values.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPuzzlePreset modifies the config based on a difficulty preset.
func ApplyPuzzlePreset(cfg *PuzzleConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		return
	}
	if n := BlockTypesForPreset(preset); n > 0 {
		cfg.Board.BlockTypes = n
	}
}
