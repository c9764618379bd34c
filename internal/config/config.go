// Package config provides YAML-based puzzle configuration loading and
// difficulty presets.
package config

import "github.com/vovakirdan/tui-puzzle/internal/puzzle"

// PuzzleConfig contains all configuration for the puzzle engine.
type PuzzleConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Rules  RulesConfig  `yaml:"rules"`
	Attack AttackConfig `yaml:"attack"`
}

// BoardConfig defines the grid dimensions and block set.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	BlockTypes int `yaml:"block_types"`
}

// RulesConfig defines match and cascade rules.
type RulesConfig struct {
	MinRun      int    `yaml:"min_run"`
	MaxCascades int    `yaml:"max_cascades"`
	OnCancel    string `yaml:"on_cancel"` // "revert" or "commit"
}

// AttackConfig defines how combos turn into damage.
type AttackConfig struct {
	PerCombo *int `yaml:"per_combo"` // nil keeps the engine default; 0 disables damage
}

// EngineConfig converts the file representation to engine parameters.
// Unset fields fall back to the engine defaults.
func (c PuzzleConfig) EngineConfig() puzzle.Config {
	out := puzzle.DefaultConfig()
	if c.Board.Width != 0 {
		out.Width = c.Board.Width
	}
	if c.Board.Height != 0 {
		out.Height = c.Board.Height
	}
	if c.Board.BlockTypes != 0 {
		out.BlockTypes = c.Board.BlockTypes
	}
	if c.Rules.MinRun != 0 {
		out.MinRun = c.Rules.MinRun
	}
	if c.Rules.MaxCascades != 0 {
		out.MaxCascades = c.Rules.MaxCascades
	}
	if c.Rules.OnCancel != "" {
		out.OnCancel = puzzle.CancelPolicy(c.Rules.OnCancel)
	}
	if c.Attack.PerCombo != nil {
		out.AttackPerCombo = *c.Attack.PerCombo
	}
	return out
}

// Validate checks the configuration against the engine's rules.
func (c PuzzleConfig) Validate() error {
	return c.EngineConfig().Validate()
}
