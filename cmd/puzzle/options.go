package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/config"
	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

// configFlags are the --config and --difficulty flags shared by the
// commands that build an engine configuration.
type configFlags struct {
	path       string
	difficulty string
}

func (f *configFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "config", "", "Path to custom puzzle config YAML")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// load resolves the puzzle configuration with the preset applied.
func (f *configFlags) load() (config.PuzzleConfig, error) {
	preset, err := config.ParseDifficulty(f.difficulty)
	if err != nil {
		return config.PuzzleConfig{}, err
	}
	cfg, err := config.LoadPuzzle(f.path)
	if err != nil {
		return config.PuzzleConfig{}, err
	}
	config.ApplyPuzzlePreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// engine resolves the engine configuration.
func (f *configFlags) engine() (puzzle.Config, error) {
	cfg, err := f.load()
	if err != nil {
		return puzzle.Config{}, err
	}
	return cfg.EngineConfig(), nil
}
