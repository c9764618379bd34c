package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-puzzle/internal/config"
	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/games/match3"
	"github.com/vovakirdan/tui-puzzle/internal/logging"
	"github.com/vovakirdan/tui-puzzle/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzle/internal/registry"
)

var menuConfig configFlags

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a board.
After quitting a board, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  puzzle menu
  puzzle menu --difficulty normal`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuConfig.register(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	preset, err := config.ParseDifficulty(menuConfig.difficulty)
	if err != nil {
		fail("%v", err)
	}
	if _, err := menuConfig.load(); err != nil {
		fail("%v", err)
	}

	logger, closeLog, err := logging.Open(flagLogFile, logging.Options{Level: flagLogLevel})
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	match3.SetConfigPath(menuConfig.path)
	match3.SetDifficultyPreset(preset)
	if flagLogFile != "" {
		match3.SetLogger(logger)
	}

	// Get terminal size
	cfg := core.DefaultRuntimeConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config
		if result.Quit {
			return
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			return
		}
		if err := tui.Run(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}
