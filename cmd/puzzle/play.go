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

var (
	playConfig configFlags
	flagBoard  string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (match3 when omitted).

Controls:
  Arrows/WASD/HJKL  - Move the cursor, or drag the held block
  Enter/Space       - Grab the block under the cursor / release it
  Esc               - Cancel the drag
  P                 - Pause
  R                 - New board
  ?                 - Toggle help
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 4 block types
  normal - 5 block types
  hard   - 6 block types
  fixed  - Keep the config's block types

Examples:
  puzzle play
  puzzle play match3_large
  puzzle play --difficulty hard
  puzzle play --board ./board.txt --log-file puzzle.log --log-level debug
  puzzle play --config ./my-puzzle.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playConfig.register(playCmd)
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Path to a starting board (one line per row, top row first)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := match3.Classic.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puzzle list' to see available variants.")
		os.Exit(1)
	}

	preset, err := config.ParseDifficulty(playConfig.difficulty)
	if err != nil {
		fail("%v", err)
	}
	if playConfig.path != "" {
		// Fail before the alternate screen hides the message.
		if _, err := config.LoadPuzzle(playConfig.path); err != nil {
			fail("%v", err)
		}
	}

	var boardText string
	if flagBoard != "" {
		text, err := os.ReadFile(flagBoard)
		if err != nil {
			fail("read board: %v", err)
		}
		boardText = string(text)
	}

	logger, closeLog, err := logging.Open(flagLogFile, logging.Options{Level: flagLogLevel})
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	match3.SetConfigPath(playConfig.path)
	match3.SetDifficultyPreset(preset)
	match3.SetInitialBoard(boardText)
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

	game, err := registry.Create(gameID)
	if err != nil {
		fail("creating game: %v", err)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		closeLog()
		fail("running game: %v", err)
	}
}
