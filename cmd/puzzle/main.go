// puzzle is a terminal match-3 puzzle: drag blocks into runs of three or
// more, chain cascades, and turn the combos into attack damage.
//
// Usage:
//
//	puzzle list              - List available variants
//	puzzle play [variant]    - Play a variant (default: match3)
//	puzzle menu              - Pick a variant interactively
//	puzzle sim               - Play many episodes with a bot and report
//	puzzle board             - Print a board and the matches it holds
//	puzzle config            - Print the effective puzzle configuration
//
// Global flags:
//
//	--fps <rate>          - Set input tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write play logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-puzzle/internal/games/match3"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzle",
	Short: "TUI Puzzle - Match-3 combos in your terminal",
	Long: `TUI Puzzle is a terminal match-3 game. Grab a block, drag it around
the board, and release it to erase every run of three or more. Cleared
blocks fall, new ones drop in, and every cascade adds to the combo.

Available commands:
  list     - Show all available variants
  play     - Play a variant
  menu     - Interactive variant picker
  sim      - Simulate episodes with a random bot
  board    - Print a board and its matches
  config   - Print the effective configuration

Examples:
  puzzle list
  puzzle play
  puzzle play match3_large --difficulty hard
  puzzle sim --episodes 100000 --workers 8
  puzzle board --board ./board.txt`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Input tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
