package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

var (
	boardConfig configFlags
	flagBoardIn string
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print a board and the matches it holds",
	Long: `Print a random board (or one read from a file), run one match
detection pass over it and show which cells would be erased.

Board files hold one line per row, top row first, one letter per block:
  F fire, W water, L leaf, T thunder, H light, D dark, '.' vacant

Examples:
  puzzle board
  puzzle board --seed 42 --difficulty hard
  puzzle board --board ./board.txt`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardConfig.register(boardCmd)
	boardCmd.Flags().StringVar(&flagBoardIn, "board", "", "Path to a board file")
}

func runBoard(cmd *cobra.Command, args []string) {
	engine, err := boardConfig.engine()
	if err != nil {
		fail("%v", err)
	}

	var grid *puzzle.Grid
	if flagBoardIn != "" {
		text, err := os.ReadFile(flagBoardIn)
		if err != nil {
			fail("read board: %v", err)
		}
		if grid, err = puzzle.ParseGrid(string(text)); err != nil {
			fail("%v", err)
		}
	} else {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		ctrl, err := puzzle.New(engine, seed)
		if err != nil {
			fail("%v", err)
		}
		if err := ctrl.Start(); err != nil {
			fail("%v", err)
		}
		grid = ctrl.Board()
	}

	matcher := puzzle.NewMatchResolver(puzzle.NewChainDetector(), engine.MinRun)
	matched := matcher.DetectMatches(grid)

	fmt.Println(renderMarked(grid))
	fmt.Println()
	if !matched {
		fmt.Printf("No runs of %d or more.\n", engine.MinRun)
		return
	}
	marked := grid.Marked()
	cells := make([]string, len(marked))
	for n, i := range marked {
		cells[n] = fmt.Sprintf("(%d,%d)", grid.Col(i), grid.Row(i))
	}
	fmt.Printf("%d cells marked for erase: %s\n", len(marked), strings.Join(cells, " "))
}

var markedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)

// renderMarked prints the board top row first with marked cells highlighted.
func renderMarked(g *puzzle.Grid) string {
	lines := strings.Split(g.String(), "\n")
	var sb strings.Builder
	for n, line := range lines {
		row := g.Height() - 1 - n
		for col, r := range []rune(line) {
			cell := " " + string(r) + " "
			if g.Has(g.Index(col, row), puzzle.FlagMarkedForErase) {
				cell = markedStyle.Render(cell)
			}
			sb.WriteString(cell)
		}
		if n < len(lines)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
