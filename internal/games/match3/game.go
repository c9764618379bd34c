// Package match3 is the terminal front end of the puzzle engine: it maps
// platform actions to swap gestures and draws the board with a HUD.
package match3

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-puzzle/internal/config"
	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/logging"
	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
	"github.com/vovakirdan/tui-puzzle/internal/registry"
)

// Variant fixes the board shape of a registered game. Zero fields keep the
// values from the loaded configuration.
type Variant struct {
	ID         string
	Title      string
	Width      int
	Height     int
	BlockTypes int
}

var (
	Classic = Variant{ID: "match3", Title: "Match 3"}
	Large   = Variant{ID: "match3_large", Title: "Match 3 (Large)", Width: 7, Height: 6, BlockTypes: 5}
)

// Package-level variables for config/difficulty, consumed by Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	initialBoard     string
	logger           *log.Logger
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetInitialBoard sets the board text used by the next Reset instead of a
// random board. The board size overrides the variant's.
func SetInitialBoard(text string) {
	initialBoard = text
}

// SetLogger attaches engine event logging to games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	for _, v := range []Variant{Classic, Large} {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// Game is the playable front end of a puzzle.Controller: a cursor moves over
// the board, Confirm grabs the block under it, further moves drag the held
// block, and Confirm again releases it.
type Game struct {
	variant Variant
	cfg     puzzle.Config
	ctrl    *puzzle.Controller
	seed    int64
	tick    uint64

	cursor   int // grid index
	last     puzzle.Episode
	episodes int

	screenW int
	screenH int

	paused   bool
	tooSmall bool
	loadErr  error
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	g := &Game{variant: v}
	g.cfg = g.engineConfig()
	return g
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Describe summarizes the board the variant plays on.
func (g *Game) Describe() string {
	return fmt.Sprintf("%dx%d board, %d block types", g.cfg.Width, g.cfg.Height, g.cfg.BlockTypes)
}

// engineConfig resolves the configuration: file or embedded default, then
// the variant's board, then the difficulty preset.
func (g *Game) engineConfig() puzzle.Config {
	file, err := config.LoadPuzzle(configPath)
	if err != nil {
		g.loadErr = err
		file = config.DefaultPuzzleConfig()
	}
	if g.variant.Width > 0 {
		file.Board.Width = g.variant.Width
	}
	if g.variant.Height > 0 {
		file.Board.Height = g.variant.Height
	}
	if g.variant.BlockTypes > 0 {
		file.Board.BlockTypes = g.variant.BlockTypes
	}
	config.ApplyPuzzlePreset(&file, difficultyPreset)
	return file.EngineConfig()
}

// Reset builds a fresh board and controller.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.loadErr = nil
	g.cfg = g.engineConfig()
	g.seed = rc.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.tick = 0
	g.paused = false
	g.last = puzzle.Episode{}
	g.episodes = 0

	var grid *puzzle.Grid
	if initialBoard != "" {
		parsed, err := puzzle.ParseGrid(initialBoard)
		initialBoard = "" // Reset after use
		if err != nil {
			g.loadErr = err
		} else {
			grid = parsed
			g.cfg.Width, g.cfg.Height = parsed.Width(), parsed.Height()
		}
	}

	g.newController(grid)
	g.checkScreenSize()
}

// newController starts a controller over grid (nil for a random board).
func (g *Game) newController(grid *puzzle.Grid) {
	var listeners []puzzle.Listener
	if logger != nil {
		listeners = append(listeners, logging.EventListener(logger.With("game", g.variant.ID)))
	}

	eng := puzzle.NewEngines(g.cfg, rand.New(rand.NewSource(g.seed)))
	ctrl, err := puzzle.NewController(g.cfg, grid, eng, listeners...)
	if err != nil {
		// Invalid configuration or board: fall back to the defaults
		g.loadErr = err
		g.cfg = puzzle.DefaultConfig()
		eng = puzzle.NewEngines(g.cfg, rand.New(rand.NewSource(g.seed)))
		ctrl, _ = puzzle.NewController(g.cfg, nil, eng, listeners...)
	}
	if err := ctrl.Start(); err != nil {
		panic(fmt.Sprintf("match3: fresh controller refused to start: %v", err))
	}

	g.ctrl = ctrl
	g.cursor = g.cursorIndex(g.cfg.Width/2, g.cfg.Height/2)
}

func (g *Game) cursorIndex(col, row int) int {
	return row*g.cfg.Width + col
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW, minH := g.minScreen()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step applies the actions of one tick in the order they were pressed.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	resolved := false

	for _, a := range in.Actions {
		if a == core.ActionPause {
			g.paused = !g.paused
			continue
		}
		if g.paused || g.tooSmall {
			continue
		}
		switch a {
		case core.ActionUp:
			g.moveCursor(puzzle.DirUp)
		case core.ActionDown:
			g.moveCursor(puzzle.DirDown)
		case core.ActionLeft:
			g.moveCursor(puzzle.DirLeft)
		case core.ActionRight:
			g.moveCursor(puzzle.DirRight)
		case core.ActionConfirm:
			if _, holding := g.ctrl.Holding(); holding {
				ep, _ := g.ctrl.Release()
				g.finish(ep)
				resolved = true
			} else {
				g.ctrl.Grab(g.cursor)
			}
		case core.ActionBack:
			if ep, ok := g.ctrl.Cancel(); ok {
				g.finish(ep)
				resolved = true
			}
		case core.ActionRestart:
			g.seed++
			g.last = puzzle.Episode{}
			g.episodes = 0
			g.newController(nil)
		}
	}

	return core.StepResult{State: g.State(), Resolved: resolved}
}

// moveCursor moves the cursor one cell; while a block is held the block is
// dragged along.
func (g *Game) moveCursor(d puzzle.Dir) {
	next, ok := g.ctrl.Board().Neighbor(g.cursor, d)
	if !ok {
		return
	}
	if _, holding := g.ctrl.Holding(); holding {
		g.ctrl.DragTo(next)
	}
	g.cursor = next
}

func (g *Game) finish(ep puzzle.Episode) {
	g.last = ep
	g.episodes++
}

// State returns the current game state. A puzzle never ends; the score is
// the damage dealt so far.
func (g *Game) State() core.GameState {
	score := 0
	if g.ctrl != nil {
		score = g.ctrl.Stats().TotalDamage
	}
	return core.GameState{
		Score:  score,
		Moves:  g.episodes,
		Paused: g.paused || g.tooSmall,
	}
}

// Err returns the configuration or board problem that made the last Reset
// fall back to defaults, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Enter: Grab/Release | Esc: Cancel | R: New | P: Pause | Q: Quit"
}
