package match3

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/registry"
)

// oneMove turns into a fire run on the bottom row when the block at (3,0)
// is dragged one cell left.
const oneMove = `
WLTHDW
HDWLTH
WLTHDW
HDWLTH
FFWFLT
`

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: seed}
}

// newGame creates a classic game isolated from any config files on the host.
func newGame(t *testing.T, board string, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	SetInitialBoard(board)
	g := New(Classic)
	g.Reset(runtimeConfig(seed))
	if err := g.Err(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.NewInputFrame(actions...))
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"match3", "match3_large"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}

	g, err := registry.Create("match3_large")
	if err != nil {
		t.Fatal(err)
	}
	d, ok := g.(registry.Describer)
	if !ok || !strings.HasPrefix(d.Describe(), "7x6 board, 5 block types") {
		t.Errorf("unexpected description for large variant")
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := newGame(t, oneMove, 1)

	if g.cursor != 15 {
		t.Fatalf("cursor should start at the board center (15), got %d", g.cursor)
	}

	var lefts, ups []core.Action
	for range 10 {
		lefts = append(lefts, core.ActionLeft)
		ups = append(ups, core.ActionUp)
	}
	step(g, lefts...)
	step(g, ups...)

	if g.cursor != 24 {
		t.Errorf("cursor should stop at the top-left cell (24), got %d", g.cursor)
	}
	if g.Snapshot().Board != g.ctrl.Board().String() {
		t.Error("moving without a grab must not change the board")
	}
}

func TestGrabDragRelease(t *testing.T) {
	g := newGame(t, oneMove, 7)

	step(g, core.ActionDown, core.ActionDown)
	if g.cursor != 3 {
		t.Fatalf("cursor = %d, want 3", g.cursor)
	}

	step(g, core.ActionConfirm)
	if snap := g.Snapshot(); snap.Held != 3 {
		t.Fatalf("expected block 3 to be held, got %d", snap.Held)
	}

	step(g, core.ActionLeft)
	if snap := g.Snapshot(); snap.Held != 2 || snap.Cursor != 2 {
		t.Fatalf("held block should follow the cursor to 2, got held=%d cursor=%d", snap.Held, snap.Cursor)
	}

	res := step(g, core.ActionConfirm)

	if !res.Resolved {
		t.Error("release should resolve an episode")
	}
	snap := g.Snapshot()
	if snap.Combos < 1 || snap.Score != snap.Combos*19 {
		t.Errorf("unexpected result: %d combos, score %d", snap.Combos, snap.Score)
	}
	if snap.Held != -1 || snap.Phase != "MOVE" || snap.Episodes != 1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if res.State.Score != snap.Score {
		t.Errorf("state score %d, snapshot %d", res.State.Score, snap.Score)
	}
}

func TestCancelRestoresBoard(t *testing.T) {
	g := newGame(t, oneMove, 1)
	before := g.Snapshot().Board

	step(g, core.ActionDown, core.ActionDown, core.ActionConfirm, core.ActionLeft, core.ActionUp)
	res := step(g, core.ActionBack)

	if !res.Resolved {
		t.Error("cancel should end the gesture")
	}
	snap := g.Snapshot()
	if snap.Board != before {
		t.Errorf("board not restored:\n%s\nwant\n%s", snap.Board, before)
	}
	if snap.Score != 0 || snap.Held != -1 {
		t.Errorf("unexpected snapshot %+v", snap)
	}
}

func TestPauseIgnoresInput(t *testing.T) {
	g := newGame(t, oneMove, 1)

	res := step(g, core.ActionPause, core.ActionLeft, core.ActionConfirm)
	if !res.State.Paused {
		t.Error("game should be paused")
	}
	if g.cursor != 15 || g.Snapshot().Held != -1 {
		t.Error("input while paused should be ignored")
	}

	step(g, core.ActionPause, core.ActionLeft)
	if g.cursor != 14 {
		t.Errorf("input after unpause should apply, cursor = %d", g.cursor)
	}
}

func TestDeterminism(t *testing.T) {
	script := [][]core.Action{
		{core.ActionConfirm, core.ActionRight, core.ActionConfirm},
		{core.ActionDown, core.ActionConfirm, core.ActionLeft, core.ActionLeft, core.ActionConfirm},
		{core.ActionUp, core.ActionConfirm, core.ActionUp, core.ActionConfirm},
		{core.ActionRestart},
		{core.ActionConfirm, core.ActionDown, core.ActionConfirm},
	}

	play := func() Snapshot {
		g := newGame(t, "", 12345)
		for _, actions := range script {
			step(g, actions...)
		}
		return g.Snapshot()
	}

	if a, b := play(), play(); a != b {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", a, b)
	}
}

func TestRenderBoardBottomRowLast(t *testing.T) {
	g := newGame(t, oneMove, 1)
	s := core.NewScreen(80, 24)

	g.Render(s)

	// Layout is 53x17 centered on 80x24: board frame at (13,5), bottom row at y=10.
	for k, want := range "FFWFLT" {
		x := 15 + k*cellWidth
		if got := s.Get(x, 10); got != want {
			t.Errorf("bottom row col %d = %q, want %q\n%s", k, got, want, s.String())
		}
	}
	if c := s.GetCell(15, 10); c.Color != core.ColorRed {
		t.Errorf("fire should be red, got %v", c.Color)
	}
	if c := s.GetCell(24, 8); !c.Attr.Has(core.AttrReverse) {
		t.Errorf("cursor cell should be highlighted, got %+v", c)
	}
	if !strings.Contains(s.String(), "Phase") || !strings.Contains(s.String(), "MOVE") {
		t.Error("HUD should show the phase")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := newGame(t, oneMove, 1)
	g.Resize(30, 10)
	s := core.NewScreen(30, 10)

	g.Render(s)

	if !g.State().Paused {
		t.Error("too small screen should pause the game")
	}
	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message, got\n%s", s.String())
	}

	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("game should resume after growing the screen")
	}
}

func TestInvalidBoardFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	SetInitialBoard("FWX")
	g := New(Classic)
	g.Reset(runtimeConfig(1))

	if g.Err() == nil {
		t.Error("invalid board should be reported")
	}
	if snap := g.Snapshot(); strings.Count(snap.Board, "\n") != 4 {
		t.Errorf("expected a random 6x5 board, got\n%s", snap.Board)
	}
}
