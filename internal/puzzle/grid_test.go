package puzzle

import (
	"slices"
	"testing"
)

// board6x5 has a single horizontal run of fire blocks on the bottom row
// and no other run of three anywhere.
const board6x5 = `
WLTHDW
HDWLTH
WLTHDW
HDWLTH
FFFWLT
`

func mustParse(t *testing.T, text string) *Grid {
	t.Helper()
	g, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	return g
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNewGridIsVacant(t *testing.T) {
	g := NewGrid(6, 5)

	if g.Width() != 6 || g.Height() != 5 || g.Size() != 30 {
		t.Fatalf("expected 6x5 grid of 30 cells, got %dx%d of %d", g.Width(), g.Height(), g.Size())
	}
	if g.Vacant() != 30 {
		t.Errorf("expected 30 vacant cells, got %d", g.Vacant())
	}
	if g.Full() {
		t.Error("new grid should not be full")
	}
}

func TestGridIndexMapping(t *testing.T) {
	g := NewGrid(6, 5)

	testCases := []struct {
		index    int
		col, row int
	}{
		{0, 0, 0},
		{5, 5, 0},
		{6, 0, 1},
		{13, 1, 2},
		{29, 5, 4},
	}

	for _, tc := range testCases {
		if g.Col(tc.index) != tc.col || g.Row(tc.index) != tc.row {
			t.Errorf("index %d: expected (%d,%d), got (%d,%d)",
				tc.index, tc.col, tc.row, g.Col(tc.index), g.Row(tc.index))
		}
		if got := g.Index(tc.col, tc.row); got != tc.index {
			t.Errorf("Index(%d,%d) = %d, want %d", tc.col, tc.row, got, tc.index)
		}
	}
}

func TestGridNeighbor(t *testing.T) {
	g := NewGrid(6, 5)

	testCases := []struct {
		name  string
		index int
		dir   Dir
		want  int
		valid bool
	}{
		{"up from bottom", 0, DirUp, 6, true},
		{"up from top", 24, DirUp, 30, false},
		{"down from bottom", 3, DirDown, -3, false},
		{"down from middle", 14, DirDown, 8, true},
		{"left edge", 6, DirLeft, 5, false},
		{"left inside", 7, DirLeft, 6, true},
		{"right edge", 11, DirRight, 12, false},
		{"right inside", 10, DirRight, 11, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.Neighbor(tc.index, tc.dir)
			if ok != tc.valid {
				t.Fatalf("Neighbor(%d, %d) valid = %v, want %v", tc.index, tc.dir, ok, tc.valid)
			}
			if ok && got != tc.want {
				t.Errorf("Neighbor(%d, %d) = %d, want %d", tc.index, tc.dir, got, tc.want)
			}
		})
	}
}

func TestGridSetClearSwap(t *testing.T) {
	g := NewGrid(3, 3)

	g.Set(0, BlockFire)
	g.Set(4, BlockWater)

	if bt, ok := g.Get(0); !ok || bt != BlockFire {
		t.Errorf("cell 0: expected fire, got %v occupied=%v", bt, ok)
	}

	g.Swap(0, 4)
	if bt, _ := g.Get(0); bt != BlockWater {
		t.Errorf("after swap cell 0 should be water, got %v", bt)
	}
	if bt, _ := g.Get(4); bt != BlockFire {
		t.Errorf("after swap cell 4 should be fire, got %v", bt)
	}

	g.Clear(4)
	if _, ok := g.Get(4); ok {
		t.Error("cell 4 should be vacant after Clear")
	}
	if c := g.Cell(4); c.Type != 0 {
		t.Errorf("vacant cell should hold no block type, got %v", c.Type)
	}
}

func TestGridSwapCarriesFlags(t *testing.T) {
	g := NewGrid(2, 1)
	g.Set(0, BlockFire)
	g.Set(1, BlockLeaf)
	g.setFlag(0, FlagMarkedForErase, true)

	g.Swap(0, 1)

	if g.Has(0, FlagMarkedForErase) {
		t.Error("mark should have moved away from cell 0")
	}
	if !g.Has(1, FlagMarkedForErase) {
		t.Error("mark should have moved with the block to cell 1")
	}
}

func TestGridResetFlags(t *testing.T) {
	g := NewGrid(3, 1)
	for i := range 3 {
		g.Set(i, BlockFire)
		g.setFlag(i, FlagCheckedVertical, true)
		g.setFlag(i, FlagMarkedForErase, true)
	}

	g.ResetFlags(FlagCheckedVertical)

	for i := range 3 {
		if g.Has(i, FlagCheckedVertical) {
			t.Errorf("cell %d: vertical check flag should be cleared", i)
		}
		if !g.Has(i, FlagMarkedForErase) {
			t.Errorf("cell %d: erase mark should survive", i)
		}
	}
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(6, 5)

	expectPanic(t, "Get(-1)", func() { g.Get(-1) })
	expectPanic(t, "Get(30)", func() { g.Get(30) })
	expectPanic(t, "Set(30)", func() { g.Set(30, BlockFire) })
	expectPanic(t, "Clear(-5)", func() { g.Clear(-5) })
	expectPanic(t, "Swap(0,30)", func() { g.Swap(0, 30) })
	expectPanic(t, "Index(6,0)", func() { g.Index(6, 0) })
	expectPanic(t, "NewGrid(0,5)", func() { NewGrid(0, 5) })
}

func TestParseGridRoundTrip(t *testing.T) {
	g := mustParse(t, board6x5)

	if g.Width() != 6 || g.Height() != 5 {
		t.Fatalf("expected 6x5, got %dx%d", g.Width(), g.Height())
	}
	// Last text line is row 0.
	for i, want := range []BlockType{BlockFire, BlockFire, BlockFire, BlockWater, BlockLeaf, BlockThunder} {
		if bt, _ := g.Get(i); bt != want {
			t.Errorf("cell %d: expected %v, got %v", i, want, bt)
		}
	}

	again := mustParse(t, g.String())
	if !g.Equal(again) {
		t.Errorf("String/ParseGrid round trip changed the board:\n%s\nvs\n%s", g, again)
	}
}

func TestParseGridVacantAndErrors(t *testing.T) {
	g := mustParse(t, "F.\n.W")
	if g.Vacant() != 2 {
		t.Errorf("expected 2 vacant cells, got %d", g.Vacant())
	}

	for _, bad := range []string{"", "FF\nF", "FX"} {
		if _, err := ParseGrid(bad); err == nil {
			t.Errorf("ParseGrid(%q) should fail", bad)
		}
	}
}

func TestGridSnapshotAndMarked(t *testing.T) {
	g := mustParse(t, "F.W")
	g.setFlag(2, FlagMarkedForErase, true)

	snap := g.Snapshot()
	want := []Slot{{Type: BlockFire, Occupied: true}, {}, {Type: BlockWater, Occupied: true}}
	if !slices.Equal(snap, want) {
		t.Errorf("Snapshot() = %v, want %v", snap, want)
	}
	if got := g.Marked(); !slices.Equal(got, []int{2}) {
		t.Errorf("Marked() = %v, want [2]", got)
	}
}

func TestBlockTypesClamp(t *testing.T) {
	if n := len(BlockTypes(0)); n != 1 {
		t.Errorf("BlockTypes(0) should clamp to 1, got %d", n)
	}
	if n := len(BlockTypes(99)); n != MaxBlockTypes {
		t.Errorf("BlockTypes(99) should clamp to %d, got %d", MaxBlockTypes, n)
	}
	for _, bt := range BlockTypes(MaxBlockTypes) {
		back, ok := ParseBlockChar(bt.Char())
		if !ok || back != bt {
			t.Errorf("block %v does not survive Char/ParseBlockChar", bt)
		}
	}
}
