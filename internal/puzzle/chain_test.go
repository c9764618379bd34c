package puzzle

import (
	"slices"
	"testing"
)

func TestFindChainAxisRestricted(t *testing.T) {
	// Column 1 holds a vertical run of three fire blocks crossing the bottom row.
	g := mustParse(t, `
WLTHDW
HDWLTH
WFTHDW
HFWLTH
FFFWLT
`)
	d := NewChainDetector()

	vertical := d.FindChain(g, 1, BlockFire, VerticalSearch)
	if !slices.Equal(vertical, Chain{1, 7, 13}) {
		t.Errorf("vertical chain from 1 = %v, want [1 7 13]", vertical)
	}

	// The horizontal search uses its own flag, so the vertical visit above
	// does not block it.
	horizontal := d.FindChain(g, 1, BlockFire, HorizontalSearch)
	if !slices.Equal(horizontal, Chain{0, 1, 2}) {
		t.Errorf("horizontal chain from 1 = %v, want [0 1 2]", horizontal)
	}

	if again := d.FindChain(g, 0, BlockFire, HorizontalSearch); len(again) != 0 {
		t.Errorf("visited cells must not be returned twice, got %v", again)
	}
}

func TestFindChainTypeMismatch(t *testing.T) {
	g := mustParse(t, board6x5)
	d := NewChainDetector()

	if chain := d.FindChain(g, 0, BlockWater, HorizontalSearch); len(chain) != 0 {
		t.Errorf("start of a different type should give empty chain, got %v", chain)
	}
	if g.Has(0, FlagCheckedHorizontal) {
		t.Error("rejected start cell must not be flagged")
	}
}

func TestFindChainSkipsVacant(t *testing.T) {
	g := mustParse(t, "F.F")
	d := NewChainDetector()

	chain := d.FindChain(g, 0, BlockFire, HorizontalSearch)
	if !slices.Equal(chain, Chain{0}) {
		t.Errorf("vacant cell should break the run, got %v", chain)
	}
}

func TestFindChainConsumingFloodFill(t *testing.T) {
	g := mustParse(t, `
FFW
WFW
FFF
`)
	for i := range g.Size() {
		if bt, _ := g.Get(i); bt == BlockFire {
			g.setFlag(i, FlagMarkedForErase, true)
		}
	}
	// Leave one connected fire cell unmarked: it must not be taken.
	g.setFlag(g.Index(0, 2), FlagMarkedForErase, false)

	d := NewChainDetector()
	region := d.FindChain(g, 0, BlockFire, EraseSearch)

	want := Chain{0, 1, 2, 4, 7}
	if !slices.Equal(region, want) {
		t.Errorf("flood fill = %v, want %v", region, want)
	}
	for _, i := range region {
		if g.Has(i, FlagMarkedForErase) {
			t.Errorf("cell %d should have its mark consumed", i)
		}
	}
	if again := d.FindChain(g, 0, BlockFire, EraseSearch); len(again) != 0 {
		t.Errorf("consumed region must not be found again, got %v", again)
	}
}

func TestFindChainLargeGridDoesNotRecurse(t *testing.T) {
	g := NewGrid(200, 200)
	g.Fill(func() BlockType { return BlockLeaf })

	chain := NewChainDetector().FindChain(g, 0, BlockLeaf, Search{Axis: AxisOmni, Flag: FlagCheckedVertical})
	if len(chain) != g.Size() {
		t.Errorf("expected whole grid (%d cells), got %d", g.Size(), len(chain))
	}
}
