package puzzle

import "slices"

// Axis restricts which neighbors a chain search may step to.
type Axis uint8

const (
	AxisVertical   Axis = iota // up and down
	AxisHorizontal             // left and right
	AxisOmni                   // all four directions
)

func (a Axis) dirs() []Dir {
	switch a {
	case AxisVertical:
		return []Dir{DirUp, DirDown}
	case AxisHorizontal:
		return []Dir{DirLeft, DirRight}
	default:
		return []Dir{DirUp, DirDown, DirLeft, DirRight}
	}
}

// Search configures one chain search: the axis it walks and the flag it uses
// to mark visited cells.
//
// A non-consuming search enters a cell only while Flag is clear and sets it.
// A consuming search enters a cell only while Flag is set and clears it, so
// the flag doubles as the visited marker and each cell is taken at most once.
type Search struct {
	Axis    Axis
	Flag    Flag
	Consume bool
}

var (
	// VerticalSearch detects vertical runs.
	VerticalSearch = Search{Axis: AxisVertical, Flag: FlagCheckedVertical}
	// HorizontalSearch detects horizontal runs.
	HorizontalSearch = Search{Axis: AxisHorizontal, Flag: FlagCheckedHorizontal}
	// EraseSearch flood-fills a marked region, consuming the erase marks.
	EraseSearch = Search{Axis: AxisOmni, Flag: FlagMarkedForErase, Consume: true}
)

// Chain is a set of connected cell indices sharing one block type,
// sorted ascending.
type Chain []int

// ChainDetector finds connected same-type cells.
// It uses an explicit stack so search depth is bounded by the grid size.
type ChainDetector struct {
	stack []int
}

// NewChainDetector creates a chain detector.
func NewChainDetector() *ChainDetector {
	return &ChainDetector{}
}

// FindChain returns every cell reachable from start through cells of type t
// along the search axis, marking visits as s describes. The result is empty
// when start itself does not qualify.
func (d *ChainDetector) FindChain(g *Grid, start int, t BlockType, s Search) Chain {
	g.mustIndex(start)

	var chain Chain
	dirs := s.Axis.dirs()
	d.stack = append(d.stack[:0], start)

	for len(d.stack) > 0 {
		i := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]

		if !d.enter(g, i, t, s) {
			continue
		}
		chain = append(chain, i)

		for _, dir := range dirs {
			if n, ok := g.Neighbor(i, dir); ok {
				d.stack = append(d.stack, n)
			}
		}
	}

	slices.Sort(chain)
	return chain
}

// enter applies the visit rule to cell i and reports whether it joins the chain.
func (d *ChainDetector) enter(g *Grid, i int, t BlockType, s Search) bool {
	c := g.cells[i]
	if !c.Occupied || c.Type != t {
		return false
	}
	marked := c.Has(s.Flag)
	if s.Consume {
		if !marked {
			return false
		}
		g.setFlag(i, s.Flag, false)
		return true
	}
	if marked {
		return false
	}
	g.setFlag(i, s.Flag, true)
	return true
}
