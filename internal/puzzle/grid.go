package puzzle

import (
	"fmt"
	"strings"
)

// Flag names one of the transient per-cell status markers.
type Flag uint8

const (
	FlagCheckedVertical Flag = iota
	FlagCheckedHorizontal
	FlagMarkedForErase
)

// String returns the flag name.
func (f Flag) String() string {
	switch f {
	case FlagCheckedVertical:
		return "checked-vertical"
	case FlagCheckedHorizontal:
		return "checked-horizontal"
	case FlagMarkedForErase:
		return "marked"
	default:
		return "unknown"
	}
}

// Cell is the full content of one grid position: occupancy, block type and
// status markers. Type is meaningful only while Occupied is true.
type Cell struct {
	Type     BlockType
	Occupied bool

	CheckedVertical   bool
	CheckedHorizontal bool
	Marked            bool
}

// Has reports whether the given flag is set.
func (c Cell) Has(f Flag) bool {
	switch f {
	case FlagCheckedVertical:
		return c.CheckedVertical
	case FlagCheckedHorizontal:
		return c.CheckedHorizontal
	case FlagMarkedForErase:
		return c.Marked
	default:
		return false
	}
}

func (c *Cell) setFlag(f Flag, on bool) {
	switch f {
	case FlagCheckedVertical:
		c.CheckedVertical = on
	case FlagCheckedHorizontal:
		c.CheckedHorizontal = on
	case FlagMarkedForErase:
		c.Marked = on
	}
}

// Dir is one of the four neighbor directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// Grid is a W×H board stored as a flat slice.
// Index i maps to column i%W and row i/W; row 0 is the bottom row.
type Grid struct {
	w, h  int
	cells []Cell
}

// NewGrid creates a grid with every cell vacant.
// Panics if either dimension is less than 1.
func NewGrid(w, h int) *Grid {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("puzzle: invalid grid size %dx%d", w, h))
	}
	return &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether i is a valid cell index.
func (g *Grid) InBounds(i int) bool {
	return i >= 0 && i < len(g.cells)
}

func (g *Grid) mustIndex(i int) {
	if !g.InBounds(i) {
		panic(fmt.Sprintf("puzzle: index %d out of range [0,%d)", i, len(g.cells)))
	}
}

// Index converts a column and row to a cell index.
func (g *Grid) Index(col, row int) int {
	if col < 0 || col >= g.w || row < 0 || row >= g.h {
		panic(fmt.Sprintf("puzzle: cell (%d,%d) out of range %dx%d", col, row, g.w, g.h))
	}
	return row*g.w + col
}

// Col returns the column of index i.
func (g *Grid) Col(i int) int { return i % g.w }

// Row returns the row of index i.
func (g *Grid) Row(i int) int { return i / g.w }

// Neighbor returns the index adjacent to i in direction d under
// 4-connectivity, and false when that neighbor would fall off the grid.
func (g *Grid) Neighbor(i int, d Dir) (int, bool) {
	g.mustIndex(i)
	switch d {
	case DirUp:
		return i + g.w, i+g.w < len(g.cells)
	case DirDown:
		return i - g.w, i-g.w >= 0
	case DirLeft:
		return i - 1, i%g.w != 0
	case DirRight:
		return i + 1, (i+1)%g.w != 0
	default:
		return -1, false
	}
}

// Get returns the block type at i and whether the cell is occupied.
func (g *Grid) Get(i int) (BlockType, bool) {
	g.mustIndex(i)
	c := g.cells[i]
	return c.Type, c.Occupied
}

// Cell returns a copy of the full cell content at i.
func (g *Grid) Cell(i int) Cell {
	g.mustIndex(i)
	return g.cells[i]
}

// Set places a block of type t at i. Status markers are left untouched.
func (g *Grid) Set(i int, t BlockType) {
	g.mustIndex(i)
	g.cells[i].Type = t
	g.cells[i].Occupied = true
}

// Clear makes i vacant and drops its block type.
func (g *Grid) Clear(i int) {
	g.mustIndex(i)
	g.cells[i].Type = 0
	g.cells[i].Occupied = false
}

// Swap exchanges the full content of cells i and j, markers included.
func (g *Grid) Swap(i, j int) {
	g.mustIndex(i)
	g.mustIndex(j)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Has reports whether flag f is set on cell i.
func (g *Grid) Has(i int, f Flag) bool {
	g.mustIndex(i)
	return g.cells[i].Has(f)
}

func (g *Grid) setFlag(i int, f Flag, on bool) {
	g.cells[i].setFlag(f, on)
}

// ResetFlags clears the given markers on every cell.
func (g *Grid) ResetFlags(flags ...Flag) {
	for i := range g.cells {
		for _, f := range flags {
			g.cells[i].setFlag(f, false)
		}
	}
}

// Marked returns the indices currently marked for erase, ascending.
func (g *Grid) Marked() []int {
	var marked []int
	for i, c := range g.cells {
		if c.Marked {
			marked = append(marked, i)
		}
	}
	return marked
}

// Vacant returns the number of vacant cells.
func (g *Grid) Vacant() int {
	n := 0
	for _, c := range g.cells {
		if !c.Occupied {
			n++
		}
	}
	return n
}

// Full reports whether every cell is occupied.
func (g *Grid) Full() bool {
	return g.Vacant() == 0
}

// Fill places a block from next into every vacant cell.
func (g *Grid) Fill(next func() BlockType) {
	for i := range g.cells {
		if !g.cells[i].Occupied {
			g.Set(i, next())
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether two grids hold the same blocks in the same places.
// Status markers are ignored.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		o := other.cells[i]
		if c.Occupied != o.Occupied {
			return false
		}
		if c.Occupied && c.Type != o.Type {
			return false
		}
	}
	return true
}

// Slot is the presentation view of one cell.
type Slot struct {
	Type     BlockType
	Occupied bool
}

// Snapshot returns the index → block mapping of the whole grid.
func (g *Grid) Snapshot() []Slot {
	slots := make([]Slot, len(g.cells))
	for i, c := range g.cells {
		slots[i] = Slot{Type: c.Type, Occupied: c.Occupied}
	}
	return slots
}

// String renders the grid in board notation, top row first.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 1) * g.h)
	for row := g.h - 1; row >= 0; row-- {
		for col := 0; col < g.w; col++ {
			c := g.cells[row*g.w+col]
			if c.Occupied {
				sb.WriteRune(c.Type.Char())
			} else {
				sb.WriteRune('.')
			}
		}
		if row > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// ParseGrid builds a grid from board notation: one line per row, top row
// first, one character per cell ('.' for vacant). Blank lines are skipped.
func ParseGrid(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("puzzle: empty board")
	}

	w := len([]rune(lines[0]))
	h := len(lines)
	g := NewGrid(w, h)
	for n, line := range lines {
		runes := []rune(line)
		if len(runes) != w {
			return nil, fmt.Errorf("puzzle: board line %d has %d cells, want %d", n+1, len(runes), w)
		}
		row := h - 1 - n
		for col, r := range runes {
			if r == '.' {
				continue
			}
			t, ok := ParseBlockChar(r)
			if !ok {
				return nil, fmt.Errorf("puzzle: board line %d: unknown block %q", n+1, r)
			}
			g.Set(row*w+col, t)
		}
	}
	return g, nil
}
