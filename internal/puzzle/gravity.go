package puzzle

import (
	"fmt"
	"math/rand"
)

// Fall records a block moving down a column.
type Fall struct {
	From int
	To   int
}

// Spawn records a new block entering at the top of a column.
type Spawn struct {
	Index int
	Type  BlockType
}

// DropReport describes what one gravity pass did.
type DropReport struct {
	Displacement []int // vacated cells refilled per column
	Falls        []Fall
	Spawns       []Spawn
}

// Moved reports whether the pass changed anything.
func (r DropReport) Moved() bool {
	return len(r.Falls) > 0 || len(r.Spawns) > 0
}

// GravityEngine compacts columns downward and refills them from the top.
type GravityEngine struct {
	rng   *rand.Rand
	types int
}

// NewGravityEngine creates a gravity engine drawing new blocks uniformly from
// the first types block types.
func NewGravityEngine(rng *rand.Rand, types int) *GravityEngine {
	return &GravityEngine{rng: rng, types: max(1, min(types, MaxBlockTypes))}
}

// RandomBlock draws one block type.
func (e *GravityEngine) RandomBlock() BlockType {
	return BlockType(e.rng.Intn(e.types))
}

// ApplyGravity drops every block onto the nearest block or floor below it and
// fills the vacated top cells with random blocks. Columns are independent.
// Afterwards no vacant cell remains.
func (e *GravityEngine) ApplyGravity(g *Grid) DropReport {
	w, h := g.Width(), g.Height()
	report := DropReport{Displacement: make([]int, w)}

	for col := range w {
		empty := 0
		for row := range h {
			i := row*w + col
			if !g.cells[i].Occupied {
				empty++
				continue
			}
			if empty > 0 {
				dst := i - empty*w
				g.Swap(i, dst)
				report.Falls = append(report.Falls, Fall{From: i, To: dst})
			}
		}

		for k := range empty {
			i := (h-empty+k)*w + col
			t := e.RandomBlock()
			g.Set(i, t)
			report.Spawns = append(report.Spawns, Spawn{Index: i, Type: t})
		}
		report.Displacement[col] = empty
	}

	if n := g.Vacant(); n != 0 {
		panic(fmt.Sprintf("puzzle: %d vacant cells left after gravity", n))
	}
	return report
}
