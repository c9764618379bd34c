package puzzle

import "fmt"

// ComboRecord describes one erased region.
type ComboRecord struct {
	Seq   int       // 1-based position within the episode
	Type  BlockType // block type of the region
	Cells []int     // erased indices, ascending
	Col   float64   // centroid column
	Row   float64   // centroid row
}

// Size returns the number of erased cells.
func (r ComboRecord) Size() int {
	return len(r.Cells)
}

// EraseEngine removes marked regions from the grid.
type EraseEngine struct {
	detector *ChainDetector
}

// NewEraseEngine creates an erase engine sharing the given detector.
func NewEraseEngine(detector *ChainDetector) *EraseEngine {
	return &EraseEngine{detector: detector}
}

// EraseAll flood-fills and removes every marked region, one ComboRecord per
// connected region in discovery order. Intersecting vertical and horizontal
// runs of the same type form a single region. On return no cell is marked.
//
// Seq on the returned records counts from 1 within this call; ComboTracker
// renumbers them for the episode.
//
// Panics if a vacant cell is marked, which means the grid state is corrupted.
func (e *EraseEngine) EraseAll(g *Grid) []ComboRecord {
	var records []ComboRecord
	for {
		rec, ok := e.eraseNext(g)
		if !ok {
			return records
		}
		rec.Seq = len(records) + 1
		records = append(records, rec)
	}
}

// eraseNext erases the first marked region found scanning upward from index 0.
func (e *EraseEngine) eraseNext(g *Grid) (ComboRecord, bool) {
	for i := range g.Size() {
		c := g.cells[i]
		if !c.Marked {
			continue
		}
		if !c.Occupied {
			panic(fmt.Sprintf("puzzle: vacant cell %d is marked for erase", i))
		}

		region := e.detector.FindChain(g, i, c.Type, EraseSearch)
		if len(region) == 0 {
			panic(fmt.Sprintf("puzzle: marked cell %d produced an empty region", i))
		}

		var sumCol, sumRow int
		for _, idx := range region {
			g.Clear(idx)
			sumCol += g.Col(idx)
			sumRow += g.Row(idx)
		}
		n := float64(len(region))
		return ComboRecord{
			Type:  c.Type,
			Cells: region,
			Col:   float64(sumCol) / n,
			Row:   float64(sumRow) / n,
		}, true
	}
	return ComboRecord{}, false
}
