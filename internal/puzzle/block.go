// Package puzzle implements the match-resolution engine of a tile-matching
// puzzle: the grid model, chain detection, erasure, gravity, combo accounting
// and the phase state machine that sequences them.
//
// The package is UI-agnostic and deterministic for a given random source.
// Presentation layers observe it through Listener events and Snapshot.
package puzzle

// BlockType identifies the kind of block occupying a cell.
type BlockType uint8

const (
	BlockFire BlockType = iota
	BlockWater
	BlockLeaf
	BlockThunder
	BlockLight
	BlockDark
	blockTypeCount // Sentinel value for iteration
)

// MaxBlockTypes is the largest supported block-type cardinality.
const MaxBlockTypes = int(blockTypeCount)

// String returns the lowercase name of the block type.
func (b BlockType) String() string {
	switch b {
	case BlockFire:
		return "fire"
	case BlockWater:
		return "water"
	case BlockLeaf:
		return "leaf"
	case BlockThunder:
		return "thunder"
	case BlockLight:
		return "light"
	case BlockDark:
		return "dark"
	default:
		return "unknown"
	}
}

// Char returns the single-character board notation of the block type.
func (b BlockType) Char() rune {
	switch b {
	case BlockFire:
		return 'F'
	case BlockWater:
		return 'W'
	case BlockLeaf:
		return 'L'
	case BlockThunder:
		return 'T'
	case BlockLight:
		return 'H'
	case BlockDark:
		return 'D'
	default:
		return '?'
	}
}

// ParseBlockChar converts board notation back to a block type.
func ParseBlockChar(r rune) (BlockType, bool) {
	switch r {
	case 'F', 'f':
		return BlockFire, true
	case 'W', 'w':
		return BlockWater, true
	case 'L', 'l':
		return BlockLeaf, true
	case 'T', 't':
		return BlockThunder, true
	case 'H', 'h':
		return BlockLight, true
	case 'D', 'd':
		return BlockDark, true
	default:
		return 0, false
	}
}

// BlockTypes returns the first n block types, clamped to [1, MaxBlockTypes].
func BlockTypes(n int) []BlockType {
	n = max(1, min(n, MaxBlockTypes))
	types := make([]BlockType, n)
	for i := range types {
		types[i] = BlockType(i)
	}
	return types
}
