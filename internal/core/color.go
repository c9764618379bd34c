package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors. Block colors come first so a block type can index them.
const (
	ColorDefault Color = iota
	ColorRed
	ColorBlue
	ColorGreen
	ColorYellow
	ColorWhite
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
)

// Attr is a set of text attributes applied on top of a cell's color.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrUnderline
)

// Has reports whether all attributes in x are set.
func (a Attr) Has(x Attr) bool {
	return a&x == x
}

// Cell is one styled character of a Screen.
type Cell struct {
	Rune  rune
	Color Color
	Attr  Attr
}

// Style groups the color and attributes of a cell without its rune.
type Style struct {
	Color Color
	Attr  Attr
}

func (c Cell) Style() Style {
	return Style{Color: c.Color, Attr: c.Attr}
}
