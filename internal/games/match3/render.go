package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-puzzle/internal/core"
	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

const (
	cellWidth = 3 // " F " per block
	hudWidth  = 30
	hudGap    = 3
	comboRows = 6 // combo log lines shown in the HUD
)

var blockColors = map[puzzle.BlockType]core.Color{
	puzzle.BlockFire:    core.ColorRed,
	puzzle.BlockWater:   core.ColorBlue,
	puzzle.BlockLeaf:    core.ColorGreen,
	puzzle.BlockThunder: core.ColorYellow,
	puzzle.BlockLight:   core.ColorWhite,
	puzzle.BlockDark:    core.ColorMagenta,
}

var (
	frameStyle = core.Style{Color: core.ColorGray}
	titleStyle = core.Style{Color: core.ColorCyan, Attr: core.AttrBold}
	labelStyle = core.Style{Color: core.ColorGray}
	valueStyle = core.Style{Attr: core.AttrBold}
	warnStyle  = core.Style{Color: core.ColorOrange}
)

// BlockColor returns the color a block type is drawn with.
func BlockColor(t puzzle.BlockType) core.Color {
	if c, ok := blockColors[t]; ok {
		return c
	}
	return core.ColorDefault
}

// boardSize returns the drawn board size including its frame.
func (g *Game) boardSize() (int, int) {
	return g.cfg.Width*cellWidth + 2, g.cfg.Height + 2
}

func (g *Game) minScreen() (int, int) {
	bw, bh := g.boardSize()
	hudH := 8 + comboRows
	return bw + hudGap + hudWidth, max(bh, hudH) + 3
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	bw, bh := g.boardSize()
	minW, minH := g.minScreen()
	area := core.NewRect(0, 0, g.screenW, g.screenH).Centered(minW, minH)

	dst.DrawStyledText(area.X, area.Y, g.Title(), titleStyle)

	board := core.NewRect(area.X, area.Y+2, bw, bh)
	g.renderBoard(dst, board)
	g.renderHUD(dst, board.Right()+hudGap, board.Y)

	if g.paused {
		g.renderPaused(dst, board)
	}

	dst.DrawStyledText(0, g.screenH-1, g.Controls(), labelStyle)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreen()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderBoard draws the grid with the top row first, so row 0 sits on the
// frame's bottom edge.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, frameStyle)

	held, holding := g.ctrl.Holding()
	slots := g.ctrl.Snapshot()
	w, h := g.cfg.Width, g.cfg.Height

	for i, s := range slots {
		col, row := i%w, i/w
		x := r.X + 1 + col*cellWidth
		y := r.Y + 1 + (h - 1 - row)

		cell := core.Cell{Rune: '·', Color: core.ColorGray}
		if s.Occupied {
			cell = core.Cell{Rune: s.Type.Char(), Color: BlockColor(s.Type), Attr: core.AttrBold}
		}

		left, right := ' ', ' '
		switch {
		case holding && i == held:
			cell.Attr |= core.AttrReverse | core.AttrUnderline
			left, right = '[', ']'
		case i == g.cursor:
			cell.Attr |= core.AttrReverse
			left, right = '>', '<'
		}

		dst.SetCell(x, y, core.Cell{Rune: left, Color: cell.Color, Attr: cell.Attr})
		dst.SetCell(x+1, y, cell)
		dst.SetCell(x+2, y, core.Cell{Rune: right, Color: cell.Color, Attr: cell.Attr})
	}
}

// renderHUD draws phase, score and the combo log of the last episode.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	stats := g.ctrl.Stats()
	line := func(label, value string) {
		dst.DrawStyledText(x, y, label, labelStyle)
		dst.DrawStyledText(x+10, y, value, valueStyle)
		y++
	}

	status := g.ctrl.Phase().String()
	if _, holding := g.ctrl.Holding(); holding {
		status += " (holding)"
	}
	line("Phase", status)
	line("Score", fmt.Sprintf("%d", stats.TotalDamage))
	line("Last", fmt.Sprintf("%d combo / %d dmg", g.last.Combos, g.last.Damage))
	line("Best", fmt.Sprintf("%d combo / %d dmg", stats.BestCombo, stats.BestDamage))
	line("Moves", fmt.Sprintf("%d", g.episodes))
	y++

	if g.last.Truncated {
		dst.DrawStyledText(x, y, fmt.Sprintf("Cascade limit hit after %d", g.last.Cascades), warnStyle)
		y++
	}
	if g.loadErr != nil {
		dst.DrawStyledText(x, y, "Config error, using defaults", warnStyle)
		y++
	}

	records := g.last.Records
	for k, rec := range records {
		if k == comboRows {
			dst.DrawStyledText(x, y, fmt.Sprintf("... %d more", len(records)-comboRows), labelStyle)
			break
		}
		text := fmt.Sprintf("#%-2d %-7s x%d @ (%.1f, %.1f)", rec.Seq, rec.Type, rec.Size(), rec.Col, rec.Row)
		dst.DrawStyledText(x, y, text, core.Style{Color: BlockColor(rec.Type)})
		y++
	}
}

// renderPaused draws a centered overlay on the board.
func (g *Game) renderPaused(dst *core.Screen, board core.Rect) {
	msg := "PAUSED"
	box := board.Centered(len(msg)+4, 3)
	for yy := box.Y; yy < box.Bottom(); yy++ {
		for xx := box.X; xx < box.Right(); xx++ {
			dst.Set(xx, yy, ' ')
		}
	}
	dst.DrawBox(box, valueStyle)
	dst.DrawStyledText(box.X+2, box.Y+1, msg, valueStyle)
}
