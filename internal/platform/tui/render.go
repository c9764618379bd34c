package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-puzzle/internal/core"
)

// palette maps core.Color to terminal colors.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:     lipgloss.Color("9"),
	core.ColorBlue:    lipgloss.Color("12"),
	core.ColorGreen:   lipgloss.Color("10"),
	core.ColorYellow:  lipgloss.Color("11"),
	core.ColorWhite:   lipgloss.Color("15"),
	core.ColorMagenta: lipgloss.Color("13"),
	core.ColorCyan:    lipgloss.Color("14"),
	core.ColorOrange:  lipgloss.Color("208"),
	core.ColorGray:    lipgloss.Color("245"),
}

// Renderer converts Screen buffers to styled strings, caching one lipgloss
// style per distinct cell style.
type Renderer struct {
	styles map[core.Style]lipgloss.Style
}

// NewRenderer creates an empty renderer.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[core.Style]lipgloss.Style)}
}

func (r *Renderer) style(st core.Style) lipgloss.Style {
	if s, ok := r.styles[st]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := palette[st.Color]; ok {
		s = s.Foreground(c)
	}
	if st.Attr.Has(core.AttrBold) {
		s = s.Bold(true)
	}
	if st.Attr.Has(core.AttrReverse) {
		s = s.Reverse(true)
	}
	if st.Attr.Has(core.AttrUnderline) {
		s = s.Underline(true)
	}
	r.styles[st] = s
	return s
}

// Render converts a Screen buffer to a styled string for display.
// Adjacent cells with the same style are grouped to minimize ANSI escape
// sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style()

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style() != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
