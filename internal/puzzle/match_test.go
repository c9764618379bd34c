package puzzle

import (
	"slices"
	"testing"
)

func TestDetectMatchesSingleRun(t *testing.T) {
	g := mustParse(t, board6x5)
	r := NewMatchResolver(NewChainDetector(), 3)

	if !r.DetectMatches(g) {
		t.Fatal("expected a match")
	}
	if got := g.Marked(); !slices.Equal(got, []int{0, 1, 2}) {
		t.Errorf("marked = %v, want [0 1 2]", got)
	}
}

func TestDetectMatchesIdempotent(t *testing.T) {
	g := mustParse(t, `
WWWHDW
HDWLTH
WFTHDW
HFWLTH
FFFWLT
`)
	r := NewMatchResolver(NewChainDetector(), 3)

	first := r.DetectMatches(g)
	marked := g.Marked()
	second := r.DetectMatches(g)

	if first != second {
		t.Errorf("results differ: %v then %v", first, second)
	}
	if !slices.Equal(marked, g.Marked()) {
		t.Errorf("marked set changed: %v then %v", marked, g.Marked())
	}
	want := []int{0, 1, 2, 7, 13, 24, 25, 26}
	if !slices.Equal(marked, want) {
		t.Errorf("marked = %v, want %v", marked, want)
	}
}

func TestDetectMatchesThreshold(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		minRun int
		found  bool
		marked []int
	}{
		{
			name:   "run of two below default",
			board:  "FFWL\nLWFF",
			minRun: 3,
			found:  false,
		},
		{
			name:   "run of two with threshold two",
			board:  "FTLW\nLWFF",
			minRun: 2,
			found:  true,
			marked: []int{2, 3},
		},
		{
			name:   "run of four",
			board:  "WWLW\nFFFF",
			minRun: 3,
			found:  true,
			marked: []int{0, 1, 2, 3},
		},
		{
			name:   "vertical run",
			board:  "LW\nLF\nLW",
			minRun: 3,
			found:  true,
			marked: []int{0, 2, 4},
		},
		{
			name:   "vacant cells never match",
			board:  "...\nFFW",
			minRun: 3,
			found:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustParse(t, tt.board)
			r := NewMatchResolver(NewChainDetector(), tt.minRun)

			if found := r.DetectMatches(g); found != tt.found {
				t.Errorf("DetectMatches() = %v, want %v", found, tt.found)
			}
			if got := g.Marked(); !slices.Equal(got, tt.marked) {
				t.Errorf("marked = %v, want %v", got, tt.marked)
			}
		})
	}
}

func TestDetectMatchesClearsStaleMarks(t *testing.T) {
	g := mustParse(t, board6x5)
	g.setFlag(29, FlagMarkedForErase, true)

	NewMatchResolver(NewChainDetector(), 3).DetectMatches(g)

	if g.Has(29, FlagMarkedForErase) {
		t.Error("stale mark from an earlier pass should be cleared")
	}
}
