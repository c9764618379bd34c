package puzzle

// DefaultMinRun is the shortest run that is marked for erase.
const DefaultMinRun = 3

// MatchResolver scans the whole grid for vertical and horizontal runs and
// marks every run of at least minRun cells for erase.
type MatchResolver struct {
	detector *ChainDetector
	minRun   int
}

// NewMatchResolver creates a resolver. A minRun below 1 selects DefaultMinRun.
func NewMatchResolver(detector *ChainDetector, minRun int) *MatchResolver {
	if minRun < 1 {
		minRun = DefaultMinRun
	}
	return &MatchResolver{detector: detector, minRun: minRun}
}

// MinRun returns the marking threshold.
func (r *MatchResolver) MinRun() int {
	return r.minRun
}

// DetectMatches clears all detection and erase markers, then marks every
// qualifying run. Returns whether anything was marked.
//
// Each cell is visited at most once per axis, so the final marked set does
// not depend on scan order.
func (r *MatchResolver) DetectMatches(g *Grid) bool {
	g.ResetFlags(FlagCheckedVertical, FlagCheckedHorizontal, FlagMarkedForErase)

	found := false
	for i := range g.Size() {
		t, ok := g.Get(i)
		if !ok {
			continue
		}
		for _, s := range []Search{VerticalSearch, HorizontalSearch} {
			chain := r.detector.FindChain(g, i, t, s)
			if len(chain) < r.minRun {
				continue
			}
			for _, idx := range chain {
				g.setFlag(idx, FlagMarkedForErase, true)
			}
			found = true
		}
	}
	return found
}
