package sim

import (
	"math/rand"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

var directions = []puzzle.Dir{puzzle.DirUp, puzzle.DirDown, puzzle.DirLeft, puzzle.DirRight}

// bot grabs a random block and drags it along a random walk.
type bot struct {
	ctrl    *puzzle.Controller
	board   *puzzle.Grid // geometry only
	rng     *rand.Rand
	maxDrag int
}

func newBot(ctrl *puzzle.Controller, rng *rand.Rand, maxDrag int) *bot {
	return &bot{
		ctrl:    ctrl,
		board:   ctrl.Board(),
		rng:     rng,
		maxDrag: max(maxDrag, 1),
	}
}

// playEpisode performs one gesture and returns the episode it resolved.
func (b *bot) playEpisode() puzzle.Episode {
	at := b.rng.Intn(b.board.Size())
	b.ctrl.Grab(at)

	steps := 1 + b.rng.Intn(b.maxDrag)
	for range steps {
		next, ok := b.board.Neighbor(at, directions[b.rng.Intn(len(directions))])
		if !ok {
			continue
		}
		b.ctrl.DragTo(next)
		at = next
	}

	ep, _ := b.ctrl.Release()
	return ep
}
