// Package sim plays many seeded puzzle episodes with a random-drag bot and
// summarizes the resulting combo and damage distributions.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/vovakirdan/tui-puzzle/internal/puzzle"
)

// ErrInvalidOptions is wrapped by every Options.Validate failure.
var ErrInvalidOptions = errors.New("sim: invalid options")

// Options configures a simulation run.
type Options struct {
	Config   puzzle.Config
	Episodes int
	Workers  int       // 0 means 1
	Seed     int64     // worker w plays with Seed+w
	MaxDrag  int       // longest drag path per episode, 0 means board width
	Progress io.Writer // progress bar output, nil hides it
}

// Validate checks the options.
func (o Options) Validate() error {
	if err := o.Config.Validate(); err != nil {
		return err
	}
	switch {
	case o.Episodes < 1:
		return fmt.Errorf("%w: episodes %d below 1", ErrInvalidOptions, o.Episodes)
	case o.Workers < 0:
		return fmt.Errorf("%w: negative workers %d", ErrInvalidOptions, o.Workers)
	case o.MaxDrag < 0:
		return fmt.Errorf("%w: negative max drag %d", ErrInvalidOptions, o.MaxDrag)
	}
	return nil
}

// sample is the outcome of one episode.
type sample struct {
	combos    int
	damage    int
	cascades  int
	swaps     int
	truncated bool
}

// Run plays opts.Episodes episodes spread over opts.Workers goroutines.
// Each worker owns its controller, so results depend only on the options.
// Cancelling ctx stops all workers between episodes.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	workers := max(opts.Workers, 1)
	workers = min(workers, opts.Episodes)
	maxDrag := opts.MaxDrag
	if maxDrag == 0 {
		maxDrag = opts.Config.Width
	}

	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := pb.New(opts.Episodes)
	bar.SetWriter(progress)
	bar.Start()
	start := time.Now()

	results := make([][]sample, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		n := opts.Episodes / workers
		if w < opts.Episodes%workers {
			n++
		}
		go func() {
			defer wg.Done()
			results[w], errs[w] = play(ctx, opts.Config, opts.Seed+int64(w), n, maxDrag, bar.Increment)
		}()
	}
	wg.Wait()
	bar.Finish()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	var all []sample
	for _, r := range results {
		all = append(all, r...)
	}
	rep := newReport(opts, workers, all)
	rep.Elapsed = time.Since(start)
	return rep, nil
}

// play runs n episodes on a fresh controller.
func play(ctx context.Context, cfg puzzle.Config, seed int64, n, maxDrag int, tick func() *pb.ProgressBar) ([]sample, error) {
	ctrl, err := puzzle.New(cfg, seed)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	b := newBot(ctrl, rand.New(rand.NewSource(^seed)), maxDrag)

	out := make([]sample, 0, n)
	for range n {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("sim: stopped after %d episodes: %w", len(out), err)
		}
		ep := b.playEpisode()
		out = append(out, sample{
			combos:    ep.Combos,
			damage:    ep.Damage,
			cascades:  ep.Cascades,
			swaps:     ep.Swaps,
			truncated: ep.Truncated,
		})
		tick()
	}
	return out, nil
}
