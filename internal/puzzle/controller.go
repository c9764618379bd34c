package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
)

// Engines bundles the collaborators a Controller drives.
type Engines struct {
	Detector *ChainDetector
	Matcher  *MatchResolver
	Eraser   *EraseEngine
	Gravity  *GravityEngine
	Combos   *ComboTracker
	Attack   *AttackResolver
}

// NewEngines builds the standard engine set for cfg.
func NewEngines(cfg Config, rng *rand.Rand) Engines {
	detector := NewChainDetector()
	return Engines{
		Detector: detector,
		Matcher:  NewMatchResolver(detector, cfg.MinRun),
		Eraser:   NewEraseEngine(detector),
		Gravity:  NewGravityEngine(rng, cfg.BlockTypes),
		Combos:   NewComboTracker(),
		Attack:   NewAttackResolver(LinearAttack{PerCombo: cfg.AttackPerCombo}),
	}
}

func (e Engines) validate() error {
	if e.Detector == nil || e.Matcher == nil || e.Eraser == nil ||
		e.Gravity == nil || e.Combos == nil || e.Attack == nil {
		return errors.New("puzzle: incomplete engine set")
	}
	return nil
}

// Episode summarizes everything one released gesture triggered.
type Episode struct {
	Swaps     int
	Cascades  int // erase passes
	Combos    int
	Damage    int
	Truncated bool // stopped by the cascade limit
	Records   []ComboRecord
}

// Stats are running totals over a controller's lifetime.
type Stats struct {
	Episodes    int
	TotalCombos int
	TotalDamage int
	BestCombo   int
	BestDamage  int
}

// gesture is an in-progress grab-and-drag.
type gesture struct {
	origin int
	held   int
	swaps  [][2]int
}

// Controller is the phase state machine. It owns the grid and the current
// gesture and runs every phase to completion synchronously: a released
// gesture returns only after the cycle is back in MOVE.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	cfg       Config
	grid      *Grid
	eng       Engines
	listeners []Listener

	phase   Phase
	started bool
	gesture *gesture
	stats   Stats
}

// NewController wires a controller around grid and eng. A nil grid creates a
// vacant one of the configured size; vacant cells are filled by Start.
func NewController(cfg Config, grid *Grid, eng Engines, listeners ...Listener) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := eng.validate(); err != nil {
		return nil, err
	}
	if grid == nil {
		grid = NewGrid(cfg.Width, cfg.Height)
	} else if grid.Width() != cfg.Width || grid.Height() != cfg.Height {
		return nil, fmt.Errorf("%w: board is %dx%d, config wants %dx%d",
			ErrInvalidConfig, grid.Width(), grid.Height(), cfg.Width, cfg.Height)
	}
	return &Controller{
		cfg:       cfg,
		grid:      grid,
		eng:       eng,
		listeners: listeners,
		phase:     PhaseOpening,
	}, nil
}

// New creates a controller with the standard engines and a random source
// seeded with seed.
func New(cfg Config, seed int64, listeners ...Listener) (*Controller, error) {
	rng := rand.New(rand.NewSource(seed))
	return NewController(cfg, nil, NewEngines(cfg, rng), listeners...)
}

// Subscribe adds a listener.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Controller) emit(e Event) {
	for _, l := range c.listeners {
		l.HandleEvent(e)
	}
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config { return c.cfg }

// Phase returns the active phase.
func (c *Controller) Phase() Phase { return c.phase }

// Stats returns the running totals.
func (c *Controller) Stats() Stats { return c.stats }

// Snapshot returns the current board for rendering.
func (c *Controller) Snapshot() []Slot { return c.grid.Snapshot() }

// Board returns a copy of the grid.
func (c *Controller) Board() *Grid { return c.grid.Clone() }

// Holding returns the index of the held block while a gesture is active.
func (c *Controller) Holding() (int, bool) {
	if c.gesture == nil {
		return -1, false
	}
	return c.gesture.held, true
}

// Start runs OPENING: vacant cells are filled with random blocks (existing
// matches are left in place) and the controller enters MOVE.
func (c *Controller) Start() error {
	if c.started {
		return ErrAlreadyStarted
	}
	c.started = true
	c.phase = PhaseOpening
	c.grid.Fill(c.eng.Gravity.RandomBlock)
	c.emit(OpeningEvent{Board: c.grid.Snapshot()})
	c.enterMove()
	return nil
}

func (c *Controller) enterMove() {
	c.phase = PhaseMove
	c.emit(MoveEvent{Board: c.grid.Snapshot()})
}

// Grab starts a gesture on cell i. It is ignored outside MOVE, while another
// gesture is active, or when i is out of range.
func (c *Controller) Grab(i int) bool {
	if c.phase != PhaseMove || c.gesture != nil || !c.grid.InBounds(i) {
		return false
	}
	c.gesture = &gesture{origin: i, held: i}
	c.emit(GrabEvent{Index: i})
	return true
}

// DragTo moves the held block to cell i by swapping it with i's block.
// Returns false, without effect, when no gesture is active, i is out of
// range, or i is where the held block already is.
func (c *Controller) DragTo(i int) bool {
	g := c.gesture
	if g == nil || !c.grid.InBounds(i) || i == g.held {
		return false
	}
	c.grid.Swap(g.held, i)
	g.swaps = append(g.swaps, [2]int{g.held, i})
	c.emit(SwapEvent{From: i, To: g.held})
	g.held = i
	return true
}

// Release ends the gesture and resolves the episode it triggered.
// Returns false when no gesture was active.
func (c *Controller) Release() (Episode, bool) {
	g := c.gesture
	if g == nil {
		return Episode{}, false
	}
	c.gesture = nil
	return c.resolve(len(g.swaps)), true
}

// Cancel abandons the gesture according to the configured CancelPolicy.
// Returns false when no gesture was active.
func (c *Controller) Cancel() (Episode, bool) {
	g := c.gesture
	if g == nil {
		return Episode{}, false
	}
	if c.cfg.OnCancel == CancelCommit {
		return c.Release()
	}

	c.gesture = nil
	for k := len(g.swaps) - 1; k >= 0; k-- {
		c.grid.Swap(g.swaps[k][0], g.swaps[k][1])
	}
	c.emit(CancelEvent{Reverted: true, Swaps: len(g.swaps)})
	c.enterMove()
	return Episode{Swaps: len(g.swaps)}, true
}

// resolve runs CHECK → {ERASE → DROP → CHECK}* → [ATTACK] → MOVE.
func (c *Controller) resolve(swaps int) Episode {
	ep := Episode{Swaps: swaps}
	next := PhaseCheck

	for {
		c.phase = next
		switch next {
		case PhaseCheck:
			matched := c.eng.Matcher.DetectMatches(c.grid)
			if matched && ep.Cascades >= c.cfg.MaxCascades {
				c.grid.ResetFlags(FlagMarkedForErase)
				ep.Truncated = true
				c.emit(TruncatedEvent{Cascades: ep.Cascades})
				matched = false
			}
			c.emit(CheckEvent{Matched: matched, Marked: c.grid.Marked(), Cascade: ep.Cascades + 1})
			switch {
			case matched:
				next = PhaseErase
			case c.eng.Combos.Len() > 0:
				next = PhaseAttack
			default:
				next = PhaseMove
			}

		case PhaseErase:
			before := c.eng.Combos.Len()
			c.eng.Combos.Append(c.eng.Eraser.EraseAll(c.grid)...)
			ep.Cascades++
			c.emit(EraseEvent{Combos: c.eng.Combos.Combos()[before:], Total: c.eng.Combos.Len()})
			next = PhaseDrop

		case PhaseDrop:
			report := c.eng.Gravity.ApplyGravity(c.grid)
			c.emit(DropEvent{Report: report, Board: c.grid.Snapshot()})
			next = PhaseCheck

		case PhaseAttack:
			ep.Records = c.eng.Combos.Combos()
			atk := c.eng.Attack.Resolve(c.eng.Combos)
			ep.Combos = atk.Combos
			ep.Damage = atk.Damage
			c.record(atk)
			c.emit(AttackEvent{Attack: atk})
			next = PhaseMove

		case PhaseMove:
			c.stats.Episodes++
			c.enterMove()
			return ep

		default:
			panic(fmt.Sprintf("puzzle: unexpected phase %v", next))
		}
	}
}

func (c *Controller) record(atk Attack) {
	c.stats.TotalCombos += atk.Combos
	c.stats.TotalDamage += atk.Damage
	c.stats.BestCombo = max(c.stats.BestCombo, atk.Combos)
	c.stats.BestDamage = max(c.stats.BestDamage, atk.Damage)
}
