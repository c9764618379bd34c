// Package registry keeps the puzzle variants the CLI can start.
// Variants add themselves from init, so commands look them up by ID
// instead of importing each one.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-puzzle/internal/core"
)

// Game is a playable variant. It holds the board logic only; the platform
// owns the terminal, key mapping and tick timing.
type Game interface {
	// ID is the name used on the command line, e.g. "match3".
	ID() string
	Title() string

	// Reset starts a fresh board. It runs once before play and again on
	// every restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the board and HUD into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Describer is implemented by games that summarize their board for
// listings.
type Describer interface {
	Describe() string
}

// GameInfo is the listing entry of a registered variant.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
	infos     = map[string]GameInfo{}
)

// Register adds a variant. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: variant %q registered twice", id))
	}
	factories[id] = f

	// A throwaway instance supplies the listing metadata.
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Describe()
	}
	infos[id] = info
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Create returns a new instance of the variant id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown variant %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}
