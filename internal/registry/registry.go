// Package registry maps game IDs to factories. Games add themselves from
// init, so the CLI and the TUI platform never import a game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/superhero-arcade/internal/core"
)

// Game is the contract between a simulation and the platform that drives
// it. Implementations hold pure logic; input mapping, tick timing and
// terminal drawing stay on the platform side.
type Game interface {
	// ID is the stable key used by the CLI and score storage.
	ID() string
	Title() string

	// Reset starts a fresh run for the given runtime (screen size, seed).
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the platform clears beforehand.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on an empty or duplicate id,
// both of which are programming errors caught at init.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}
