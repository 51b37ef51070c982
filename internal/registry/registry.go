// Package registry maps game IDs to factories.
// Games register themselves in init() so the platform and the CLI can
// create them by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/KuberLakshman/PacMan/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform drives. Implementations are pure logic:
// the platform owns key mapping, the clock and the terminal.
type Game interface {
	// ID returns a unique identifier, used by the CLI and the score table.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh game for the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// HandleInput applies one key event. Input arrives between ticks,
	// not as part of them.
	HandleInput(in core.InputFrame) core.StepResult

	// Step advances the simulation by one fixed tick.
	// It is a no-op unless State().Running is true.
	Step() core.StepResult

	// Render draws the current frame into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns the current coarse game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
