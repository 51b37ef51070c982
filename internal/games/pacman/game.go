// Package pacman implements the maze game: a player eats pellets while four
// enemies wander the board at random.
//
// The simulation is pure. World holds the state, Tick advances it, and Game
// adapts both to the registry interface the platform drives.
package pacman

import (
	"math/rand"

	"github.com/KuberLakshman/PacMan/internal/core"
	"github.com/KuberLakshman/PacMan/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "pacman"

// options is used by the registry factory. The CLI sets it from config
// before creating the game.
var options = DefaultOptions()

// SetOptions replaces the options used by games created through the registry.
func SetOptions(opts Options) {
	options = opts
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New(options)
	})
}

// Game adapts a World to registry.Game.
type Game struct {
	opts  Options
	world *World
	rng   *rand.Rand
	err   error
}

// New creates a game. Call Reset before use.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pac-Man"
}

// Reset builds a fresh world seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.world, g.err = NewWorld(g.opts, g.rng)
}

// Err returns the layout error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// World exposes the live world. Callers must not retain it across Reset.
func (g *Game) World() *World {
	return g.world
}

// HandleInput routes one key event to the state machine.
func (g *Game) HandleInput(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}
	if in.Empty() {
		return core.StepResult{State: g.State()}
	}
	if dir, ok := directionOf(in); ok {
		return g.OnDirectionRequest(dir)
	}
	if in.Has(core.ActionAnyKey) {
		return g.OnAnyKey()
	}
	return core.StepResult{State: g.State()}
}

func directionOf(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return Up, true
	case in.Has(core.ActionDown):
		return Down, true
	case in.Has(core.ActionLeft):
		return Left, true
	case in.Has(core.ActionRight):
		return Right, true
	}
	return Up, false
}

// Step runs one simulation tick.
func (g *Game) Step() core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}
	report := Tick(g.world, g.rng)
	return core.StepResult{
		State:  g.State(),
		Events: report.Events(g.world.Level),
	}
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	w := g.world
	return core.GameState{
		Score:    w.Score,
		Lives:    w.Lives,
		Level:    w.Level,
		Started:  w.Started(),
		Running:  w.Phase == PhasePlaying,
		GameOver: w.GameOver(),
	}
}

// Events converts the report into platform events. level is the level after
// the tick.
func (r TickReport) Events(level int) []core.Event {
	var events []core.Event
	if r.PelletsEaten > 0 {
		events = append(events, core.Event{Kind: core.EventPelletsEaten, Value: r.PelletsEaten})
	}
	if r.LivesLost > 0 {
		events = append(events, core.Event{Kind: core.EventLifeLost, Value: r.LivesLost})
	}
	if r.LevelCleared {
		events = append(events, core.Event{Kind: core.EventLevelCleared, Value: level})
	}
	if r.GameOver {
		events = append(events, core.Event{Kind: core.EventGameOver})
	}
	return events
}
