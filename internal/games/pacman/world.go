package pacman

import "math/rand"

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Options configures a world.
type Options struct {
	Layout       []string
	TileSize     int
	Lives        int
	PelletPoints int
	StrictMap    bool
}

// DefaultOptions returns the classic setup: the built-in layout, 32px tiles,
// 3 lives and 10 points per pellet.
func DefaultOptions() Options {
	return Options{
		Layout:       DefaultLayout,
		TileSize:     TileSize,
		Lives:        3,
		PelletPoints: 10,
	}
}

// World is the complete mutable game state. It is owned by one goroutine.
type World struct {
	Walls   []Entity
	Pellets []Entity
	Enemies []Entity
	Player  Entity

	Score int
	Lives int
	Level int
	Phase Phase
	Ticks uint64

	maze         *Maze
	startLives   int
	pelletPoints int
}

// NewWorld loads the layout and returns a world waiting for its first
// direction. Enemies are given random initial directions.
func NewWorld(opts Options, rng *rand.Rand) (*World, error) {
	maze, err := LoadMaze(opts.Layout, opts.TileSize, opts.StrictMap)
	if err != nil {
		return nil, err
	}

	w := &World{
		maze:         maze,
		startLives:   opts.Lives,
		pelletPoints: opts.PelletPoints,
		Lives:        opts.Lives,
		Level:        1,
		Phase:        PhaseNotStarted,
	}
	w.Reload()
	w.redirectEnemies(rng)
	return w, nil
}

// Maze returns the parsed layout backing the world.
func (w *World) Maze() *Maze {
	return w.maze
}

// TileSize returns the tile size in pixels.
func (w *World) TileSize() int {
	return w.maze.TileSize
}

// Width returns the board width in pixels.
func (w *World) Width() int {
	return w.maze.Width()
}

// Step returns the movement magnitude per tick.
func (w *World) Step() int {
	return w.maze.Step()
}

// Started reports whether the player has begun a round.
func (w *World) Started() bool {
	return w.Phase != PhaseNotStarted
}

// GameOver reports whether the game has ended.
func (w *World) GameOver() bool {
	return w.Phase == PhaseGameOver
}

// Reload replaces walls, pellets and enemies with fresh copies and puts a new
// player at the spawn. Score, lives and level are untouched.
func (w *World) Reload() {
	w.Walls, w.Pellets, w.Enemies, w.Player = w.maze.Fresh()
}

// ResetPositions returns every actor to its spawn. The player keeps its
// facing but stops; enemies pick new random directions.
func (w *World) ResetPositions(rng *rand.Rand) {
	w.Player.Reset()
	w.Player.Stop()
	for i := range w.Enemies {
		w.Enemies[i].Reset()
	}
	w.redirectEnemies(rng)
}

func (w *World) redirectEnemies(rng *rand.Rand) {
	for i := range w.Enemies {
		SetDirection(&w.Enemies[i], RandomDirection(rng), w.Walls, w.Step())
	}
}

// Steer applies a direction request to the player and updates its sprite.
func (w *World) Steer(dir Direction) bool {
	ok := SetDirection(&w.Player, dir, w.Walls, w.Step())
	w.Player.Sprite = PlayerSprite(w.Player.Dir)
	return ok
}

// Restart brings a finished game back to its initial state, waiting for a
// direction.
func (w *World) Restart(rng *rand.Rand) {
	w.Reload()
	w.ResetPositions(rng)
	w.Lives = w.startLives
	w.Score = 0
	w.Level = 1
	w.Ticks = 0
	w.Phase = PhaseNotStarted
}

// removePellet drops the pellet at index i. Order is not preserved.
func (w *World) removePellet(i int) {
	last := len(w.Pellets) - 1
	w.Pellets[i] = w.Pellets[last]
	w.Pellets = w.Pellets[:last]
}
