package core

// RuntimeConfig is handed to a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig sized for a standard terminal
// running at 20 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 20,
		Seed:     0,
	}
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Score    int
	Lives    int
	Level    int
	Started  bool // a round is in progress or has been played
	Running  bool // the simulation clock should be ticking
	GameOver bool
}

// EventKind identifies something notable that happened during input
// handling or a simulation step.
type EventKind int

const (
	EventStarted EventKind = iota
	EventPelletsEaten
	EventLifeLost
	EventLevelCleared
	EventGameOver
	EventRestart
)

// String returns a short name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPelletsEaten:
		return "pellets_eaten"
	case EventLifeLost:
		return "life_lost"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event carries a kind and an optional value (pellet count, new level, ...).
type Event struct {
	Kind  EventKind
	Value int
}

// StepResult is returned by Game.HandleInput and Game.Step.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
