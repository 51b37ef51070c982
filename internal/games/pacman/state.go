package pacman

import "github.com/KuberLakshman/PacMan/internal/core"

// OnDirectionRequest handles a movement key. The first one starts the game.
// After game over it restarts instead of moving.
func (g *Game) OnDirectionRequest(dir Direction) core.StepResult {
	w := g.world
	var events []core.Event

	switch w.Phase {
	case PhaseGameOver:
		return g.OnAnyKey()
	case PhaseNotStarted:
		w.Phase = PhasePlaying
		events = append(events, core.Event{Kind: core.EventStarted, Value: w.Level})
	}

	w.Steer(dir)
	return core.StepResult{State: g.State(), Events: events}
}

// OnAnyKey handles a non-movement key. It only matters after game over,
// where it resets the board, lives and score and waits for a direction.
func (g *Game) OnAnyKey() core.StepResult {
	w := g.world
	if w.Phase != PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	final := w.Score
	w.Restart(g.rng)
	return core.StepResult{
		State:  g.State(),
		Events: []core.Event{{Kind: core.EventRestart, Value: final}},
	}
}
