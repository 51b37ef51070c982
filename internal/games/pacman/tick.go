package pacman

import "math/rand"

// TickReport summarizes what happened during one Tick.
type TickReport struct {
	PelletsEaten int
	Points       int
	LivesLost    int
	LevelCleared bool
	GameOver     bool
}

// Tick advances the world by one frame. It does nothing unless the world is
// playing.
//
// Order: the player moves and is stopped by walls; each enemy is checked
// against the player, pushed out of the pen row, moved and bounced off walls
// and the side edges; pellets under the player are eaten; an empty board is
// reloaded as the next level.
func Tick(w *World, rng *rand.Rand) TickReport {
	var r TickReport
	if w.Phase != PhasePlaying {
		return r
	}
	w.Ticks++
	step := w.Step()

	w.Player.Advance()
	if overlapsAny(w.Player, w.Walls) {
		w.Player.Undo()
	}

	penY := PenRow * w.TileSize()
	for i := range w.Enemies {
		e := &w.Enemies[i]

		if Overlaps(*e, w.Player) {
			w.Lives--
			r.LivesLost++
			if w.Lives <= 0 {
				w.Lives = 0
				w.Phase = PhaseGameOver
				r.GameOver = true
				return r
			}
			w.ResetPositions(rng)
		}

		if e.Y == penY && !e.Dir.Vertical() {
			SetDirection(e, Up, w.Walls, step)
		}

		e.Advance()
		if overlapsAny(*e, w.Walls) || e.X <= 0 || e.X+e.Width >= w.Width() {
			e.Undo()
			SetDirection(e, RandomDirection(rng), w.Walls, step)
		}
	}

	for i := 0; i < len(w.Pellets); {
		if Overlaps(w.Player, w.Pellets[i]) {
			w.removePellet(i)
			r.PelletsEaten++
			continue
		}
		i++
	}
	r.Points = r.PelletsEaten * w.pelletPoints
	w.Score += r.Points

	if len(w.Pellets) == 0 {
		w.Reload()
		w.ResetPositions(rng)
		w.Level++
		r.LevelCleared = true
	}
	return r
}
