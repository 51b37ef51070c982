package pacman

// SetDirection turns e toward dir and moves it one step. If the moved entity
// overlaps a wall, the step is undone, the previous direction is restored and
// the velocity is derived from it again. It reports whether the move was kept.
//
// The same protocol serves player input and enemy redirection.
func SetDirection(e *Entity, dir Direction, walls []Entity, step int) bool {
	prev := e.Dir

	e.Dir = dir
	e.setVelocity(step)
	e.Advance()

	if overlapsAny(*e, walls) {
		e.Undo()
		e.Dir = prev
		e.setVelocity(step)
		return false
	}
	return true
}
