package pacman

import "github.com/KuberLakshman/PacMan/internal/core"

// Entity is any positioned rectangle in the world: wall, pellet, enemy or
// player. Behavior lives in free functions, not in per-kind types.
type Entity struct {
	X, Y          int
	Width, Height int
	Sprite        Sprite

	// StartX and StartY are the spawn position restored by Reset.
	StartX, StartY int

	Dir                  Direction
	VelocityX, VelocityY int
}

// newEntity creates an entity anchored at its spawn, facing Up and at rest.
func newEntity(sprite Sprite, x, y, w, h int) Entity {
	return Entity{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Sprite: sprite,
		StartX: x,
		StartY: y,
		Dir:    Up,
	}
}

// Bounds returns the entity's bounding box.
func (e Entity) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Advance applies the velocity to the position.
func (e *Entity) Advance() {
	e.X += e.VelocityX
	e.Y += e.VelocityY
}

// Undo subtracts the velocity from the position, reverting one Advance.
func (e *Entity) Undo() {
	e.X -= e.VelocityX
	e.Y -= e.VelocityY
}

// Reset moves the entity back to its spawn position.
func (e *Entity) Reset() {
	e.X = e.StartX
	e.Y = e.StartY
}

// Stop zeroes the velocity without changing the facing.
func (e *Entity) Stop() {
	e.VelocityX = 0
	e.VelocityY = 0
}

// setVelocity derives the velocity from the current direction.
func (e *Entity) setVelocity(step int) {
	dx, dy := e.Dir.Delta()
	e.VelocityX = dx * step
	e.VelocityY = dy * step
}
