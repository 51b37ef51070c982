package pacman

import "math/rand"

// Direction is the facing of a movable entity.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction, in the order random picks index into.
var Directions = [...]Direction{Up, Down, Left, Right}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for the direction. Screen y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Vertical reports whether the direction is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// RandomDirection picks one of the four directions uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}
