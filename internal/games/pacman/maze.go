package pacman

import (
	"errors"
	"fmt"
)

// Board geometry of the built-in layout.
const (
	Rows       = 21
	Cols       = 19
	TileSize   = 32
	PelletSize = 4

	// PenRow is the row enemies are pushed out of by the forced-exit rule.
	PenRow = 9
)

// Layout symbols.
const (
	symWall   = 'X'
	symPellet = ' '
	symPlayer = 'P'
	symEmpty  = 'O'
)

// DefaultLayout is the fixed maze.
var DefaultLayout = []string{
	"XXXXXXXXXXXXXXXXXXX",
	"X        X        X",
	"X XX XXX X XXX XX X",
	"X                 X",
	"X XX X XXXXX X XX X",
	"X    X       X    X",
	"XXXX XXXX XXXX XXXX",
	"OOOX X       X XOOO",
	"XXXX X XXrXX X XXXX",
	"X      bpo        X",
	"XXXX X XXXXX X XXXX",
	"OOOX X       X XOOO",
	"XXXX X XXXXX X XXXX",
	"X        X        X",
	"X XX XXX X XXX XX X",
	"X  X     P     X  X",
	"XX X X XXXXX X X XX",
	"X    X   X   X    X",
	"X XXXXXX X XXXXXX X",
	"X                 X",
	"XXXXXXXXXXXXXXXXXXX",
}

// Layout validation errors, matchable with errors.Is.
var (
	ErrEmptyLayout     = errors.New("empty layout")
	ErrRaggedRow       = errors.New("row length differs from first row")
	ErrUnknownSymbol   = errors.New("unknown symbol")
	ErrNoPlayer        = errors.New("no player spawn")
	ErrDuplicatePlayer = errors.New("more than one player spawn")
	ErrBadTileSize     = errors.New("tile size must be a positive multiple of 4")
)

// MapError describes where a layout failed to load. Row and Col are -1 when
// the error is not tied to a cell.
type MapError struct {
	Row, Col int
	Err      error
}

func (e *MapError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("maze: %v", e.Err)
	case e.Col < 0:
		return fmt.Sprintf("maze: row %d: %v", e.Row, e.Err)
	default:
		return fmt.Sprintf("maze: row %d col %d: %v", e.Row, e.Col, e.Err)
	}
}

func (e *MapError) Unwrap() error {
	return e.Err
}

// Maze is a parsed layout. Its collections are templates; Fresh hands out
// copies so the world can consume pellets without touching the maze.
type Maze struct {
	Rows, Cols int
	TileSize   int

	Walls   []Entity
	Pellets []Entity
	Enemies []Entity
	Player  Entity
}

// Width returns the board width in pixels.
func (m *Maze) Width() int {
	return m.Cols * m.TileSize
}

// Height returns the board height in pixels.
func (m *Maze) Height() int {
	return m.Rows * m.TileSize
}

// Step returns the movement magnitude per tick.
func (m *Maze) Step() int {
	return m.TileSize / 4
}

// Fresh returns new collections at canonical spawn coordinates.
func (m *Maze) Fresh() (walls, pellets, enemies []Entity, player Entity) {
	return clone(m.Walls), clone(m.Pellets), clone(m.Enemies), m.Player
}

func clone(src []Entity) []Entity {
	dst := make([]Entity, len(src))
	copy(dst, src)
	return dst
}

// LoadMaze parses a layout into entities. Columns are taken from the first
// row. In lenient mode unknown symbols are skipped and cells beyond the first
// row's width are ignored; strict mode reports them as a *MapError. A layout
// without a player spawn is rejected in both modes.
func LoadMaze(layout []string, tileSize int, strict bool) (*Maze, error) {
	if tileSize <= 0 || tileSize%4 != 0 {
		return nil, &MapError{Row: -1, Col: -1, Err: ErrBadTileSize}
	}
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, &MapError{Row: -1, Col: -1, Err: ErrEmptyLayout}
	}

	m := &Maze{
		Rows:     len(layout),
		Cols:     len(layout[0]),
		TileSize: tileSize,
	}
	pelletOffset := (tileSize - PelletSize) / 2
	players := 0

	for r, row := range layout {
		if strict && len(row) != m.Cols {
			return nil, &MapError{Row: r, Col: -1, Err: ErrRaggedRow}
		}
		for c := 0; c < len(row) && c < m.Cols; c++ {
			x, y := c*tileSize, r*tileSize

			switch sym := row[c]; sym {
			case symWall:
				m.Walls = append(m.Walls, newEntity(SpriteWall, x, y, tileSize, tileSize))
			case symPellet:
				m.Pellets = append(m.Pellets, newEntity(SpriteNone, x+pelletOffset, y+pelletOffset, PelletSize, PelletSize))
			case symPlayer:
				players++
				if strict && players > 1 {
					return nil, &MapError{Row: r, Col: c, Err: ErrDuplicatePlayer}
				}
				m.Player = newEntity(SpritePacmanRight, x, y, tileSize, tileSize)
			case symEmpty:
			default:
				if sprite, ok := enemySprites[sym]; ok {
					m.Enemies = append(m.Enemies, newEntity(sprite, x, y, tileSize, tileSize))
					continue
				}
				if strict {
					return nil, &MapError{Row: r, Col: c, Err: fmt.Errorf("%w %q", ErrUnknownSymbol, sym)}
				}
			}
		}
	}

	if players == 0 {
		return nil, &MapError{Row: -1, Col: -1, Err: ErrNoPlayer}
	}
	return m, nil
}
