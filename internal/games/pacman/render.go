package pacman

import (
	"fmt"

	"github.com/KuberLakshman/PacMan/internal/core"
)

// cellsPerTile is the number of screen columns a tile occupies. Terminal
// cells are about twice as tall as wide, so two columns make a square tile.
const cellsPerTile = 2

// glyph is how a sprite is drawn on the terminal.
type glyph struct {
	text  string
	color core.Color
}

var glyphs = map[Sprite]glyph{
	SpriteWall:        {"██", core.ColorBlue},
	SpritePacmanUp:    {"vv", core.ColorYellow},
	SpritePacmanDown:  {"^^", core.ColorYellow},
	SpritePacmanLeft:  {">>", core.ColorYellow},
	SpritePacmanRight: {"<<", core.ColorYellow},
	SpriteGhostBlue:   {"ᗣᗣ", core.ColorCyan},
	SpriteGhostOrange: {"ᗣᗣ", core.ColorOrange},
	SpriteGhostPink:   {"ᗣᗣ", core.ColorPink},
	SpriteGhostRed:    {"ᗣᗣ", core.ColorRed},
}

const pelletRune = '·'

// MinScreenSize returns the terminal size needed to draw the board and HUD.
func (g *Game) MinScreenSize() (w, h int) {
	cols, rows := Cols, Rows
	if g.world != nil {
		cols, rows = g.world.maze.Cols, g.world.maze.Rows
	}
	return cols * cellsPerTile, rows + 1
}

// Render draws the board, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot load maze", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+1, g.err.Error(), core.ColorWhite)
		return
	}
	if g.world == nil {
		return
	}

	minW, minH := g.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()), core.ColorGray)
		return
	}

	snap := g.world.Snapshot()
	boardW, boardH := minW, minH-1
	b := boardView{
		dst:  dst,
		ts:   g.world.TileSize(),
		offX: (dst.Width() - boardW) / 2,
		offY: 1 + (dst.Height()-minH)/2,
	}

	for _, wall := range snap.Walls {
		b.drawEntity(wall)
	}
	for _, p := range snap.Pellets {
		b.drawPellet(p)
	}
	for _, e := range snap.Enemies {
		b.drawEntity(e)
	}
	b.drawEntity(snap.Player)

	hud := fmt.Sprintf("x%d Score: %d", snap.Lives, snap.Score)
	dst.DrawTextColored(b.offX, b.offY-1, hud, core.ColorWhite)
	level := fmt.Sprintf("Level %d", snap.Level)
	dst.DrawTextColored(b.offX+boardW-len(level), b.offY-1, level, core.ColorGray)

	mid := b.offY + boardH/2
	switch {
	case snap.GameOver:
		drawBanner(dst, mid-2, "GAME OVER", core.ColorRed)
		drawBanner(dst, mid, fmt.Sprintf("Final Score: %d", snap.Score), core.ColorWhite)
		drawBanner(dst, mid+2, "Press any key to restart", core.ColorGray)
	case !snap.Started:
		drawBanner(dst, mid-1, "GAME START", core.ColorYellow)
		drawBanner(dst, mid+1, "Press WASD or Arrow keys to begin", core.ColorWhite)
	}
}

// drawBanner draws centered text padded with a space on each side so it
// stands out from the maze behind it.
func drawBanner(dst *core.Screen, y int, text string, c core.Color) {
	dst.DrawTextCentered(y, " "+text+" ", c)
}

type boardView struct {
	dst        *core.Screen
	ts         int
	offX, offY int
}

// cellX maps a pixel x to a screen column with half-tile resolution.
func (b boardView) cellX(x int) int {
	return b.offX + (x*cellsPerTile+b.ts/2)/b.ts
}

// cellY maps a pixel y to the nearest screen row.
func (b boardView) cellY(y int) int {
	return b.offY + (y+b.ts/2)/b.ts
}

func (b boardView) drawEntity(e Entity) {
	gl, ok := glyphs[e.Sprite]
	if !ok {
		return
	}
	b.dst.DrawTextColored(b.cellX(e.X), b.cellY(e.Y), gl.text, gl.color)
}

func (b boardView) drawPellet(p Entity) {
	cx := p.X + p.Width/2
	cy := p.Y + p.Height/2
	b.dst.SetColored(b.offX+cx*cellsPerTile/b.ts, b.offY+cy/b.ts, pelletRune, core.ColorWhite)
}
