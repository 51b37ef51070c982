package pacman

// Sprite is an opaque asset id. The renderer owns the mapping to glyphs.
type Sprite string

const (
	SpriteNone        Sprite = ""
	SpriteWall        Sprite = "wall"
	SpritePacmanUp    Sprite = "pacman-up"
	SpritePacmanDown  Sprite = "pacman-down"
	SpritePacmanLeft  Sprite = "pacman-left"
	SpritePacmanRight Sprite = "pacman-right"
	SpriteGhostBlue   Sprite = "ghost-blue"
	SpriteGhostOrange Sprite = "ghost-orange"
	SpriteGhostPink   Sprite = "ghost-pink"
	SpriteGhostRed    Sprite = "ghost-red"
)

// PlayerSprite returns the player sprite facing d.
func PlayerSprite(d Direction) Sprite {
	switch d {
	case Down:
		return SpritePacmanDown
	case Left:
		return SpritePacmanLeft
	case Right:
		return SpritePacmanRight
	default:
		return SpritePacmanUp
	}
}

// enemySprites maps layout symbols to enemy identities.
var enemySprites = map[byte]Sprite{
	'b': SpriteGhostBlue,
	'o': SpriteGhostOrange,
	'p': SpriteGhostPink,
	'r': SpriteGhostRed,
}
