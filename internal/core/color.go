package core

// Color is the logical foreground color of a screen cell.
// The platform layer maps it to a terminal style.
type Color uint8

// Colors used by the maze, the actors and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorPink
	ColorOrange
	ColorCyan
	ColorBlue
	ColorYellow
	ColorWhite
	ColorGray
)

// String returns the color name, used in screenshots and logs.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorPink:
		return "pink"
	case ColorOrange:
		return "orange"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
