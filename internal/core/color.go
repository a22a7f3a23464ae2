package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by the maze renderer and HUD.
const (
	ColorDefault Color = iota
	ColorWall
	ColorPlayer
	ColorPellet
	ColorPower
	ColorHUD
	ColorAlert
	ColorDim
)

// String returns the color's name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorWall:
		return "wall"
	case ColorPlayer:
		return "player"
	case ColorPellet:
		return "pellet"
	case ColorPower:
		return "power"
	case ColorHUD:
		return "hud"
	case ColorAlert:
		return "alert"
	case ColorDim:
		return "dim"
	default:
		return "unknown"
	}
}
