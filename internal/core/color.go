package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the maze renderer and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBlue
	ColorWhite
	ColorPink
	ColorOrange
	ColorPurple
	ColorGray
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorWhite:
		return "white"
	case ColorPink:
		return "pink"
	case ColorOrange:
		return "orange"
	case ColorPurple:
		return "purple"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
