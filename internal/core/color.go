package core

// Color is a foreground color for a screen cell.
// The platform maps it to an ANSI 256-color code.
type Color uint8

// Palette. Piece colors follow the usual guideline colors per tetromino.
const (
	ColorDefault Color = iota
	ColorCyan          // I
	ColorYellow        // O
	ColorMagenta       // T
	ColorOrange        // L
	ColorBlue          // J
	ColorGreen         // S
	ColorRed           // Z
	ColorGray          // Well border, dimmed text
	ColorWhite
	ColorBrightWhite
)

// ANSI256 returns the terminal color code, or "" for the terminal default.
func (c Color) ANSI256() string {
	switch c {
	case ColorCyan:
		return "51"
	case ColorYellow:
		return "226"
	case ColorMagenta:
		return "165"
	case ColorOrange:
		return "208"
	case ColorBlue:
		return "33"
	case ColorGreen:
		return "46"
	case ColorRed:
		return "196"
	case ColorGray:
		return "244"
	case ColorWhite:
		return "252"
	case ColorBrightWhite:
		return "231"
	default:
		return ""
	}
}
