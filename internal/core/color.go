package core

// Color is a palette entry for a screen cell or a world rectangle.
// The terminal renderer maps it to an ANSI 256 code and the PNG renderer
// to an RGB value.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorBrightRed
	ColorBrightWhite
)

// Palette roles used by the knight game.
const (
	ColorPlayer   = ColorRed
	ColorPlatform = ColorGreen
	ColorGoal     = ColorYellow
	ColorBackdrop = ColorDarkGray
	ColorText     = ColorBrightWhite
)
