package core

// Color is the palette index of a screen cell. The platform maps each
// index to a terminal color; the core never deals with escape codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// Valid reports whether c is a palette entry.
func (c Color) Valid() bool { return c < colorCount }
