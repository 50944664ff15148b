package core

// Color identifies a foreground color for a screen cell.
// The platform layer maps these to terminal styles; the simulation
// only picks from the palette.
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
	ColorGray
	ColorBrightWhite
)
