package core

// Color is a foreground color for a screen cell.
// The terminal renderer maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWhite
	ColorGray
	ColorYellow
	ColorBlue      // Deep water
	ColorCyan      // Shallow water, bubbles
	ColorTeal      // Seaweed
	ColorMagenta   // Jellyfish
	ColorPink      // Buttons
	ColorOrange    // Shark fins
	ColorBrightRed // Game over title
)
