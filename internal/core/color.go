package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Palette used by the play field.
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
	ColorCoral     // player body (#FF6B6B)
	ColorBrown     // platform soil (#8B4513)
	ColorLime      // platform grass (#32CD32)
	ColorGold      // crystals (#FFD700)
	ColorDarkRed   // spiky enemies (#8B0000)
	ColorIndigo    // ghost enemies (#4B0082)
	ColorDarkGreen // blob enemies (#006400)
)
