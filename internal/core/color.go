package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
)

// Palette returns the color for block kind k, cycling through a fixed set.
func Palette(k int) Color {
	palette := [...]Color{
		ColorBrightRed,
		ColorBrightGreen,
		ColorBrightYellow,
		ColorBrightBlue,
		ColorBrightMagenta,
		ColorBrightCyan,
		ColorOrange,
		ColorWhite,
	}
	if k < 0 {
		return ColorDefault
	}
	return palette[k%len(palette)]
}
