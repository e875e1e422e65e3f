package virtualterm

import "image/color"

// Color is a color id expressed as its SGR parameter.
// Foreground ids are 30-37, 39 and 90-97; background ids are 40-47, 49 and 100-107.
type Color uint8

const (
	FgBlack   Color = 30
	FgRed     Color = 31
	FgGreen   Color = 32
	FgYellow  Color = 33
	FgBlue    Color = 34
	FgMagenta Color = 35
	FgCyan    Color = 36
	FgWhite   Color = 37
	FgDefault Color = 39

	BgBlack   Color = 40
	BgRed     Color = 41
	BgGreen   Color = 42
	BgYellow  Color = 43
	BgBlue    Color = 44
	BgMagenta Color = 45
	BgCyan    Color = 46
	BgWhite   Color = 47
	BgDefault Color = 49

	FgBrightBlack   Color = 90 // usually rendered as gray
	FgBrightRed     Color = 91
	FgBrightGreen   Color = 92
	FgBrightYellow  Color = 93
	FgBrightBlue    Color = 94
	FgBrightMagenta Color = 95
	FgBrightCyan    Color = 96
	FgBrightWhite   Color = 97

	BgBrightBlack   Color = 100
	BgBrightRed     Color = 101
	BgBrightGreen   Color = 102
	BgBrightYellow  Color = 103
	BgBrightBlue    Color = 104
	BgBrightMagenta Color = 105
	BgBrightCyan    Color = 106
	BgBrightWhite   Color = 107
)

// IsForeground returns true for foreground color ids.
func (c Color) IsForeground() bool {
	return (c >= 30 && c <= 37) || c == FgDefault || (c >= 90 && c <= 97)
}

// IsBackground returns true for background color ids.
func (c Color) IsBackground() bool {
	return (c >= 40 && c <= 47) || c == BgDefault || (c >= 100 && c <= 107)
}

// IsDefault returns true for FgDefault and BgDefault.
func (c Color) IsDefault() bool {
	return c == FgDefault || c == BgDefault
}

// PaletteIndex returns the 16-color palette index of the color (0-7 normal, 8-15 bright).
// Returns -1 for the default colors and for ids outside the known ranges.
func (c Color) PaletteIndex() int {
	switch {
	case c >= 30 && c <= 37:
		return int(c - 30)
	case c >= 40 && c <= 47:
		return int(c - 40)
	case c >= 90 && c <= 97:
		return int(c-90) + 8
	case c >= 100 && c <= 107:
		return int(c-100) + 8
	default:
		return -1
	}
}

// ForegroundFromIndex maps a 16-color palette index to its foreground id.
// Out of range indices map to FgDefault.
func ForegroundFromIndex(i int) Color {
	switch {
	case i >= 0 && i < 8:
		return Color(30 + i)
	case i >= 8 && i < 16:
		return Color(90 + i - 8)
	default:
		return FgDefault
	}
}

// BackgroundFromIndex maps a 16-color palette index to its background id.
// Out of range indices map to BgDefault.
func BackgroundFromIndex(i int) Color {
	switch {
	case i >= 0 && i < 8:
		return Color(40 + i)
	case i >= 8 && i < 16:
		return Color(100 + i - 8)
	default:
		return BgDefault
	}
}

// DefaultPalette holds the RGB values of the 16 standard ANSI colors.
var DefaultPalette = [16]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// resolveColor converts a color id to RGBA using the palette and defaults.
func resolveColor(c Color, palette *[16]color.RGBA, defaultFG, defaultBG color.RGBA) color.RGBA {
	if i := c.PaletteIndex(); i >= 0 {
		return palette[i]
	}
	if c.IsBackground() {
		return defaultBG
	}
	return defaultFG
}
