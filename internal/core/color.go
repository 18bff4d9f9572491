package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
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

// ColorFromRGB quantizes an RGB triple in [0, 1] to the nearest predefined
// color. The simulation describes sprites with free rgb values; the terminal
// renderer reduces them to the palette above. Emissive sprites map to the
// bright variants.
func ColorFromRGB(r, g, b float64, emissive bool) Color {
	type entry struct {
		c       Color
		r, g, b float64
	}
	palette := []entry{
		{ColorRed, 0.8, 0.1, 0.1},
		{ColorGreen, 0.1, 0.7, 0.1},
		{ColorYellow, 0.8, 0.8, 0.1},
		{ColorBlue, 0.2, 0.3, 0.9},
		{ColorMagenta, 0.8, 0.2, 0.8},
		{ColorCyan, 0.2, 0.8, 0.8},
		{ColorWhite, 0.9, 0.9, 0.9},
		{ColorOrange, 1.0, 0.55, 0.1},
		{ColorGray, 0.5, 0.5, 0.5},
	}

	best := ColorDefault
	bestDist := 1e9
	for _, e := range palette {
		dr, dg, db := r-e.r, g-e.g, b-e.b
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = e.c
		}
	}

	if emissive {
		switch best {
		case ColorRed:
			return ColorBrightRed
		case ColorGreen:
			return ColorBrightGreen
		case ColorYellow:
			return ColorBrightYellow
		case ColorBlue:
			return ColorBrightBlue
		case ColorMagenta:
			return ColorBrightMagenta
		case ColorCyan:
			return ColorBrightCyan
		case ColorWhite, ColorGray:
			return ColorBrightWhite
		}
	}
	return best
}
