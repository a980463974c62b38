package executor

// RGB is a resolved display color for an AutoCAD color index.
type RGB struct {
	R, G, B uint8
}

// aciPalette covers every index the interpreter's color table can produce,
// plus the handful of standard indices commands mention numerically.
var aciPalette = map[int]RGB{
	1:   {255, 0, 0},     // red
	2:   {255, 255, 0},   // yellow
	3:   {0, 255, 0},     // green
	4:   {0, 255, 255},   // cyan
	5:   {0, 0, 255},     // blue
	6:   {255, 0, 255},   // magenta
	7:   {255, 255, 255}, // white
	8:   {128, 128, 128}, // gray
	9:   {192, 192, 192}, // light gray
	30:  {255, 127, 0},   // orange
	200: {189, 0, 255},   // purple
	250: {51, 51, 51},    // near-black
	251: {91, 60, 40},    // brown
}

// colorForIndex resolves an AutoCAD color index to RGB. Indices 1..255
// outside the named palette fall back to a grayscale ramp so numeric codes
// always render as something distinguishable; anything else renders white.
func colorForIndex(index int) RGB {
	if rgb, ok := aciPalette[index]; ok {
		return rgb
	}
	if index >= 1 && index <= 255 {
		v := uint8(255 - index/2)
		return RGB{v, v, v}
	}
	return aciPalette[7]
}
