package executor

import (
	"github.com/appengine-ltd/cadtalk/internal/interpreter"
)

// view maps world coordinates (y up) onto canvas pixels (y down). The Z
// component of a coordinate is ignored: the canvas is a plan view.
type view struct {
	scale  float64
	margin float64
	height float64
}

func newView(canvasHeight, margin int, scale float64) view {
	if scale <= 0 {
		scale = 1
	}
	return view{scale: scale, margin: float64(margin), height: float64(canvasHeight)}
}

func (v view) pixel(c interpreter.Coordinate) (int32, int32) {
	x := v.margin + c.X*v.scale
	y := v.height - (v.margin + c.Y*v.scale)
	return int32(x + 0.5), int32(y + 0.5)
}

// pixelF is the float form used by the scanline hatch fill, which needs
// sub-pixel edge intersections before rounding.
func (v view) pixelF(c interpreter.Coordinate) (float64, float64) {
	return v.margin + c.X*v.scale, v.height - (v.margin + c.Y*v.scale)
}
