package executor

import (
	"errors"
	"fmt"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/cadtalk/internal/interpreter"
)

// canvas wraps the raylib image the executor draws on. All raylib calls
// live here; the rest of the package works in world coordinates and RGB.
type canvas struct {
	img *rl.Image
}

func newCanvas(width, height int, bg RGB) *canvas {
	return &canvas{img: rl.GenImageColor(width, height, rl.NewColor(bg.R, bg.G, bg.B, 255))}
}

func (c *canvas) unload() {
	if c.img != nil {
		rl.UnloadImage(c.img)
		c.img = nil
	}
}

func (c *canvas) line(x1, y1, x2, y2, thick int32, col RGB) {
	rlCol := rl.NewColor(col.R, col.G, col.B, 255)
	if thick <= 1 {
		rl.ImageDrawLine(c.img, x1, y1, x2, y2, rlCol)
		return
	}
	// Parallel lines offset across the dominant axis.
	horizontal := abs32(x2-x1) >= abs32(y2-y1)
	for d := -(thick - 1) / 2; d <= thick/2; d++ {
		if horizontal {
			rl.ImageDrawLine(c.img, x1, y1+d, x2, y2+d, rlCol)
		} else {
			rl.ImageDrawLine(c.img, x1+d, y1, x2+d, y2, rlCol)
		}
	}
}

func (c *canvas) circleLines(cx, cy, radius, thick int32, col RGB) {
	rlCol := rl.NewColor(col.R, col.G, col.B, 255)
	for d := -(thick - 1) / 2; d <= thick/2; d++ {
		if r := radius + d; r > 0 {
			rl.ImageDrawCircleLines(c.img, cx, cy, r, rlCol)
		}
	}
}

func (c *canvas) rectLines(x, y, w, h, thick int32, col RGB) {
	rl.ImageDrawRectangleLines(c.img, rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), int(thick),
		rl.NewColor(col.R, col.G, col.B, 255))
}

func (c *canvas) text(x, y int32, s string, fontSize int32, col RGB) {
	rl.ImageDrawText(c.img, x, y, s, fontSize, rl.NewColor(col.R, col.G, col.B, 255))
}

func (c *canvas) export(path string) error {
	if !rl.ExportImage(*c.img, path) {
		return errors.New("image export rejected: " + path)
	}
	return nil
}

func (e *Executor) drawLine(start, end interpreter.Coordinate, col RGB) {
	x1, y1 := e.view.pixel(start)
	x2, y2 := e.view.pixel(end)
	e.canvas.line(x1, y1, x2, y2, e.stroke, col)
}

func (e *Executor) drawCircle(center interpreter.Coordinate, radius float64, col RGB) {
	cx, cy := e.view.pixel(center)
	e.canvas.circleLines(cx, cy, int32(radius*e.view.scale+0.5), e.stroke, col)
}

// drawArc approximates the arc with line segments. Angles arrive in degrees
// and are converted to radians here, at the executor boundary.
func (e *Executor) drawArc(center interpreter.Coordinate, radius, startDeg, endDeg float64, col RGB) {
	sweep := endDeg - startDeg
	segments := int(math.Abs(sweep) / 5)
	if segments < 8 {
		segments = 8
	}
	prevX, prevY := e.view.pixel(pointOnCircle(center, radius, startDeg))
	for i := 1; i <= segments; i++ {
		deg := startDeg + sweep*float64(i)/float64(segments)
		x, y := e.view.pixel(pointOnCircle(center, radius, deg))
		e.canvas.line(prevX, prevY, x, y, e.stroke, col)
		prevX, prevY = x, y
	}
}

func pointOnCircle(center interpreter.Coordinate, radius, deg float64) interpreter.Coordinate {
	rad := deg * math.Pi / 180
	return interpreter.Coordinate{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
		Z: center.Z,
	}
}

func (e *Executor) drawRectangle(corner1, corner2 interpreter.Coordinate, col RGB) {
	x1, y1 := e.view.pixel(corner1)
	x2, y2 := e.view.pixel(corner2)
	x := min32(x1, x2)
	y := min32(y1, y2)
	e.canvas.rectLines(x, y, abs32(x2-x1), abs32(y2-y1), e.stroke, col)
}

func (e *Executor) drawPolyline(points []interpreter.Coordinate, closed bool, col RGB) {
	for i := 1; i < len(points); i++ {
		e.drawLine(points[i-1], points[i], col)
	}
	if closed && len(points) > 2 {
		e.drawLine(points[len(points)-1], points[0], col)
	}
}

// drawText renders unrotated: the raster backend has no rotated-text
// primitive, so rotation is accepted and dropped.
func (e *Executor) drawText(pos interpreter.Coordinate, text string, height float64, col RGB) {
	x, y := e.view.pixel(pos)
	size := int32(height * e.view.scale)
	if size < 10 {
		size = 10
	}
	e.canvas.text(x, y-size, text, size, col)
}

func (e *Executor) drawHatch(points []interpreter.Coordinate, pattern string, scale float64, col RGB) {
	e.drawPolyline(points, true, col)
	if pattern == "SOLID" {
		e.fillPolygon(points, col)
		return
	}
	// Named patterns render as evenly spaced horizontal hatch lines inside
	// the boundary; spacing follows the hatch scale.
	spacing := 6 * scale * e.view.scale
	if spacing < 2 {
		spacing = 2
	}
	e.fillPolygonSpaced(points, col, spacing)
}

func (e *Executor) fillPolygon(points []interpreter.Coordinate, col RGB) {
	e.fillPolygonSpaced(points, col, 1)
}

// fillPolygonSpaced runs a scanline fill over the boundary polygon, drawing
// a horizontal span wherever a scanline crosses into the polygon interior.
func (e *Executor) fillPolygonSpaced(points []interpreter.Coordinate, col RGB, spacing float64) {
	if len(points) < 3 {
		return
	}
	type pt struct{ x, y float64 }
	px := make([]pt, len(points))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		x, y := e.view.pixelF(p)
		px[i] = pt{x, y}
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	for y := minY; y <= maxY; y += spacing {
		scan := y + 0.5
		var xs []float64
		for i := range px {
			a := px[i]
			b := px[(i+1)%len(px)]
			if (a.y <= scan) == (b.y <= scan) {
				continue
			}
			t := (scan - a.y) / (b.y - a.y)
			xs = append(xs, a.x+t*(b.x-a.x))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			// Fill spans stay hairline regardless of the stroke weight.
			e.canvas.line(int32(xs[i]), int32(scan), int32(xs[i+1]), int32(scan), 1, col)
		}
	}
}

// drawWall draws the wall outline: two faces parallel to the centreline,
// capped at both ends.
func (e *Executor) drawWall(start, end interpreter.Coordinate, width float64, col RGB) {
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit perpendicular, scaled to half the wall width.
	ox := -dy / length * width / 2
	oy := dx / length * width / 2
	corners := []interpreter.Coordinate{
		{X: start.X + ox, Y: start.Y + oy, Z: start.Z},
		{X: end.X + ox, Y: end.Y + oy, Z: end.Z},
		{X: end.X - ox, Y: end.Y - oy, Z: end.Z},
		{X: start.X - ox, Y: start.Y - oy, Z: start.Z},
	}
	e.drawPolyline(corners, true, col)
}

func (e *Executor) drawDimension(start, end, textPos interpreter.Coordinate, col RGB) {
	e.drawLine(start, end, col)

	// Extension ticks perpendicular to the measured segment.
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length > 0 {
		tick := 4 / e.view.scale
		ox := -dy / length * tick
		oy := dx / length * tick
		for _, p := range []interpreter.Coordinate{start, end} {
			e.drawLine(
				interpreter.Coordinate{X: p.X + ox, Y: p.Y + oy, Z: p.Z},
				interpreter.Coordinate{X: p.X - ox, Y: p.Y - oy, Z: p.Z},
				col,
			)
		}
	}

	x, y := e.view.pixel(textPos)
	e.canvas.text(x, y, fmt.Sprintf("%.1f", length), 12, col)
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
