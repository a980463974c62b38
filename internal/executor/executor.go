// Package executor turns command descriptors into drawing-primitive calls on
// a raster canvas. It owns the canvas, the layer registry and the color/
// line-weight policy; it does no text analysis of its own.
package executor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/appengine-ltd/cadtalk/internal/interpreter"
)

// Options configures the canvas the executor draws on.
type Options struct {
	Width      int
	Height     int
	Scale      float64
	Margin     int
	Background int // AutoCAD color index
	LineWeight int // hundredths of a millimetre, must be in validLineWeights
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 1280
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	if o.Background == 0 {
		o.Background = 250
	}
	return o
}

// Entity records one primitive placed on the canvas.
type Entity struct {
	ID    string
	Kind  interpreter.Kind
	Layer string
}

// Result reports the outcome of applying one descriptor.
type Result struct {
	OK       bool
	Kind     interpreter.Kind
	EntityID string
	Message  string
}

// Executor applies descriptors to a canvas. It is not safe for concurrent
// use; callers serialise Apply the same way a single drafting document
// serialises edits.
type Executor struct {
	opts     Options
	view     view
	canvas   *canvas
	layers   *layerTable
	stroke   int32
	entities []Entity
	log      *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = opts.withDefaults()
	weight := validateLineWeight(opts.LineWeight)
	if weight != opts.LineWeight {
		logger.Warn("invalid line weight, using 0", zap.Int("line_weight", opts.LineWeight))
	}
	e := &Executor{
		opts:   opts,
		view:   newView(opts.Height, opts.Margin, opts.Scale),
		layers: newLayerTable(),
		stroke: strokePixels(weight),
		log:    logger,
	}
	e.canvas = newCanvas(opts.Width, opts.Height, colorForIndex(opts.Background))
	return e
}

// Close releases the canvas. The executor must not be used afterwards.
func (e *Executor) Close() {
	e.canvas.unload()
}

// Entities returns the primitives placed so far, in drawing order.
func (e *Executor) Entities() []Entity {
	out := make([]Entity, len(e.entities))
	copy(out, e.entities)
	return out
}

// Layers returns the layer names in creation order.
func (e *Executor) Layers() []string {
	return e.layers.names()
}

// Apply executes one descriptor. Every descriptor variant is handled;
// Error and Unknown are reported back without touching the canvas.
func (e *Executor) Apply(cmd interpreter.Command) Result {
	switch c := cmd.(type) {
	case interpreter.DrawLine:
		e.drawLine(c.Start, c.End, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.DrawCircle:
		e.drawCircle(c.Center, c.Radius, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.DrawArc:
		e.drawArc(c.Center, c.Radius, c.StartAngle, c.EndAngle, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.DrawRectangle:
		e.drawRectangle(c.Corner1, c.Corner2, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.DrawPolyline:
		e.drawPolyline(c.Points, c.Closed, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.DrawText:
		e.drawText(c.Position, c.Text, c.Height, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.DrawHatch:
		e.drawHatch(c.Points, c.PatternName, c.Scale, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.DrawWall:
		e.drawWall(c.Start, c.End, c.Width, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.AddDimension:
		e.drawDimension(c.Start, c.End, c.TextPosition, e.strokeColor())
		return e.placed(c.Kind())
	case interpreter.CreateLayer:
		layer := e.layers.create(c.LayerName, c.Color)
		e.layers.current = layer.Name
		e.log.Info("layer ready",
			zap.String("layer", layer.Name),
			zap.Int("color", layer.Color))
		return Result{OK: true, Kind: c.Kind(), Message: layer.Name}
	case interpreter.Save:
		if err := e.save(c.FilePath); err != nil {
			e.log.Error("save failed", zap.String("path", c.FilePath), zap.Error(err))
			return Result{Kind: c.Kind(), Message: err.Error()}
		}
		e.log.Info("drawing saved", zap.String("path", c.FilePath))
		return Result{OK: true, Kind: c.Kind(), Message: c.FilePath}
	case interpreter.Unknown:
		return Result{Kind: c.Kind(), Message: "no actionable intent: " + c.OriginalCommand}
	case interpreter.Error:
		return Result{Kind: c.Kind(), Message: c.Message}
	default:
		return Result{Kind: cmd.Kind(), Message: fmt.Sprintf("unsupported descriptor %T", cmd)}
	}
}

func (e *Executor) placed(kind interpreter.Kind) Result {
	entity := Entity{
		ID:    uuid.NewString(),
		Kind:  kind,
		Layer: e.layers.current,
	}
	e.entities = append(e.entities, entity)
	e.log.Debug("entity placed",
		zap.String("id", entity.ID),
		zap.String("kind", string(kind)),
		zap.String("layer", entity.Layer))
	return Result{OK: true, Kind: kind, EntityID: entity.ID}
}

func (e *Executor) strokeColor() RGB {
	return colorForIndex(e.layers.currentLayer().Color)
}

func (e *Executor) save(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	// The canvas exports raster formats only; non-raster extensions (the
	// .dwg the drafting side would use) are exported as PNG alongside the
	// requested name.
	switch filepath.Ext(path) {
	case ".png", ".bmp", ".jpg", ".tga":
	default:
		path += ".png"
	}
	if err := e.canvas.export(path); err != nil {
		return fmt.Errorf("export canvas: %w", err)
	}
	return nil
}
