package interpreter

import (
	"encoding/json"
	"fmt"
)

// Kind is the canonical intent tag a command text classifies into.
type Kind string

const (
	KindDrawLine      Kind = "draw_line"
	KindDrawCircle    Kind = "draw_circle"
	KindDrawArc       Kind = "draw_arc"
	KindDrawRectangle Kind = "draw_rectangle"
	KindDrawPolyline  Kind = "draw_polyline"
	KindDrawText      Kind = "draw_text"
	KindDrawHatch     Kind = "draw_hatch"
	KindDrawWall      Kind = "draw_wall"
	KindAddDimension  Kind = "add_dimension"
	KindCreateLayer   Kind = "create_layer"
	KindSave          Kind = "save"
	KindUnknown       Kind = "unknown"
	KindError         Kind = "error"
)

// Coordinate is a point in drawing space. Two-element input coordinates are
// lifted to three elements with Z = 0 before they reach any builder.
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.X, c.Y, c.Z})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	switch len(parts) {
	case 2:
		*c = Coordinate{X: parts[0], Y: parts[1]}
	case 3:
		*c = Coordinate{X: parts[0], Y: parts[1], Z: parts[2]}
	default:
		return fmt.Errorf("coordinate needs 2 or 3 elements, got %d", len(parts))
	}
	return nil
}

// Command is the fully-populated descriptor produced for one command text.
// Every variant a builder can return implements it; consumers switch on the
// concrete type and must handle Unknown and Error alongside the drawing
// variants.
type Command interface {
	Kind() Kind
}

type DrawLine struct {
	Start Coordinate `json:"start_point"`
	End   Coordinate `json:"end_point"`
	// Note records that defaults were substituted for missing coordinates.
	Note string `json:"note,omitempty"`
}

type DrawCircle struct {
	Center Coordinate `json:"center"`
	Radius float64    `json:"radius"`
}

type DrawArc struct {
	Center Coordinate `json:"center"`
	Radius float64    `json:"radius"`
	// Angles are degrees; the executor converts to radians.
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
}

type DrawRectangle struct {
	Corner1 Coordinate `json:"corner1"`
	Corner2 Coordinate `json:"corner2"`
}

type DrawPolyline struct {
	Points []Coordinate `json:"points"`
	Closed bool         `json:"closed"`
}

type DrawText struct {
	Position Coordinate `json:"position"`
	Text     string     `json:"text"`
	Height   float64    `json:"height"`
	Rotation float64    `json:"rotation"`
}

type DrawHatch struct {
	Points      []Coordinate `json:"points"`
	PatternName string       `json:"pattern_name"`
	Scale       float64      `json:"scale"`
}

type DrawWall struct {
	Start Coordinate `json:"start_point"`
	End   Coordinate `json:"end_point"`
	Width float64    `json:"width"`
}

type AddDimension struct {
	Start        Coordinate `json:"start_point"`
	End          Coordinate `json:"end_point"`
	TextPosition Coordinate `json:"text_position"`
}

type CreateLayer struct {
	LayerName string `json:"layer_name"`
	Color     int    `json:"color"`
}

type Save struct {
	FilePath string `json:"file_path"`
}

// Unknown means no classification rule matched. It is not an error; it
// carries the original input so the caller can log or surface it.
type Unknown struct {
	OriginalCommand string `json:"original_command"`
}

// Error means the text matched an intent but lacked the structural minimum
// of data the builder requires.
type Error struct {
	Message string `json:"message"`
}

func (DrawLine) Kind() Kind      { return KindDrawLine }
func (DrawCircle) Kind() Kind    { return KindDrawCircle }
func (DrawArc) Kind() Kind       { return KindDrawArc }
func (DrawRectangle) Kind() Kind { return KindDrawRectangle }
func (DrawPolyline) Kind() Kind  { return KindDrawPolyline }
func (DrawText) Kind() Kind      { return KindDrawText }
func (DrawHatch) Kind() Kind     { return KindDrawHatch }
func (DrawWall) Kind() Kind      { return KindDrawWall }
func (AddDimension) Kind() Kind  { return KindAddDimension }
func (CreateLayer) Kind() Kind   { return KindCreateLayer }
func (Save) Kind() Kind          { return KindSave }
func (Unknown) Kind() Kind       { return KindUnknown }
func (Error) Kind() Kind         { return KindError }
