package executor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/cadtalk/internal/interpreter"
)

func testExecutor(t *testing.T) *Executor {
	t.Helper()
	e := New(Options{Width: 200, Height: 200, Margin: 10}, nil)
	t.Cleanup(e.Close)
	return e
}

func TestApplyPlacesEntities(t *testing.T) {
	e := testExecutor(t)

	commands := []interpreter.Command{
		interpreter.DrawLine{Start: interpreter.Coordinate{}, End: interpreter.Coordinate{X: 50, Y: 50}},
		interpreter.DrawCircle{Center: interpreter.Coordinate{X: 50, Y: 50}, Radius: 20},
		interpreter.DrawArc{Center: interpreter.Coordinate{X: 50, Y: 50}, Radius: 20, StartAngle: 0, EndAngle: 90},
		interpreter.DrawRectangle{Corner1: interpreter.Coordinate{}, Corner2: interpreter.Coordinate{X: 40, Y: 20}},
		interpreter.DrawPolyline{Points: []interpreter.Coordinate{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}, {X: 10, Y: 10, Z: 0}}, Closed: true},
		interpreter.DrawText{Position: interpreter.Coordinate{X: 5, Y: 5}, Text: "hello", Height: 2.5},
		interpreter.DrawHatch{Points: []interpreter.Coordinate{{X: 0, Y: 0, Z: 0}, {X: 30, Y: 0, Z: 0}, {X: 30, Y: 30, Z: 0}}, PatternName: "SOLID", Scale: 1},
		interpreter.DrawWall{Start: interpreter.Coordinate{}, End: interpreter.Coordinate{X: 80}, Width: 10},
		interpreter.AddDimension{Start: interpreter.Coordinate{}, End: interpreter.Coordinate{X: 50}, TextPosition: interpreter.Coordinate{X: 25, Y: 10}},
	}
	for _, cmd := range commands {
		res := e.Apply(cmd)
		if !res.OK {
			t.Fatalf("Apply(%s) not OK: %s", cmd.Kind(), res.Message)
		}
		if res.EntityID == "" {
			t.Fatalf("Apply(%s) returned no entity id", cmd.Kind())
		}
	}

	entities := e.Entities()
	if len(entities) != len(commands) {
		t.Fatalf("entities=%d want=%d", len(entities), len(commands))
	}
	for i, entity := range entities {
		if entity.Kind != commands[i].Kind() {
			t.Fatalf("entity[%d].Kind=%s want=%s", i, entity.Kind, commands[i].Kind())
		}
		if entity.Layer != "0" {
			t.Fatalf("entity[%d].Layer=%q want=%q", i, entity.Layer, "0")
		}
	}
}

func TestNewAppliesLineWeightAsStroke(t *testing.T) {
	tests := []struct {
		weight int
		want   int32
	}{
		{weight: 0, want: 1},
		{weight: 100, want: 3},
		// Values outside the accepted list fall back to the hairline.
		{weight: 26, want: 1},
		{weight: -5, want: 1},
	}
	for _, tc := range tests {
		e := New(Options{Width: 100, Height: 100, LineWeight: tc.weight}, nil)
		if e.stroke != tc.want {
			e.Close()
			t.Fatalf("LineWeight %d: stroke=%d want=%d", tc.weight, e.stroke, tc.want)
		}
		e.Close()
	}
}

func TestApplyCreateLayerSwitchesCurrent(t *testing.T) {
	e := testExecutor(t)

	res := e.Apply(interpreter.CreateLayer{LayerName: "轴线", Color: 1})
	if !res.OK || res.Message != "轴线" {
		t.Fatalf("CreateLayer result=%+v", res)
	}

	res = e.Apply(interpreter.DrawLine{Start: interpreter.Coordinate{}, End: interpreter.Coordinate{X: 10, Y: 10}})
	if !res.OK {
		t.Fatalf("DrawLine not OK: %s", res.Message)
	}
	entities := e.Entities()
	if entities[len(entities)-1].Layer != "轴线" {
		t.Fatalf("entity layer=%q want=%q", entities[len(entities)-1].Layer, "轴线")
	}

	layers := e.Layers()
	if len(layers) != 2 || layers[1] != "轴线" {
		t.Fatalf("layers=%v", layers)
	}
}

func TestApplyUnknownAndErrorTouchNothing(t *testing.T) {
	e := testExecutor(t)

	res := e.Apply(interpreter.Unknown{OriginalCommand: "今天天气不错"})
	if res.OK || res.Message == "" {
		t.Fatalf("Unknown result=%+v", res)
	}
	res = e.Apply(interpreter.Error{Message: "绘制多段线需要至少两个坐标点"})
	if res.OK || res.Message != "绘制多段线需要至少两个坐标点" {
		t.Fatalf("Error result=%+v", res)
	}
	if len(e.Entities()) != 0 {
		t.Fatalf("entities=%v want none", e.Entities())
	}
}

func TestApplySaveExportsPNGForNonRasterExtensions(t *testing.T) {
	e := testExecutor(t)

	path := filepath.Join(t.TempDir(), "plans", "site.dwg")
	res := e.Apply(interpreter.Save{FilePath: path})
	if !res.OK {
		t.Fatalf("Save not OK: %s", res.Message)
	}
	if _, err := os.Stat(path + ".png"); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
}

func TestApplySaveRasterPath(t *testing.T) {
	e := testExecutor(t)

	path := filepath.Join(t.TempDir(), "drawing.png")
	res := e.Apply(interpreter.Save{FilePath: path})
	if !res.OK {
		t.Fatalf("Save not OK: %s", res.Message)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("exported file missing: %v", err)
	}
}
