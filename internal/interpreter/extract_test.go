package interpreter

import "testing"

func TestExtractCoordinatesOrderAndLift(t *testing.T) {
	tests := []struct {
		in   string
		want []Coordinate
	}{
		{in: "画直线 (0,0) 到 (10,10)", want: []Coordinate{{0, 0, 0}, {10, 10, 0}}},
		{in: "(1,2,3) (4,5)", want: []Coordinate{{1, 2, 3}, {4, 5, 0}}},
		{in: "从 -5,-2.5 到 7.25,0", want: []Coordinate{{-5, -2.5, 0}, {7.25, 0, 0}}},
		{in: "( 3 , 4 )", want: []Coordinate{{3, 4, 0}}},
		{in: "没有坐标", want: nil},
	}
	for _, tc := range tests {
		got := extractCoordinates(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("extractCoordinates(%q)=%v want=%v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("extractCoordinates(%q)[%d]=%v want=%v", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestExtractNumbersSkipsCoordinateComponents(t *testing.T) {
	got := extractNumbers("画圆 (0,0) 50")
	if len(got) != 1 || got[0] != 50 {
		t.Fatalf("expected [50], got %v", got)
	}
}

func TestExtractNumbersOrder(t *testing.T) {
	got := extractNumbers("半径25 高度3.5 余量-2")
	want := []float64{25, 3.5, -2}
	if len(got) != len(want) {
		t.Fatalf("extractNumbers=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("extractNumbers[%d]=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestExtractNamedParameter(t *testing.T) {
	tests := []struct {
		in    string
		wantV float64
		ok    bool
	}{
		{in: "画圆 半径50", wantV: 50, ok: true},
		{in: "画圆 半径 = 12.5", wantV: 12.5, ok: true},
		{in: "画圆 (0,0)", ok: false},
		// First synonym occurrence wins.
		{in: "半径10 radius 20", wantV: 10, ok: true},
	}
	for _, tc := range tests {
		v, ok := extractNamedParameter(tc.in, radiusRE)
		if ok != tc.ok || (ok && v != tc.wantV) {
			t.Fatalf("extractNamedParameter(%q)=(%v,%v) want=(%v,%v)", tc.in, v, ok, tc.wantV, tc.ok)
		}
	}
}

func TestExtractQuoted(t *testing.T) {
	if s, ok := extractQuoted(`添加文本 "你好, CAD"`); !ok || s != "你好, CAD" {
		t.Fatalf("double quotes: got (%q,%v)", s, ok)
	}
	if s, ok := extractQuoted("名称'轴线'"); !ok || s != "轴线" {
		t.Fatalf("single quotes: got (%q,%v)", s, ok)
	}
	if _, ok := extractQuoted("无引号"); ok {
		t.Fatal("expected no quoted substring")
	}
}

func TestNormaliseCommand(t *testing.T) {
	if got := normaliseCommand("  Draw LINE (0,0)  "); got != "draw line (0,0)" {
		t.Fatalf("normaliseCommand=%q", got)
	}
}
