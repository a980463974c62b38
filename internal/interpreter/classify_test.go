package interpreter

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{in: "画直线 (0,0) 到 (10,10)", want: KindDrawLine},
		{in: "画圆 中心(0,0) 半径50", want: KindDrawCircle},
		{in: "绘制圆弧 (0,0) 半径30", want: KindDrawArc},
		{in: "画矩形 (0,0) (40,20)", want: KindDrawRectangle},
		{in: "画正方形 (0,0)", want: KindDrawRectangle},
		{in: "绘制多段线 (0,0) (10,0) (10,10)", want: KindDrawPolyline},
		{in: "添加文本 \"你好\" (5,5)", want: KindDrawText},
		{in: "画填充 (0,0) (10,0) (10,10)", want: KindDrawHatch},
		{in: "画墙 (0,0) (100,0) 宽度20", want: KindDrawWall},
		{in: "添加尺寸标注 (0,0) (50,0)", want: KindAddDimension},
		{in: "draw line from (0,0) to (10,10)", want: KindDrawLine},
		{in: "create circle at (0,0) radius 25", want: KindDrawCircle},
		{in: "新建图层 名称'轴线'", want: KindCreateLayer},
		{in: "create layer named 'axes'", want: KindCreateLayer},
		{in: "标注 (0,0) (50,0)", want: KindAddDimension},
		{in: "保存", want: KindSave},
		{in: "save drawing", want: KindSave},
		{in: "你好世界", want: KindUnknown},
		{in: "", want: KindUnknown},
	}
	for _, tc := range tests {
		if got := classify(normaliseCommand(tc.in)); got != tc.want {
			t.Fatalf("classify(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

// A draw verb paired with a shape wins over the save special case even when
// the command also mentions saving.
func TestClassifyDrawBeatsSave(t *testing.T) {
	if got := classify(normaliseCommand("画直线 (0,0) (10,10) 并保存")); got != KindDrawLine {
		t.Fatalf("classify=%q want=%q", got, KindDrawLine)
	}
}

// Specific shape phrases shadow the shorter ones they contain.
func TestClassifyShapeSpecificity(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{in: "画圆弧 (0,0)", want: KindDrawArc},
		{in: "画多段线 (0,0) (1,1)", want: KindDrawPolyline},
		{in: "draw polyline (0,0) (1,1)", want: KindDrawPolyline},
	}
	for _, tc := range tests {
		if got := classify(normaliseCommand(tc.in)); got != tc.want {
			t.Fatalf("classify(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestClassifyFuzzyLatin(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{in: "drw circl (0,0)", want: KindDrawCircle},
		{in: "creat line (0,0) (1,1)", want: KindDrawLine},
		{in: "sav", want: KindSave},
		{in: "xyzzy plugh", want: KindUnknown},
	}
	for _, tc := range tests {
		if got := classify(normaliseCommand(tc.in)); got != tc.want {
			t.Fatalf("classify(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestLevenshteinLimit(t *testing.T) {
	tests := []struct {
		length int
		want   int
	}{
		{length: 3, want: 1},
		{length: 4, want: 1},
		{length: 5, want: 2},
		{length: 8, want: 2},
		{length: 9, want: 3},
	}
	for _, tc := range tests {
		if got := levenshteinLimit(tc.length); got != tc.want {
			t.Fatalf("levenshteinLimit(%d)=%d want=%d", tc.length, got, tc.want)
		}
	}
}
