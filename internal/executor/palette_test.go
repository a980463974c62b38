package executor

import "testing"

func TestColorForIndexNamed(t *testing.T) {
	tests := []struct {
		index int
		want  RGB
	}{
		{index: 1, want: RGB{255, 0, 0}},
		{index: 5, want: RGB{0, 0, 255}},
		{index: 7, want: RGB{255, 255, 255}},
		{index: 9, want: RGB{192, 192, 192}},
		{index: 250, want: RGB{51, 51, 51}},
	}
	for _, tc := range tests {
		if got := colorForIndex(tc.index); got != tc.want {
			t.Fatalf("colorForIndex(%d)=%v want=%v", tc.index, got, tc.want)
		}
	}
}

func TestColorForIndexGrayscaleRamp(t *testing.T) {
	got := colorForIndex(100)
	want := RGB{205, 205, 205}
	if got != want {
		t.Fatalf("colorForIndex(100)=%v want=%v", got, want)
	}
}

func TestColorForIndexOutOfRange(t *testing.T) {
	white := RGB{255, 255, 255}
	for _, index := range []int{0, -3, 256, 1000} {
		if got := colorForIndex(index); got != white {
			t.Fatalf("colorForIndex(%d)=%v want=%v", index, got, white)
		}
	}
}

func TestValidateLineWeight(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 0},
		{in: 25, want: 25},
		{in: 211, want: 211},
		{in: 26, want: 0},
		{in: -5, want: 0},
	}
	for _, tc := range tests {
		if got := validateLineWeight(tc.in); got != tc.want {
			t.Fatalf("validateLineWeight(%d)=%d want=%d", tc.in, got, tc.want)
		}
	}
}

func TestStrokePixels(t *testing.T) {
	tests := []struct {
		weight int
		want   int32
	}{
		{weight: 0, want: 1},
		{weight: 25, want: 1},
		{weight: 50, want: 2},
		{weight: 100, want: 3},
		{weight: 211, want: 5},
	}
	for _, tc := range tests {
		if got := strokePixels(tc.weight); got != tc.want {
			t.Fatalf("strokePixels(%d)=%d want=%d", tc.weight, got, tc.want)
		}
	}
}
