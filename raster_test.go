package pixel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// painted returns the set of pixels holding c, as a row-major mask.
func painted(fb *FrameBuffers, c Color) []bool {
	mask := make([]bool, len(fb.Color))
	for i, p := range fb.Color {
		mask[i] = p == c
	}
	return mask
}

// rectMask returns a w×h surface mask covering [x0, x1) × [y0, y1).
func rectMask(w, h, x0, y0, x1, y1 int) []bool {
	mask := make([]bool, w*h)
	for y := max(y0, 0); y < min(y1, h); y++ {
		for x := max(x0, 0); x < min(x1, w); x++ {
			mask[x+y*w] = true
		}
	}
	return mask
}

func TestClip(t *testing.T) {
	r := NewRenderer(10, 10)
	tests := []struct {
		name       string
		x, y, w, h int
		want       clipSpan
		ok         bool
	}{
		{"inside", 2, 3, 4, 4, clipSpan{0, 0, 4, 4}, true},
		{"top-left overhang", -4, -4, 10, 10, clipSpan{4, 4, 10, 10}, true},
		{"bottom-right overhang", 8, 7, 5, 5, clipSpan{0, 0, 2, 3}, true},
		{"zero width", 0, 0, 0, 5, clipSpan{}, false},
		{"negative height", 0, 0, 5, -1, clipSpan{}, false},
		{"left of surface", -5, 0, 5, 5, clipSpan{}, false},
		{"below surface", 0, 10, 5, 5, clipSpan{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.clip(tt.x, tt.y, tt.w, tt.h)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(clipSpan{})); diff != "" {
				t.Errorf("span (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawBitmapClipRoundTrip(t *testing.T) {
	r := NewRenderer(10, 10)
	r.DrawBitmap(NewFilledBitmap(10, 10, Red), -4, -4)
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	want := rectMask(10, 10, 0, 0, 6, 6)
	if diff := cmp.Diff(want, painted(r.Buffers(), Red)); diff != "" {
		t.Errorf("painted mask (-want +got):\n%s", diff)
	}
}

func TestDrawBitmapSamplesSourceOffset(t *testing.T) {
	pixels := make([]Color, 4*4)
	for i := range pixels {
		pixels[i] = ARGB(0xFF, uint8(i), 0, 0)
	}
	b, err := NewBitmap(4, 4, pixels)
	if err != nil {
		t.Fatal(err)
	}
	r := NewRenderer(4, 4)
	r.DrawBitmap(b, -1, -2)
	if err := r.Flush(); err != nil {
		t.Fatal(err)
	}
	// Surface (0, 0) shows source (1, 2).
	if got, want := r.Buffers().At(0, 0), b.At(1, 2); got != want {
		t.Errorf("At(0, 0) = %#08x, want %#08x", got, want)
	}
}

func TestDrawRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       []bool
	}{
		{"inside", 1, 2, 3, 2, rectMask(8, 8, 1, 2, 4, 4)},
		{"overhang", -2, 6, 5, 5, rectMask(8, 8, 0, 6, 3, 8)},
		{"zero size", 3, 3, 0, 0, rectMask(8, 8, 0, 0, 0, 0)},
		{"negative size", 3, 3, -2, 4, rectMask(8, 8, 0, 0, 0, 0)},
		{"off surface", 8, 0, 4, 4, rectMask(8, 8, 0, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(8, 8)
			r.DrawRect(tt.x, tt.y, tt.w, tt.h, Blue)
			if diff := cmp.Diff(tt.want, painted(r.Buffers(), Blue)); diff != "" {
				t.Errorf("painted mask (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawRectStroke(t *testing.T) {
	r := NewRenderer(10, 10)
	r.DrawRectStroke(2, 2, 4, 4, Green, White)
	fb := r.Buffers()

	// Border on rows 2 and 6, columns 2 and 6, from 2 to 6 inclusive.
	border := make([]bool, 100)
	for i := 2; i <= 6; i++ {
		border[i+2*10] = true
		border[i+6*10] = true
		border[2+i*10] = true
		border[6+i*10] = true
	}
	if diff := cmp.Diff(border, painted(fb, White)); diff != "" {
		t.Errorf("stroke mask (-want +got):\n%s", diff)
	}

	fill := rectMask(10, 10, 3, 3, 6, 6)
	if diff := cmp.Diff(fill, painted(fb, Green)); diff != "" {
		t.Errorf("fill mask (-want +got):\n%s", diff)
	}
}

func TestDrawRectStrokeClipped(t *testing.T) {
	r := NewRenderer(6, 6)
	r.DrawRectStroke(-2, -2, 5, 5, Green, White) // must not panic
	fb := r.Buffers()

	// Only the bottom row (y=3) and right column (x=3) of the border land
	// on the surface.
	for i := 0; i <= 3; i++ {
		if got := fb.At(i, 3); got != White {
			t.Errorf("bottom border (%d, 3) = %#08x, want white", i, got)
		}
		if got := fb.At(3, i); got != White {
			t.Errorf("right border (3, %d) = %#08x, want white", i, got)
		}
	}
	if got := fb.At(0, 0); got != Green {
		t.Errorf("interior (0, 0) = %#08x, want green", got)
	}
}

func TestDrawRectStrokeEndingOnSurfaceEdge(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		border     func(i int) (int, int) // i-th expected border pixel
		n          int
	}{
		{"right border on column 0", -5, 1, 5, 3, func(i int) (int, int) { return 0, 1 + i }, 4},
		{"bottom border on row 0", 1, -3, 3, 3, func(i int) (int, int) { return 1 + i, 0 }, 4},
		{"corner at origin", -2, -2, 2, 2, func(int) (int, int) { return 0, 0 }, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(6, 6)
			r.DrawRectStroke(tt.x, tt.y, tt.w, tt.h, Green, White)
			fb := r.Buffers()

			want := make([]bool, 36)
			for i := 0; i < tt.n; i++ {
				x, y := tt.border(i)
				want[x+y*6] = true
			}
			if diff := cmp.Diff(want, painted(fb, White)); diff != "" {
				t.Errorf("stroke mask (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(make([]bool, 36), painted(fb, Green)); diff != "" {
				t.Errorf("fill leaked onto surface (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDrawRectStrokeFullyOff(t *testing.T) {
	r := NewRenderer(6, 6)
	r.DrawRectStroke(-6, 0, 5, 3, Green, White)
	r.DrawRectStroke(0, -6, 3, 5, Green, White)
	r.DrawRectStroke(6, 0, 3, 3, Green, White)
	r.DrawRectStroke(0, 6, 3, 3, Green, White)
	for i, c := range r.Buffers().Color {
		if c != Transparent {
			t.Fatalf("slot %d = %#08x, want untouched", i, c)
		}
	}
}

func TestDrawRectStrokeZeroSize(t *testing.T) {
	r := NewRenderer(4, 4)
	r.DrawRectStroke(1, 1, 0, 3, Green, White)
	for i, c := range r.Buffers().Color {
		if c != Transparent {
			t.Fatalf("slot %d = %#08x, want untouched", i, c)
		}
	}
}
