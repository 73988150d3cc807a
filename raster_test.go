package segment

import (
	"image"
	"testing"

	"golang.org/x/image/vector"
)

func TestRasterContext(t *testing.T) {
	segs := []Segment{
		Line{Pt(1, 1), Pt(9, 1)},
		Quadratic{Pt(9, 1), Pt(9, 9), Pt(1, 9)},
		Line{Pt(1, 9), Pt(1, 1)},
	}
	z := vector.NewRasterizer(100, 100)
	DrawSegments(NewRasterContext(z, 10), segs)
	dst := image.NewAlpha(image.Rect(0, 0, 100, 100))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	tests := []struct {
		x, y int
		want uint8
	}{
		{50, 50, 0xff},
		{20, 80, 0xff},
		{5, 5, 0},
		{85, 85, 0},
		{95, 50, 0},
	}
	for _, tt := range tests {
		if got := dst.AlphaAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("pixel (%d, %d) has coverage %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterContextCubic(t *testing.T) {
	q := Quadratic{Pt(1, 1), Pt(9, 1), Pt(9, 9)}
	segs := []Segment{
		q.Raise(),
		Line{Pt(9, 9), Pt(1, 1)},
	}
	z := vector.NewRasterizer(100, 100)
	DrawSegments(NewRasterContext(z, 10), segs)
	dst := image.NewAlpha(image.Rect(0, 0, 100, 100))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	// Below the diagonal, inside the curve.
	if got := dst.AlphaAt(60, 30).A; got != 0xff {
		t.Errorf("got coverage %d inside the shape, want 255", got)
	}
	// Above the diagonal.
	if got := dst.AlphaAt(30, 70).A; got != 0 {
		t.Errorf("got coverage %d outside the shape, want 0", got)
	}
}
