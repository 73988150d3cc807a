package segment

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

type recordingContext struct {
	cmds []string
}

func (rc *recordingContext) MoveTo(x, y float64) {
	rc.cmds = append(rc.cmds, fmt.Sprintf("M %g %g", x, y))
}

func (rc *recordingContext) LineTo(x, y float64) {
	rc.cmds = append(rc.cmds, fmt.Sprintf("L %g %g", x, y))
}

func (rc *recordingContext) QuadraticCurveTo(cpx, cpy, x, y float64) {
	rc.cmds = append(rc.cmds, fmt.Sprintf("Q %g %g %g %g", cpx, cpy, x, y))
}

func (rc *recordingContext) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	rc.cmds = append(rc.cmds, fmt.Sprintf("C %g %g %g %g %g %g", cp1x, cp1y, cp2x, cp2y, x, y))
}

func testSegments() []Segment {
	return []Segment{
		Line{Pt(1, 2), Pt(3, 4)},
		Quadratic{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)},
		Cubic{Pt(0, 0), Pt(1, 3), Pt(4, -1), Pt(5, 2)},
	}
}

func TestKindString(t *testing.T) {
	diff(t, "Line", LineKind.String())
	diff(t, "Quadratic", QuadraticKind.String())
	diff(t, "Cubic", CubicKind.String())
	diff(t, "Kind(7)", Kind(7).String())
}

func TestSegmentContract(t *testing.T) {
	for _, seg := range testSegments() {
		t.Run(seg.Kind().String(), func(t *testing.T) {
			diff(t, seg.Start(), seg.Eval(0))
			diff(t, seg.End(), seg.Eval(1))
			diff(t, seg, seg.ReversedSegment().ReversedSegment())
			diff(t, seg.Start(), seg.ReversedSegment().End())
			diff(t, seg, seg.TransformSegment(Identity))
			diff(t, -seg.SignedArea(), seg.ReversedSegment().SignedArea(), cmpopts.EquateApprox(0, 1e-12))

			halves := seg.SubdividedSegments(0.5)
			if len(halves) != 2 {
				t.Fatalf("got %d halves, want 2", len(halves))
			}
			assertNear(t, halves[0].End(), seg.Eval(0.5), 1e-12)
			diff(t, seg.Start(), halves[0].Start())
			diff(t, seg.End(), halves[1].End())

			bbox := seg.Bounds()
			for i := range 101 {
				if pt := seg.Eval(float64(i) / 100); !bbox.Inflate(1e-9, 1e-9).Contains(pt) {
					t.Errorf("%v isn't inside %v", pt, bbox)
				}
			}

			offset := seg.OffsetSegments(0.1, false)
			assertNear(t, offset[0].Start(), seg.Start().Translate(seg.StartTangent().Perpendicular().Mul(0.1)), 1e-9)
			assertNear(t, offset[len(offset)-1].End(), seg.End().Translate(seg.EndTangent().Perpendicular().Mul(0.1)), 1e-9)

			if o := seg.OverlapsSegment(seg, DefaultAccuracy); len(o) != 1 {
				t.Errorf("got %v, want the identity overlap", o)
			}
			for _, other := range testSegments() {
				if other.Kind() != seg.Kind() && seg.OverlapsSegment(other, DefaultAccuracy) != nil {
					t.Errorf("%v overlaps %v", seg, other)
				}
			}

			rc := &recordingContext{}
			seg.Draw(rc)
			diff(t, []string{seg.PathFragment()}, rc.cmds)
		})
	}
}

func TestSegmentKindSwitch(t *testing.T) {
	var kinds []Kind
	for _, seg := range testSegments() {
		switch seg := seg.(type) {
		case Line:
			kinds = append(kinds, seg.Kind())
		case Quadratic:
			kinds = append(kinds, seg.Kind())
		case Cubic:
			kinds = append(kinds, seg.Kind())
		}
	}
	diff(t, []Kind{LineKind, QuadraticKind, CubicKind}, kinds)
}

func TestSVGSingle(t *testing.T) {
	segments := []Segment{
		Quadratic{
			Pt(10.0, 10.0),
			Pt(20.0, 20.0),
			Pt(30.0, 10.0),
		},
	}
	want := "M 10 10 Q 20 20 30 10"
	got := SVG(segments)
	diff(t, want, got)
}

func TestSVGTwoNoMove(t *testing.T) {
	segments := []Segment{
		Quadratic{
			Pt(10.0, 10.0),
			Pt(20.0, 20.0),
			Pt(30.0, 10.0),
		},
		Line{
			Pt(30.0, 10.0),
			Pt(10.0, 10.0),
		},
	}
	want := "M 10 10 Q 20 20 30 10 L 10 10"
	got := SVG(segments)
	diff(t, want, got)
}

func TestSVGTwoMove(t *testing.T) {
	segments := []Segment{
		Quadratic{
			Pt(10.0, 10.0),
			Pt(20.0, 20.0),
			Pt(30.0, 10.0),
		},
		Cubic{
			Pt(50.0, 50.0),
			Pt(30.0, 30.0),
			Pt(20.0, 20.0),
			Pt(10.0, 10.0),
		},
	}
	want := "M 10 10 Q 20 20 30 10 M 50 50 C 30 30 20 20 10 10"
	got := SVG(segments)
	diff(t, want, got)
	diff(t, "", SVG(nil))
}

func TestDrawSegments(t *testing.T) {
	segments := []Segment{
		Quadratic{Pt(0, 0), Pt(1, 2), Pt(2, 0)},
		Line{Pt(2, 0), Pt(0, 0)},
		Line{Pt(5, 5), Pt(6, 6)},
	}
	rc := &recordingContext{}
	DrawSegments(rc, segments)
	want := []string{
		"M 0 0",
		"Q 1 2 2 0",
		"L 0 0",
		"M 5 5",
		"L 6 6",
	}
	diff(t, want, rc.cmds)
	diff(t, strings.Join(want, " "), SVG(segments))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := Deserialize([]byte(`{"type":"Arc"}`)); err == nil {
		t.Fatal("unknown type was accepted")
	}
	if !strings.Contains(buf.String(), "unknown segment type") {
		t.Errorf("log output %q doesn't mention the unknown type", buf.String())
	}

	buf.Reset()
	q := Quadratic{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8)}
	q.Overlaps(q.Reversed(), DefaultAccuracy)
	if !strings.Contains(buf.String(), "overlap candidate rejected") {
		t.Errorf("log output %q doesn't mention the rejected candidate", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}
