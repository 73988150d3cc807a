package segment

import (
	"fmt"
	"math"
)

// Line represents a line segment from P0 to P1.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Segment = Line{}

// NewLine returns the line from p0 to p1. It returns [ErrNonFinite] if any
// coordinate is infinite or NaN.
func NewLine(p0, p1 Point) (Line, error) {
	l := Line{p0, p1}
	if !l.IsFinite() {
		return Line{}, fmt.Errorf("line %v %v: %w", p0, p1, ErrNonFinite)
	}
	return l, nil
}

func (Line) segment() {}

func (Line) Kind() Kind { return LineKind }

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) IsFinite() bool {
	return !l.IsInf() && !l.IsNaN()
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Eval(t float64) Point {
	checkT(t)
	checkFinite(l.P0, l.P1)
	if t == 1 {
		return l.P1
	}
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Tangent(t float64) Vec2 {
	checkT(t)
	return l.P1.Sub(l.P0)
}

// Curvature is always zero.
func (l Line) Curvature(t float64) float64 {
	checkT(t)
	return 0
}

func (l Line) StartTangent() Vec2 {
	return l.P1.Sub(l.P0).Normalize()
}

func (l Line) EndTangent() Vec2 {
	return l.P1.Sub(l.P0).Normalize()
}

func (l Line) Bounds() Bounds {
	return NewBoundsFromPoints(l.P0, l.P1)
}

func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}

// Nearest returns the squared distance from pt to the closest point on the
// line and that point's parameter.
func (l Line) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// NondegenerateSegments returns nothing for a zero-length line and the line
// itself otherwise.
func (l Line) NondegenerateSegments() []Segment {
	if l.P0 == l.P1 {
		return nil
	}
	return []Segment{l}
}

// Subdivided splits the line at t. If t is 0 or 1, the line itself is
// returned as the only element.
func (l Line) Subdivided(t float64) []Line {
	checkT(t)
	if t == 0 || t == 1 {
		return []Line{l}
	}
	pt := l.Eval(t)
	return []Line{{l.P0, pt}, {pt, l.P1}}
}

func (l Line) SubdividedSegments(t float64) []Segment {
	return toSegments(l.Subdivided(t))
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// Reparameterized returns the line r with r.Eval(t) == l.Eval(a*t + b).
func (l Line) Reparameterized(a, b float64) Line {
	d := l.P1.Sub(l.P0)
	p0 := l.P0.Translate(d.Mul(b))
	return Line{p0, p0.Translate(d.Mul(a))}
}

func (l Line) Reversed() Line {
	return Line{l.P1, l.P0}
}

func (l Line) ReversedSegment() Segment {
	return l.Reversed()
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) TransformSegment(aff Affine) Segment {
	return l.Transform(aff)
}

// OffsetTo returns the line translated by r along its normal. Unlike curves,
// lines offset exactly, so the result always has one element.
func (l Line) OffsetTo(r float64, reverse bool) []Line {
	v := l.P1.Sub(l.P0).Perpendicular().Normalize().Mul(r)
	out := Line{l.P0.Translate(v), l.P1.Translate(v)}
	if reverse {
		out = out.Reversed()
	}
	return []Line{out}
}

func (l Line) OffsetSegments(r float64, reverse bool) []Segment {
	return toSegments(l.OffsetTo(r, reverse))
}

func (l Line) StrokeLeft(lineWidth float64) []Line {
	return l.OffsetTo(-lineWidth/2, false)
}

func (l Line) StrokeRight(lineWidth float64) []Line {
	return l.OffsetTo(lineWidth/2, true)
}

// Intersection returns the crossing of ray with the line, if any.
func (l Line) Intersection(ray Ray) []RayHit {
	d := l.P1.Sub(l.P0)
	det := ray.Direction.Cross(d)
	if det == 0 {
		// Parallel, including the case where the ray runs along the line.
		return nil
	}
	// Solve origin + s*dir == P0 + t*d for t.
	w := l.P0.Sub(ray.Origin)
	t := ray.Direction.Cross(w) / -det
	if math.IsNaN(t) {
		return nil
	}
	return rayHits(l, ray, []float64{t})
}

func (l Line) WindingIntersection(ray Ray) int {
	return windingOf(l.Intersection(ray))
}

// Overlaps returns the overlap {a, b} under which l.Eval(t) ==
// o.Eval(a*t + b), or nil if the lines don't share a common stretch.
func (l Line) Overlaps(o Line, epsilon float64) []Overlap {
	px := poly{l.P0.X, l.P1.X - l.P0.X}
	py := poly{l.P0.Y, l.P1.Y - l.P0.Y}
	qx := poly{o.P0.X, o.P1.X - o.P0.X}
	qy := poly{o.P0.Y, o.P1.Y - o.P0.Y}
	xSpread := spread(l.P0.X, l.P1.X, o.P0.X, o.P1.X)
	ySpread := spread(l.P0.Y, l.P1.Y, o.P0.Y, o.P1.Y)
	return findOverlap(px, py, qx, qy, xSpread, ySpread, epsilon)
}

func (l Line) OverlapsSegment(o Segment, epsilon float64) []Overlap {
	if o, ok := o.(Line); ok {
		return l.Overlaps(o, epsilon)
	}
	return nil
}

func (l Line) PathFragment() string {
	return pathCommand('L', l.P1)
}

func (l Line) Draw(ctx Context) {
	ctx.LineTo(l.P1.X, l.P1.Y)
}
