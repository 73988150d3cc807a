package segment

import (
	"fmt"
	"math"
	"slices"
)

var _ Segment = Quadratic{}

// Quadratic is a quadratic Bézier segment with start point P0, control point
// P1 and end point P2.
//
// Quadratic is an immutable value. Methods that modify the curve return new
// values.
type Quadratic struct {
	P0 Point
	P1 Point
	P2 Point
}

// NewQuadratic returns the quadratic Bézier segment from p0 to p2 with
// control point p1. It returns [ErrNonFinite] if any coordinate is infinite
// or NaN.
func NewQuadratic(p0, p1, p2 Point) (Quadratic, error) {
	q := Quadratic{p0, p1, p2}
	if !q.IsFinite() {
		return Quadratic{}, fmt.Errorf("quadratic %v %v %v: %w", p0, p1, p2, ErrNonFinite)
	}
	return q, nil
}

func (Quadratic) segment() {}

func (Quadratic) Kind() Kind { return QuadraticKind }

func (q Quadratic) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q Quadratic) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

func (q Quadratic) IsFinite() bool {
	return !q.IsInf() && !q.IsNaN()
}

func (q Quadratic) Start() Point {
	return q.P0
}

func (q Quadratic) End() Point {
	return q.P2
}

// Eval evaluates (1−t)²·P0 + 2(1−t)t·P1 + t²·P2. Eval(0) is exactly P0 and
// Eval(1) is exactly P2.
func (q Quadratic) Eval(t float64) Point {
	checkT(t)
	checkFinite(q.P0, q.P1, q.P2)
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Tangent returns the derivative 2(1−t)(P1−P0) + 2t(P2−P1).
func (q Quadratic) Tangent(t float64) Vec2 {
	checkT(t)
	return q.P1.Sub(q.P0).Mul(2 * (1 - t)).Add(q.P2.Sub(q.P1).Mul(2 * t))
}

// Tangents returns the (non-normalized) tangent directions at the start and
// end. If the control point coincides with an endpoint, the chord is used
// instead.
func (q Quadratic) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := q.P1.Sub(q.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d0 = q.P2.Sub(q.P0)
	}
	d12 := q.P2.Sub(q.P1)
	if d12.Hypot2() > epsilon {
		d1 = d12
	} else {
		d1 = q.P2.Sub(q.P0)
	}
	return d0, d1
}

func (q Quadratic) StartTangent() Vec2 {
	d0, _ := q.Tangents()
	return d0.Normalize()
}

func (q Quadratic) EndTangent() Vec2 {
	_, d1 := q.Tangents()
	return d1.Normalize()
}

// Curvature returns the signed curvature (x′y″ − y′x″) / |B′|³ at t.
//
// Near the endpoints, a closed form based on the control polygon is used.
// Elsewhere, the curve is split at t and the curvature is taken at the end
// of the left half.
func (q Quadratic) Curvature(t float64) float64 {
	checkT(t)
	const epsilon = 1e-7
	if math.Abs(t-0.5) <= 0.5-epsilon {
		// t is the end of the left half, so a single split suffices.
		q, _ = q.split(t)
		t = 1
	}
	return q.endpointCurvature(t < 0.5)
}

// endpointCurvature computes the curvature at P0 if atStart is true, or at P2
// otherwise, from the height of the far point over the near control edge.
func (q Quadratic) endpointCurvature(atStart bool) float64 {
	const degree = 2
	p0, p1, p2 := q.P2, q.P1, q.P0
	sign := 1.0
	if atStart {
		p0, p2 = q.P0, q.P2
		sign = -1.0
	}
	d10 := p1.Sub(p0)
	a := d10.Hypot()
	h := sign * d10.Perpendicular().Normalize().Dot(p2.Sub(p1))
	return h * (degree - 1) / (degree * a * a)
}

// CriticalT returns the parameters at which dx/dt and dy/dt are zero. Either
// value is NaN or infinite when the respective derivative is constant.
// The values are not restricted to [0, 1].
func (q Quadratic) CriticalT() (tx, ty float64) {
	return extremaT(q.P0.X, q.P1.X, q.P2.X), extremaT(q.P0.Y, q.P1.Y, q.P2.Y)
}

// Extrema returns the interior parameters at which x or y reach an extremum,
// in increasing order.
func (q Quadratic) Extrema() ([2]float64, int) {
	var out [2]float64
	var outN int
	tx, ty := q.CriticalT()
	if inOpenUnit(tx) {
		out[outN] = tx
		outN++
	}
	if inOpenUnit(ty) {
		out[outN] = ty
		outN++
		if outN == 2 && out[0] > ty {
			out[0], out[1] = out[1], out[0]
		}
	}
	return out, outN
}

// Bounds returns the tight bounding box of the curve, extended to the
// interior extrema of each axis.
func (q Quadratic) Bounds() Bounds {
	bbox := NewBoundsFromPoints(q.P0, q.P2)
	ex, n := q.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(q.Eval(t))
	}
	return bbox
}

// split subdivides the curve at t using de Casteljau's algorithm.
func (q Quadratic) split(t float64) (Quadratic, Quadratic) {
	leftMid := q.P0.Lerp(q.P1, t)
	rightMid := q.P1.Lerp(q.P2, t)
	mid := leftMid.Lerp(rightMid, t)
	return Quadratic{q.P0, leftMid, mid}, Quadratic{mid, rightMid, q.P2}
}

// Subdivide splits the curve into halves.
func (q Quadratic) Subdivide() (Quadratic, Quadratic) {
	return q.split(0.5)
}

// Subdivided splits the curve at t into curves covering [0, t] and [t, 1].
// If t is 0 or 1, the curve itself is returned as the only element.
func (q Quadratic) Subdivided(t float64) []Quadratic {
	checkT(t)
	if t == 0 || t == 1 {
		return []Quadratic{q}
	}
	left, right := q.split(t)
	return []Quadratic{left, right}
}

func (q Quadratic) SubdividedSegments(t float64) []Segment {
	return toSegments(q.Subdivided(t))
}

// Subsegment returns the part of the curve between t0 and t1.
func (q Quadratic) Subsegment(t0 float64, t1 float64) Quadratic {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return Quadratic{p0, p1, p2}
}

// NondegenerateSegments reduces degenerate curves to lines.
//
// A curve whose points all coincide yields no segments. A curve that returns
// to its start is replaced by the two lines to and from its midpoint. A
// straight curve yields the line from start to end, split at the extremum if
// the curve overshoots either endpoint. Straightness is tested exactly, so
// curves that bend only slightly are returned unchanged.
func (q Quadratic) NondegenerateSegments() []Segment {
	start, control, end := q.P0, q.P1, q.P2
	startIsEnd := start == end
	startIsControl := start == control
	endIsControl := end == control

	switch {
	case startIsEnd && startIsControl:
		return nil
	case startIsEnd:
		half := q.Eval(0.5)
		return []Segment{Line{start, half}, Line{half, end}}
	case collinear(start, control, end):
		if startIsControl || endIsControl {
			return []Segment{Line{start, end}}
		}
		delta := end.Sub(start)
		p1d := control.Sub(start).Dot(delta) / delta.Hypot2()
		t := extremaT(0, p1d, 1)
		if inOpenUnit(t) {
			pt := q.Eval(t)
			return append(Line{start, pt}.NondegenerateSegments(), Line{pt, end}.NondegenerateSegments()...)
		}
		return []Segment{Line{start, end}}
	default:
		return []Segment{q}
	}
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q Quadratic) Raise() Cubic {
	return Cubic{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q Quadratic) SignedArea() float64 {
	v := q.P0.X*(2.0*q.P1.Y+q.P2.Y) +
		2.0*(q.P1.X*(q.P2.Y-q.P0.Y)) -
		q.P2.X*(q.P0.Y+2.0*q.P1.Y)
	return v * (1.0 / 6.0)
}

// coefficients returns the power basis polynomials of x and y.
func (q Quadratic) coefficients() (poly, poly) {
	px0, px1, px2 := quadCoefficients(q.P0.X, q.P1.X, q.P2.X)
	py0, py1, py2 := quadCoefficients(q.P0.Y, q.P1.Y, q.P2.Y)
	return poly{px0, px1, px2}, poly{py0, py1, py2}
}

// Reparameterized returns the curve r with r.Eval(t) == q.Eval(a*t + b).
func (q Quadratic) Reparameterized(a, b float64) Quadratic {
	// q(t) = p t² + s t + r
	p := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2))
	s := q.P1.Sub(q.P0).Mul(2)
	r := Vec2(q.P0)
	// q(a t + b) = alpha t² + beta t + gamma
	alpha := p.Mul(a * a)
	beta := p.Mul(2 * a * b).Add(s.Mul(a))
	gamma := p.Mul(b * b).Add(s.Mul(b)).Add(r)
	return Quadratic{
		Point(gamma),
		Point(beta.Mul(0.5).Add(gamma)),
		Point(alpha.Add(beta).Add(gamma)),
	}
}

// Reversed returns the same curve traversed from end to start.
func (q Quadratic) Reversed() Quadratic {
	return Quadratic{q.P2, q.P1, q.P0}
}

func (q Quadratic) ReversedSegment() Segment {
	return q.Reversed()
}

func (q Quadratic) Transform(aff Affine) Quadratic {
	return Quadratic{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q Quadratic) TransformSegment(aff Affine) Segment {
	return q.Transform(aff)
}

// ApproximateOffset displaces each point of the control polygon by r along
// the normal of its adjacent edge. This is only a good approximation of the
// offset curve for short, flat curves.
func (q Quadratic) ApproximateOffset(r float64) Quadratic {
	chord := q.P2.Sub(q.P0)
	startDir := q.P1.Sub(q.P0)
	if q.P0 == q.P1 {
		startDir = chord
	}
	endDir := q.P2.Sub(q.P1)
	if q.P2 == q.P1 {
		endDir = chord
	}
	return Quadratic{
		q.P0.Translate(startDir.Perpendicular().Normalize().Mul(r)),
		q.P1.Translate(chord.Perpendicular().Normalize().Mul(r)),
		q.P2.Translate(endDir.Perpendicular().Normalize().Mul(r)),
	}
}

// OffsetTo approximates the curve offset by r along its normal. The curve is
// subdivided [OffsetSubdivisionDepth] times and each piece is offset with
// [Quadratic.ApproximateOffset].
//
// If reverse is true, the pieces are returned in reverse order, each
// reversed, so that the result runs from the offset of the end to the offset
// of the start.
func (q Quadratic) OffsetTo(r float64, reverse bool) []Quadratic {
	curves := []Quadratic{q}
	for range OffsetSubdivisionDepth {
		next := make([]Quadratic, 0, 2*len(curves))
		for _, c := range curves {
			next = append(next, c.Subdivided(0.5)...)
		}
		curves = next
	}
	for i, c := range curves {
		curves[i] = c.ApproximateOffset(r)
	}
	if reverse {
		slices.Reverse(curves)
		for i, c := range curves {
			curves[i] = c.Reversed()
		}
	}
	return curves
}

func (q Quadratic) OffsetSegments(r float64, reverse bool) []Segment {
	return toSegments(q.OffsetTo(r, reverse))
}

// StrokeLeft returns the left edge of a stroke of the given width, running
// in the direction of the curve.
func (q Quadratic) StrokeLeft(lineWidth float64) []Quadratic {
	return q.OffsetTo(-lineWidth/2, false)
}

// StrokeRight returns the right edge of a stroke of the given width, running
// against the direction of the curve.
func (q Quadratic) StrokeRight(lineWidth float64) []Quadratic {
	return q.OffsetTo(lineWidth/2, true)
}

// Intersection returns the crossings of ray with the curve, in increasing
// parameter order. A ray that touches the curve without crossing it produces
// no hit.
func (q Quadratic) Intersection(ray Ray) []RayHit {
	// In the ray's frame, the ray is the positive x axis and crossings are the
	// roots of y(t).
	aff := rayFrame(ray)
	p0 := q.P0.Transform(aff)
	p1 := q.P1.Transform(aff)
	p2 := q.P2.Transform(aff)
	a := p0.Y - 2*p1.Y + p2.Y
	b := -2*p0.Y + 2*p1.Y
	c := p0.Y
	ts, n := SolveQuadratic(c, b, a)
	return rayHits(q, ray, ts[:n])
}

func (q Quadratic) WindingIntersection(ray Ray) int {
	return windingOf(q.Intersection(ray))
}

// Overlaps returns the overlap {a, b} under which q.Eval(t) ==
// o.Eval(a*t + b), or nil if the curves don't coincide over a common
// parameter range.
func (q Quadratic) Overlaps(o Quadratic, epsilon float64) []Overlap {
	px, py := q.coefficients()
	qx, qy := o.coefficients()
	xSpread := spread(q.P0.X, q.P1.X, q.P2.X, o.P0.X, o.P1.X, o.P2.X)
	ySpread := spread(q.P0.Y, q.P1.Y, q.P2.Y, o.P0.Y, o.P1.Y, o.P2.Y)
	return findOverlap(px, py, qx, qy, xSpread, ySpread, epsilon)
}

func (q Quadratic) OverlapsSegment(o Segment, epsilon float64) []Overlap {
	if o, ok := o.(Quadratic); ok {
		return q.Overlaps(o, epsilon)
	}
	return nil
}

func (q Quadratic) PathFragment() string {
	return pathCommand('Q', q.P1, q.P2)
}

func (q Quadratic) Draw(ctx Context) {
	ctx.QuadraticCurveTo(q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
}

// Arclen returns the arclength of the quadratic Bézier segment.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
//
// Overall accuracy should be better than 1e-13 over the entire range.
func (q Quadratic) Arclen(accuracy float64) float64 {
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// This case happens for nearly straight Béziers.
		//
		// Calculate arclength using Legendre-Gauss quadrature using formula from Behdad
		// in https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// This case happens for Béziers with a sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

// Nearest returns the squared distance from pt to the closest point on the
// curve and that point's parameter, using analytical cubic root finding.
func (q Quadratic) Nearest(pt Point, accuracy float64) (distSq, t float64) {
	d0 := q.P1.Sub(q.P0)
	d1 := Vec2(q.P0).Add(Vec2(q.P2)).Sub(Vec2(q.P1).Mul(2.0))
	d := q.P0.Sub(pt)
	c0 := d.Dot(d0)
	c1 := 2.0*d0.Hypot2() + d.Dot(d1)
	c2 := 3.0 * d1.Dot(d0)
	c3 := d1.Hypot2()
	roots, n := SolveCubic(c0, c1, c2, c3)

	bestR := math.Inf(1)
	bestT := 0.0
	try := func(t float64, p Point) {
		if r := p.DistanceSquared(pt); r < bestR {
			bestR = r
			bestT = t
		}
	}
	needEnds := n == 0
	for _, t := range roots[:n] {
		if t >= 0.0 && t <= 1.0 {
			try(t, q.Eval(t))
		} else {
			needEnds = true
		}
	}
	if needEnds {
		try(0.0, q.P0)
		try(1.0, q.P2)
	}
	return bestR, bestT
}

// quadCoefficients returns polynomial coefficients given quadratic Bézier
// coordinates.
func quadCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	p0 := x0
	p1 := 2.0*x1 - 2.0*x0
	p2 := x2 - 2.0*x1 + x0
	return p0, p1, p2
}

func toSegments[T Segment](segs []T) []Segment {
	out := make([]Segment, len(segs))
	for i, seg := range segs {
		out[i] = seg
	}
	return out
}
