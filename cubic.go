package segment

import (
	"fmt"
	"slices"
	"sort"
)

var _ Segment = Cubic{}

// Cubic is a cubic Bézier segment with start point P0, control points P1 and
// P2, and end point P3. It is produced by [Quadratic.Raise].
type Cubic struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// NewCubic returns the cubic Bézier segment from p0 to p3 with control
// points p1 and p2. It returns [ErrNonFinite] if any coordinate is infinite
// or NaN.
func NewCubic(p0, p1, p2, p3 Point) (Cubic, error) {
	c := Cubic{p0, p1, p2, p3}
	if !c.IsFinite() {
		return Cubic{}, fmt.Errorf("cubic %v %v %v %v: %w", p0, p1, p2, p3, ErrNonFinite)
	}
	return c, nil
}

func (Cubic) segment() {}

func (Cubic) Kind() Kind { return CubicKind }

func (c Cubic) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c Cubic) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c Cubic) IsFinite() bool {
	return !c.IsInf() && !c.IsNaN()
}

func (c Cubic) Start() Point {
	return c.P0
}

func (c Cubic) End() Point {
	return c.P3
}

func (c Cubic) Eval(t float64) Point {
	checkT(t)
	checkFinite(c.P0, c.P1, c.P2, c.P3)
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

func (c Cubic) Tangent(t float64) Vec2 {
	checkT(t)
	mt := 1.0 - t
	return c.P1.Sub(c.P0).Mul(3 * mt * mt).
		Add(c.P2.Sub(c.P1).Mul(6 * mt * t)).
		Add(c.P3.Sub(c.P2).Mul(3 * t * t))
}

// Curvature returns the signed curvature (x′y″ − y′x″) / |B′|³ at t.
func (c Cubic) Curvature(t float64) float64 {
	checkT(t)
	d1 := c.Tangent(t)
	mt := 1.0 - t
	d2 := Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2)).Mul(6 * mt).
		Add(Vec2(c.P1).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3)).Mul(6 * t))
	n := d1.Hypot()
	return d1.Cross(d2) / (n * n * n)
}

// Tangents returns the (non-normalized) tangent directions at the start and
// end, skipping control points that coincide with the endpoint.
func (c Cubic) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

func (c Cubic) StartTangent() Vec2 {
	d0, _ := c.Tangents()
	return d0.Normalize()
}

func (c Cubic) EndTangent() Vec2 {
	_, d1 := c.Tangents()
	return d1.Normalize()
}

// Extrema returns the interior parameters at which x or y reach an extremum,
// in increasing order.
func (c Cubic) Extrema() ([4]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [4]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if inOpenUnit(t) {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

func (c Cubic) Bounds() Bounds {
	bbox := NewBoundsFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

func (c Cubic) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// split subdivides the curve at t using de Casteljau's algorithm.
func (c Cubic) split(t float64) (Cubic, Cubic) {
	p01 := c.P0.Lerp(c.P1, t)
	p12 := c.P1.Lerp(c.P2, t)
	p23 := c.P2.Lerp(c.P3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	mid := p012.Lerp(p123, t)
	return Cubic{c.P0, p01, p012, mid}, Cubic{mid, p123, p23, c.P3}
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c Cubic) Subdivide() (Cubic, Cubic) {
	return c.split(0.5)
}

// Subdivided splits the curve at t into curves covering [0, t] and [t, 1].
// If t is 0 or 1, the curve itself is returned as the only element.
func (c Cubic) Subdivided(t float64) []Cubic {
	checkT(t)
	if t == 0 || t == 1 {
		return []Cubic{c}
	}
	left, right := c.split(t)
	return []Cubic{left, right}
}

func (c Cubic) SubdividedSegments(t float64) []Segment {
	return toSegments(c.Subdivided(t))
}

// NondegenerateSegments reduces degenerate curves to lines.
//
// A curve whose points all coincide yields no segments. A curve whose points
// are all collinear yields lines through the points where it turns around.
func (c Cubic) NondegenerateSegments() []Segment {
	if c.P0 == c.P1 && c.P0 == c.P2 && c.P0 == c.P3 {
		return nil
	}
	far := c.P1
	for _, pt := range []Point{c.P2, c.P3} {
		if pt.DistanceSquared(c.P0) > far.DistanceSquared(c.P0) {
			far = pt
		}
	}
	if !collinear(c.P0, c.P1, far) || !collinear(c.P0, c.P2, far) || !collinear(c.P0, c.P3, far) {
		return []Segment{c}
	}

	// Project onto the line and find where the one-dimensional curve turns.
	dir := far.Sub(c.P0)
	u1 := c.P1.Sub(c.P0).Dot(dir)
	u2 := c.P2.Sub(c.P0).Dot(dir)
	u3 := c.P3.Sub(c.P0).Dot(dir)
	d0, d1, d2 := u1, u2-u1, u3-u2
	roots, n := SolveQuadratic(d0, 2*(d1-d0), d0-2*d1+d2)
	ts := slices.DeleteFunc(roots[:n], func(t float64) bool { return !inOpenUnit(t) })
	slices.Sort(ts)

	pts := []Point{c.P0}
	for _, t := range ts {
		pts = append(pts, c.Eval(t))
	}
	pts = append(pts, c.P3)
	var out []Segment
	for i := range len(pts) - 1 {
		out = append(out, Line{pts[i], pts[i+1]}.NondegenerateSegments()...)
	}
	return out
}

// coefficients returns the power basis polynomials of x and y.
func (c Cubic) coefficients() (poly, poly) {
	px0, px1, px2, px3 := cubicCoefficients(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	py0, py1, py2, py3 := cubicCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	return poly{px0, px1, px2, px3}, poly{py0, py1, py2, py3}
}

// Reparameterized returns the curve r with r.Eval(t) == c.Eval(a*t + b).
func (c Cubic) Reparameterized(a, b float64) Cubic {
	px, py := c.coefficients()
	return cubicFromCoefficients(px.compose(a, b), py.compose(a, b))
}

func (c Cubic) Reversed() Cubic {
	return Cubic{c.P3, c.P2, c.P1, c.P0}
}

func (c Cubic) ReversedSegment() Segment {
	return c.Reversed()
}

func (c Cubic) Transform(aff Affine) Cubic {
	return Cubic{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

func (c Cubic) TransformSegment(aff Affine) Segment {
	return c.Transform(aff)
}

// ApproximateOffset displaces the endpoints and their adjacent control
// points by r along the normals of the start and end tangents.
func (c Cubic) ApproximateOffset(r float64) Cubic {
	d0, d1 := c.Tangents()
	n0 := d0.Perpendicular().Normalize().Mul(r)
	n1 := d1.Perpendicular().Normalize().Mul(r)
	return Cubic{
		c.P0.Translate(n0),
		c.P1.Translate(n0),
		c.P2.Translate(n1),
		c.P3.Translate(n1),
	}
}

// OffsetTo approximates the curve offset by r along its normal, the same way
// as [Quadratic.OffsetTo].
func (c Cubic) OffsetTo(r float64, reverse bool) []Cubic {
	curves := []Cubic{c}
	for range OffsetSubdivisionDepth {
		next := make([]Cubic, 0, 2*len(curves))
		for _, cc := range curves {
			next = append(next, cc.Subdivided(0.5)...)
		}
		curves = next
	}
	for i, cc := range curves {
		curves[i] = cc.ApproximateOffset(r)
	}
	if reverse {
		slices.Reverse(curves)
		for i, cc := range curves {
			curves[i] = cc.Reversed()
		}
	}
	return curves
}

func (c Cubic) OffsetSegments(r float64, reverse bool) []Segment {
	return toSegments(c.OffsetTo(r, reverse))
}

// Intersection returns the crossings of ray with the curve, in increasing
// parameter order.
func (c Cubic) Intersection(ray Ray) []RayHit {
	aff := rayFrame(ray)
	y0, y1, y2, y3 := cubicCoefficients(
		c.P0.Transform(aff).Y,
		c.P1.Transform(aff).Y,
		c.P2.Transform(aff).Y,
		c.P3.Transform(aff).Y,
	)
	ts, n := SolveCubic(y0, y1, y2, y3)
	roots := ts[:n]
	sort.Float64s(roots)
	return rayHits(c, ray, roots)
}

func (c Cubic) WindingIntersection(ray Ray) int {
	return windingOf(c.Intersection(ray))
}

// Overlaps returns the overlap {a, b} under which c.Eval(t) ==
// o.Eval(a*t + b), or nil if the curves don't coincide over a common
// parameter range.
func (c Cubic) Overlaps(o Cubic, epsilon float64) []Overlap {
	px, py := c.coefficients()
	qx, qy := o.coefficients()
	xSpread := spread(c.P0.X, c.P1.X, c.P2.X, c.P3.X, o.P0.X, o.P1.X, o.P2.X, o.P3.X)
	ySpread := spread(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, o.P0.Y, o.P1.Y, o.P2.Y, o.P3.Y)
	return findOverlap(px, py, qx, qy, xSpread, ySpread, epsilon)
}

func (c Cubic) OverlapsSegment(o Segment, epsilon float64) []Overlap {
	if o, ok := o.(Cubic); ok {
		return c.Overlaps(o, epsilon)
	}
	return nil
}

func (c Cubic) PathFragment() string {
	return pathCommand('C', c.P1, c.P2, c.P3)
}

func (c Cubic) Draw(ctx Context) {
	ctx.BezierCurveTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
}

// cubicCoefficients returns polynomial coefficients given cubic Bézier
// coordinates.
func cubicCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3.0*x1 - 3.0*x0
	p2 := 3.0*x2 - 6.0*x1 + 3.0*x0
	p3 := x3 - 3.0*x2 + 3.0*x1 - x0
	return p0, p1, p2, p3
}

// cubicFromCoefficients converts power basis polynomials back to Bézier
// control points.
func cubicFromCoefficients(px, py poly) Cubic {
	pt := func(i int) Point {
		x, y := px, py
		switch i {
		case 0:
			return Pt(x[0], y[0])
		case 1:
			return Pt(x[0]+x[1]/3, y[0]+y[1]/3)
		case 2:
			return Pt(x[0]+2*x[1]/3+x[2]/3, y[0]+2*y[1]/3+y[2]/3)
		default:
			return Pt(x[0]+x[1]+x[2]+x[3], y[0]+y[1]+y[2]+y[3])
		}
	}
	return Cubic{pt(0), pt(1), pt(2), pt(3)}
}
