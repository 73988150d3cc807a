package segment

import "math"

// Overlap describes a linear reparameterization under which two segments
// trace the same points: p.Eval(t) == q.Eval(A*t + B), for the t where both
// t and A*t + B lie in [0, 1].
type Overlap struct {
	A float64
	B float64
}

// Apply maps a parameter of the first segment to the second.
func (o Overlap) Apply(t float64) float64 {
	return o.A*t + o.B
}

// Inverse returns the overlap that maps parameters of the second segment back
// to the first.
func (o Overlap) Inverse() Overlap {
	return Overlap{A: 1 / o.A, B: -o.B / o.A}
}

// Ranges returns the parameter range [t0, t1] on the first segment for which
// both segments are defined, and the corresponding range [qt0, qt1] on the
// second segment. The second range is descending when A is negative.
func (o Overlap) Ranges() (t0, t1, qt0, qt1 float64) {
	u0 := -o.B / o.A
	u1 := (1 - o.B) / o.A
	t0 = max(0, min(u0, u1))
	t1 = min(1, max(u0, u1))
	return t0, t1, o.Apply(t0), o.Apply(t1)
}

// poly holds the power basis coefficients c0 + c1 t + c2 t² + c3 t³ of one
// coordinate of a Bézier segment.
type poly [4]float64

func (p poly) eval(t float64) float64 {
	return p[0] + t*(p[1]+t*(p[2]+t*p[3]))
}

// compose returns the coefficients of p(a t + b).
func (p poly) compose(a, b float64) poly {
	return poly{
		p[0] + b*(p[1]+b*(p[2]+b*p[3])),
		a * (p[1] + b*(2*p[2]+3*b*p[3])),
		a * a * (p[2] + 3*b*p[3]),
		a * a * a * p[3],
	}
}

func (p poly) sub(o poly) poly {
	return poly{p[0] - o[0], p[1] - o[1], p[2] - o[2], p[3] - o[3]}
}

// degree returns the index of the highest coefficient that isn't negligible
// relative to the largest one, or -1 for the zero polynomial.
func (p poly) degree() int {
	const epsilon = 1e-12
	scale := max(math.Abs(p[0]), math.Abs(p[1]), math.Abs(p[2]), math.Abs(p[3]))
	for i := 3; i >= 1; i-- {
		if math.Abs(p[i]) > epsilon*scale {
			return i
		}
	}
	if p[0] != 0 {
		return 0
	}
	return -1
}

// maxAbsOnUnit returns the largest magnitude p takes on [0, 1], considering
// the endpoints and the interior roots of p's derivative.
func (p poly) maxAbsOnUnit() float64 {
	m := max(math.Abs(p.eval(0)), math.Abs(p.eval(1)))
	roots, n := SolveQuadratic(p[1], 2*p[2], 3*p[3])
	for _, t := range roots[:n] {
		if inOpenUnit(t) {
			m = max(m, math.Abs(p.eval(t)))
		}
	}
	return m
}

// matchCandidates returns the (a, b) pairs for which q(a t + b) has the same
// leading coefficients as p. There are at most two, differing in the sign of
// a, for quadratics.
func matchCandidates(p, q poly) ([2]Overlap, int) {
	switch q.degree() {
	case 3:
		a := math.Cbrt(p[3] / q[3])
		if a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			return [2]Overlap{}, 0
		}
		b := (p[2] - q[2]*a*a) / (3 * q[3] * a * a)
		return [2]Overlap{{a, b}}, 1
	case 2:
		ratio := p[2] / q[2]
		if !(ratio > 0) || math.IsInf(ratio, 0) {
			return [2]Overlap{}, 0
		}
		a := math.Sqrt(ratio)
		return [2]Overlap{
			{a, (p[1] - q[1]*a) / (2 * q[2] * a)},
			{-a, (p[1] + q[1]*a) / (-2 * q[2] * a)},
		}, 2
	case 1:
		a := p[1] / q[1]
		if a == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			return [2]Overlap{}, 0
		}
		return [2]Overlap{{a, (p[0] - q[0]) / q[1]}}, 1
	default:
		// q is constant on this axis. Every mapping matches, which doesn't
		// pin down a reparameterization.
		return [2]Overlap{}, 0
	}
}

// findOverlap finds the linear reparameterization under which the curve with
// coordinate polynomials (px, py) coincides with (qx, qy).
//
// The mapping is solved for on the axis with the larger spread, then verified
// on both axes by bounding the difference polynomial on [0, 1].
func findOverlap(px, py, qx, qy poly, xSpread, ySpread, epsilon float64) []Overlap {
	p, q := px, qx
	if ySpread > xSpread {
		p, q = py, qy
	}
	cands, n := matchCandidates(p, q)
	for _, o := range cands[:n] {
		if math.IsNaN(o.B) || math.IsInf(o.B, 0) {
			continue
		}
		dx := qx.compose(o.A, o.B).sub(px).maxAbsOnUnit()
		dy := qy.compose(o.A, o.B).sub(py).maxAbsOnUnit()
		if dx > epsilon || dy > epsilon {
			Logger().Debug("overlap candidate rejected", "a", o.A, "b", o.B, "dx", dx, "dy", dy)
			continue
		}
		qt0 := o.Apply(0)
		qt1 := o.Apply(1)
		if (qt0 > 1 && qt1 > 1) || (qt0 < 0 && qt1 < 0) {
			// Same underlying curve, but the parameter ranges are disjoint.
			return nil
		}
		return []Overlap{o}
	}
	return nil
}

// spread returns max − min of the given values.
func spread(vs ...float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return hi - lo
}
