package segment

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, 2).Sub(Pt(4, 6)), Vec(-3, -4))
	diff(t, Pt(0, 0).Lerp(Pt(4, 8), 0.25), Pt(1, 2))
	diff(t, Pt(0, 0).Midpoint(Pt(4, 8)), Pt(2, 4))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("point is not finite but should be")
	}
	if Pt(math.Inf(-1), 2).IsFinite() {
		t.Error("point is finite but shouldn't be")
	}
	if !Pt(1, math.NaN()).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
}

func TestCollinear(t *testing.T) {
	if !collinear(Pt(0, 0), Pt(1, 1), Pt(3, 3)) {
		t.Error("points on a diagonal aren't collinear")
	}
	if !collinear(Pt(0, 0), Pt(5, 0), Pt(-3, 0)) {
		t.Error("points on the x axis aren't collinear")
	}
	if collinear(Pt(0, 0), Pt(1, 1), Pt(2, 0)) {
		t.Error("triangle is collinear")
	}
	if collinear(Pt(0, 0), Pt(1, 1e-10), Pt(2, 0)) {
		t.Error("nearly flat triangle is collinear")
	}
}

func TestVec2(t *testing.T) {
	const epsilon = 1e-12
	v := Vec(3, 4)
	diff(t, 5.0, v.Hypot())
	diff(t, 25.0, v.Hypot2())
	diff(t, Vec(4, -3), v.Perpendicular())
	diff(t, 0.0, v.Dot(v.Perpendicular()))
	diff(t, -25.0, v.Cross(v.Perpendicular()))
	assertNearVec(t, v.Normalize(), Vec(0.6, 0.8), epsilon)
	assertNearVec(t, VecFromAngle(v.Angle()), v.Normalize(), epsilon)
	diff(t, Vec(-3, -4), v.Negate())
	x, y := v.Splat()
	diff(t, [2]float64{3, 4}, [2]float64{x, y})
}
