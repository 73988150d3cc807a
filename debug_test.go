//go:build segmentdebug

package segment

import (
	"math"
	"testing"
)

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s didn't panic", name)
		}
	}()
	fn()
}

func TestDebugChecks(t *testing.T) {
	q := Quadratic{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	assertPanics(t, "Eval(1.5)", func() { q.Eval(1.5) })
	assertPanics(t, "Subdivided(-0.1)", func() { q.Subdivided(-0.1) })
	assertPanics(t, "Tangent(NaN)", func() { q.Tangent(math.NaN()) })
	assertPanics(t, "Curvature(2)", func() { q.Curvature(2) })

	nan := Quadratic{Pt(0, 0), Pt(math.NaN(), 2), Pt(2, 0)}
	assertPanics(t, "Eval on NaN control", func() { nan.Eval(0.5) })
	inf := Line{Pt(0, 0), Pt(math.Inf(1), 0)}
	assertPanics(t, "Eval on infinite line", func() { inf.Eval(0.5) })
	c := Cubic{Pt(0, 0), Pt(1, 1), Pt(2, math.NaN()), Pt(3, 0)}
	assertPanics(t, "Eval on NaN cubic", func() { c.Eval(0.5) })

	// In-range parameters on finite segments pass.
	q.Eval(0)
	q.Eval(1)
	q.Subdivided(0.5)
}
