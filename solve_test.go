package segment

import (
	"math"
	"sort"
	"testing"
)

func checkRoots(t *testing.T, roots, expected []float64) {
	t.Helper()
	if len(roots) != len(expected) {
		t.Fatalf("got %d roots, expected %d", len(roots), len(expected))
	}
	const epsilon = 1e-12
	sort.Float64s(roots)
	sort.Float64s(expected)
	for i := range roots {
		if math.Abs(roots[i]-expected[i]) > epsilon {
			t.Errorf("root %d is %v but we expected %v", i, roots[i], expected[i])
		}
	}
}

func TestSolveLinear(t *testing.T) {
	slice := func(roots [1]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveLinear(-4.0, 2.0)), []float64{2.0})
	checkRoots(t, slice(SolveLinear(3.0, 0.0)), []float64{})
	checkRoots(t, slice(SolveLinear(0.0, 0.0)), []float64{0.0})
}

func TestSolveCubic(t *testing.T) {
	slice := func(roots [3]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveCubic(-5, 0, 0, 1)), []float64{math.Cbrt(5)})
	checkRoots(t, slice(SolveCubic(-5.0, -1.0, 0.0, 1.0)), []float64{1.90416085913492})
	checkRoots(t, slice(SolveCubic(0.0, -1.0, 0.0, 1.0)), []float64{-1.0, 0.0, 1.0})
	checkRoots(t, slice(SolveCubic(-2.0, -3.0, 0.0, 1.0)), []float64{-1.0, 2.0})
	checkRoots(t, slice(SolveCubic(2.0, -3.0, 0.0, 1.0)), []float64{-2.0, 1.0})
	checkRoots(t, slice(SolveCubic(2.0-1e-12, 5.0, 4.0, 1.0)),
		[]float64{
			-1.9999999999989995,
			-1.0000010000848456,
			-0.9999989999161546,
		},
	)
	checkRoots(t, slice(SolveCubic(2.0+1e-12, 5.0, 4.0, 1.0)), []float64{-2.0})
}

func TestSolveQuadratic(t *testing.T) {
	slice := func(roots [2]float64, n int) []float64 {
		return roots[:n]
	}
	checkRoots(t, slice(SolveQuadratic(-5.0, 0.0, 1.0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, slice(SolveQuadratic(5.0, 0.0, 1.0)), []float64{})
	checkRoots(t, slice(SolveQuadratic(5.0, 1.0, 0.0)), []float64{-5.0})
	checkRoots(t, slice(SolveQuadratic(1.0, 2.0, 1.0)), []float64{-1.0})
	checkRoots(t, slice(SolveQuadratic(0.0, 0.0, 0.0)), []float64{0.0})
}

func TestSolveQuadraticSorted(t *testing.T) {
	roots, n := SolveQuadratic(6.0, -5.0, 1.0)
	diff(t, []float64{2.0, 3.0}, roots[:n])
	roots, n = SolveQuadratic(-6.0, -5.0, -1.0)
	diff(t, []float64{-3.0, -2.0}, roots[:n])
}

func TestExtremaT(t *testing.T) {
	diff(t, 0.5, extremaT(0, 1, 0))
	diff(t, 0.25, extremaT(0, 1, -2))
	if v := extremaT(0, 1, 2); !math.IsNaN(v) && !math.IsInf(v, 0) {
		t.Errorf("got %v for a linear function, want NaN or Inf", v)
	}
	if inOpenUnit(math.NaN()) {
		t.Error("NaN is inside (0, 1)")
	}
}
