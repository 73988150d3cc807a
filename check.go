package segment

import "fmt"

// checkT panics if t is outside [0, 1]. It is a no-op unless built with the
// segmentdebug tag.
func checkT(t float64) {
	if debug && !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("segment: parameter %v outside [0, 1]", t))
	}
}

// checkFinite panics if any point is infinite or NaN. It is a no-op unless
// built with the segmentdebug tag.
func checkFinite(pts ...Point) {
	if !debug {
		return
	}
	for _, pt := range pts {
		if !pt.IsFinite() {
			panic(fmt.Sprintf("segment: non-finite point %v", pt))
		}
	}
}
