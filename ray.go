package segment

import "math"

// Ray is a half-line starting at Origin and extending along Direction.
// Direction should be a unit vector.
type Ray struct {
	Origin    Point
	Direction Vec2
}

// NewRay returns a ray starting at origin pointing along dir, normalizing dir.
func NewRay(origin Point, dir Vec2) Ray {
	return Ray{Origin: origin, Direction: dir.Normalize()}
}

// RayHit describes a single crossing of a ray with a segment.
type RayHit struct {
	// Distance from the ray's origin to Point.
	Distance float64
	Point    Point
	// Normal is the unit normal of the segment at Point, oriented towards
	// the ray's origin.
	Normal Vec2
	// Wind is the crossing's contribution to the winding number, +1 or -1.
	Wind int
	// T is the segment parameter of the crossing.
	T float64
}

const (
	// grazeTolerance is the sine of the angle between the curve and the ray
	// below which the curve is considered to run along the ray.
	grazeTolerance = 1e-9
	// grazeStep is the parameter distance on either side of a grazing hit
	// that is examined to decide whether the curve crosses the ray.
	grazeStep = 1e-3
)

// rayHit builds the hit for parameter t of seg, reporting false if the point
// lies at or behind the ray's origin, or if the curve touches the ray there
// without crossing it.
func rayHit(seg Segment, ray Ray, t float64) (RayHit, bool) {
	pt := seg.Eval(t)
	toHit := pt.Sub(ray.Origin)
	if toHit.Dot(ray.Direction) <= 0 {
		return RayHit{}, false
	}
	across := ray.Direction.Perpendicular()
	along := seg.Tangent(t).Normalize()
	side := across.Dot(along)
	if !(math.Abs(side) > grazeTolerance) {
		// The tangent is parallel to the ray, or zero. The curve crosses only
		// if its neighbourhood of t passes from one side of the ray to the
		// other.
		along = seg.Eval(min(t+grazeStep, 1)).Sub(seg.Eval(max(t-grazeStep, 0))).Normalize()
		side = across.Dot(along)
		if !(math.Abs(side) > grazeTolerance) {
			return RayHit{}, false
		}
	}
	perp := along.Perpendicular()
	normal := perp
	if perp.Dot(ray.Direction) > 0 {
		normal = perp.Negate()
	}
	wind := -1
	if side < 0 {
		wind = 1
	}
	return RayHit{
		Distance: toHit.Hypot(),
		Point:    pt,
		Normal:   normal,
		Wind:     wind,
		T:        t,
	}, true
}

// rayHits builds hits for the roots that lie in [0, 1].
func rayHits(seg Segment, ray Ray, roots []float64) []RayHit {
	var out []RayHit
	for _, t := range roots {
		if t < 0 || t > 1 {
			continue
		}
		if hit, ok := rayHit(seg, ray, t); ok {
			out = append(out, hit)
		}
	}
	return out
}

func windingOf(hits []RayHit) int {
	var wind int
	for _, hit := range hits {
		wind += hit.Wind
	}
	return wind
}
