package segment

import "golang.org/x/image/vector"

// rasterContext adapts a [vector.Rasterizer] to [Context].
type rasterContext struct {
	z     *vector.Rasterizer
	scale float64
}

// NewRasterContext returns a [Context] that accumulates path commands in z,
// scaling all coordinates by scale (pixels per unit).
//
// Call z.Draw to render the accumulated coverage mask.
func NewRasterContext(z *vector.Rasterizer, scale float64) Context {
	return rasterContext{z: z, scale: scale}
}

func (rc rasterContext) f(v float64) float32 {
	return float32(v * rc.scale)
}

func (rc rasterContext) MoveTo(x, y float64) {
	rc.z.MoveTo(rc.f(x), rc.f(y))
}

func (rc rasterContext) LineTo(x, y float64) {
	rc.z.LineTo(rc.f(x), rc.f(y))
}

func (rc rasterContext) QuadraticCurveTo(cpx, cpy, x, y float64) {
	rc.z.QuadTo(rc.f(cpx), rc.f(cpy), rc.f(x), rc.f(y))
}

func (rc rasterContext) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	rc.z.CubeTo(rc.f(cp1x), rc.f(cp1y), rc.f(cp2x), rc.f(cp2y), rc.f(x), rc.f(y))
}
