package tracer

// Ray is a half-line with a remaining reflection budget.
// Fields are not modified after construction.
type Ray struct {
	Origin    Vector3
	Direction Vector3 // always unit length when built with NewRay
	Depth     int     // bounces left
}

// NewRay creates a ray; direction is normalized and must be non-zero.
func NewRay(origin, direction Vector3, depth int) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		Depth:     depth,
	}
}

// At returns the point origin + direction*t
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
