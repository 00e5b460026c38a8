package tracer

import "math"

// Kind identifies which primitive produced a hit
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	}
	return "unknown"
}

// Surface is the shading capability set every primitive provides
type Surface interface {
	// SurfaceColorAt returns the unlit base color at the hit
	SurfaceColorAt(hit Hit, tex Texture) Color
	// ShininessOf returns the specular exponent at the hit
	ShininessOf(hit Hit) float64
	// Reflectivity is the fraction of the final color taken from the mirror bounce
	Reflectivity() float64
}

// Primitive is a piece of scene geometry. The set of implementations is
// closed to this package: Sphere and Plane.
type Primitive interface {
	Surface
	Intersect(ray Ray) (float64, bool)
	NormalAt(point Vector3) Vector3
	Kind() Kind

	primitive()
}

const (
	sphereReflectivity = 0.4
	sphereShininess    = 50.0

	planeReflectivity = 0.1
	planeShininess    = 32.0

	// parallelEpsilon is the smallest |normal·direction| a plane test accepts
	parallelEpsilon = 1e-6
)

// planeColor is the flat base color of every plane
var planeColor = Color{R: 1.0, G: 0.1, B: 0.1}

// Sphere is a textured ball
type Sphere struct {
	Center Vector3
	Radius float64
}

// NewSphere creates a sphere; radius must be positive
func NewSphere(center Vector3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Intersect solves a·t² + b·t + c = 0 and returns the nearer root.
// The root is not required to be positive, so a sphere behind the origin
// or around it still reports a (negative) hit.
func (s Sphere) Intersect(ray Ray) (float64, bool) {
	oc := ray.Origin.Sub(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant <= 0 {
		return 0, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2.0 * a)
	t2 := (-b + sqrtDisc) / (2.0 * a)
	return math.Min(t1, t2), true
}

// NormalAt returns the outward unit normal at a point on the surface
func (s Sphere) NormalAt(point Vector3) Vector3 {
	return point.Sub(s.Center).Normalize()
}

// Kind identifies the primitive as a sphere
func (s Sphere) Kind() Kind { return KindSphere }

// SurfaceColorAt samples tex with a spherical projection of the hit normal
func (s Sphere) SurfaceColorAt(hit Hit, tex Texture) Color {
	u, v := SphericalUV(hit.Normal)
	return tex.Sample(u, v)
}

// ShininessOf returns the specular exponent of the sphere
func (s Sphere) ShininessOf(Hit) float64 { return sphereShininess }

// Reflectivity returns the weight of the reflected color
func (s Sphere) Reflectivity() float64 { return sphereReflectivity }

func (Sphere) primitive() {}

// Plane is an infinite flat surface
type Plane struct {
	Point  Vector3
	Normal Vector3 // unit length when built with NewPlane
}

// NewPlane creates a plane through point; normal is normalized and must be non-zero
func NewPlane(point, normal Vector3) Plane {
	return Plane{Point: point, Normal: normal.Normalize()}
}

// Intersect reports the distance along the ray to the plane.
// Near-parallel rays and hits behind the origin are misses.
func (p Plane) Intersect(ray Ray) (float64, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if math.Abs(denom) <= parallelEpsilon {
		return 0, false
	}

	t := p.Point.Sub(ray.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the plane normal; it is the same everywhere
func (p Plane) NormalAt(Vector3) Vector3 {
	return p.Normal
}

// Kind identifies the primitive as a plane
func (p Plane) Kind() Kind { return KindPlane }

// SurfaceColorAt returns the plane's solid color; the texture is unused
func (p Plane) SurfaceColorAt(Hit, Texture) Color { return planeColor }

// ShininessOf returns the specular exponent of the plane
func (p Plane) ShininessOf(Hit) float64 { return planeShininess }

// Reflectivity returns the weight of the reflected color
func (p Plane) Reflectivity() float64 { return planeReflectivity }

func (Plane) primitive() {}

// SphericalUV maps a unit normal to texture coordinates in [0, 1]
func SphericalUV(normal Vector3) (u, v float64) {
	// rounding can push |y| just past 1, where Asin is NaN
	y := math.Max(-1, math.Min(1, normal.Y))

	u = 1.0 - (0.5 + math.Atan2(normal.Z, normal.X)/(2.0*math.Pi))
	v = 1.0 - (0.5 - math.Asin(y)/math.Pi)
	return u, v
}
