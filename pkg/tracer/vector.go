package tracer

import "math"

// Vector3 represents a point or direction in 3D space
type Vector3 struct {
	X, Y, Z float64
}

// Add adds two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub subtracts other from v
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mul scales a vector
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// Div divides every component by scalar
func (v Vector3) Div(scalar float64) Vector3 {
	return Vector3{X: v.X / scalar, Y: v.Y / scalar, Z: v.Z / scalar}
}

// Neg returns the opposite vector
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot calculates the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the euclidean length of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector pointing the same way as v.
// A zero vector yields NaN components; callers must not pass one.
func (v Vector3) Normalize() Vector3 {
	return v.Div(v.Length())
}

// Cross returns a × b. The operation is order dependent: Cross(a, b) == Cross(b, a).Neg().
func Cross(a, b Vector3) Vector3 {
	return Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Color is a linear RGB triplet. Components are nominally in [0, 1] but are
// never clamped while tracing.
type Color struct {
	R, G, B float64
}

// Add sums two colors
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Mul scales a color
func (c Color) Mul(scalar float64) Color {
	return Color{R: c.R * scalar, G: c.G * scalar, B: c.B * scalar}
}

// Blend mixes a and b, weighting b by w: a*(1-w) + b*w
func Blend(a, b Color, w float64) Color {
	return a.Mul(1 - w).Add(b.Mul(w))
}
