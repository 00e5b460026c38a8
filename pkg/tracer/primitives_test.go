package tracer

import (
	"math"
	"testing"
)

var (
	_ Primitive = Sphere{}
	_ Primitive = Plane{}
)

func TestSphereIntersect(t *testing.T) {
	sphere := NewSphere(Vector3{Z: -5}, 1)

	tests := []struct {
		name      string
		ray       Ray
		expectHit bool
		expectT   float64
	}{
		{
			name:      "Aimed at center",
			ray:       NewRay(Vector3{}, Vector3{Z: -1}, 0),
			expectHit: true,
			expectT:   4, // distance 5 minus radius 1
		},
		{
			name:      "Aimed at center from the side",
			ray:       NewRay(Vector3{X: 3, Z: -5}, Vector3{X: -1}, 0),
			expectHit: true,
			expectT:   2,
		},
		{
			name:      "Miss",
			ray:       NewRay(Vector3{}, Vector3{Y: 1}, 0),
			expectHit: false,
		},
		{
			name:      "Exactly tangent",
			ray:       NewRay(Vector3{X: -5, Y: 1, Z: -5}, Vector3{X: 1}, 0),
			expectHit: false,
		},
		{
			name:      "Sphere behind origin",
			ray:       NewRay(Vector3{}, Vector3{Z: 1}, 0),
			expectHit: true,
			expectT:   -6,
		},
		{
			name:      "Origin at center",
			ray:       NewRay(Vector3{Z: -5}, Vector3{Y: 1}, 0),
			expectHit: true,
			expectT:   -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sphere.Intersect(tt.ray)
			if ok != tt.expectHit {
				t.Fatalf("expected hit=%v, got %v", tt.expectHit, ok)
			}
			if ok && !almostEqual(got, tt.expectT) {
				t.Errorf("expected t=%v, got %v", tt.expectT, got)
			}
		})
	}
}

func TestSphereIntersectNearlyTangent(t *testing.T) {
	sphere := NewSphere(Vector3{}, 1)
	ray := NewRay(Vector3{X: -5, Y: 0.9999}, Vector3{X: 1}, 0)

	got, ok := sphere.Intersect(ray)
	if !ok {
		t.Fatal("expected a grazing hit")
	}
	if math.Abs(got-5) > 0.05 {
		t.Errorf("expected t close to 5, got %v", got)
	}
}

func TestSphereNormal(t *testing.T) {
	sphere := NewSphere(Vector3{X: 1, Y: 1, Z: 1}, 2)
	n := sphere.NormalAt(Vector3{X: 1, Y: 3, Z: 1})
	if !vecEqual(n, Vector3{Y: 1}) {
		t.Errorf("expected +Y, got %v", n)
	}
}

func TestPlaneIntersect(t *testing.T) {
	floor := NewPlane(Vector3{Y: -2}, Vector3{Y: 1})

	tests := []struct {
		name      string
		ray       Ray
		expectHit bool
		expectT   float64
	}{
		{"Straight down", NewRay(Vector3{}, Vector3{Y: -1}, 0), true, 2},
		{"Oblique", NewRay(Vector3{}, Vector3{Y: -1, Z: -1}, 0), true, 2 * math.Sqrt2},
		{"From below", NewRay(Vector3{Y: -5}, Vector3{Y: 1}, 0), true, 3},
		{"Parallel", NewRay(Vector3{}, Vector3{X: 1}, 0), false, 0},
		{"Nearly parallel", NewRay(Vector3{}, Vector3{X: 1, Y: -1e-8}, 0), false, 0},
		{"Pointing away", NewRay(Vector3{}, Vector3{Y: 1}, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := floor.Intersect(tt.ray)
			if ok != tt.expectHit {
				t.Fatalf("expected hit=%v, got %v (t=%v)", tt.expectHit, ok, got)
			}
			if ok && !almostEqual(got, tt.expectT) {
				t.Errorf("expected t=%v, got %v", tt.expectT, got)
			}
		})
	}
}

func TestNewPlaneNormalizesNormal(t *testing.T) {
	p := NewPlane(Vector3{}, Vector3{Y: -7})
	if !vecEqual(p.Normal, Vector3{Y: -1}) {
		t.Errorf("expected (0,-1,0), got %v", p.Normal)
	}
	if !vecEqual(p.NormalAt(Vector3{X: 100, Z: -3}), p.Normal) {
		t.Errorf("plane normal should not depend on the point")
	}
}

func TestSurfaceProperties(t *testing.T) {
	sphere := NewSphere(Vector3{}, 1)
	plane := NewPlane(Vector3{}, Vector3{Y: 1})

	if sphere.Kind() != KindSphere || sphere.Kind().String() != "sphere" {
		t.Errorf("unexpected sphere kind %v", sphere.Kind())
	}
	if plane.Kind() != KindPlane || plane.Kind().String() != "plane" {
		t.Errorf("unexpected plane kind %v", plane.Kind())
	}
	if sphere.Reflectivity() != 0.4 || plane.Reflectivity() != 0.1 {
		t.Errorf("unexpected reflectivity: sphere %v, plane %v", sphere.Reflectivity(), plane.Reflectivity())
	}
	if sphere.ShininessOf(Hit{}) != 50 || plane.ShininessOf(Hit{}) != 32 {
		t.Errorf("unexpected shininess: sphere %v, plane %v", sphere.ShininessOf(Hit{}), plane.ShininessOf(Hit{}))
	}

	red := Color{R: 1, G: 0.1, B: 0.1}
	if got := plane.SurfaceColorAt(Hit{}, SolidTexture{G: 1}); got != red {
		t.Errorf("plane should ignore the texture, got %v", got)
	}
}

func TestSphereSurfaceColorUsesTexture(t *testing.T) {
	// 2x1 texture: red | blue
	tex, err := NewImageTexture(2, 1, 3, []byte{255, 0, 0, 0, 0, 255})
	if err != nil {
		t.Fatal(err)
	}
	sphere := NewSphere(Vector3{}, 1)

	// +X maps to u = 0.5, the right texel
	if got := sphere.SurfaceColorAt(Hit{Normal: Vector3{X: 1}}, tex); got != (Color{B: 1}) {
		t.Errorf("+X: expected blue, got %v", got)
	}
	// -X maps to u = 0, the left texel
	if got := sphere.SurfaceColorAt(Hit{Normal: Vector3{X: -1}}, tex); got != (Color{R: 1}) {
		t.Errorf("-X: expected red, got %v", got)
	}
}

func TestSphericalUV(t *testing.T) {
	tests := []struct {
		name   string
		normal Vector3
		u, v   float64
	}{
		{"+X", Vector3{X: 1}, 0.5, 0.5},
		{"+Z", Vector3{Z: 1}, 0.25, 0.5},
		{"North pole", Vector3{Y: 1}, 0.5, 1},
		{"South pole", Vector3{Y: -1}, 0.5, 0},
		{"Slightly past the pole", Vector3{Y: 1 + 1e-12}, 0.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := SphericalUV(tt.normal)
			if !almostEqual(u, tt.u) || !almostEqual(v, tt.v) {
				t.Errorf("expected (%v, %v), got (%v, %v)", tt.u, tt.v, u, v)
			}
		})
	}
}
