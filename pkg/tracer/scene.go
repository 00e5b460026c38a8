package tracer

import "math"

// Hit describes the nearest intersection of a ray with the scene
type Hit struct {
	T      float64
	Point  Vector3
	Normal Vector3
	Object Primitive
}

// Kind reports which primitive was hit
func (h Hit) Kind() Kind {
	return h.Object.Kind()
}

// Reflectivity of the hit surface
func (h Hit) Reflectivity() float64 {
	return h.Object.Reflectivity()
}

// Scene holds the geometry traced in one frame. It is not modified while a
// frame is being rendered.
type Scene struct {
	Spheres []Sphere
	Planes  []Plane
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{}
}

// NewDefaultScene builds the fixed room: one sphere between a floor and a ceiling
func NewDefaultScene() *Scene {
	scene := NewScene()
	scene.AddSphere(NewSphere(Vector3{X: 0, Y: 0, Z: -5}, 1))

	scene.AddPlane(NewPlane(Vector3{X: 0, Y: -2, Z: 0}, Vector3{X: 0, Y: 1, Z: 0})) // floor
	scene.AddPlane(NewPlane(Vector3{X: 0, Y: 1, Z: 0}, Vector3{X: 0, Y: -1, Z: 0})) // ceiling
	return scene
}

// AddSphere appends a sphere
func (s *Scene) AddSphere(sphere Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}

// AddPlane appends a plane
func (s *Scene) AddPlane(plane Plane) {
	s.Planes = append(s.Planes, plane)
}

// Intersect finds the nearest hit. Spheres are tested before planes, each
// group in insertion order; on equal distance the first primitive tested wins.
func (s *Scene) Intersect(ray Ray) (Hit, bool) {
	closest := math.MaxFloat64
	var nearest Primitive

	for i := range s.Spheres {
		if t, ok := s.Spheres[i].Intersect(ray); ok && t < closest {
			closest = t
			nearest = s.Spheres[i]
		}
	}

	for i := range s.Planes {
		if t, ok := s.Planes[i].Intersect(ray); ok && t < closest {
			closest = t
			nearest = s.Planes[i]
		}
	}

	if nearest == nil {
		return Hit{}, false
	}

	point := ray.At(closest)
	return Hit{
		T:      closest,
		Point:  point,
		Normal: nearest.NormalAt(point),
		Object: nearest,
	}, true
}
