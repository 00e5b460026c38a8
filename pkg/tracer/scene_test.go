package tracer

import "testing"

func TestNewDefaultScene(t *testing.T) {
	scene := NewDefaultScene()

	if len(scene.Spheres) != 1 || len(scene.Planes) != 2 {
		t.Fatalf("expected 1 sphere and 2 planes, got %d and %d", len(scene.Spheres), len(scene.Planes))
	}
	if s := scene.Spheres[0]; s.Center != (Vector3{Z: -5}) || s.Radius != 1 {
		t.Errorf("unexpected sphere %+v", s)
	}
	if floor := scene.Planes[0]; floor.Point.Y != -2 || floor.Normal != (Vector3{Y: 1}) {
		t.Errorf("unexpected floor %+v", floor)
	}
	if ceiling := scene.Planes[1]; ceiling.Point.Y != 1 || ceiling.Normal != (Vector3{Y: -1}) {
		t.Errorf("unexpected ceiling %+v", ceiling)
	}
}

func TestSceneIntersectDefault(t *testing.T) {
	scene := NewDefaultScene()
	camera := Vector3{Z: 2}

	tests := []struct {
		name         string
		direction    Vector3
		kind         Kind
		t            float64
		normal       Vector3
		reflectivity float64
	}{
		{"Sphere ahead", Vector3{Z: -1}, KindSphere, 6, Vector3{Z: 1}, 0.4},
		{"Floor below", Vector3{Y: -1}, KindPlane, 2, Vector3{Y: 1}, 0.1},
		{"Ceiling above", Vector3{Y: 1}, KindPlane, 1, Vector3{Y: -1}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := scene.Intersect(NewRay(camera, tt.direction, 0))
			if !ok {
				t.Fatal("expected a hit")
			}
			if hit.Kind() != tt.kind {
				t.Errorf("expected %v, got %v", tt.kind, hit.Kind())
			}
			if !almostEqual(hit.T, tt.t) {
				t.Errorf("expected t=%v, got %v", tt.t, hit.T)
			}
			if !vecEqual(hit.Normal, tt.normal) {
				t.Errorf("expected normal %v, got %v", tt.normal, hit.Normal)
			}
			if hit.Reflectivity() != tt.reflectivity {
				t.Errorf("expected reflectivity %v, got %v", tt.reflectivity, hit.Reflectivity())
			}
			if !vecEqual(hit.Point, camera.Add(tt.direction.Normalize().Mul(tt.t))) {
				t.Errorf("hit point %v is not at t along the ray", hit.Point)
			}
		})
	}
}

func TestSceneIntersectNearest(t *testing.T) {
	ray := NewRay(Vector3{}, Vector3{Z: -1}, 0)

	tests := []struct {
		name   string
		planeZ float64
		kind   Kind
		t      float64
	}{
		{"Plane cuts sphere behind entry point", -4.5, KindSphere, 4},
		{"Plane in front of sphere", -3.5, KindPlane, 3.5},
		{"Plane tangent to entry point", -4, KindSphere, 4}, // equal t: spheres are tested first
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene := NewScene()
			scene.AddPlane(NewPlane(Vector3{Z: tt.planeZ}, Vector3{Z: 1}))
			scene.AddSphere(NewSphere(Vector3{Z: -5}, 1))

			hit, ok := scene.Intersect(ray)
			if !ok {
				t.Fatal("expected a hit")
			}
			if hit.Kind() != tt.kind {
				t.Errorf("expected %v, got %v", tt.kind, hit.Kind())
			}
			if !almostEqual(hit.T, tt.t) {
				t.Errorf("expected t=%v, got %v", tt.t, hit.T)
			}
		})
	}
}

func TestSceneIntersectFirstSphereWinsTies(t *testing.T) {
	scene := NewScene()
	scene.AddSphere(NewSphere(Vector3{Z: -5}, 1))
	scene.AddSphere(NewSphere(Vector3{Z: -5.5}, 1.5)) // same entry point, z = -4

	hit, ok := scene.Intersect(NewRay(Vector3{}, Vector3{Z: -1}, 0))
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Object != Primitive(scene.Spheres[0]) {
		t.Errorf("expected the first sphere, got %+v", hit.Object)
	}
}

func TestSceneIntersectMiss(t *testing.T) {
	scene := NewScene()
	scene.AddPlane(NewPlane(Vector3{Y: -2}, Vector3{Y: 1}))
	scene.AddSphere(NewSphere(Vector3{Z: -5}, 1))

	if hit, ok := scene.Intersect(NewRay(Vector3{}, Vector3{X: 1}, 0)); ok {
		t.Errorf("expected no hit, got %+v", hit)
	}
	if _, ok := NewScene().Intersect(NewRay(Vector3{}, Vector3{Z: -1}, 0)); ok {
		t.Error("empty scene should never report a hit")
	}
}
