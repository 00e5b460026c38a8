package tracer

var (
	// BackgroundColor is returned for rays that leave the scene
	BackgroundColor = Color{R: 0.3, G: 0.3, B: 0.3}
	// ExhaustedColor is returned for rays whose depth is beyond the allowed maximum
	ExhaustedColor = Color{R: 0.1, G: 0.1, B: 0.1}
)

// ReflectionBias offsets reflected rays off the surface to avoid re-hitting it
const ReflectionBias = 1e-4

// Stats counts the work done by a Tracer
type Stats struct {
	Rays   int
	Hits   int
	Misses int
}

// Tracer combines local shading with recursively traced mirror reflections
type Tracer struct {
	Scene  *Scene
	Shader Shader
	Stats  Stats
}

// NewTracer creates a tracer for one frame
func NewTracer(scene *Scene, shader Shader) *Tracer {
	return &Tracer{Scene: scene, Shader: shader}
}

// Trace returns the color seen along ray. Each bounce lowers both the ray
// depth and maxDepth by one, so recursion ends after ray.Depth bounces.
func (t *Tracer) Trace(ray Ray, maxDepth int) Color {
	t.Stats.Rays++

	if ray.Depth > maxDepth {
		return ExhaustedColor
	}

	hit, ok := t.Scene.Intersect(ray)
	if !ok {
		t.Stats.Misses++
		return BackgroundColor
	}
	t.Stats.Hits++

	local := t.Shader.Shade(ray, hit)
	if ray.Depth == 0 {
		return local
	}

	reflectionDir := ray.Direction.Sub(hit.Normal.Mul(2 * ray.Direction.Dot(hit.Normal)))
	reflected := NewRay(hit.Point.Add(reflectionDir.Mul(ReflectionBias)), reflectionDir, ray.Depth-1)

	return Blend(local, t.Trace(reflected, maxDepth-1), hit.Reflectivity())
}
