package engine

import "raytracer/pkg/tracer"

// Presenter displays a traced frame
type Presenter interface {
	// Present draws fb stretched over a viewport of the given size
	Present(fb *tracer.Framebuffer, viewportWidth, viewportHeight int)

	// Close releases resources
	Close()
}
