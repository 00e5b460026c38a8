package tracer

import (
	"math"
	"time"

	"raytracer/internal/util"
)

// DefaultMaxDepth is the bounce budget given to every primary ray
const DefaultMaxDepth = 2

// FrameParams is the immutable per-frame snapshot of the live tunables
type FrameParams struct {
	Width          int
	Height         int
	CameraPosition Vector3
	FOV            float64 // vertical field of view in degrees
	LightPosition  Vector3
	MaxDepth       int
}

// FrameStats reports what rendering one frame cost
type FrameStats struct {
	Stats
	Pixels   int
	Duration time.Duration
}

// Framebuffer stores one traced color per pixel, row 0 at the top
type Framebuffer struct {
	Width  int
	Height int
	Pix    []Color
}

// NewFramebuffer allocates a width×height buffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// Resize reallocates the buffer only when the dimensions change
func (fb *Framebuffer) Resize(width, height int) {
	if fb.Width == width && fb.Height == height {
		return
	}
	fb.Width = width
	fb.Height = height
	fb.Pix = make([]Color, width*height)
}

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) Color {
	return fb.Pix[y*fb.Width+x]
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c Color) {
	fb.Pix[y*fb.Width+x] = c
}

// PrimaryRay builds the camera ray through the center of pixel (x, y).
// The camera looks down -Z.
func PrimaryRay(params FrameParams, x, y int) Ray {
	aspect := float64(params.Width) / float64(params.Height)
	tanFov := math.Tan(util.DegToRad(params.FOV) * 0.5)

	px := (2*(float64(x)+0.5)/float64(params.Width) - 1) * tanFov * aspect
	py := (1 - 2*(float64(y)+0.5)/float64(params.Height)) * tanFov

	return NewRay(params.CameraPosition, Vector3{X: px, Y: py, Z: -1}, params.MaxDepth)
}

// RenderFrame traces every pixel of fb serially. fb is resized to match params.
func RenderFrame(scene *Scene, tex Texture, params FrameParams, fb *Framebuffer) FrameStats {
	start := time.Now()
	fb.Resize(params.Width, params.Height)

	tracer := NewTracer(scene, Shader{Texture: tex, LightPosition: params.LightPosition})

	for y := 0; y < params.Height; y++ {
		for x := 0; x < params.Width; x++ {
			ray := PrimaryRay(params, x, y)
			fb.Set(x, y, tracer.Trace(ray, params.MaxDepth))
		}
	}

	return FrameStats{
		Stats:    tracer.Stats,
		Pixels:   params.Width * params.Height,
		Duration: time.Since(start),
	}
}
