package tracer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// toByte clamps a channel to [0, 1] and quantizes it
func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// RGB8 packs the buffer as tightly packed 8-bit RGB, rows bottom to top as
// OpenGL expects for texture uploads
func (fb *Framebuffer) RGB8() []byte {
	out := make([]byte, 0, fb.Width*fb.Height*3)
	for y := fb.Height - 1; y >= 0; y-- {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			out = append(out, toByte(c.R), toByte(c.G), toByte(c.B))
		}
	}
	return out
}

// ToRGBA converts the buffer to an image, clamping every channel to [0, 1]
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: 255})
		}
	}
	return img
}

// SavePNG writes the buffer to path, creating parent directories
func SavePNG(fb *Framebuffer, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}

	if err := png.Encode(file, fb.ToRGBA()); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return file.Close()
}
