package tracer

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
)

// Texture supplies a base color for a (u, v) coordinate
type Texture interface {
	Sample(u, v float64) Color
}

// ImageTexture is a decoded image sampled with nearest-neighbor lookup
type ImageTexture struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte // row-major, Channels bytes per pixel
}

// NewImageTexture wraps raw samples. At least three channels are required.
func NewImageTexture(width, height, channels int, pix []byte) (*ImageTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture is empty: %dx%d", width, height)
	}
	if channels < 3 {
		return nil, fmt.Errorf("texture needs at least 3 channels, got %d", channels)
	}
	if want := width * height * channels; len(pix) < want {
		return nil, fmt.Errorf("texture buffer too short: have %d bytes, want %d", len(pix), want)
	}

	return &ImageTexture{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      pix,
	}, nil
}

// TextureFromImage converts any decoded image to a texture with straight
// (non-premultiplied) RGBA samples
func TextureFromImage(img image.Image) (*ImageTexture, error) {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	return NewImageTexture(bounds.Dx(), bounds.Dy(), 4, nrgba.Pix)
}

// LoadTexture decodes a PNG or JPEG file
func LoadTexture(path string) (*ImageTexture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}

	return TextureFromImage(img)
}

// Sample returns the texel nearest to (u, v). Coordinates outside [0, 1]
// are clamped to the border texels.
func (t *ImageTexture) Sample(u, v float64) Color {
	x := clampIndex(int(u*float64(t.Width)), t.Width)
	y := clampIndex(int(v*float64(t.Height)), t.Height)

	i := (y*t.Width + x) * t.Channels
	return Color{
		R: float64(t.Pix[i]) / 255.0,
		G: float64(t.Pix[i+1]) / 255.0,
		B: float64(t.Pix[i+2]) / 255.0,
	}
}

func clampIndex(i, n int) int {
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

// SolidTexture returns the same color everywhere
type SolidTexture Color

// Sample ignores the coordinates
func (s SolidTexture) Sample(float64, float64) Color {
	return Color(s)
}
