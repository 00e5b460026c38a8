package tracer

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		in  float64
		out uint8
	}{
		{math.NaN(), 0},
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.7, 255},
	}

	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.out {
			t.Errorf("toByte(%v): expected %d, got %d", tt.in, tt.out, got)
		}
	}
}

func TestRGB8FlipsRows(t *testing.T) {
	fb := NewFramebuffer(1, 2)
	fb.Set(0, 0, Color{R: 1})    // top
	fb.Set(0, 1, Color{B: 1.5}) // bottom, out of range

	got := fb.RGB8()
	expected := []byte{0, 0, 255, 255, 0, 0}
	if string(got) != string(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestSavePNG(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Set(0, 0, Color{R: 2, G: -1, B: 0.5})
	fb.Set(1, 0, BackgroundColor)

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := SavePNG(fb, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("snapshot is not a valid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Fatalf("unexpected size %v", b)
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 128 || a>>8 != 255 {
		t.Errorf("expected clamped (255,0,128,255), got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
}
