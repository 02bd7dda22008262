package renderer

import (
	"image/color"
	"testing"

	"github.com/df07/go-sphere-raycaster/pkg/core"
)

func TestNewFrameBuffer_FilledWithBackground(t *testing.T) {
	fb := NewFrameBuffer(4, 3, core.White)

	if len(fb.Pix) != 4*3*3 {
		t.Fatalf("Expected %d bytes, got %d", 4*3*3, len(fb.Pix))
	}
	for i, b := range fb.Pix {
		if b != 255 {
			t.Fatalf("Expected byte %d to be 255, got %d", i, b)
		}
	}
}

func TestFrameBuffer_SetWritesOnlyOnePixel(t *testing.T) {
	fb := NewFrameBuffer(3, 2, core.White)
	blue := core.NewColor(0, 123, 255)

	fb.Set(2, 1, blue)

	if got := fb.At(2, 1); got != blue {
		t.Errorf("Expected %v at (2,1), got %v", blue, got)
	}
	// (2,1) lives at offset (1*3+2)*3 = 15
	if fb.Pix[15] != 0 || fb.Pix[16] != 123 || fb.Pix[17] != 255 {
		t.Errorf("Unexpected bytes at offset 15: %v", fb.Pix[15:18])
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 1 {
				continue
			}
			if got := fb.At(x, y); got != core.White {
				t.Errorf("Expected background at (%d,%d), got %v", x, y, got)
			}
		}
	}
}

func TestFrameBuffer_ToImage(t *testing.T) {
	fb := NewFrameBuffer(2, 2, core.White)
	fb.Set(0, 1, core.NewColor(10, 20, 30))

	img := fb.ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("Expected (10,20,30,255), got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white, got %v", got)
	}
}

func TestNewFrameBuffer_Empty(t *testing.T) {
	fb := NewFrameBuffer(0, 5, core.White)
	if len(fb.Pix) != 0 {
		t.Errorf("Expected empty buffer, got %d bytes", len(fb.Pix))
	}
}
