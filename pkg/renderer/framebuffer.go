package renderer

import (
	"image"

	"github.com/df07/go-sphere-raycaster/pkg/core"
)

// FrameBuffer is a row-major RGB pixel grid, 3 bytes per pixel, origin at the top-left
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrameBuffer allocates a width x height buffer filled with the background color
func NewFrameBuffer(width, height int, background core.Color) *FrameBuffer {
	pix := make([]byte, width*height*3)
	for i := 0; i < len(pix); i += 3 {
		pix[i] = background.R
		pix[i+1] = background.G
		pix[i+2] = background.B
	}
	return &FrameBuffer{Width: width, Height: height, Pix: pix}
}

// offset returns the index of the red byte for pixel (x, y)
func (fb *FrameBuffer) offset(x, y int) int {
	return (y*fb.Width + x) * 3
}

// Set writes a color at pixel (x, y)
func (fb *FrameBuffer) Set(x, y int, c core.Color) {
	i := fb.offset(x, y)
	fb.Pix[i] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
}

// At returns the color at pixel (x, y)
func (fb *FrameBuffer) At(x, y int) core.Color {
	i := fb.offset(x, y)
	return core.Color{R: fb.Pix[i], G: fb.Pix[i+1], B: fb.Pix[i+2]}
}

// ToImage converts the buffer to an opaque *image.RGBA
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.At(x, y).ToRGBA())
		}
	}
	return img
}
