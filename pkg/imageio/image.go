package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"os"
	"path/filepath"
)

// ErrBufferSize is returned when an RGB buffer does not hold width*height*3 bytes
var ErrBufferSize = errors.New("rgb buffer size does not match image dimensions")

// WritePNG encodes a packed row-major RGB buffer as an 8-bit PNG at path.
// Missing parent directories are created.
func WritePNG(path string, width, height int, rgb []byte) error {
	if width < 0 || height < 0 || len(rgb) != width*height*3 {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrBufferSize, width, height, max(0, width*height*3), len(rgb))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(rgb); i, j = i+3, j+4 {
		img.Pix[j] = rgb[i]
		img.Pix[j+1] = rgb[i+1]
		img.Pix[j+2] = rgb[i+2]
		img.Pix[j+3] = 255
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}

// ReadRGB loads a PNG or JPEG image and returns it as a packed row-major RGB buffer
func ReadRGB(path string) (width, height int, rgb []byte, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width = bounds.Dx()
	height = bounds.Dy()
	rgb = make([]byte, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.NRGBA)
			i := (y*width + x) * 3
			rgb[i] = c.R
			rgb[i+1] = c.G
			rgb[i+2] = c.B
		}
	}

	return width, height, rgb, nil
}
