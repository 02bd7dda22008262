package core

import "image/color"

// Color is a flat 8-bit RGB color with no alpha channel
type Color struct {
	R, G, B uint8
}

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// White is the default background color
var White = Color{255, 255, 255}

// ToRGBA converts the color to an opaque color.RGBA
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
