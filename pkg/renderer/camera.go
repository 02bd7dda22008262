package renderer

import (
	"github.com/df07/go-sphere-raycaster/pkg/core"
)

// CameraConfig describes a pinhole camera looking down the negative z axis
type CameraConfig struct {
	Origin         core.Vec3 // Eye position
	ViewportHeight float32   // Height of the view plane in world units
	FocalLength    float32   // Distance from the origin to the view plane
}

// DefaultCameraConfig returns a camera at the world origin with a 2-unit tall viewport at z=-1
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin         core.Vec3
	width, height  int
	viewportWidth  float32
	viewportHeight float32
	focalLength    float32
}

// NewCamera creates a camera for an image of the given size.
// The viewport width follows the image aspect ratio.
func NewCamera(config CameraConfig, width, height int) *Camera {
	return &Camera{
		origin:         config.Origin,
		width:          width,
		height:         height,
		viewportWidth:  config.ViewportHeight * (float32(width) / float32(height)),
		viewportHeight: config.ViewportHeight,
		focalLength:    config.FocalLength,
	}
}

// ViewportWidth returns the width of the view plane in world units
func (c *Camera) ViewportWidth() float32 {
	return c.viewportWidth
}

// GetRay generates a normalized ray through the center of pixel (x, y).
// Row 0 maps to the negative-y edge of the view plane.
func (c *Camera) GetRay(x, y int) core.Ray {
	u := (float32(x) + 0.5) / float32(c.width)
	v := (float32(y) + 0.5) / float32(c.height)

	direction := core.NewVec3(
		u*c.viewportWidth-c.viewportWidth/2,
		v*c.viewportHeight-c.viewportHeight/2,
		-c.focalLength,
	).Normalize()

	return core.NewRay(c.origin, direction)
}
