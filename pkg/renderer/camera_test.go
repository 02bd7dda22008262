package renderer

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raycaster/pkg/core"
)

func TestCameraViewportFollowsAspectRatio(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		expected      float32
	}{
		{"4:3", 800, 600, 2.0 * (800.0 / 600.0)},
		{"square", 400, 400, 2.0},
		{"portrait", 300, 600, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(DefaultCameraConfig(), tt.width, tt.height)
			if math32.Abs(camera.ViewportWidth()-tt.expected) > 1e-6 {
				t.Errorf("Expected viewport width %f, got %f", tt.expected, camera.ViewportWidth())
			}
		})
	}
}

func TestCameraGetRay_Normalized(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 800, 600)

	pixels := [][2]int{{0, 0}, {799, 0}, {0, 599}, {799, 599}, {400, 300}, {123, 456}}
	for _, p := range pixels {
		ray := camera.GetRay(p[0], p[1])
		if length := ray.Direction.Length(); math32.Abs(length-1) > 1e-5 {
			t.Errorf("Pixel %v: expected unit direction, got length %f", p, length)
		}
		if ray.Origin != core.NewVec3(0, 0, 0) {
			t.Errorf("Pixel %v: expected origin at camera, got %v", p, ray.Origin)
		}
		if ray.Direction.Z >= 0 {
			t.Errorf("Pixel %v: expected ray to look down -z, got %v", p, ray.Direction)
		}
	}
}

func TestCameraGetRay_PixelCenters(t *testing.T) {
	// 2x2 image with a 2x2 viewport: pixel centers sit at +-0.5 on the view plane
	camera := NewCamera(DefaultCameraConfig(), 2, 2)

	tests := []struct {
		x, y   int
		dx, dy float32
	}{
		{0, 0, -0.5, -0.5},
		{1, 0, 0.5, -0.5},
		{0, 1, -0.5, 0.5},
		{1, 1, 0.5, 0.5},
	}

	for _, tt := range tests {
		ray := camera.GetRay(tt.x, tt.y)
		expected := core.NewVec3(tt.dx, tt.dy, -1).Normalize()
		if ray.Direction.Subtract(expected).Length() > 1e-6 {
			t.Errorf("Pixel (%d,%d): expected %v, got %v", tt.x, tt.y, expected, ray.Direction)
		}
	}
}

func TestCameraGetRay_UsesConfiguredOrigin(t *testing.T) {
	config := DefaultCameraConfig()
	config.Origin = core.NewVec3(1, 2, 3)
	camera := NewCamera(config, 10, 10)

	ray := camera.GetRay(5, 5)
	if ray.Origin != config.Origin {
		t.Errorf("Expected origin %v, got %v", config.Origin, ray.Origin)
	}
}
