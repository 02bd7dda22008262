package scene

import (
	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/geometry"
	"github.com/df07/go-sphere-raycaster/pkg/renderer"
)

// EarthColor is the flat color of the default scene's sphere
var EarthColor = core.NewColor(0, 123, 255)

// NewDefaultScene creates the default scene: a single blue sphere five units
// in front of a camera at the origin, on a white background
func NewDefaultScene() *Scene {
	s := &Scene{
		CameraConfig: renderer.DefaultCameraConfig(),
		Shapes:       make(geometry.ShapeList, 0, 1),
		Background:   core.White,
		Visibility:   geometry.VisibilityLegacy,
	}

	earth := geometry.NewSphere(core.NewVec3(0, 0, -5), 2.0, EarthColor)
	s.AddShape(earth)

	return s
}
