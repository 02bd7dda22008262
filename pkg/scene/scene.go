package scene

import (
	"github.com/df07/go-sphere-raycaster/pkg/core"
	"github.com/df07/go-sphere-raycaster/pkg/geometry"
	"github.com/df07/go-sphere-raycaster/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	CameraConfig renderer.CameraConfig
	Shapes       geometry.ShapeList  // Objects in the scene
	Background   core.Color          // Color of pixels whose ray hits nothing
	Visibility   geometry.Visibility // Which intersections count as hits
}

// GetCameraConfig implements renderer.Scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetShapes implements renderer.Scene
func (s *Scene) GetShapes() geometry.ShapeList {
	return s.Shapes
}

// GetBackgroundColor implements renderer.Scene
func (s *Scene) GetBackgroundColor() core.Color {
	return s.Background
}

// GetVisibility implements renderer.Scene
func (s *Scene) GetVisibility() geometry.Visibility {
	return s.Visibility
}

// AddShape appends a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// GetPrimitiveCount returns the total number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
