package geometry

import "github.com/df07/go-sphere-raycaster/pkg/core"

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float32) (HitRecord, bool)
}
