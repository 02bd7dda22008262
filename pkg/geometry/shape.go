package geometry

import "github.com/df07/go-sphere-raycaster/pkg/core"

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T     float32    // Parameter t along the ray
	Color core.Color // Flat color of the object that was hit
}

// ShapeList holds the objects in a scene and reports the nearest hit among them
type ShapeList []Shape

// Hit returns the nearest hit across all shapes within [tMin, tMax]
func (l ShapeList) Hit(ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
	var closest HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
