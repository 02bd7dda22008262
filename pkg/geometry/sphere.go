package geometry

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-sphere-raycaster/pkg/core"
)

// Sphere represents a sphere shape with a flat color
type Sphere struct {
	Center core.Vec3
	Radius float32
	Color  core.Color
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, color core.Color) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Color:  color,
	}
}

// roots solves |O + tD - C|^2 = r^2 for t and returns the near and far roots.
// ok is false when the discriminant is negative.
func (s *Sphere) roots(ray core.Ray) (near, far float32, ok bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sqrtD := math32.Sqrt(discriminant)
	return (-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a), true
}

// Intersect reports the near root whenever the ray's line meets the sphere.
// The sign of t is not checked, so spheres behind the origin count as hits.
// A zero-length direction produces a non-finite t rather than a miss.
func (s *Sphere) Intersect(ray core.Ray) (float32, bool) {
	near, _, ok := s.roots(ray)
	return near, ok
}

// Hit tests if a ray intersects with the sphere within [tMin, tMax].
// The near root is preferred and the far root is tried when the near one is
// out of range. An unbounded range reproduces Intersect exactly.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32) (HitRecord, bool) {
	near, far, ok := s.roots(ray)
	if !ok {
		return HitRecord{}, false
	}

	root := near
	if root < tMin || root > tMax {
		root = far
		if root < tMin || root > tMax {
			return HitRecord{}, false
		}
	}

	return HitRecord{T: root, Color: s.Color}, true
}
