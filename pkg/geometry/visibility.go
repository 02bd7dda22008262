package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Visibility selects which intersections along a ray count as hits
type Visibility int

const (
	// VisibilityLegacy accepts the near root of any real intersection,
	// including ones behind the ray origin.
	VisibilityLegacy Visibility = iota
	// VisibilityForward only accepts intersections at t >= 0, falling back
	// to the far root when the origin is inside a shape.
	VisibilityForward
)

// Range returns the [tMin, tMax] interval passed to Shape.Hit
func (v Visibility) Range() (tMin, tMax float32) {
	if v == VisibilityForward {
		return 0, math32.Inf(1)
	}
	return math32.Inf(-1), math32.Inf(1)
}

func (v Visibility) String() string {
	switch v {
	case VisibilityLegacy:
		return "legacy"
	case VisibilityForward:
		return "forward"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}
