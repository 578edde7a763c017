package geometry

import (
	"math"

	"github.com/emildiskin/raytracer/pkg/core"
)

// InfinitePlane represents an unbounded plane satisfying P·N = offset
type InfinitePlane struct {
	Normal core.Vec3 // Unit normal
	Offset float64   // Signed distance of the plane from the origin along the normal

	materialIndex int
}

// NewInfinitePlane creates a new infinite plane, normalizing the given normal
func NewInfinitePlane(normal core.Vec3, offset float64, materialIndex int) *InfinitePlane {
	return &InfinitePlane{
		Normal:        normal.Normalize(),
		Offset:        offset,
		materialIndex: materialIndex,
	}
}

// MaterialIndex returns the plane's 1-based material index
func (p *InfinitePlane) MaterialIndex() int {
	return p.materialIndex
}

// Intersect tests if a ray intersects with the plane
func (p *InfinitePlane) Intersect(ray core.Ray) (*HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// A ray parallel to the plane never intersects it
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := (p.Offset - ray.Origin.Dot(p.Normal)) / denominator
	if t <= HitEpsilon {
		return nil, false
	}

	// The normal keeps the plane's own orientation. Hits from the back side
	// see a normal facing away from the ray.
	return &HitRecord{
		Surface:  p,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Distance: t,
	}, true
}
