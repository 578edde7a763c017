package geometry

import (
	"github.com/emildiskin/raytracer/pkg/core"
)

const (
	// HitEpsilon is the minimum distance for a valid intersection. Hits
	// closer than this are treated as the ray re-detecting its own origin
	// surface. Ray origins offset by the same amount when leaving a surface.
	HitEpsilon = 1e-4

	// parallelEpsilon is the threshold below which a direction component
	// counts as parallel to a plane or slab.
	parallelEpsilon = 1e-6
)

// Surface is a primitive that rays can intersect
type Surface interface {
	// Intersect tests the ray against the surface and returns the nearest
	// valid hit, or false if the ray misses
	Intersect(ray core.Ray) (*HitRecord, bool)

	// MaterialIndex returns the surface's 1-based index into the scene's
	// material list
	MaterialIndex() int
}

// HitRecord describes a single ray-surface intersection. Solvers produce a
// fresh record per hit; records are never shared or mutated afterwards.
type HitRecord struct {
	Surface  Surface   // The surface that was hit
	Point    core.Vec3 // Intersection point in world space
	Normal   core.Vec3 // Unit surface normal at the hit point
	Distance float64   // Distance from the ray origin to the hit point
}

// FindNearestIntersection tests every surface against the ray and returns
// the hit with the smallest distance, or false if nothing is hit. A surface
// passed as exclude is skipped entirely, which keeps reflection rays from
// immediately re-hitting the surface they just left.
func FindNearestIntersection(ray core.Ray, surfaces []Surface, exclude Surface) (*HitRecord, bool) {
	var nearest *HitRecord

	for _, surface := range surfaces {
		if surface == exclude {
			continue
		}

		hit, isHit := surface.Intersect(ray)
		if !isHit {
			continue
		}

		if nearest == nil || hit.Distance < nearest.Distance {
			nearest = hit
		}
	}

	return nearest, nearest != nil
}
