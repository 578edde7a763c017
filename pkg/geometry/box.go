package geometry

import (
	"math"

	"github.com/emildiskin/raytracer/pkg/core"
)

// Box represents an axis-aligned cube defined by its center and edge length
type Box struct {
	Center     core.Vec3
	EdgeLength float64

	materialIndex int
}

// NewBox creates a new axis-aligned box
func NewBox(center core.Vec3, edgeLength float64, materialIndex int) *Box {
	return &Box{
		Center:        center,
		EdgeLength:    edgeLength,
		materialIndex: materialIndex,
	}
}

// MaterialIndex returns the box's 1-based material index
func (b *Box) MaterialIndex() int {
	return b.materialIndex
}

// Intersect tests if a ray intersects with the box using the slab method,
// narrowing a valid [tMin, tMax] interval axis by axis
func (b *Box) Intersect(ray core.Ray) (*HitRecord, bool) {
	half := b.EdgeLength / 2
	boxMin := b.Center.Subtract(core.NewVec3(half, half, half))
	boxMax := b.Center.Add(core.NewVec3(half, half, half))

	tMin := math.Inf(-1)
	tMax := math.Inf(1)
	var entryNormal core.Vec3

	for axis := 0; axis < 3; axis++ {
		var minC, maxC, origin, direction float64
		var axisNormal core.Vec3

		switch axis {
		case 0: // X axis
			minC, maxC = boxMin.X, boxMax.X
			origin, direction = ray.Origin.X, ray.Direction.X
			axisNormal = core.NewVec3(1, 0, 0)
		case 1: // Y axis
			minC, maxC = boxMin.Y, boxMax.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
			axisNormal = core.NewVec3(0, 1, 0)
		case 2: // Z axis
			minC, maxC = boxMin.Z, boxMax.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
			axisNormal = core.NewVec3(0, 0, 1)
		}

		// A ray parallel to this axis only intersects if its origin already
		// lies within the slab
		if math.Abs(direction) < parallelEpsilon {
			if origin < minC || origin > maxC {
				return nil, false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (minC - origin) * invDirection
		t2 := (maxC - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		// The face crossed first on this axis faces against the direction
		// of travel
		candidate := axisNormal
		if direction > 0 {
			candidate = axisNormal.Negate()
		}

		// Tighten the interval; the axis producing the entry distance
		// decides the normal
		if t1 > tMin {
			tMin = t1
			entryNormal = candidate
		}
		if t2 < tMax {
			tMax = t2
		}

		if tMin > tMax {
			return nil, false
		}
	}

	t := tMin
	normal := entryNormal
	if t <= HitEpsilon {
		if tMax <= HitEpsilon {
			return nil, false
		}
		// Ray origin is inside the box: the exit face is the visible one,
		// with the normal flipped to point away from the interior
		t = tMax
		normal = entryNormal.Negate()
	}

	return &HitRecord{
		Surface:  b,
		Point:    ray.At(t),
		Normal:   normal,
		Distance: t,
	}, true
}
