package geometry

import (
	"math"

	"github.com/emildiskin/raytracer/pkg/core"
)

// Sphere represents a sphere defined by its center and radius
type Sphere struct {
	Center core.Vec3
	Radius float64

	materialIndex int
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, materialIndex int) *Sphere {
	return &Sphere{
		Center:        center,
		Radius:        radius,
		materialIndex: materialIndex,
	}
}

// MaterialIndex returns the sphere's 1-based material index
func (s *Sphere) MaterialIndex() int {
	return s.materialIndex
}

// Intersect tests if a ray intersects with the sphere
func (s *Sphere) Intersect(ray core.Ray) (*HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c

	// No intersection if discriminant is negative
	if discriminant < 0 {
		return nil, false
	}

	// Take the closer root; fall back to the farther one when the closer
	// root lies behind the origin or inside the self-intersection guard.
	// Both failing means the sphere is entirely behind the ray.
	sqrtD := math.Sqrt(discriminant)
	t := (-halfB - sqrtD) / a
	if t <= HitEpsilon {
		t = (-halfB + sqrtD) / a
		if t <= HitEpsilon {
			return nil, false
		}
	}

	point := ray.At(t)

	return &HitRecord{
		Surface:  s,
		Point:    point,
		Normal:   point.Subtract(s.Center).Multiply(1.0 / s.Radius),
		Distance: t,
	}, true
}
