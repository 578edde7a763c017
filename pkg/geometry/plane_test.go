package geometry

import (
	"math"
	"testing"

	"github.com/emildiskin/raytracer/pkg/core"
)

func TestInfinitePlane_Intersect_Basic(t *testing.T) {
	// Ground plane y=0, ray shooting down from above
	plane := NewInfinitePlane(core.NewVec3(0, 1, 0), 0, 1)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	const tolerance = 1e-9
	if math.Abs(hit.Distance-5.0) > tolerance {
		t.Errorf("Expected distance=5, got %f", hit.Distance)
	}

	expectedPoint := core.NewVec3(0, 0, 0)
	if hit.Point.Subtract(expectedPoint).Length() > tolerance {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}

	expectedNormal := core.NewVec3(0, 1, 0)
	if hit.Normal.Subtract(expectedNormal).Length() > tolerance {
		t.Errorf("Expected normal %v, got %v", expectedNormal, hit.Normal)
	}
}

func TestInfinitePlane_Intersect_Offset(t *testing.T) {
	// Plane y=3: normal (0,1,0), offset 3
	plane := NewInfinitePlane(core.NewVec3(0, 1, 0), 3, 1)
	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.Distance-7.0) > 1e-9 {
		t.Errorf("Expected distance=7, got %f", hit.Distance)
	}
}

func TestInfinitePlane_Intersect_ParallelRay(t *testing.T) {
	plane := NewInfinitePlane(core.NewVec3(0, 1, 0), 0, 1)

	tests := []struct {
		name   string
		origin core.Vec3
	}{
		{name: "origin above plane", origin: core.NewVec3(0, 5, 0)},
		{name: "origin on plane", origin: core.NewVec3(0, 0, 0)},
		{name: "origin below plane", origin: core.NewVec3(0, -5, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(1, 0, 0))
			if hit, isHit := plane.Intersect(ray); isHit {
				t.Errorf("Expected miss for parallel ray, but got hit at distance=%f", hit.Distance)
			}
		})
	}
}

func TestInfinitePlane_Intersect_BehindRay(t *testing.T) {
	plane := NewInfinitePlane(core.NewVec3(0, 1, 0), 0, 1)
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0))

	hit, isHit := plane.Intersect(ray)
	if isHit {
		t.Errorf("Expected miss for intersection behind ray, but got hit at distance=%f", hit.Distance)
	}
}

func TestInfinitePlane_Intersect_BackSideKeepsNormal(t *testing.T) {
	// Hitting the plane from below: the normal keeps the plane's own
	// orientation instead of turning toward the ray
	plane := NewInfinitePlane(core.NewVec3(0, 1, 0), 0, 1)
	ray := core.NewRay(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0))

	hit, isHit := plane.Intersect(ray)
	if !isHit {
		t.Fatal("Expected hit from below, but got miss")
	}

	expectedNormal := core.NewVec3(0, 1, 0)
	if hit.Normal.Subtract(expectedNormal).Length() > 1e-9 {
		t.Errorf("Expected unflipped normal %v, got %v", expectedNormal, hit.Normal)
	}
}

func TestNewInfinitePlane_NormalizesNormal(t *testing.T) {
	plane := NewInfinitePlane(core.NewVec3(0, 10, 0), 0, 1)

	if math.Abs(plane.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Expected unit normal after construction, got length %f", plane.Normal.Length())
	}
}
