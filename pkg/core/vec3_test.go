package core

import (
	"math"
	"testing"
)

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected Vec3
	}{
		{
			name:     "Already unit length",
			vector:   NewVec3(1, 0, 0),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Axis-aligned",
			vector:   NewVec3(0, 5, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "Diagonal",
			vector:   NewVec3(1, 1, 1),
			expected: NewVec3(1/math.Sqrt(3), 1/math.Sqrt(3), 1/math.Sqrt(3)),
		},
		{
			name:     "Zero vector stays zero",
			vector:   NewVec3(0, 0, 0),
			expected: NewVec3(0, 0, 0),
		},
		{
			name:     "Negative components",
			vector:   NewVec3(-3, 0, 4),
			expected: NewVec3(-0.6, 0, 0.8),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Normalize()

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Head-on reflection",
			vector:   NewVec3(0, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "45 degree reflection",
			vector:   NewVec3(1, -1, 0).Normalize(),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0).Normalize(),
		},
		{
			name:     "Grazing reflection",
			vector:   NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Reflect(tt.normal)

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Cross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	result := a.Cross(b)
	expected := NewVec3(0, 0, 1)

	const tolerance = 1e-9
	if result.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, result)
	}

	// Cross product is perpendicular to both inputs
	if math.Abs(result.Dot(a)) > tolerance || math.Abs(result.Dot(b)) > tolerance {
		t.Errorf("Cross product %v not perpendicular to inputs", result)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	result := v.Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)

	if result != expected {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 5))

	const tolerance = 1e-9
	if math.Abs(ray.Direction.Length()-1.0) > tolerance {
		t.Errorf("Expected unit direction, got length %v", ray.Direction.Length())
	}
	if ray.Direction.Subtract(NewVec3(0, 0, 1)).Length() > tolerance {
		t.Errorf("Expected direction (0,0,1), got %v", ray.Direction)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 1, 0))
	result := ray.At(2.5)
	expected := NewVec3(1, 2.5, 0)

	const tolerance = 1e-9
	if result.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, result)
	}
}
