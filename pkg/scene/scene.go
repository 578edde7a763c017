package scene

import (
	"fmt"

	"github.com/emildiskin/raytracer/pkg/core"
	"github.com/emildiskin/raytracer/pkg/geometry"
)

// CameraConfig holds the camera parameters of a scene description
type CameraConfig struct {
	Position       core.Vec3 // Camera position in world space
	LookAt         core.Vec3 // Point the camera is aimed at
	Up             core.Vec3 // Approximate up direction, corrected during basis construction
	ScreenDistance float64   // Distance from the camera to the virtual screen
	ScreenWidth    float64   // Width of the virtual screen in world units
}

// Settings holds the global rendering settings of a scene description
type Settings struct {
	Background   core.Vec3 // Background color, linear [0,1] channels
	ShadowRays   int       // Root N of the NxN soft shadow sample grid; 1 means hard shadows
	MaxRecursion int       // Maximum reflection/transparency recursion depth
}

// Material describes the appearance of a surface. Colors are linear [0,1].
type Material struct {
	Diffuse      core.Vec3
	Specular     core.Vec3
	Reflection   core.Vec3
	Shininess    float64 // Phong specular exponent
	Transparency float64 // 0 is fully opaque, 1 fully transparent
}

// Light is a point light with an area extent used for soft shadows
type Light struct {
	Position          core.Vec3
	Color             core.Vec3
	SpecularIntensity float64 // Scales the specular term only
	ShadowIntensity   float64 // How strongly occlusion darkens this light, in [0,1]
	Radius            float64 // Side of the sampling square for soft shadows
}

// Scene contains everything needed to render one image. A scene is read-only
// once loaded; the render never mutates it.
type Scene struct {
	Camera    CameraConfig
	Settings  Settings
	Materials []Material // Referenced 1-based by surfaces
	Lights    []Light
	Surfaces  []geometry.Surface
}

// Validate checks the scene records for configuration errors. Violations are
// reported, never silently replaced with defaults. A scene with no lights or
// no surfaces is valid; missing camera or settings records are not.
func (s *Scene) Validate() error {
	if s.Camera.ScreenDistance <= 0 {
		return fmt.Errorf("camera: screen distance must be positive, got %g", s.Camera.ScreenDistance)
	}
	if s.Camera.ScreenWidth <= 0 {
		return fmt.Errorf("camera: screen width must be positive, got %g", s.Camera.ScreenWidth)
	}
	if s.Camera.Up.LengthSquared() == 0 {
		return fmt.Errorf("camera: up vector must be non-zero")
	}

	if s.Settings.ShadowRays < 1 {
		return fmt.Errorf("settings: shadow ray grid dimension must be at least 1, got %d", s.Settings.ShadowRays)
	}
	if s.Settings.MaxRecursion < 0 {
		return fmt.Errorf("settings: max recursion must be non-negative, got %d", s.Settings.MaxRecursion)
	}

	for i, m := range s.Materials {
		if m.Transparency < 0 || m.Transparency > 1 {
			return fmt.Errorf("material %d: transparency %g outside [0,1]", i+1, m.Transparency)
		}
		if m.Shininess < 0 {
			return fmt.Errorf("material %d: shininess must be non-negative, got %g", i+1, m.Shininess)
		}
	}

	for i, l := range s.Lights {
		if l.ShadowIntensity < 0 || l.ShadowIntensity > 1 {
			return fmt.Errorf("light %d: shadow intensity %g outside [0,1]", i+1, l.ShadowIntensity)
		}
		if l.SpecularIntensity < 0 {
			return fmt.Errorf("light %d: specular intensity must be non-negative, got %g", i+1, l.SpecularIntensity)
		}
		if l.Radius < 0 {
			return fmt.Errorf("light %d: radius must be non-negative, got %g", i+1, l.Radius)
		}
	}

	for i, surface := range s.Surfaces {
		idx := surface.MaterialIndex()
		if idx < 1 || idx > len(s.Materials) {
			return fmt.Errorf("surface %d: material index %d outside 1..%d", i+1, idx, len(s.Materials))
		}

		switch obj := surface.(type) {
		case *geometry.Sphere:
			if obj.Radius <= 0 {
				return fmt.Errorf("surface %d: sphere radius must be positive, got %g", i+1, obj.Radius)
			}
		case *geometry.InfinitePlane:
			if obj.Normal.LengthSquared() == 0 {
				return fmt.Errorf("surface %d: plane normal must be non-zero", i+1)
			}
		case *geometry.Box:
			if obj.EdgeLength <= 0 {
				return fmt.Errorf("surface %d: box edge length must be positive, got %g", i+1, obj.EdgeLength)
			}
		}
	}

	return nil
}
