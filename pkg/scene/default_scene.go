package scene

import (
	"github.com/emildiskin/raytracer/pkg/core"
	"github.com/emildiskin/raytracer/pkg/geometry"
)

// NewDefaultScene creates a built-in demo scene with a sphere, a box and a
// ground plane, used when no scene file is given
func NewDefaultScene() *Scene {
	s := &Scene{
		Camera: CameraConfig{
			Position:       core.NewVec3(0, 1.2, 4.5),
			LookAt:         core.NewVec3(0, 0.6, 0),
			Up:             core.NewVec3(0, 1, 0),
			ScreenDistance: 1.0,
			ScreenWidth:    2.0,
		},
		Settings: Settings{
			Background:   core.NewVec3(0.25, 0.35, 0.5),
			ShadowRays:   3,
			MaxRecursion: 3,
		},
	}

	// Materials, referenced 1-based by the surfaces below
	matteGray := Material{
		Diffuse:   core.NewVec3(0.55, 0.55, 0.55),
		Specular:  core.NewVec3(0.1, 0.1, 0.1),
		Shininess: 10,
	}
	glossyRed := Material{
		Diffuse:    core.NewVec3(0.7, 0.15, 0.12),
		Specular:   core.NewVec3(0.8, 0.8, 0.8),
		Reflection: core.NewVec3(0.15, 0.15, 0.15),
		Shininess:  60,
	}
	mirror := Material{
		Diffuse:    core.NewVec3(0.05, 0.05, 0.08),
		Specular:   core.NewVec3(0.9, 0.9, 0.9),
		Reflection: core.NewVec3(0.85, 0.85, 0.9),
		Shininess:  200,
	}
	tintedGlass := Material{
		Diffuse:      core.NewVec3(0.2, 0.5, 0.3),
		Specular:     core.NewVec3(0.6, 0.6, 0.6),
		Shininess:    90,
		Transparency: 0.6,
	}
	s.Materials = []Material{matteGray, glossyRed, mirror, tintedGlass}

	s.Surfaces = []geometry.Surface{
		geometry.NewInfinitePlane(core.NewVec3(0, 1, 0), 0, 1),
		geometry.NewSphere(core.NewVec3(-0.9, 0.6, 0), 0.6, 2),
		geometry.NewSphere(core.NewVec3(1.1, 0.5, -0.8), 0.5, 3),
		geometry.NewBox(core.NewVec3(0.3, 0.35, 0.9), 0.7, 4),
	}

	s.Lights = []Light{
		{
			Position:          core.NewVec3(3, 4, 3),
			Color:             core.NewVec3(0.9, 0.85, 0.8),
			SpecularIntensity: 1.0,
			ShadowIntensity:   0.8,
			Radius:            1.0,
		},
		{
			Position:          core.NewVec3(-4, 3, 1),
			Color:             core.NewVec3(0.3, 0.35, 0.45),
			SpecularIntensity: 0.6,
			ShadowIntensity:   0.5,
			Radius:            0.8,
		},
	}

	return s
}
