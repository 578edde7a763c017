package integrator

import (
	"math"
	"math/rand"

	"github.com/emildiskin/raytracer/pkg/core"
	"github.com/emildiskin/raytracer/pkg/geometry"
	"github.com/emildiskin/raytracer/pkg/scene"
)

// WhittedIntegrator implements Whitted-style recursive ray tracing: Phong
// local illumination with shadow attenuation, plus mirror reflection and
// transparency rays bounded by the scene's recursion limit. It holds
// read-only references into a validated scene, so material indices are
// trusted to be in range.
type WhittedIntegrator struct {
	background   core.Vec3
	maxRecursion int
	shadowRays   int
	materials    []scene.Material
	lights       []scene.Light
	surfaces     []geometry.Surface
	random       *rand.Rand

	shadowRayCount    int64
	secondaryRayCount int64
}

// NewWhittedIntegrator creates a shading engine bound to a validated scene.
// The random source drives soft-shadow jittering; give each goroutine its
// own integrator with an independent source.
func NewWhittedIntegrator(sc *scene.Scene, random *rand.Rand) *WhittedIntegrator {
	return &WhittedIntegrator{
		background:   sc.Settings.Background,
		maxRecursion: sc.Settings.MaxRecursion,
		shadowRays:   sc.Settings.ShadowRays,
		materials:    sc.Materials,
		lights:       sc.Lights,
		surfaces:     sc.Surfaces,
		random:       random,
	}
}

// ComputeColor shades a ray hit, returning an unclamped linear RGB triple.
// A nil hit returns the scene background. depth counts nested
// reflection/transparency evaluations; callers pass 0 for primary rays.
func (w *WhittedIntegrator) ComputeColor(rayOrigin, rayDirection core.Vec3, hit *geometry.HitRecord, depth int) core.Vec3 {
	if hit == nil {
		return w.background
	}

	mat := w.materials[hit.Surface.MaterialIndex()-1]

	local := w.localIllumination(rayOrigin, hit, mat)

	var reflected core.Vec3
	if mat.Reflection.X > 0 || mat.Reflection.Y > 0 || mat.Reflection.Z > 0 {
		reflected = w.reflectionTerm(rayDirection, hit, mat, depth)
	}

	// What lies behind the surface, seen through it. Only traced when the
	// material lets any light through.
	backgroundTerm := w.background
	if mat.Transparency > 0 {
		backgroundTerm = w.transparencyTerm(rayDirection, hit, depth)
	}

	return backgroundTerm.Multiply(mat.Transparency).
		Add(local.Multiply(1 - mat.Transparency)).
		Add(reflected)
}

// ShadowRayCount returns the number of shadow rays cast so far.
func (w *WhittedIntegrator) ShadowRayCount() int64 {
	return w.shadowRayCount
}

// SecondaryRayCount returns the number of reflection and transparency rays
// cast so far. Traces refused by the recursion ceiling are not counted.
func (w *WhittedIntegrator) SecondaryRayCount() int64 {
	return w.secondaryRayCount
}

// localIllumination accumulates the Phong diffuse and specular contribution
// of every light, each scaled by its shadow attenuation.
func (w *WhittedIntegrator) localIllumination(rayOrigin core.Vec3, hit *geometry.HitRecord, mat scene.Material) core.Vec3 {
	total := core.Vec3{}
	viewDir := rayOrigin.Subtract(hit.Point).Normalize()

	for i := range w.lights {
		light := &w.lights[i]
		lightDir := light.Position.Subtract(hit.Point).Normalize()

		diffuseFactor := hit.Normal.Dot(lightDir)
		if diffuseFactor < 0 {
			diffuseFactor = 0
		}
		diffuse := mat.Diffuse.Multiply(diffuseFactor)

		// Phong highlight: the light direction mirrored about the normal,
		// compared against the direction back toward the ray origin.
		var specular core.Vec3
		reflectedLight := lightDir.Negate().Reflect(hit.Normal)
		specularFactor := viewDir.Dot(reflectedLight)
		if specularFactor > 0 {
			strength := math.Pow(specularFactor, mat.Shininess) * light.SpecularIntensity
			specular = mat.Specular.Multiply(strength)
		}

		attenuation := w.shadowAttenuation(hit, light)
		contribution := light.Color.MultiplyVec(diffuse.Add(specular)).Multiply(attenuation)
		total = total.Add(contribution)
	}

	return total
}

// shadowAttenuation returns the factor in [0,1] by which a light's
// contribution is scaled. A 1x1 grid casts a single hard shadow ray at the
// light's position; larger grids stratify a square of side equal to the
// light's radius, perpendicular to the light direction, with one jittered
// sample per cell.
func (w *WhittedIntegrator) shadowAttenuation(hit *geometry.HitRecord, light *scene.Light) float64 {
	origin := hit.Point.Add(hit.Normal.Multiply(geometry.HitEpsilon))

	if w.shadowRays == 1 {
		if w.occluded(origin, light.Position) {
			return 1 - light.ShadowIntensity
		}
		return 1.0
	}

	toPoint := origin.Subtract(light.Position).Normalize()
	right, up := perpendicularBasis(toPoint)

	n := w.shadowRays
	cell := light.Radius / float64(n)
	half := light.Radius / 2
	unoccluded := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			offsetRight := -half + (float64(i)+w.random.Float64())*cell
			offsetUp := -half + (float64(j)+w.random.Float64())*cell
			sample := light.Position.
				Add(right.Multiply(offsetRight)).
				Add(up.Multiply(offsetUp))
			if !w.occluded(origin, sample) {
				unoccluded++
			}
		}
	}

	hitRatio := float64(unoccluded) / float64(n*n)
	return (1 - light.ShadowIntensity) + light.ShadowIntensity*hitRatio
}

// occluded reports whether any surface blocks the segment from origin to
// target. An intersection at or beyond the target does not occlude. The
// origin surface is not excluded: a surface may legitimately shadow itself.
func (w *WhittedIntegrator) occluded(origin, target core.Vec3) bool {
	w.shadowRayCount++
	toTarget := target.Subtract(origin)
	distance := toTarget.Length()
	blocker, ok := geometry.FindNearestIntersection(core.NewRay(origin, toTarget), w.surfaces, nil)
	return ok && blocker.Distance < distance
}

// reflectionTerm traces the mirror reflection of the incoming ray and tints
// the result by the material's reflection color. The ray starts just off the
// surface along the normal and skips its own surface.
func (w *WhittedIntegrator) reflectionTerm(rayDirection core.Vec3, hit *geometry.HitRecord, mat scene.Material, depth int) core.Vec3 {
	reflectedDir := rayDirection.Reflect(hit.Normal)
	origin := hit.Point.Add(hit.Normal.Multiply(geometry.HitEpsilon))
	result := w.traceSecondary(core.NewRay(origin, reflectedDir), hit.Surface, depth)
	return result.MultiplyVec(mat.Reflection)
}

// transparencyTerm traces a ray continuing through the surface in the
// incoming direction, offset against the normal so it starts inside. The
// origin surface stays in the search set so the ray can exit through its
// far side.
func (w *WhittedIntegrator) transparencyTerm(rayDirection core.Vec3, hit *geometry.HitRecord, depth int) core.Vec3 {
	origin := hit.Point.Subtract(hit.Normal.Multiply(geometry.HitEpsilon))
	return w.traceSecondary(core.NewRay(origin, rayDirection), nil, depth)
}

// traceSecondary casts a reflection or transparency ray and shades whatever
// it hits at depth+1. At the recursion ceiling it returns the background
// color without casting; the ceiling is a defined terminal case, not an
// error.
func (w *WhittedIntegrator) traceSecondary(ray core.Ray, exclude geometry.Surface, depth int) core.Vec3 {
	if depth >= w.maxRecursion {
		return w.background
	}
	w.secondaryRayCount++
	hit, _ := geometry.FindNearestIntersection(ray, w.surfaces, exclude)
	return w.ComputeColor(ray.Origin, ray.Direction, hit, depth+1)
}

// perpendicularBasis returns two unit vectors spanning the plane
// perpendicular to dir, which must be unit length.
func perpendicularBasis(dir core.Vec3) (core.Vec3, core.Vec3) {
	helper := core.NewVec3(0, 1, 0)
	if math.Abs(dir.Y) > 0.99 {
		helper = core.NewVec3(1, 0, 0)
	}
	right := dir.Cross(helper).Normalize()
	up := dir.Cross(right)
	return right, up
}
