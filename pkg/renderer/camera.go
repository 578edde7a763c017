package renderer

import (
	"fmt"

	"github.com/emildiskin/raytracer/pkg/core"
	"github.com/emildiskin/raytracer/pkg/scene"
)

// degenerateEpsilon rejects camera bases whose cross products collapse.
const degenerateEpsilon = 1e-9

// Camera generates primary rays through a virtual screen placed
// screenDistance in front of the eye position.
type Camera struct {
	position       core.Vec3
	forward        core.Vec3
	right          core.Vec3
	up             core.Vec3
	screenDistance float64
	screenWidth    float64
}

// NewCamera derives an orthonormal basis from the scene's camera record.
// Construction fails when the look-at point coincides with the position or
// the up vector is parallel to the viewing direction; those are scene
// errors, not render-time conditions.
func NewCamera(cfg scene.CameraConfig) (*Camera, error) {
	toLookAt := cfg.LookAt.Subtract(cfg.Position)
	if toLookAt.LengthSquared() == 0 {
		return nil, fmt.Errorf("camera: look-at point coincides with camera position")
	}
	forward := toLookAt.Normalize()

	rightCross := forward.Cross(cfg.Up)
	if rightCross.Length() < degenerateEpsilon {
		return nil, fmt.Errorf("camera: up vector is parallel to the viewing direction")
	}
	right := rightCross.Normalize()
	up := right.Cross(forward).Normalize()

	return &Camera{
		position:       cfg.Position,
		forward:        forward,
		right:          right,
		up:             up,
		screenDistance: cfg.ScreenDistance,
		screenWidth:    cfg.ScreenWidth,
	}, nil
}

// GenerateRay returns the ray through the center of pixel (px, py) on an
// imageWidth x imageHeight raster. The screen height follows from the
// aspect ratio. Row indices grow downward in image space but upward in
// screen space, hence the sign flip on the y coordinate.
func (c *Camera) GenerateRay(px, py, imageWidth, imageHeight int) core.Ray {
	screenHeight := c.screenWidth * float64(imageHeight) / float64(imageWidth)

	screenX := ((float64(px)+0.5)/float64(imageWidth) - 0.5) * c.screenWidth
	screenY := (0.5 - (float64(py)+0.5)/float64(imageHeight)) * screenHeight

	screenPoint := c.position.
		Add(c.forward.Multiply(c.screenDistance)).
		Add(c.right.Multiply(screenX)).
		Add(c.up.Multiply(screenY))

	return core.NewRay(c.position, screenPoint.Subtract(c.position))
}
