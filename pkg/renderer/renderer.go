package renderer

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/emildiskin/raytracer/pkg/core"
	"github.com/emildiskin/raytracer/pkg/geometry"
	"github.com/emildiskin/raytracer/pkg/integrator"
	"github.com/emildiskin/raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Options configures a render.
type Options struct {
	Width    int
	Height   int
	Workers  int   // Parallel tile workers, 0 = CPU count
	TileSize int   // Tile edge in pixels, 0 = 64
	Seed     int64 // Base seed for per-tile sampling streams
	Logger   core.Logger
}

// DefaultOptions returns the configuration used when the caller specifies
// nothing: a 500x500 image, one worker per CPU, and a fixed seed so
// repeated renders of the same scene produce identical images.
func DefaultOptions() Options {
	return Options{
		Width:    500,
		Height:   500,
		Workers:  0,
		TileSize: 64,
		Seed:     42,
		Logger:   NewDefaultLogger(),
	}
}

// Renderer drives the per-pixel pipeline for one scene: generate a primary
// ray, find the nearest hit, shade it, write the clamped pixel.
type Renderer struct {
	scene   *scene.Scene
	camera  *Camera
	options Options
}

// NewRenderer validates the scene and derives the camera basis. Both are
// configuration gates: a bad material index or a degenerate camera fails
// here, never mid-render.
func NewRenderer(sc *scene.Scene, options Options) (*Renderer, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %v", err)
	}
	camera, err := NewCamera(sc.Camera)
	if err != nil {
		return nil, err
	}
	if options.Width <= 0 || options.Height <= 0 {
		return nil, fmt.Errorf("image dimensions must be positive, got %dx%d", options.Width, options.Height)
	}
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	if options.TileSize <= 0 {
		options.TileSize = 64
	}
	if options.Logger == nil {
		options.Logger = NewDefaultLogger()
	}

	return &Renderer{scene: sc, camera: camera, options: options}, nil
}

// Render traces every pixel and returns the assembled image with render
// statistics. Tiles are distributed over a worker pool; tile bounds are
// disjoint, so workers write to the shared image without locking.
func (r *Renderer) Render() (*image.RGBA, RenderStats) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.options.Width, r.options.Height))
	tiles := newTileGrid(r.options.Width, r.options.Height, r.options.TileSize, r.options.Seed)

	r.options.Logger.Printf("Rendering %dx%d with %d workers (%d tiles)...\n",
		r.options.Width, r.options.Height, r.options.Workers, len(tiles))

	var shadowRays, secondaryRays, tilesDone int64

	tasks := make(chan *Tile, len(tiles))
	for _, tile := range tiles {
		tasks <- tile
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < r.options.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range tasks {
				integ := integrator.NewWhittedIntegrator(r.scene, tile.Random)
				r.renderTile(img, tile, integ)
				atomic.AddInt64(&shadowRays, integ.ShadowRayCount())
				atomic.AddInt64(&secondaryRays, integ.SecondaryRayCount())

				done := atomic.AddInt64(&tilesDone, 1)
				if done%16 == 0 || done == int64(len(tiles)) {
					r.options.Logger.Printf("Rendered %d/%d tiles\n", done, len(tiles))
				}
			}
		}()
	}
	wg.Wait()

	return img, RenderStats{
		TotalPixels:   r.options.Width * r.options.Height,
		ShadowRays:    shadowRays,
		SecondaryRays: secondaryRays,
		Elapsed:       time.Since(start),
	}
}

// renderTile shades every pixel in the tile's bounds.
func (r *Renderer) renderTile(img *image.RGBA, tile *Tile, integ *integrator.WhittedIntegrator) {
	for py := tile.Bounds.Min.Y; py < tile.Bounds.Max.Y; py++ {
		for px := tile.Bounds.Min.X; px < tile.Bounds.Max.X; px++ {
			ray := r.camera.GenerateRay(px, py, r.options.Width, r.options.Height)
			hit, _ := geometry.FindNearestIntersection(ray, r.scene.Surfaces, nil)
			colorVec := integ.ComputeColor(ray.Origin, ray.Direction, hit, 0)
			img.SetRGBA(px, py, vec3ToColor(colorVec))
		}
	}
}

// vec3ToColor clamps a linear color to [0,1] and converts it to 8-bit RGBA.
// Clamping happens only at this point so that recursion levels accumulate
// unclamped energy.
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
