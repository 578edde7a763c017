package renderer

import "time"

// RenderStats summarizes the work done by a completed render.
type RenderStats struct {
	TotalPixels   int           // Number of pixels rendered
	ShadowRays    int64         // Shadow rays cast across all tiles
	SecondaryRays int64         // Reflection and transparency rays cast
	Elapsed       time.Duration // Wall-clock render time
}
