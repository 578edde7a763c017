package renderer

import (
	"image"
	"math/rand"
)

// Tile is a rectangular region of the image rendered by one worker. Each
// tile owns a random generator seeded from the render seed and the tile ID,
// so soft-shadow sampling does not depend on worker scheduling.
type Tile struct {
	ID     int
	Bounds image.Rectangle
	Random *rand.Rand
}

// newTileGrid partitions a width x height image into disjoint tiles of at
// most tileSize pixels on a side.
func newTileGrid(width, height, tileSize int, seed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{
				ID:     tileID,
				Bounds: image.Rect(x0, y0, x1, y1),
				Random: rand.New(rand.NewSource(seed + int64(tileID))),
			})
			tileID++
		}
	}

	return tiles
}
