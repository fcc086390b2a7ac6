package crab

import (
	"github.com/vovakirdan/flappy-crab/internal/atlas"
	"github.com/vovakirdan/flappy-crab/internal/config"
	"github.com/vovakirdan/flappy-crab/internal/core"
)

// CreateTiles lays the floor tiles edge to edge. With scrolling enabled the
// tiles form a lane of their own and wrap around.
func CreateTiles(cfg config.TilesConfig, a *atlas.Atlas) []*TileEntity {
	floor := a.CreateSprite(atlas.FloorTile)
	total := floor.Width * float32(cfg.Count)

	tiles := make([]*TileEntity, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		t := &TileEntity{
			Position: core.V(floor.Width*float32(i), cfg.Y),
			Sprite:   floor,
		}
		if cfg.Scroll {
			t.Scroll = &Scroll{JumpDistance: total}
		}
		tiles = append(tiles, t)
	}
	return tiles
}
