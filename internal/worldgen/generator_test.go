package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenwood/ecohex/internal/world"
)

func TestTilesCoversFullRadius(t *testing.T) {
	cfg := Config{Radius: 5, Seed: 7, SeaLevel: 0.25}
	g := NewGenerator(cfg)

	tiles := g.Tiles()
	assert.Len(t, tiles, len(world.Range(world.NewHex(0, 0), 5)))

	for _, tile := range tiles {
		assert.GreaterOrEqual(t, tile.Elevation, 0.0)
	}
}

func TestTilesAreDeterministicForSameSeed(t *testing.T) {
	cfg := Config{Radius: 4, Seed: 123, SeaLevel: 0.25}
	a := NewGenerator(cfg).Tiles()
	b := NewGenerator(cfg).Tiles()

	assert.Equal(t, a, b)
}

func TestWaterDistanceBFSZeroAtWaterTiles(t *testing.T) {
	coords := world.Range(world.NewHex(0, 0), 2)
	isWater := map[world.HexCoord]bool{world.NewHex(0, 0): true}

	dist := waterDistanceBFS(coords, isWater)
	assert.Equal(t, 0.0, dist[world.NewHex(0, 0)])
	assert.Equal(t, 1.0, dist[world.NewHex(1, 0)])
}
