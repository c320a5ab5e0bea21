package feeding

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/resources"
	"github.com/fenwood/ecohex/internal/rng"
	"github.com/fenwood/ecohex/internal/world"
)

func newMapWithTile(coord world.HexCoord, biome world.Biome) (*world.Map, *world.Tile) {
	m := world.NewMap()
	t := &world.Tile{Coord: coord, Biome: biome}
	resources.InitTile(t)
	m.Set(t)
	return m, t
}

func TestFeedHerbivoreConsumesPlantAndSatiatesHunger(t *testing.T) {
	m, tile := newMapWithTile(world.NewHex(0, 0), world.BiomeTemperateGrassland)
	tile.Resources.PlantFood = 10

	c := creature.New(1, world.NewHex(0, 0), creature.Stats{Size: 10, Diet: -50, Speed: 10, ReproductionRate: 10})
	c.Needs.Hunger = 50

	r := rng.New(1)
	res := Feed(c, m, r)

	assert.True(t, res.Success)
	assert.Less(t, c.Needs.Hunger, 50.0)
	assert.Less(t, tile.Resources.PlantFood, 10.0)
}

func TestFeedCarnivoreConsumesMeatAndSatiatesHunger(t *testing.T) {
	m, tile := newMapWithTile(world.NewHex(0, 0), world.BiomeTemperateGrassland)
	tile.Resources.Meat = 10

	c := creature.New(1, world.NewHex(0, 0), creature.Stats{Size: 10, Diet: 50, Speed: 10, ReproductionRate: 10})
	c.Needs.Hunger = 50

	r := rng.New(1)
	res := Feed(c, m, r)

	assert.True(t, res.Success)
	assert.Less(t, c.Needs.Hunger, 50.0)
	assert.Less(t, tile.Resources.Meat, 10.0)
}

func TestFeedWithNoLocalResourcesRequestsMove(t *testing.T) {
	m, origin := newMapWithTile(world.NewHex(0, 0), world.BiomeDesert)
	origin.Resources.PlantFood = 0
	origin.Resources.Meat = 0

	neighbor := &world.Tile{Coord: world.NewHex(1, 0), Biome: world.BiomeTemperateGrassland}
	resources.InitTile(neighbor)
	neighbor.Resources.PlantFood = 20
	m.Set(neighbor)

	c := creature.New(1, world.NewHex(0, 0), creature.Stats{Size: 10, Diet: -50, Speed: 10, ReproductionRate: 10})
	r := rng.New(7)
	res := Feed(c, m, r)

	assert.True(t, res.NeedsToMove)
	assert.Equal(t, world.NewHex(1, 0), res.TargetTile)
}

func TestFeedWaterDrinksFromInfiniteSource(t *testing.T) {
	m, tile := newMapWithTile(world.NewHex(0, 0), world.BiomeTemperateGrassland)
	tile.WaterDistance = 0
	resources.InitTile(tile)

	c := creature.New(1, world.NewHex(0, 0), creature.Stats{Size: 10, Diet: 0, Speed: 10, ReproductionRate: 10})
	c.Needs.Thirst = 50

	r := rng.New(1)
	res := FeedWater(c, m, r)

	assert.True(t, res.Success)
	assert.Less(t, c.Needs.Thirst, 50.0)
}
