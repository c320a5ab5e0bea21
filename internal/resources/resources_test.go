package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenwood/ecohex/internal/world"
)

func TestRegenerateTileClampsToCapacity(t *testing.T) {
	tile := &world.Tile{Biome: world.BiomeTemperateGrassland}
	InitTile(tile)
	tile.Resources.PlantFood = 98

	RegenerateTile(tile)

	assert.LessOrEqual(t, tile.Resources.PlantFood, tile.Resources.PlantCapacity)
}

func TestGrowthStepTwiceEqualsDoubledGrowthOnce(t *testing.T) {
	a := &world.Tile{Biome: world.BiomeTaiga}
	InitTile(a)
	a.Resources.PlantFood = 10

	b := &world.Tile{Biome: world.BiomeTaiga}
	InitTile(b)
	b.Resources.PlantFood = 10
	b.Resources.PlantGrowthRate *= 2

	RegenerateTile(a)
	RegenerateTile(a)
	RegenerateTile(b)

	assert.InDelta(t, b.Resources.PlantFood, a.Resources.PlantFood, 1e-9)
}

func TestMeatDecayGeometric(t *testing.T) {
	tile := &world.Tile{Biome: world.BiomeTemperateGrassland}
	InitTile(tile)
	tile.Resources.Meat = 24.0

	RegenerateTile(tile)
	assert.InDelta(t, 21.6, tile.Resources.Meat, 1e-9)
}

func TestConsumeWaterInfiniteNeverDecrements(t *testing.T) {
	tile := &world.Tile{WaterDistance: 0}
	InitTile(tile)
	assert.True(t, tile.Resources.WaterInfinite())

	granted := ConsumeWater(tile, 1000)
	assert.Equal(t, 1000.0, granted)
	assert.True(t, tile.Resources.WaterInfinite())
}

func TestConsumePlantNeverExceedsAvailable(t *testing.T) {
	tile := &world.Tile{Biome: world.BiomeDesert}
	InitTile(tile)
	tile.Resources.PlantFood = 5

	granted := ConsumePlant(tile, 20)
	assert.Equal(t, 5.0, granted)
	assert.Equal(t, 0.0, tile.Resources.PlantFood)
}
