// Package resources implements the per-tile regeneration, decay, and
// consumption contract of spec §4.3: the biome → (capacity, growth) table,
// the per-turn regen/decay pass, and the consume{Plant,Meat,Water} API.
package resources

import (
	"math"

	"github.com/fenwood/ecohex/internal/world"
)

// biomeParams holds a biome's plant-food capacity and per-turn growth
// rate (spec §4.3 table). Meat decay is a fixed fraction everywhere.
type biomeParams struct {
	capacity float64
	growth   float64
}

// DefaultMeatDecayRate is the fraction of on-tile meat lost per turn.
const DefaultMeatDecayRate = 0.1

// meatZeroClamp is the threshold below which decaying meat snaps to zero.
const meatZeroClamp = 0.01

var biomeTable = map[world.Biome]biomeParams{
	world.BiomeTropicalRainforest:  {capacity: 200, growth: 10},
	world.BiomeTropicalSavanna:     {capacity: 100, growth: 6},
	world.BiomeTemperateRainforest: {capacity: 140, growth: 7},
	world.BiomeTemperateDeciduous:  {capacity: 120, growth: 6},
	world.BiomeTemperateGrassland:  {capacity: 100, growth: 7},
	world.BiomeTaiga:               {capacity: 80, growth: 3},
	world.BiomeDesert:              {capacity: 25, growth: 1},
	world.BiomeTundra:              {capacity: 40, growth: 2},
	world.BiomePolar:               {capacity: 10, growth: 0.5},
	world.BiomeWater:               {capacity: 0, growth: 0},
}

// InitTile sets a freshly-created tile's resource parameters from its
// biome. Water tiles get no plant-food capacity (spec §3 invariant) and
// their Water value comes from WaterLevelForDistance, not this table.
func InitTile(t *world.Tile) {
	p := biomeTable[t.Biome]
	t.Resources.PlantCapacity = p.capacity
	t.Resources.PlantGrowthRate = p.growth
	t.Resources.MeatDecayRate = DefaultMeatDecayRate
	t.Resources.PlantFood = 0
	t.Resources.Meat = 0
	t.Resources.Water = world.WaterLevelForDistance(t.WaterDistance)
}

// RegenerateAll runs one turn's regeneration/decay pass over every tile
// (spec §4.3, turn pipeline step 1):
//
//	plantFood ← min(capacity, plantFood + growthRate)
//	meat      ← meat·(1 − decay), clamped to zero below 0.01
func RegenerateAll(m *world.Map) {
	for _, t := range m.Tiles {
		RegenerateTile(t)
	}
}

// RegenerateTile applies one turn of regeneration/decay to a single tile.
// Exposed standalone so the idempotence property of spec §8 (two growth
// steps vs. one step with doubled growth) is directly
// testable without a full Map.
func RegenerateTile(t *world.Tile) {
	t.Resources.PlantFood = math.Min(t.Resources.PlantCapacity, t.Resources.PlantFood+t.Resources.PlantGrowthRate)

	t.Resources.Meat *= 1 - t.Resources.MeatDecayRate
	if t.Resources.Meat < meatZeroClamp {
		t.Resources.Meat = 0
	}
}

// ConsumePlant grants up to `requested` plant food from a tile, returning
// the amount actually granted: min(requested, available).
func ConsumePlant(t *world.Tile, requested float64) float64 {
	granted := math.Min(requested, t.Resources.PlantFood)
	if granted < 0 {
		granted = 0
	}
	t.Resources.PlantFood -= granted
	return granted
}

// ConsumeMeat grants up to `requested` meat from a tile.
func ConsumeMeat(t *world.Tile, requested float64) float64 {
	granted := math.Min(requested, t.Resources.Meat)
	if granted < 0 {
		granted = 0
	}
	t.Resources.Meat -= granted
	return granted
}

// AddMeat deposits meat on a tile — used for corpse yield and carrion.
func AddMeat(t *world.Tile, amount float64) {
	if amount <= 0 {
		return
	}
	t.Resources.Meat += amount
}

// ConsumeWater grants up to `requested` water from a tile. Infinite
// (river) water always grants the full request and is never decremented.
func ConsumeWater(t *world.Tile, requested float64) float64 {
	if t.Resources.WaterInfinite() {
		return requested
	}
	granted := math.Min(requested, t.Resources.Water)
	if granted < 0 {
		granted = 0
	}
	t.Resources.Water -= granted
	return granted
}
