package world

import "math"

// TileResources is the resource container every tile carries (spec §3
// "Tile resources"). PlantCapacity/PlantGrowthRate/MeatDecayRate are set
// once at tile creation from the biome table in internal/resources.
type TileResources struct {
	PlantFood       float64
	PlantCapacity   float64
	PlantGrowthRate float64
	Meat            float64
	MeatDecayRate   float64
	Water           float64 // may be math.Inf(1) for river tiles
}

// WaterInfinite reports whether this tile sits on a river (unbounded
// water supply, spec §3).
func (r TileResources) WaterInfinite() bool {
	return math.IsInf(r.Water, 1)
}

// Tile is one hex cell of the world: its cube coordinate, climate state,
// biome tag, and resource container (spec §3 "Tile").
type Tile struct {
	Coord         HexCoord
	Elevation     float64 // [0, 1]
	Temperature   float64 // °C
	Precipitation float64 // mm/yr
	Biome         Biome
	WaterDistance float64 // hex distance to nearest river, from the world-in interface
	Resources     TileResources
}

// IsWater reports whether this tile's biome is Water — such tiles have no
// plant-food capacity (spec §3 invariant).
func (t *Tile) IsWater() bool {
	return t.Biome == BiomeWater
}

// WaterLevelForDistance maps a hex distance-to-nearest-river to the
// monotone-decreasing water values of spec §3: ∞, 100, 50, 20, 5 at
// distance 0, ≤1, ≤3, ≤5, >5.
func WaterLevelForDistance(distance float64) float64 {
	switch {
	case distance <= 0:
		return math.Inf(1)
	case distance <= 1:
		return 100
	case distance <= 3:
		return 50
	case distance <= 5:
		return 20
	default:
		return 5
	}
}
