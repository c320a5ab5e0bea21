// Package worldgen is a reference procedural terrain generator: an
// external collaborator to the core (spec §1 "Deliberately out of
// scope"), implementing the engine.WorldSource interface with layered
// simplex noise.
package worldgen

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/fenwood/ecohex/internal/engine"
	"github.com/fenwood/ecohex/internal/world"
)

// Config holds generation parameters.
type Config struct {
	Radius   int
	Seed     int64
	SeaLevel float64 // elevation threshold below which a tile is water
}

// DefaultConfig returns a reasonable starting configuration.
func DefaultConfig() Config {
	return Config{
		Radius:   20,
		Seed:     1,
		SeaLevel: 0.25,
	}
}

// Generator produces a WorldSourceTile set from layered simplex noise.
// It satisfies engine.WorldSource.
type Generator struct {
	cfg       Config
	elevNoise opensimplex.Noise
}

// NewGenerator constructs a noise-backed generator for cfg.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg:       cfg,
		elevNoise: opensimplex.New(cfg.Seed),
	}
}

var _ engine.WorldSource = (*Generator)(nil)

// Tiles implements engine.WorldSource: elevation from multi-octave
// noise with radial continental shaping, water flagged below sea
// level, and water-distance computed by BFS from the nearest water
// tile.
func (g *Generator) Tiles() map[world.HexCoord]engine.WorldSourceTile {
	coords := world.Range(world.NewHex(0, 0), g.cfg.Radius)
	elevations := make(map[world.HexCoord]float64, len(coords))
	isWater := make(map[world.HexCoord]bool, len(coords))

	for _, c := range coords {
		x := float64(c.Q) + float64(c.R)*0.5
		y := float64(c.R) * math.Sqrt(3) / 2

		elev := octaveNoise(g.elevNoise, x, y, 4, 0.08, 0.5)

		dist := math.Sqrt(x*x+y*y) / float64(g.cfg.Radius)
		falloff := 1 - math.Pow(dist, 3.5)
		if falloff < 0 {
			falloff = 0
		}
		elev *= falloff

		elevations[c] = elev
		isWater[c] = elev < g.cfg.SeaLevel
	}

	distances := waterDistanceBFS(coords, isWater)

	out := make(map[world.HexCoord]engine.WorldSourceTile, len(coords))
	for _, c := range coords {
		out[c] = engine.WorldSourceTile{
			Elevation:     elevations[c],
			IsWater:       isWater[c],
			WaterDistance: distances[c],
		}
	}
	return out
}

// octaveNoise sums several octaves of 2-D simplex noise, normalized to
// [0, 1].
func octaveNoise(n opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	var total, amplitude, maxAmp float64
	amplitude = 1
	freq := frequency
	for i := 0; i < octaves; i++ {
		total += n.Eval2(x*freq, y*freq) * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		freq *= 2
	}
	return (total/maxAmp + 1) / 2
}

// waterDistanceBFS computes, for every coordinate, its hex distance to
// the nearest water tile via breadth-first search from all water tiles
// at once.
func waterDistanceBFS(coords []world.HexCoord, isWater map[world.HexCoord]bool) map[world.HexCoord]float64 {
	dist := make(map[world.HexCoord]float64, len(coords))
	valid := make(map[world.HexCoord]bool, len(coords))
	for _, c := range coords {
		valid[c] = true
	}

	queue := make([]world.HexCoord, 0, len(coords))
	for _, c := range coords {
		if isWater[c] {
			dist[c] = 0
			queue = append(queue, c)
		}
	}

	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		d := dist[cur]
		for _, n := range cur.Neighbors() {
			if !valid[n] {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = d + 1
			queue = append(queue, n)
		}
	}

	for _, c := range coords {
		if _, ok := dist[c]; !ok {
			dist[c] = float64(fallbackWaterDistance)
		}
	}
	return dist
}

// fallbackWaterDistance is used for tiles unreachable from any water
// tile (can only happen in a world with no water at all).
const fallbackWaterDistance = 99
