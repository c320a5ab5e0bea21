// Package population implements the per-species stat presets, initial
// spawn, and extinction relief of spec §4.13 and §4.12 step 8.
package population

import (
	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/rng"
	"github.com/fenwood/ecohex/internal/world"
)

// Species names one of the three population presets.
type Species uint8

const (
	Herbivore Species = iota
	Carnivore
	Omnivore
)

// spawnElevationLow and spawnElevationHigh bound the rejection-sampling
// window for spawn position (spec §4.13).
const spawnElevationLow = 0.4
const spawnElevationHigh = 0.8
const spawnAttempts = 100

// extinctionThreshold and extinctionSpawnCount implement spec §4.12
// step 8.
const extinctionThreshold = 5
const extinctionSpawnCount = 10

// RandomStats generates a fresh, clamped Stats draw for the given
// species following the U() ranges of spec §4.13.
func RandomStats(species Species, r *rng.Source) creature.Stats {
	var s creature.Stats
	switch species {
	case Herbivore:
		s = creature.Stats{
			Diet:             r.IntRange(-99, -40),
			Size:             r.FloatRange(8, 15),
			Speed:            r.FloatRange(8, 15),
			ReproductionRate: r.FloatRange(8, 15),
			Perception:       r.FloatRange(8, 15),
			Stealth:          r.FloatRange(5, 20),
		}
	case Carnivore:
		s = creature.Stats{
			Diet:             r.IntRange(40, 99),
			Size:             r.FloatRange(10, 20),
			Speed:            r.FloatRange(12, 18),
			ReproductionRate: r.FloatRange(5, 10),
			Stealth:          r.FloatRange(10, 25),
			Perception:       r.FloatRange(12, 20),
		}
	default: // Omnivore
		s = creature.Stats{
			Diet:             r.IntRange(-20, 20),
			Size:             r.FloatRange(8, 15),
			Speed:            r.FloatRange(8, 15),
			ReproductionRate: r.FloatRange(8, 15),
			Stealth:          r.FloatRange(8, 15),
			Perception:       r.FloatRange(8, 15),
		}
	}
	s.Clamp()
	return s
}

// SpawnPosition rejection-samples a terrestrial hex with elevation in
// (0.4, 0.8), falling back to (0, 0) after 100 attempts (spec §4.13).
// coords is the full set of valid hex coordinates to sample from.
func SpawnPosition(m *world.Map, coords []world.HexCoord, r *rng.Source) world.HexCoord {
	if len(coords) == 0 {
		return world.NewHex(0, 0)
	}
	for i := 0; i < spawnAttempts; i++ {
		c := coords[r.Int(len(coords))]
		t := m.Get(c)
		if t == nil {
			continue
		}
		if t.Elevation > spawnElevationLow && t.Elevation < spawnElevationHigh {
			return c
		}
	}
	return world.NewHex(0, 0)
}

// Spawn creates n creatures of the given species at rejection-sampled
// terrestrial positions.
func Spawn(m *world.Map, coords []world.HexCoord, species Species, n int, allocator *creature.IDAllocator, r *rng.Source) []*creature.Creature {
	out := make([]*creature.Creature, 0, n)
	for i := 0; i < n; i++ {
		pos := SpawnPosition(m, coords, r)
		stats := RandomStats(species, r)
		out = append(out, creature.New(allocator.Next(), pos, stats))
	}
	return out
}

// NeedsExtinctionRelief reports whether the alive count has fallen below
// the threshold (spec §4.12 step 8).
func NeedsExtinctionRelief(aliveCount int) bool {
	return aliveCount < extinctionThreshold
}

// ExtinctionRelief spawns 10 balanced creatures cycling
// herbivore/carnivore/omnivore presets (spec §4.12 step 8).
func ExtinctionRelief(m *world.Map, coords []world.HexCoord, allocator *creature.IDAllocator, r *rng.Source) []*creature.Creature {
	cycle := [3]Species{Herbivore, Carnivore, Omnivore}
	out := make([]*creature.Creature, 0, extinctionSpawnCount)
	for i := 0; i < extinctionSpawnCount; i++ {
		species := cycle[i%len(cycle)]
		pos := SpawnPosition(m, coords, r)
		stats := RandomStats(species, r)
		out = append(out, creature.New(allocator.Next(), pos, stats))
	}
	return out
}
