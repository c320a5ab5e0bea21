// Package engine provides the simulation façade and the per-turn
// pipeline that drives the world, creature, and action subsystems
// (spec §4.12, §6 "Simulation façade").
package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/population"
	"github.com/fenwood/ecohex/internal/resources"
	"github.com/fenwood/ecohex/internal/rng"
	"github.com/fenwood/ecohex/internal/scent"
	"github.com/fenwood/ecohex/internal/stats"
	"github.com/fenwood/ecohex/internal/world"
)

// WorldSourceTile is one tile's data as produced by an external terrain
// generator (spec §6 "World-in interface").
type WorldSourceTile struct {
	Elevation     float64
	IsWater       bool
	WaterDistance float64
}

// WorldSource decouples the core from procedural terrain generation
// (spec §1 "Deliberately out of scope"): it supplies a heightmap, a
// water flag, and a water-distance map keyed by hex coordinate.
type WorldSource interface {
	Tiles() map[world.HexCoord]WorldSourceTile
}

// ErrPopulationNegative, ErrInconsistentWorldMaps, and ErrUnknownHex are
// the Invalid Input sentinels of spec §7.
var (
	ErrPopulationNegative    = fmt.Errorf("ecohex: population count cannot be negative")
	ErrInconsistentWorldMaps = fmt.Errorf("ecohex: world source tile maps are inconsistent")
	ErrUnknownHex            = fmt.Errorf("ecohex: reference to unknown hex coordinate")
)

// Simulation is the public entry point of the core: init, step, stats,
// reset (spec §6). It owns the id allocator, the PRNG, the tile map,
// the creature slice, and the scent field; subsystems receive narrow
// borrowed views rather than the Simulation itself (spec §9).
type Simulation struct {
	RunID  uuid.UUID
	Logger zerolog.Logger

	Turn      int
	Creatures []*creature.Creature
	Paused    bool

	worldMap          *world.Map
	scents            *scent.Field
	rng               *rng.Source
	idAllocator       creature.IDAllocator
	byID              map[creature.ID]*creature.Creature
	terrestrialCoords []world.HexCoord

	seed int64
}

// New creates a Simulation whose PRNG is seeded with seed; call
// Initialize before stepping.
func New(seed int64, logger zerolog.Logger) *Simulation {
	return &Simulation{
		RunID:  uuid.New(),
		Logger: logger,
		seed:   seed,
		rng:    rng.New(seed),
		scents: scent.NewField(),
		byID:   make(map[creature.ID]*creature.Creature),
	}
}

// Initialize builds the tile map from src and spawns the initial
// populations (spec §6 "initialize"). No state is mutated if validation
// fails (spec §7).
func (s *Simulation) Initialize(src WorldSource, herbivoreCount, carnivoreCount, omnivoreCount int) error {
	if herbivoreCount < 0 || carnivoreCount < 0 || omnivoreCount < 0 {
		return ErrPopulationNegative
	}

	tiles := src.Tiles()
	if len(tiles) == 0 {
		return ErrInconsistentWorldMaps
	}

	m := world.NewMap()
	params := world.DefaultClimateParams()
	rows, minRow := rowExtent(tiles)

	for coord, wt := range tiles {
		t := &world.Tile{
			Coord:         coord,
			Elevation:     wt.Elevation,
			WaterDistance: wt.WaterDistance,
		}
		if wt.IsWater {
			t.Biome = world.BiomeWater
		}
		m.Set(t)
	}

	// Climate draws consume s.rng per tile (spec §5 determinism contract:
	// identical seed ⇒ identical turn sequence), so tiles must be visited
	// in a deterministic order rather than Go's randomized map iteration.
	for _, coord := range sortedCoords(tiles) {
		t := m.Get(coord)
		wt := tiles[coord]
		waterNeighbors := countWaterNeighbors(tiles, coord)
		row := coord.R - minRow
		t.Temperature = world.Temperature(params, row, rows, wt.Elevation, waterNeighbors, s.rng)
		t.Precipitation = world.Precipitation(params, row, rows, wt.Elevation, t.Temperature, waterNeighbors, s.rng)
		if !wt.IsWater {
			t.Biome = world.ClassifyBiome(t.Temperature, t.Precipitation)
		}
		resources.InitTile(t)
	}

	s.worldMap = m
	s.terrestrialCoords = terrestrialCoordsOf(m)

	s.idAllocator = creature.IDAllocator{}
	s.Creatures = nil
	s.byID = make(map[creature.ID]*creature.Creature)
	s.Turn = 0

	s.Creatures = append(s.Creatures, population.Spawn(m, s.terrestrialCoords, population.Herbivore, herbivoreCount, &s.idAllocator, s.rng)...)
	s.Creatures = append(s.Creatures, population.Spawn(m, s.terrestrialCoords, population.Carnivore, carnivoreCount, &s.idAllocator, s.rng)...)
	s.Creatures = append(s.Creatures, population.Spawn(m, s.terrestrialCoords, population.Omnivore, omnivoreCount, &s.idAllocator, s.rng)...)
	for _, c := range s.Creatures {
		s.byID[c.ID] = c
	}

	s.Logger.Info().
		Str("run_id", s.RunID.String()).
		Int("tiles", m.TileCount()).
		Int("creatures", len(s.Creatures)).
		Msg("simulation initialized")
	return nil
}

// Step runs one turn, unless paused.
func (s *Simulation) Step() {
	if s.Paused {
		return
	}
	s.step()
}

// StepN runs n turns, respecting pause state each turn.
func (s *Simulation) StepN(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// Pause, Resume, and TogglePause gate stepping (spec §5, §6).
func (s *Simulation) Pause()       { s.Paused = true }
func (s *Simulation) Resume()      { s.Paused = false }
func (s *Simulation) TogglePause() { s.Paused = !s.Paused }

// Reset clears the simulation back to zero state; callers must call
// Initialize again before stepping.
func (s *Simulation) Reset() {
	s.Turn = 0
	s.Creatures = nil
	s.byID = make(map[creature.ID]*creature.Creature)
	s.worldMap = world.NewMap()
	s.scents = scent.NewField()
	s.rng = rng.New(s.seed)
	s.idAllocator = creature.IDAllocator{}
}

// Scents returns a read-only view of live scent records.
func (s *Simulation) Scents() []scent.Scent {
	return s.scents.All()
}

// TileResources returns the read-only tile map for renderer/stats use.
func (s *Simulation) TileResources() *world.Map {
	return s.worldMap
}

// Stats computes the aggregated counters of spec §6's stats() interface.
func (s *Simulation) Stats() stats.Snapshot {
	return stats.Compute(s.Turn, s.Creatures, s.worldMap, s.scents.Count())
}

func (s *Simulation) aliveCreatures() []*creature.Creature {
	out := make([]*creature.Creature, 0, len(s.Creatures))
	for _, c := range s.Creatures {
		if c.IsAlive {
			out = append(out, c)
		}
	}
	return out
}

func rowExtent(tiles map[world.HexCoord]WorldSourceTile) (rows, minRow int) {
	minR, maxR := 0, 0
	first := true
	for c := range tiles {
		if first {
			minR, maxR = c.R, c.R
			first = false
			continue
		}
		if c.R < minR {
			minR = c.R
		}
		if c.R > maxR {
			maxR = c.R
		}
	}
	return maxR - minR + 1, minR
}

func countWaterNeighbors(tiles map[world.HexCoord]WorldSourceTile, coord world.HexCoord) int {
	n := 0
	for _, nc := range coord.Neighbors() {
		if wt, ok := tiles[nc]; ok && wt.IsWater {
			n++
		}
	}
	return n
}

func terrestrialCoordsOf(m *world.Map) []world.HexCoord {
	coords := make([]world.HexCoord, 0, m.TileCount())
	for c := range m.Tiles {
		coords = append(coords, c)
	}
	sortByRowThenCol(coords)

	out := make([]world.HexCoord, 0, len(coords))
	for _, coord := range coords {
		if t := m.Get(coord); !t.IsWater() {
			out = append(out, coord)
		}
	}
	return out
}

// sortedCoords returns tiles' keys ordered by (R, Q) so that any rng draw
// made while iterating them is deterministic for a given seed (spec §5,
// §9 open question on world-generator determinism).
func sortedCoords(tiles map[world.HexCoord]WorldSourceTile) []world.HexCoord {
	out := make([]world.HexCoord, 0, len(tiles))
	for c := range tiles {
		out = append(out, c)
	}
	sortByRowThenCol(out)
	return out
}

func sortByRowThenCol(coords []world.HexCoord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].R != coords[j].R {
			return coords[i].R < coords[j].R
		}
		return coords[i].Q < coords[j].Q
	})
}
