package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/world"
)

type fakeWorldSource struct {
	tiles map[world.HexCoord]WorldSourceTile
}

func (f fakeWorldSource) Tiles() map[world.HexCoord]WorldSourceTile {
	return f.tiles
}

func newFlatWorldSource(radius int) fakeWorldSource {
	tiles := make(map[world.HexCoord]WorldSourceTile)
	for _, c := range world.Range(world.NewHex(0, 0), radius) {
		tiles[c] = WorldSourceTile{Elevation: 0.6, IsWater: false, WaterDistance: 10}
	}
	return fakeWorldSource{tiles: tiles}
}

func TestInitializeRejectsNegativePopulation(t *testing.T) {
	sim := New(1, zerolog.Nop())
	err := sim.Initialize(newFlatWorldSource(5), -1, 0, 0)
	assert.ErrorIs(t, err, ErrPopulationNegative)
}

func TestInitializeRejectsEmptyWorld(t *testing.T) {
	sim := New(1, zerolog.Nop())
	err := sim.Initialize(fakeWorldSource{tiles: map[world.HexCoord]WorldSourceTile{}}, 0, 0, 0)
	assert.ErrorIs(t, err, ErrInconsistentWorldMaps)
}

func TestInitializeSpawnsRequestedPopulations(t *testing.T) {
	sim := New(1, zerolog.Nop())
	err := sim.Initialize(newFlatWorldSource(5), 3, 2, 1)
	assert.NoError(t, err)
	assert.Len(t, sim.Creatures, 6)
}

func TestStepAdvancesTurnAndRespectsPause(t *testing.T) {
	sim := New(1, zerolog.Nop())
	assert.NoError(t, sim.Initialize(newFlatWorldSource(5), 5, 5, 5))

	sim.Step()
	assert.Equal(t, 1, sim.Turn)

	sim.Pause()
	sim.Step()
	assert.Equal(t, 1, sim.Turn)

	sim.Resume()
	sim.Step()
	assert.Equal(t, 2, sim.Turn)
}

func TestDeterministicSeedProducesIdenticalRuns(t *testing.T) {
	simA := New(42, zerolog.Nop())
	simB := New(42, zerolog.Nop())

	assert.NoError(t, simA.Initialize(newFlatWorldSource(6), 10, 5, 5))
	assert.NoError(t, simB.Initialize(newFlatWorldSource(6), 10, 5, 5))

	simA.StepN(10)
	simB.StepN(10)

	assert.Equal(t, len(simA.Creatures), len(simB.Creatures))
	for i := range simA.Creatures {
		assert.Equal(t, simA.Creatures[i].Position, simB.Creatures[i].Position)
		assert.Equal(t, simA.Creatures[i].Stats, simB.Creatures[i].Stats)
		assert.Equal(t, simA.Creatures[i].Needs, simB.Creatures[i].Needs)
	}
}

// TestCorpseDepositionScenario reproduces the corpse-deposition concrete
// scenario: a size-12 creature's death deposits 24.0 meat on its tile,
// decaying to 21.6 after one further turn of regeneration.
func TestCorpseDepositionScenario(t *testing.T) {
	sim := New(1, zerolog.Nop())
	assert.NoError(t, sim.Initialize(newFlatWorldSource(3), 0, 0, 0))

	coord := sim.terrestrialCoords[0]
	tile := sim.worldMap.Get(coord)

	victim := creature.New(sim.idAllocator.Next(), coord, creature.Stats{Size: 12, Speed: 10, ReproductionRate: 10})
	sim.Creatures = append(sim.Creatures, victim)
	sim.byID[victim.ID] = victim
	victim.IsAlive = false

	sim.cleanupDead()
	assert.InDelta(t, 24.0, tile.Resources.Meat, 1e-9)

	sim.step()
	assert.InDelta(t, 21.6, tile.Resources.Meat, 1e-9)
}
