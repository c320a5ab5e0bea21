package scent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/world"
)

func TestDecayAllGeometricSequence(t *testing.T) {
	f := NewField()
	f.Add(New(world.NewHex(0, 0), creature.ID(1), Movement))

	want := []float64{80, 64, 51.2, 40.96}
	for _, w := range want {
		f.DecayAll()
		assert.Equal(t, 1, f.Count())
		assert.InDelta(t, w, f.scents[0].Intensity, 1e-9)
	}

	f.DecayAll()
	assert.Equal(t, 0, f.Count())
}

func TestDetectableByThresholdAndDistance(t *testing.T) {
	f := NewField()
	f.Add(New(world.NewHex(2, 0), creature.ID(1), Mating))

	near := f.DetectableBy(world.NewHex(0, 0), 0, 3)
	assert.Len(t, near, 1)

	far := f.DetectableBy(world.NewHex(0, 0), 0, 1)
	assert.Len(t, far, 0)
}

func TestOfTypeFiltersByTypeAndRadius(t *testing.T) {
	f := NewField()
	f.Add(New(world.NewHex(0, 0), creature.ID(1), Fear))
	f.Add(New(world.NewHex(0, 0), creature.ID(2), Mating))

	matches := f.OfType(world.NewHex(0, 0), Mating, 3)
	assert.Len(t, matches, 1)
	assert.Equal(t, Mating, matches[0].Type)
}

func TestOfCreatureFiltersByID(t *testing.T) {
	f := NewField()
	f.Add(New(world.NewHex(0, 0), creature.ID(7), Movement))
	f.Add(New(world.NewHex(1, 0), creature.ID(8), Movement))

	mine := f.OfCreature(creature.ID(7))
	assert.Len(t, mine, 1)
	assert.Equal(t, creature.ID(7), mine[0].CreatureID)
}
