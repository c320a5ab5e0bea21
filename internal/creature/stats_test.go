package creature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampBoundsAllFields(t *testing.T) {
	s := Stats{Size: 500, Speed: -5, ReproductionRate: 200, Diet: 150, Stealth: -1, Perception: 999}
	s.Clamp()

	assert.Equal(t, 100.0, s.Size)
	assert.Equal(t, 1.0, s.Speed)
	assert.Equal(t, 100.0, s.ReproductionRate)
	assert.Equal(t, 99, s.Diet)
	assert.Equal(t, 0.0, s.Stealth)
	assert.Equal(t, 100.0, s.Perception)
}

func TestDietClassification(t *testing.T) {
	assert.True(t, Stats{Diet: 50}.IsCarnivore())
	assert.True(t, Stats{Diet: -50}.IsHerbivore())
	assert.True(t, Stats{Diet: 10}.IsOmnivore())
	assert.True(t, Stats{Diet: -10}.IsOmnivore())
	assert.False(t, Stats{Diet: 30}.IsOmnivore())
}

func TestDerivedQuantities(t *testing.T) {
	s := Stats{Size: 40, Diet: 99, Stealth: 20, Perception: 10}

	assert.InDelta(t, 1.0, s.DietModifier(), 1e-9)
	assert.InDelta(t, 40.0, s.AttackPower(), 1e-9)
	assert.InDelta(t, 80.0, s.MaxPreySize(), 1e-9)
	assert.InDelta(t, 4.5, s.BaseMetabolicRate(), 1e-9)
	assert.InDelta(t, 1.1, s.MovementPenalty(), 1e-9)
}

func TestCompatible(t *testing.T) {
	a := Stats{Size: 50, Diet: 10}
	b := Stats{Size: 55, Diet: -10}
	assert.True(t, a.Compatible(b))

	c := Stats{Size: 100, Diet: 80}
	assert.False(t, a.Compatible(c))
}

func TestMeanUsesIntegerDietAverage(t *testing.T) {
	a := Stats{Size: 10, Diet: 5}
	b := Stats{Size: 20, Diet: 8}

	m := Mean(a, b)
	assert.Equal(t, 15.0, m.Size)
	assert.Equal(t, 6, m.Diet)
}
