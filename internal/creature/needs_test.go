package creature

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewbornNeeds(t *testing.T) {
	n := NewbornNeeds()
	assert.Equal(t, Needs{Hunger: 20, Thirst: 20, Love: 0}, n)
}

func TestLethal(t *testing.T) {
	assert.True(t, Needs{Hunger: 100}.Lethal())
	assert.True(t, Needs{Thirst: 100}.Lethal())
	assert.False(t, Needs{Hunger: 99, Thirst: 99}.Lethal())
}

func TestPriorityImmature(t *testing.T) {
	assert.Equal(t, PriorityHunger, Needs{Hunger: 60, Thirst: 10}.Priority(false))
	assert.Equal(t, PriorityThirst, Needs{Hunger: 10, Thirst: 60}.Priority(false))
	assert.Equal(t, PriorityNone, Needs{Hunger: 10, Thirst: 10}.Priority(false))
	assert.Equal(t, PriorityNone, Needs{Hunger: 10, Thirst: 10, Love: 90}.Priority(false))
}

func TestPriorityMatureSurvivalOverridesLove(t *testing.T) {
	n := Needs{Hunger: 75, Thirst: 10, Love: 90}
	assert.Equal(t, PriorityHunger, n.Priority(true))
}

func TestPriorityMatureLoveAboveThreshold(t *testing.T) {
	n := Needs{Hunger: 30, Thirst: 20, Love: 65}
	assert.Equal(t, PriorityLove, n.Priority(true))
}

func TestPriorityMatureFallsBackToLargest(t *testing.T) {
	n := Needs{Hunger: 45, Thirst: 20, Love: 10}
	assert.Equal(t, PriorityHunger, n.Priority(true))

	n2 := Needs{Hunger: 10, Thirst: 10, Love: 10}
	assert.Equal(t, PriorityNone, n2.Priority(true))
}
