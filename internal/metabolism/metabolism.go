// Package metabolism implements per-turn need increase and the
// death/corpse pipeline of spec §4.10.
package metabolism

import (
	"github.com/fenwood/ecohex/internal/creature"
)

// Activity scales the metabolic cost of a turn by what the creature
// attempted (spec §4.10).
type Activity float64

const (
	ActivityHungerThirst Activity = 1.2
	ActivityLove         Activity = 1.0
	ActivityNone         Activity = 0.8
)

// loveGainFactor is the per-turn love increase for mature creatures,
// scaled by reproductionRate (spec §4.10).
const loveGainFactor = 0.1

// ActivityFor maps a dispatched priority to its metabolic activity
// multiplier.
func ActivityFor(p creature.Priority) Activity {
	switch p {
	case creature.PriorityHunger, creature.PriorityThirst:
		return ActivityHungerThirst
	case creature.PriorityLove:
		return ActivityLove
	default:
		return ActivityNone
	}
}

// Apply runs one turn of metabolism on a non-moving creature (spec
// §4.10):
//
//	hunger += base·activity + 0.05·perception
//	thirst += 0.5·(base·activity + 0.05·perception)
//	if mature: love += 0.1·reproductionRate
//
// then clamps and checks for death. Only call for creatures that did
// not move this turn (moving creatures skip metabolism entirely).
func Apply(c *creature.Creature, activity Activity) {
	base := c.Stats.BaseMetabolicRate()
	cost := base*float64(activity) + 0.05*c.Stats.Perception

	c.Needs.Hunger += cost
	c.Needs.Thirst += 0.5 * cost
	if c.IsMature() {
		c.Needs.Love += loveGainFactor * c.Stats.ReproductionRate
	}
	c.Needs.Clamp()
	c.CheckDeath()
}
