package engine

import (
	"math"

	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/scent"
	"github.com/fenwood/ecohex/internal/world"
)

// movementBaseFactor is the 3·10 constant in spec §4.11's t0 formula.
const movementBaseFactor = 30

// initiateMovement computes a movement cooldown and puts c into moving
// state toward target, emitting a Movement scent at its origin (spec
// §4.11). If target is not adjacent, the greedy single step toward it
// is substituted.
func initiateMovement(c *creature.Creature, m *world.Map, target world.HexCoord, field *scent.Field) {
	dest := target
	if world.Distance(c.Position, target) > 1 {
		dest = greedyStepToward(c.Position, target)
	}

	t0 := math.Ceil(movementBaseFactor / c.Stats.Speed)
	t := math.Ceil(t0 * c.Stats.MovementPenalty())
	if t < 1 {
		t = 1
	}

	c.IsMoving = true
	c.MovementCooldown = int(t)
	c.TargetPosition = dest

	field.Add(scent.New(c.Position, c.ID, scent.Movement))
}

// greedyStepToward returns the neighbor of from minimizing hex distance
// to target, ties broken by enumeration order (spec §4.11).
func greedyStepToward(from, target world.HexCoord) world.HexCoord {
	neighbors := from.Neighbors()
	best := neighbors[0]
	bestDist := world.Distance(best, target)
	for _, n := range neighbors[1:] {
		if d := world.Distance(n, target); d < bestDist {
			bestDist = d
			best = n
		}
	}
	return best
}

// advanceMovement decrements a moving creature's cooldown, teleporting
// it to its target and clearing the moving flag on arrival (spec §4.5
// step 2). Returns true if the creature was moving at the start of this
// turn — such a creature skips the rest of this turn's update
// regardless of whether it just arrived.
func advanceMovement(c *creature.Creature) bool {
	if !c.IsMoving {
		return false
	}
	c.MovementCooldown--
	if c.MovementCooldown <= 0 {
		c.Position = c.TargetPosition
		c.IsMoving = false
	}
	return true
}
