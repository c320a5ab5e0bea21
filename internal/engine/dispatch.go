package engine

import (
	"github.com/fenwood/ecohex/internal/combat"
	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/feeding"
	"github.com/fenwood/ecohex/internal/reproduction"
	"github.com/fenwood/ecohex/internal/world"
)

// dispatchOne picks and executes a single action for c based on its
// current need priority (spec §4.9), returning the priority dispatched
// so metabolism applies the activity multiplier for the action actually
// taken rather than recomputing priority after the action has already
// moved the needs (spec §4.10). Newborns produced by reproduction are
// appended to newborns rather than spliced into the live set immediately
// (spec §9 "iteration while mutating").
func (s *Simulation) dispatchOne(c *creature.Creature, newborns *[]*creature.Creature) creature.Priority {
	priority := c.Priority()

	switch priority {
	case creature.PriorityHunger:
		s.dispatchHunger(c)
	case creature.PriorityThirst:
		s.dispatchThirst(c)
	case creature.PriorityLove:
		s.dispatchLove(c, newborns)
	case creature.PriorityNone:
		// no action
	}
	return priority
}

// dispatchHunger implements the "carnivores first attempt a hunt
// against local prey before falling back to resource consumption" rule
// of spec §4.9.
func (s *Simulation) dispatchHunger(c *creature.Creature) {
	if c.Stats.IsCarnivore() {
		if prey := s.findLocalPrey(c); prey != nil {
			result := combat.Resolve(c, prey, s.worldMap.Get(c.Position), s.scents, s.rng)
			s.applyCombatResult(c, prey, result)
			return
		}
	}

	result := feeding.Feed(c, s.worldMap, s.rng)
	if result.NeedsToMove {
		initiateMovement(c, s.worldMap, result.TargetTile, s.scents)
	}
}

// dispatchThirst implements the water-search action of spec §4.6/§4.9.
func (s *Simulation) dispatchThirst(c *creature.Creature) {
	result := feeding.FeedWater(c, s.worldMap, s.rng)
	if result.NeedsToMove {
		initiateMovement(c, s.worldMap, result.TargetTile, s.scents)
	}
}

// dispatchLove implements the reproduction action of spec §4.8/§4.9.
func (s *Simulation) dispatchLove(c *creature.Creature, newborns *[]*creature.Creature) {
	partner := reproduction.FindPartner(c, s.aliveCreatures(), s.scents, s.byID)
	if partner == nil {
		return
	}

	if world.Distance(c.Position, partner.Position) > 0 {
		target := reproduction.StepToward(c.Position, partner.Position)
		initiateMovement(c, s.worldMap, target, s.scents)
		return
	}

	if !c.CanReproduce() || !partner.CanReproduce() {
		return
	}
	offspring := reproduction.Mate(c, partner, &s.idAllocator, s.scents, s.rng)
	*newborns = append(*newborns, offspring)
}

// findLocalPrey returns the first creature, in s.Creatures order, that
// shares c's tile and satisfies combat.Precondition, or nil.
func (s *Simulation) findLocalPrey(c *creature.Creature) *creature.Creature {
	for _, other := range s.Creatures {
		if other == c || !other.IsAlive || other.Position != c.Position {
			continue
		}
		if combat.Precondition(c, other) {
			return other
		}
	}
	return nil
}

// applyCombatResult applies the side effects of a resolved combat
// encounter: prey death and predator satiation on PredatorWins (spec
// §4.7 S3). Fear scent on evasion is already laid by combat.Resolve.
func (s *Simulation) applyCombatResult(predator, prey *creature.Creature, result combat.Result) {
	if result.Outcome != combat.PredatorWins {
		return
	}
	prey.IsAlive = false
	predator.Needs.Hunger -= result.PredatorMeat
	predator.Needs.Clamp()
}
