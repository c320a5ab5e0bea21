// Package reproduction implements mate selection, compatibility,
// mutation, and offspring creation (spec §4.8).
package reproduction

import (
	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/rng"
	"github.com/fenwood/ecohex/internal/scent"
	"github.com/fenwood/ecohex/internal/world"
)

// localRadius and matingScentRadius are the search radii of spec §4.8.
const localRadius = 3
const matingScentRadius = 5

// parentHungerCost, parentThirstCost, parentLoveCost are applied to both
// parents after a successful mating (spec §4.8).
const parentHungerCost = 30
const parentThirstCost = 20
const parentLoveCost = -80

// mutationProbability is the 1-in-3 chance of a mutation event.
const mutationProbability = 1.0 / 3.0

// FindPartner selects the nearest compatible candidate for c among
// candidates (alive, mature, canReproduce, distance ≤ localRadius),
// breaking ties by enumeration order (spec §4.8). If none qualifies
// locally, it falls back to a Mating-scent query within radius 5 and
// re-tests compatibility against the scent's owner, looked up via
// byID.
func FindPartner(c *creature.Creature, candidates []*creature.Creature, field *scent.Field, byID map[creature.ID]*creature.Creature) *creature.Creature {
	var best *creature.Creature
	bestDist := localRadius + 1

	for _, other := range candidates {
		if other.ID == c.ID || !eligiblePartner(other) {
			continue
		}
		d := world.Distance(c.Position, other.Position)
		if d > localRadius {
			continue
		}
		if !c.Stats.Compatible(other.Stats) {
			continue
		}
		if d < bestDist {
			bestDist = d
			best = other
		}
	}
	if best != nil {
		return best
	}

	for _, s := range field.OfType(c.Position, scent.Mating, matingScentRadius) {
		if s.CreatureID == c.ID {
			continue
		}
		owner, ok := byID[s.CreatureID]
		if !ok || !eligiblePartner(owner) {
			continue
		}
		if c.Stats.Compatible(owner.Stats) {
			return owner
		}
	}
	return nil
}

func eligiblePartner(c *creature.Creature) bool {
	return c.IsAlive && c.CanReproduce()
}

// Outcome is the result of attempting reproduction between two
// creatures already on the same tile.
type Outcome struct {
	Offspring *creature.Creature
}

// Mate performs the full reproduction procedure of spec §4.8 for two
// partners already confirmed to be on the same tile and both
// canReproduce: averages stats, applies the 1/3-probability mutation,
// creates the offspring, charges both parents their need costs, and
// lays a Mating scent at the shared tile. allocator supplies the
// offspring's ID.
func Mate(a, b *creature.Creature, allocator *creature.IDAllocator, field *scent.Field, r *rng.Source) *creature.Creature {
	offspringStats := creature.Mean(a.Stats, b.Stats)
	applyMutation(&offspringStats, r)
	offspringStats.Clamp()

	offspring := creature.NewOffspring(allocator.Next(), a.Position, offspringStats, a.Generation, b.Generation)

	chargeParent(a)
	chargeParent(b)

	field.Add(scent.New(a.Position, a.ID, scent.Mating))

	return offspring
}

func chargeParent(c *creature.Creature) {
	c.Needs.Hunger += parentHungerCost
	c.Needs.Thirst += parentThirstCost
	c.Needs.Love += parentLoveCost
	c.Needs.Clamp()
}

// mutableField identifies one of the six stats mutation can target
// (spec §4.8).
type mutableField int

const (
	fieldSize mutableField = iota
	fieldSpeed
	fieldReproductionRate
	fieldDiet
	fieldStealth
	fieldPerception
)

// applyMutation perturbs one uniformly-chosen stat with probability 1/3:
// float stats ← stat·U(0.7, 1.3); diet ← diet + U-int(−30, +30).
func applyMutation(s *creature.Stats, r *rng.Source) {
	if !r.Bool(mutationProbability) {
		return
	}
	switch mutableField(r.Choice(6)) {
	case fieldSize:
		s.Size *= r.FloatRange(0.7, 1.3)
	case fieldSpeed:
		s.Speed *= r.FloatRange(0.7, 1.3)
	case fieldReproductionRate:
		s.ReproductionRate *= r.FloatRange(0.7, 1.3)
	case fieldDiet:
		s.Diet += r.IntRange(-30, 30)
	case fieldStealth:
		s.Stealth *= r.FloatRange(0.7, 1.3)
	case fieldPerception:
		s.Perception *= r.FloatRange(0.7, 1.3)
	}
}

// StepToward returns the adjacent hex minimizing distance to target,
// used when a chosen partner is not on the same tile; for an adjacent
// partner it returns the partner's own hex.
func StepToward(from, target world.HexCoord) world.HexCoord {
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
