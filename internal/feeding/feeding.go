// Package feeding implements the diet-conditioned food and water search
// of spec §4.6: carnivore, herbivore, and omnivore dispatch plus the
// shared water-search procedure.
package feeding

import (
	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/resources"
	"github.com/fenwood/ecohex/internal/rng"
	"github.com/fenwood/ecohex/internal/world"
)

// plantBite and meatBite and waterSip are the per-attempt consumption
// fractions of size named in spec §4.6.
const plantBite = 0.5
const meatBite = 0.5
const waterSip = 0.3

// waterScoreBonus is added to a neighbor's resource score if it carries
// water (spec §4.6 "water presence adds +10 to the score").
const waterScoreBonus = 10

// satiateHunger and satiateThirst translate a granted resource amount
// into need relief, one unit of food or water restoring one point of
// the corresponding need. The spec leaves the exact conversion
// unspecified; this is the chosen, documented mapping (see DESIGN.md).
func satiateHunger(c *creature.Creature, granted float64) {
	c.Needs.Hunger -= granted
	c.Needs.Clamp()
}

func satiateThirst(c *creature.Creature, granted float64) {
	c.Needs.Thirst -= granted
	c.Needs.Clamp()
}

// Result is the outcome of a feeding attempt (spec §4.6 "{success,
// needsToMove, targetTile}").
type Result struct {
	Success     bool
	NeedsToMove bool
	TargetTile  world.HexCoord
}

// Feed dispatches a feeding attempt for c on its current tile, by the
// sign of its diet (spec §4.6).
func Feed(c *creature.Creature, m *world.Map, r *rng.Source) Result {
	switch {
	case c.Stats.IsCarnivore():
		return feedCarnivore(c, m, r)
	case c.Stats.IsHerbivore():
		return feedHerbivore(c, m, r)
	default:
		return feedOmnivore(c, m, r)
	}
}

// feedCarnivore implements spec §4.6's carnivore dispatch.
func feedCarnivore(c *creature.Creature, m *world.Map, r *rng.Source) Result {
	tile := m.Get(c.Position)
	if tile == nil {
		return Result{}
	}

	if tile.Resources.Meat > 0 {
		granted := resources.ConsumeMeat(tile, meatBite*c.Stats.Size)
		satiateHunger(c, granted)
		return Result{Success: true}
	}

	roll := r.Roll()
	if roll >= c.Stats.Diet {
		if target, ok := bestNeighborByScore(m, c.Position, r, scoreMeat); ok {
			return Result{NeedsToMove: true, TargetTile: target}
		}
	} else if tile.Resources.PlantFood > 0 {
		granted := resources.ConsumePlant(tile, plantBite*c.Stats.Size)
		satiateHunger(c, granted)
		return Result{Success: true}
	}

	if target, ok := bestNeighborByScore(m, c.Position, r, scoreAny); ok {
		return Result{NeedsToMove: true, TargetTile: target}
	}
	return Result{}
}

// feedHerbivore implements spec §4.6's herbivore dispatch, symmetric to
// the carnivore case with plant-food first and threshold -diet.
func feedHerbivore(c *creature.Creature, m *world.Map, r *rng.Source) Result {
	tile := m.Get(c.Position)
	if tile == nil {
		return Result{}
	}

	if tile.Resources.PlantFood > 0 {
		granted := resources.ConsumePlant(tile, plantBite*c.Stats.Size)
		satiateHunger(c, granted)
		return Result{Success: true}
	}

	roll := r.Roll()
	if roll >= -c.Stats.Diet {
		if target, ok := bestNeighborByScore(m, c.Position, r, scorePlant); ok {
			return Result{NeedsToMove: true, TargetTile: target}
		}
	} else if tile.Resources.Meat > 0 {
		granted := resources.ConsumeMeat(tile, meatBite*c.Stats.Size)
		satiateHunger(c, granted)
		return Result{Success: true}
	}

	if target, ok := bestNeighborByScore(m, c.Position, r, scoreAny); ok {
		return Result{NeedsToMove: true, TargetTile: target}
	}
	return Result{}
}

// feedOmnivore implements spec §4.6's omnivore dispatch: try both
// resources locally, preference set by sign of diet, else neighborhood
// search.
func feedOmnivore(c *creature.Creature, m *world.Map, r *rng.Source) Result {
	tile := m.Get(c.Position)
	if tile == nil {
		return Result{}
	}

	preferMeatFirst := c.Stats.Diet > 0
	tryPlant := func() bool {
		if tile.Resources.PlantFood > 0 {
			granted := resources.ConsumePlant(tile, plantBite*c.Stats.Size)
			satiateHunger(c, granted)
			return true
		}
		return false
	}
	tryMeat := func() bool {
		if tile.Resources.Meat > 0 {
			granted := resources.ConsumeMeat(tile, meatBite*c.Stats.Size)
			satiateHunger(c, granted)
			return true
		}
		return false
	}

	if preferMeatFirst {
		if tryMeat() || tryPlant() {
			return Result{Success: true}
		}
	} else {
		if tryPlant() || tryMeat() {
			return Result{Success: true}
		}
	}

	if target, ok := bestNeighborByScore(m, c.Position, r, scoreAny); ok {
		return Result{NeedsToMove: true, TargetTile: target}
	}
	return Result{}
}

// FeedWater implements the water-search half of spec §4.6: drink
// on-tile if possible, else move toward the best neighboring water tile.
func FeedWater(c *creature.Creature, m *world.Map, r *rng.Source) Result {
	tile := m.Get(c.Position)
	if tile == nil {
		return Result{}
	}

	if tile.Resources.Water > 0 || tile.Resources.WaterInfinite() {
		granted := resources.ConsumeWater(tile, waterSip*c.Stats.Size)
		satiateThirst(c, granted)
		return Result{Success: true}
	}

	if target, ok := bestNeighborByScore(m, c.Position, r, scoreWater); ok {
		return Result{NeedsToMove: true, TargetTile: target}
	}
	return Result{}
}

// scoreFunc scores a candidate neighbor tile for a search strategy.
type scoreFunc func(t *world.Tile) float64

func scoreMeat(t *world.Tile) float64 {
	s := t.Resources.Meat
	if t.Resources.WaterInfinite() || t.Resources.Water > 0 {
		s += waterScoreBonus
	}
	return s
}

func scorePlant(t *world.Tile) float64 {
	s := t.Resources.PlantFood
	if t.Resources.WaterInfinite() || t.Resources.Water > 0 {
		s += waterScoreBonus
	}
	return s
}

func scoreAny(t *world.Tile) float64 {
	s := t.Resources.Meat + t.Resources.PlantFood
	if t.Resources.WaterInfinite() || t.Resources.Water > 0 {
		s += waterScoreBonus
	}
	return s
}

func scoreWater(t *world.Tile) float64 {
	if t.Resources.WaterInfinite() {
		return 1e9
	}
	return t.Resources.Water
}

// bestNeighborByScore finds the highest-scoring neighbor tile, breaking
// ties by random shuffle (spec §4.6 "ties broken by random shuffle").
func bestNeighborByScore(m *world.Map, coord world.HexCoord, r *rng.Source, score scoreFunc) (world.HexCoord, bool) {
	neighbors := m.Neighbors(coord)
	if len(neighbors) == 0 {
		return world.HexCoord{}, false
	}

	order := r.Perm(len(neighbors))
	bestScore := -1.0
	best := -1
	for _, idx := range order {
		t := neighbors[idx]
		sc := score(t)
		if sc <= 0 {
			continue
		}
		if sc > bestScore {
			bestScore = sc
			best = idx
		}
	}
	if best < 0 {
		return world.HexCoord{}, false
	}
	return neighbors[best].Coord, true
}
