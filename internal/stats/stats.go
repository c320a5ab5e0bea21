// Package stats computes the aggregated counters exposed by the
// simulation façade's stats() read interface (spec §6).
package stats

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/world"
)

// Population is the population.* block of spec §6's stats() shape.
type Population struct {
	Total          int
	Herbivores     int
	Carnivores     int
	Omnivores      int
	YoungAge       int // age < 50
	Adult          int // 50 <= age < 500
	Old            int // age >= 500
	AverageAge     float64
	MaxGeneration  int
}

// TurnActivity is the turn.* block of spec §6's stats() shape.
type TurnActivity struct {
	Moving  int
	Hungry  int
	Thirsty int
	Mating  int
}

// Resources is the resources.* block of spec §6's stats() shape.
type Resources struct {
	AveragePlantFood float64
	AverageMeat      float64
	TilesWithWater   int
}

// Snapshot is the full aggregated stats() result of spec §6.
type Snapshot struct {
	Turn        int
	Population  Population
	TurnState   TurnActivity
	Resources   Resources
	TotalScents int
}

// young, adult, and old age thresholds as named in spec §6.
const youngAgeMax = 50
const adultAgeMax = 500

// Compute builds a Snapshot from the current simulation state.
func Compute(turn int, creatures []*creature.Creature, m *world.Map, totalScents int) Snapshot {
	var pop Population
	var turnState TurnActivity

	ages := make([]float64, 0, len(creatures))
	for _, c := range creatures {
		if !c.IsAlive {
			continue
		}
		pop.Total++
		switch {
		case c.Stats.IsHerbivore():
			pop.Herbivores++
		case c.Stats.IsCarnivore():
			pop.Carnivores++
		default:
			pop.Omnivores++
		}

		switch {
		case c.Age < youngAgeMax:
			pop.YoungAge++
		case c.Age < adultAgeMax:
			pop.Adult++
		default:
			pop.Old++
		}

		if c.Generation > pop.MaxGeneration {
			pop.MaxGeneration = c.Generation
		}

		ages = append(ages, float64(c.Age))

		if c.IsMoving {
			turnState.Moving++
		}
		switch c.Priority() {
		case creature.PriorityHunger:
			turnState.Hungry++
		case creature.PriorityThirst:
			turnState.Thirsty++
		case creature.PriorityLove:
			turnState.Mating++
		}
	}
	if len(ages) > 0 {
		pop.AverageAge = stat.Mean(ages, nil)
	}

	var res Resources
	plantVals := make([]float64, 0, m.TileCount())
	meatVals := make([]float64, 0, m.TileCount())
	for _, t := range m.Tiles {
		plantVals = append(plantVals, t.Resources.PlantFood)
		meatVals = append(meatVals, t.Resources.Meat)
		if t.Resources.Water > 0 || t.Resources.WaterInfinite() {
			res.TilesWithWater++
		}
	}
	if len(plantVals) > 0 {
		res.AveragePlantFood = stat.Mean(plantVals, nil)
		res.AverageMeat = stat.Mean(meatVals, nil)
	}

	return Snapshot{
		Turn:        turn,
		Population:  pop,
		TurnState:   turnState,
		Resources:   res,
		TotalScents: totalScents,
	}
}
