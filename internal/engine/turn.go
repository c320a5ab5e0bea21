package engine

import (
	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/metabolism"
	"github.com/fenwood/ecohex/internal/population"
	"github.com/fenwood/ecohex/internal/resources"
)

// step runs exactly one turn of the ordered pipeline of spec §4.12.
func (s *Simulation) step() {
	s.Turn++

	resources.RegenerateAll(s.worldMap)
	s.scents.DecayAll()

	order := s.rng.Perm(len(s.Creatures))

	// wasMoving records, per creature, whether it was already moving at
	// the start of this turn — such a creature teleports/clears its flag
	// in advanceMovement but must still skip this turn's action and
	// metabolism entirely (spec §4.5 step 2, §8 "Moving-creature
	// non-action" invariant), regardless of whether it just arrived.
	wasMoving := make(map[*creature.Creature]bool, len(s.Creatures))
	for _, idx := range order {
		c := s.Creatures[idx]
		if !c.IsAlive {
			continue
		}
		c.Age++
		wasMoving[c] = advanceMovement(c)
	}

	var newborns []*creature.Creature
	dispatched := make(map[*creature.Creature]creature.Priority, len(s.Creatures))
	for _, idx := range order {
		c := s.Creatures[idx]
		if !c.IsAlive || wasMoving[c] {
			continue
		}
		dispatched[c] = s.dispatchOne(c, &newborns)
	}

	s.Creatures = append(s.Creatures, newborns...)
	for _, n := range newborns {
		s.byID[n.ID] = n
	}

	for _, c := range s.Creatures {
		if !c.IsAlive || wasMoving[c] {
			continue
		}
		priority, ok := dispatched[c]
		if !ok {
			priority = c.Priority()
		}
		activity := metabolism.ActivityFor(priority)
		metabolism.Apply(c, activity)
	}

	for _, c := range s.Creatures {
		if c.IsAlive {
			c.CheckDeath()
		}
	}
	s.cleanupDead()

	if population.NeedsExtinctionRelief(len(s.aliveCreatures())) {
		relief := population.ExtinctionRelief(s.worldMap, s.terrestrialCoords, &s.idAllocator, s.rng)
		s.Creatures = append(s.Creatures, relief...)
		for _, c := range relief {
			s.byID[c.ID] = c
		}
		s.Logger.Info().Str("run_id", s.RunID.String()).Int("spawned", len(relief)).Msg("extinction relief triggered")
	}
}

// cleanupDead deposits corpse meat for every creature that died this
// turn, then compacts the dead out of the live slice (spec §4.10
// turn-end cleanup, §4.5 step 5).
func (s *Simulation) cleanupDead() {
	live := s.Creatures[:0]
	for _, c := range s.Creatures {
		if !c.IsAlive {
			if t := s.worldMap.Get(c.Position); t != nil {
				resources.AddMeat(t, c.CorpseYield())
			}
			delete(s.byID, c.ID)
			continue
		}
		live = append(live, c)
	}
	s.Creatures = live
}
