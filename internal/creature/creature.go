package creature

import "github.com/fenwood/ecohex/internal/world"

// ID uniquely identifies a creature. Monotonic, assigned by IDAllocator.
type ID uint64

// MaturityAge is the age in turns at which a creature becomes mature
// (GLOSSARY "Maturity").
const MaturityAge = 10

// MaxAge is the age in turns at which a creature dies of old age
// (spec §4.5 step 5).
const MaxAge = 1000

// IDAllocator hands out monotonically increasing creature IDs. Not safe
// for concurrent use — the simulation is single-threaded by design.
type IDAllocator struct {
	next ID
}

// Next returns the next unused ID.
func (a *IDAllocator) Next() ID {
	a.next++
	return a.next
}

// Creature is one living or recently-dead individual (spec §3 "Creature").
type Creature struct {
	ID         ID
	Position   world.HexCoord
	Stats      Stats
	Needs      Needs
	Age        int
	Generation int
	IsAlive    bool

	IsMoving         bool
	MovementCooldown int
	TargetPosition   world.HexCoord
}

// New creates a spawned (not born) creature at the given position with
// newborn needs, generation 0.
func New(id ID, position world.HexCoord, stats Stats) *Creature {
	stats.Clamp()
	return &Creature{
		ID:       id,
		Position: position,
		Stats:    stats,
		Needs:    NewbornNeeds(),
		Age:      0,
		IsAlive:  true,
	}
}

// NewOffspring creates a creature born from two parents per spec §4.8:
// averaged stats (mutation applied by the caller before this is invoked),
// newborn needs, generation = max(parent generations) + 1, position at
// the parents' shared tile.
func NewOffspring(id ID, position world.HexCoord, stats Stats, parentAGen, parentBGen int) *Creature {
	stats.Clamp()
	gen := parentAGen
	if parentBGen > gen {
		gen = parentBGen
	}
	return &Creature{
		ID:         id,
		Position:   position,
		Stats:      stats,
		Needs:      NewbornNeeds(),
		Age:        0,
		Generation: gen + 1,
		IsAlive:    true,
	}
}

// IsMature reports whether the creature has reached MaturityAge.
func (c *Creature) IsMature() bool {
	return c.Age >= MaturityAge
}

// Priority returns the creature's current dominant need.
func (c *Creature) Priority() Priority {
	return c.Needs.Priority(c.IsMature())
}

// CanReproduce reports mature, alive, and not currently moving (spec §3).
func (c *Creature) CanReproduce() bool {
	return c.IsAlive && c.IsMature() && !c.IsMoving
}

// CheckDeath applies the death conditions of spec §3/§4.5: need overflow
// or age ≥ MaxAge. Returns true if the creature died as a result.
func (c *Creature) CheckDeath() bool {
	if !c.IsAlive {
		return false
	}
	if c.Needs.Lethal() || c.Age >= MaxAge {
		c.IsAlive = false
		return true
	}
	return false
}

// CorpseYield is the meat deposited on death: 2·size (spec §3, §4.10).
func (c *Creature) CorpseYield() float64 {
	return 2 * c.Stats.Size
}
