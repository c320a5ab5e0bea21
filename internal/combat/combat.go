// Package combat implements the predator/prey detection, evasion, and
// resolution state machine of spec §4.7.
package combat

import (
	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/resources"
	"github.com/fenwood/ecohex/internal/rng"
	"github.com/fenwood/ecohex/internal/scent"
	"github.com/fenwood/ecohex/internal/world"
)

// Outcome names how an encounter terminated.
type Outcome uint8

const (
	NoAction Outcome = iota
	PreyWins
	PredatorWins
)

// AttackState distinguishes a surprise attack from a detected one
// (spec §4.7 S1).
type AttackState uint8

const (
	Normal AttackState = iota
	Ambush
)

// Result carries the full outcome of one combat resolution, including
// the side effects the caller (turn manager) must apply.
type Result struct {
	Outcome      Outcome
	AttackState  AttackState
	PreyEscaped  bool
	CarrionTile  world.HexCoord
	CarrionMeat  float64
	PredatorMeat float64
}

// carrionFraction is the share of predator's meat yield deposited as
// residual carrion on the prey's tile (spec §4.7 S3).
const carrionFraction = 0.2

// Precondition reports whether predator may legally attack prey (spec
// §4.7 "Inputs/Preconditions"): predator diet > 0, prey size within
// predator's max prey size, prey alive.
func Precondition(predator, prey *creature.Creature) bool {
	return predator.Stats.IsCarnivore() &&
		prey.IsAlive &&
		prey.Stats.Size <= predator.Stats.MaxPreySize()
}

// Resolve runs the full S0-S3 state machine for one predator/prey pair
// that share a tile (spec §4.7). Resolve itself lays the Fear scent when
// the prey escapes and, on PredatorWins, deposits CarrionMeat on tile
// (when tile is non-nil); callers add PredatorMeat satiation and kill
// prey on PredatorWins.
func Resolve(predator, prey *creature.Creature, tile *world.Tile, field *scent.Field, r *rng.Source) Result {
	// S0: detect-predator→prey.
	d1 := predator.Stats.Perception - prey.Stats.Stealth*(2-prey.Stats.Size/predator.Stats.Size)
	d1 = clamp(d1, 10, 90)
	if float64(r.IntRange(0, 100)) >= d1 {
		return Result{Outcome: NoAction}
	}

	// S1: detect-prey→predator, determines attack state.
	d2 := prey.Stats.Perception - predator.Stats.Stealth*(2-predator.Stats.Size/prey.Stats.Size)
	d2 = clamp(d2, 10, 90)
	preyDetectedPredator := float64(r.IntRange(0, 100)) < d2
	state := Ambush
	if preyDetectedPredator {
		state = Normal
	}

	// S2: evasion.
	e := (prey.Stats.Speed / (prey.Stats.Speed + predator.Stats.Speed)) * 100
	if preyDetectedPredator {
		e += 10
	}
	e = clamp(e, 10, 80)
	if float64(r.IntRange(0, 100)) < e {
		field.Add(scent.New(prey.Position, prey.ID, scent.Fear))
		return Result{Outcome: NoAction, AttackState: state, PreyEscaped: true}
	}

	// S3: resolution.
	atk := predator.Stats.AttackPower()
	if state == Ambush {
		atk *= 2
	}
	def := prey.Stats.Size * prey.Stats.DietModifier()

	roll := r.FloatRange(0, atk+def)
	if roll > atk {
		return Result{Outcome: PreyWins, AttackState: state}
	}

	// Predator eats the full corpse yield; 20% of that yield additionally
	// spills onto the tile as residual carrion (spec §4.7 S3).
	yield := prey.CorpseYield()
	carrion := yield * carrionFraction
	if tile != nil {
		resources.AddMeat(tile, carrion)
	}
	return Result{
		Outcome:      PredatorWins,
		AttackState:  state,
		CarrionTile:  prey.Position,
		CarrionMeat:  carrion,
		PredatorMeat: yield,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
