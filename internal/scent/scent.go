// Package scent implements the time-decaying scent field of spec §3/§4.4:
// append-only trail records with type-scoped, radius-bounded queries.
package scent

import (
	"sort"

	"github.com/fenwood/ecohex/internal/creature"
	"github.com/fenwood/ecohex/internal/world"
)

// Type distinguishes the three scent kinds, each with a default
// intensity and lifetime (spec §3 "Scent").
type Type uint8

const (
	Movement Type = iota
	Fear
	Mating
)

// String names a scent type for logging.
func (t Type) String() string {
	switch t {
	case Movement:
		return "movement"
	case Fear:
		return "fear"
	case Mating:
		return "mating"
	default:
		return "unknown"
	}
}

// defaultIntensity and defaultMaxAge hold the spec §3 defaults per type.
func defaultIntensity(t Type) float64 {
	switch t {
	case Fear:
		return 120
	case Mating:
		return 150
	default:
		return 100
	}
}

func defaultMaxAge(t Type) int {
	switch t {
	case Fear:
		return 3
	case Mating:
		return 8
	default:
		return 5
	}
}

// detectThreshold is the effective-intensity cutoff below which a scent
// is not detectable (spec §4.4).
const detectThreshold = 20

// defaultDetectRadius and defaultOfTypeRadius are the query defaults
// named in spec §4.4.
const defaultDetectRadius = 2
const defaultOfTypeRadius = 3

// Scent is one trail record laid by a creature.
type Scent struct {
	Position   world.HexCoord
	CreatureID creature.ID
	Type       Type
	Intensity  float64
	Age        int
	MaxAge     int
}

// New creates a scent of the given type at position with the type's
// default intensity and max age.
func New(position world.HexCoord, id creature.ID, t Type) Scent {
	return Scent{
		Position:   position,
		CreatureID: id,
		Type:       t,
		Intensity:  defaultIntensity(t),
		Age:        0,
		MaxAge:     defaultMaxAge(t),
	}
}

// Expired reports age ≥ maxAge or intensity < 1 (spec §3).
func (s Scent) Expired() bool {
	return s.Age >= s.MaxAge || s.Intensity < 1
}

// Field is the append-only-within-a-turn scent container.
type Field struct {
	scents []Scent
}

// NewField creates an empty scent field.
func NewField() *Field {
	return &Field{}
}

// Add appends a new scent to the field.
func (f *Field) Add(s Scent) {
	f.scents = append(f.scents, s)
}

// Count returns the number of live (non-expired) scents.
func (f *Field) Count() int {
	n := 0
	for _, s := range f.scents {
		if !s.Expired() {
			n++
		}
	}
	return n
}

// All returns every live scent, for read-only external views.
func (f *Field) All() []Scent {
	out := make([]Scent, 0, len(f.scents))
	for _, s := range f.scents {
		if !s.Expired() {
			out = append(out, s)
		}
	}
	return out
}

// DecayAll applies one turn's decay to every scent and drops expired
// ones: intensity ← intensity·(1 − 1/maxAge) (spec §3, turn pipeline
// step 2).
func (f *Field) DecayAll() {
	live := f.scents[:0]
	for _, s := range f.scents {
		s.Age++
		s.Intensity *= 1 - 1/float64(s.MaxAge)
		if !s.Expired() {
			live = append(live, s)
		}
	}
	f.scents = live
}

// Detection is one scent as perceived by an observer, carrying its
// effective intensity for sorting.
type Detection struct {
	Scent             Scent
	EffectiveIntensity float64
}

// DetectableBy enumerates scents within radius hexes of position whose
// effective intensity exceeds the detection threshold, sorted descending
// by effective intensity (spec §4.4):
//
//	effective = intensity·(1 + 0.5·perception/100) − 10·distance
func (f *Field) DetectableBy(position world.HexCoord, perception float64, radius int) []Detection {
	if radius <= 0 {
		radius = defaultDetectRadius
	}
	var out []Detection
	for _, s := range f.scents {
		if s.Expired() {
			continue
		}
		d := world.Distance(position, s.Position)
		if d > radius {
			continue
		}
		effective := s.Intensity*(1+0.5*perception/100) - 10*float64(d)
		if effective > detectThreshold {
			out = append(out, Detection{Scent: s, EffectiveIntensity: effective})
		}
	}
	// Sorted by effective (perception- and distance-adjusted) intensity,
	// not raw intensity: a close faint scent should still rank above a
	// strong distant one a creature barely perceives.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].EffectiveIntensity > out[j].EffectiveIntensity
	})
	return out
}

// OfType returns unsorted scents of the given type within radius hexes
// of position (spec §4.4). radius<=0 uses the spec default of 3.
func (f *Field) OfType(position world.HexCoord, t Type, radius int) []Scent {
	if radius <= 0 {
		radius = defaultOfTypeRadius
	}
	var out []Scent
	for _, s := range f.scents {
		if s.Expired() || s.Type != t {
			continue
		}
		if world.Distance(position, s.Position) <= radius {
			out = append(out, s)
		}
	}
	return out
}

// OfCreature returns every live scent laid by the given creature id.
func (f *Field) OfCreature(id creature.ID) []Scent {
	var out []Scent
	for _, s := range f.scents {
		if !s.Expired() && s.CreatureID == id {
			out = append(out, s)
		}
	}
	return out
}
