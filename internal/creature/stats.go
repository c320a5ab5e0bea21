// Package creature implements the creature entity: heritable stats,
// needs, movement state, and lifecycle (spec §3 "Creature stats",
// "Creature needs", "Creature").
package creature

// Stats are a creature's heritable, mutable statistics (spec §3).
type Stats struct {
	Size             float64 // [1, 100]
	Speed            float64 // [1, 100]
	ReproductionRate float64 // [1, 100]
	Diet             int     // [-99, 99]; negative herbivore, positive carnivore, |diet|<20 omnivore
	Stealth          float64 // [0, 100]
	Perception       float64 // [0, 100]
}

// Clamp restricts every field to its valid range.
func (s *Stats) Clamp() {
	s.Size = clampFloat(s.Size, 1, 100)
	s.Speed = clampFloat(s.Speed, 1, 100)
	s.ReproductionRate = clampFloat(s.ReproductionRate, 1, 100)
	s.Stealth = clampFloat(s.Stealth, 0, 100)
	s.Perception = clampFloat(s.Perception, 0, 100)
	if s.Diet < -99 {
		s.Diet = -99
	}
	if s.Diet > 99 {
		s.Diet = 99
	}
}

// DietModifier is m = (diet + 99) / 198 ∈ [0, 1].
func (s Stats) DietModifier() float64 {
	return (float64(s.Diet) + 99) / 198
}

// AttackPower is size · dietModifier.
func (s Stats) AttackPower() float64 {
	return s.Size * s.DietModifier()
}

// MaxPreySize is size · (1 + dietModifier) — meaningful for carnivores only.
func (s Stats) MaxPreySize() float64 {
	return s.Size * (1 + s.DietModifier())
}

// BaseMetabolicRate is 0.1·size + 0.05·perception.
func (s Stats) BaseMetabolicRate() float64 {
	return 0.1*s.Size + 0.05*s.Perception
}

// MovementPenalty is 1 + 0.5·stealth/100.
func (s Stats) MovementPenalty() float64 {
	return 1 + 0.5*s.Stealth/100
}

// IsCarnivore reports diet > 0.
func (s Stats) IsCarnivore() bool { return s.Diet > 0 }

// IsHerbivore reports diet < 0.
func (s Stats) IsHerbivore() bool { return s.Diet < 0 }

// IsOmnivore reports |diet| < 20.
func (s Stats) IsOmnivore() bool {
	d := s.Diet
	if d < 0 {
		d = -d
	}
	return d < 20
}

// Compatible reports whether two creatures' stats satisfy the
// reproduction-compatibility test of spec §4.8: |Δdiet| ≤ 40 and
// 0.7 ≤ sizeA/sizeB ≤ 1.43.
func (a Stats) Compatible(b Stats) bool {
	dd := a.Diet - b.Diet
	if dd < 0 {
		dd = -dd
	}
	if dd > 40 {
		return false
	}
	if b.Size == 0 {
		return false
	}
	ratio := a.Size / b.Size
	return ratio >= 0.7 && ratio <= 1.43
}

// Mean returns the arithmetic mean of two Stats, per field, with diet
// using integer mean (spec §4.8 offspring-stats rule).
func Mean(a, b Stats) Stats {
	return Stats{
		Size:             (a.Size + b.Size) / 2,
		Speed:            (a.Speed + b.Speed) / 2,
		ReproductionRate: (a.ReproductionRate + b.ReproductionRate) / 2,
		Diet:             (a.Diet + b.Diet) / 2,
		Stealth:          (a.Stealth + b.Stealth) / 2,
		Perception:       (a.Perception + b.Perception) / 2,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
