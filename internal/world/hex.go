// Package world provides the hex grid, tile climate/biome model, and the
// resource container each tile carries. Uses cube coordinates (q, r, s)
// with the invariant q + r + s = 0.
package world

import "math"

// HexCoord represents a position on the hex grid using cube coordinates.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
	S int `json:"s"`
}

// NewHex builds a HexCoord from axial (q, r), deriving s = -q-r so the
// cube invariant always holds by construction.
func NewHex(q, r int) HexCoord {
	return HexCoord{Q: q, R: r, S: -q - r}
}

// Valid reports whether the cube invariant q+r+s=0 holds.
func (h HexCoord) Valid() bool {
	return h.Q+h.R+h.S == 0
}

// neighborOffsets are the six canonical cube-coordinate neighbor directions.
var neighborOffsets = [6]HexCoord{
	{Q: 1, R: 0, S: -1},
	{Q: 1, R: -1, S: 0},
	{Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1},
	{Q: -1, R: 1, S: 0},
	{Q: 0, R: 1, S: -1},
}

// NeighborIn returns the neighbor in the given direction, 0-5.
func (h HexCoord) NeighborIn(direction int) HexCoord {
	d := neighborOffsets[((direction%6)+6)%6]
	return HexCoord{Q: h.Q + d.Q, R: h.R + d.R, S: h.S + d.S}
}

// Neighbors returns all six adjacent coordinates, in canonical direction
// order. Callers must tolerate entries with no backing tile at map edges.
func (h HexCoord) Neighbors() [6]HexCoord {
	var out [6]HexCoord
	for i, d := range neighborOffsets {
		out[i] = HexCoord{Q: h.Q + d.Q, R: h.R + d.R, S: h.S + d.S}
	}
	return out
}

// Distance returns the hex distance between two cube coordinates:
// (|Δq| + |Δr| + |Δs|) / 2, equivalently max(|Δq|, |Δr|, |Δs|).
func Distance(a, b HexCoord) int {
	dq := absInt(a.Q - b.Q)
	dr := absInt(a.R - b.R)
	ds := absInt(a.S - b.S)
	return (dq + dr + ds) / 2
}

// Range returns every coordinate within the given hex distance of center,
// including center itself.
func Range(center HexCoord, radius int) []HexCoord {
	if radius < 0 {
		return nil
	}
	out := make([]HexCoord, 0, 3*radius*(radius+1)+1)
	for dq := -radius; dq <= radius; dq++ {
		loR := maxInt(-radius, -dq-radius)
		hiR := minInt(radius, -dq+radius)
		for dr := loR; dr <= hiR; dr++ {
			ds := -dq - dr
			out = append(out, HexCoord{Q: center.Q + dq, R: center.R + dr, S: center.S + ds})
		}
	}
	return out
}

// ToPixel converts a hex coordinate to flat-top pixel space for a hex of
// the given circumradius.
func (h HexCoord) ToPixel(size float64) (x, y float64) {
	x = size * math.Sqrt(3) * (float64(h.Q) + float64(h.R)/2)
	y = size * 1.5 * float64(h.R)
	return x, y
}

// FromPixel converts flat-top pixel coordinates back into the nearest hex,
// inverting ToPixel.
func FromPixel(x, y, size float64) HexCoord {
	r := (2.0 / 3.0) * y / size
	q := x/(size*math.Sqrt(3)) - r/2
	return Round(q, r, -q-r)
}

// Round snaps fractional cube coordinates to the nearest valid hex,
// pinning the axis with the largest rounding delta so the invariant
// q+r+s=0 is preserved exactly.
func Round(fq, fr, fs float64) HexCoord {
	q := math.Round(fq)
	r := math.Round(fr)
	s := math.Round(fs)

	dq := math.Abs(q - fq)
	dr := math.Abs(r - fr)
	ds := math.Abs(s - fs)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}

	return HexCoord{Q: int(q), R: int(r), S: int(s)}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
