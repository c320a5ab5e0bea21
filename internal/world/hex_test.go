package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewHexInvariant(t *testing.T) {
	h := NewHex(3, -5)
	assert.True(t, h.Valid())
	assert.Equal(t, 2, h.S)
}

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b HexCoord
		want int
	}{
		{NewHex(0, 0), NewHex(0, 0), 0},
		{NewHex(0, 0), NewHex(1, 0), 1},
		{NewHex(0, 0), NewHex(2, -1), 2},
		{NewHex(-2, 4), NewHex(2, -2), 6},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Distance(c.a, c.b))
	}
}

func TestNeighborsAreDistanceOne(t *testing.T) {
	center := NewHex(3, 5)
	for _, n := range center.Neighbors() {
		assert.True(t, n.Valid())
		assert.Equal(t, 1, Distance(center, n))
	}
}

func TestRangeIncludesCenterAndBounds(t *testing.T) {
	coords := Range(NewHex(0, 0), 2)
	assert.Contains(t, coords, NewHex(0, 0))
	for _, c := range coords {
		assert.LessOrEqual(t, Distance(NewHex(0, 0), c), 2)
	}
}

func TestPixelRoundTrip(t *testing.T) {
	size := 10.0
	for q := -3; q <= 3; q++ {
		for r := -3; r <= 3; r++ {
			h := NewHex(q, r)
			x, y := h.ToPixel(size)
			got := FromPixel(x, y, size)
			assert.Equal(t, h, got)
		}
	}
}

func TestRoundPinsLargestDelta(t *testing.T) {
	got := Round(1.6, 0.3, -1.9)
	assert.True(t, got.Valid())
}
