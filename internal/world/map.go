package world

import "fmt"

// Map holds the complete hex grid world: a coordinate-to-tile mapping.
// Neighborhood is derived from HexCoord arithmetic, never stored.
type Map struct {
	Tiles map[HexCoord]*Tile
}

// NewMap creates an empty world map.
func NewMap() *Map {
	return &Map{Tiles: make(map[HexCoord]*Tile)}
}

// Get returns the tile at coord, or nil if no tile is there. Callers at
// map edges must tolerate this sentinel "no tile" result (spec §4.1).
func (m *Map) Get(coord HexCoord) *Tile {
	return m.Tiles[coord]
}

// Set places a tile at its own coordinate.
func (m *Map) Set(t *Tile) {
	m.Tiles[t.Coord] = t
}

// TileCount returns the number of tiles in the map.
func (m *Map) TileCount() int {
	return len(m.Tiles)
}

// Neighbors returns the non-nil tiles adjacent to coord. Missing
// neighbors at map edges are silently omitted.
func (m *Map) Neighbors(coord HexCoord) []*Tile {
	out := make([]*Tile, 0, 6)
	for _, nc := range coord.Neighbors() {
		if t := m.Get(nc); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Range returns the non-nil tiles within radius hexes of center, including
// center.
func (m *Map) Range(center HexCoord, radius int) []*Tile {
	coords := Range(center, radius)
	out := make([]*Tile, 0, len(coords))
	for _, c := range coords {
		if t := m.Get(c); t != nil {
			out = append(out, t)
		}
	}
	return out
}

// String returns a summary of the map for logging.
func (m *Map) String() string {
	return fmt.Sprintf("Map(tiles=%d)", m.TileCount())
}
