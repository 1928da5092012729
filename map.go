// Package hexmap provides a coordinate-keyed store of hex tiles on top of
// the hex algebra package, exposing the membership, adjacency and movement
// cost queries the path package searches over.
//
// A Map performs no internal locking: concurrent reads are safe, concurrent
// mutation must be synchronized by the caller.
package hexmap

import (
	"sort"

	"github.com/gravitas-015/hexmap/hex"
)

// Tile is the capability a map payload must provide for passability and
// movement cost queries. Cost is the price of entering the tile and should
// be >= 1 wherever Passable is true; A* optimality is only guaranteed for
// non-negative costs.
type Tile interface {
	Cost() int
	Passable() bool
}

// Map associates tiles with axial coordinates. A coordinate is a lookup
// key, not a handle: tiles have no identity beyond their position, and a
// coordinate absent from the map is implicitly impassable.
type Map[T Tile] struct {
	tiles map[hex.Axial]T
}

// New returns an empty map.
func New[T Tile]() *Map[T] {
	return &Map[T]{tiles: make(map[hex.Axial]T)}
}

// Insert places a tile at the coordinate, replacing any existing tile.
// Re-inserting the same payload is a no-op, so bulk loads are idempotent.
func (m *Map[T]) Insert(c hex.Axial, t T) {
	m.tiles[c] = t
}

// InsertDisk fills every cell within radius of center with the tile.
func (m *Map[T]) InsertDisk(center hex.Axial, radius int, t T) {
	for _, c := range hex.Disk(center, radius) {
		m.tiles[c] = t
	}
}

// Remove erases the cell if present; removing an absent cell is a no-op.
func (m *Map[T]) Remove(c hex.Axial) {
	delete(m.tiles, c)
}

// Get returns the tile at the coordinate. Absence is an ordinary result,
// not an error: the cell is outside the map or not yet populated.
func (m *Map[T]) Get(c hex.Axial) (T, bool) {
	t, ok := m.tiles[c]
	return t, ok
}

// Contains reports membership of the coordinate.
func (m *Map[T]) Contains(c hex.Axial) bool {
	_, ok := m.tiles[c]
	return ok
}

// Len returns the number of populated cells.
func (m *Map[T]) Len() int { return len(m.tiles) }

// Neighbors returns the subset of the six adjacent coordinates present in
// the map, in direction order.
func (m *Map[T]) Neighbors(c hex.Axial) []hex.Axial {
	out := make([]hex.Axial, 0, 6)
	for _, d := range hex.Directions {
		n := c.Add(d)
		if _, ok := m.tiles[n]; ok {
			out = append(out, n)
		}
	}
	return out
}

// PassableNeighbors returns the adjacent coordinates that are present and
// passable, in direction order. This is the adjacency the pathfinder uses.
func (m *Map[T]) PassableNeighbors(c hex.Axial) []hex.Axial {
	out := make([]hex.Axial, 0, 6)
	for _, d := range hex.Directions {
		n := c.Add(d)
		if t, ok := m.tiles[n]; ok && t.Passable() {
			out = append(out, n)
		}
	}
	return out
}

// IsPassable reports whether the cell exists and its tile is passable.
func (m *Map[T]) IsPassable(c hex.Axial) bool {
	t, ok := m.tiles[c]
	return ok && t.Passable()
}

// MovementCost returns the cost of entering the cell. The second result is
// false when the cell is absent or impassable.
func (m *Map[T]) MovementCost(c hex.Axial) (int, bool) {
	t, ok := m.tiles[c]
	if !ok || !t.Passable() {
		return 0, false
	}
	return t.Cost(), true
}

// Coords returns all populated coordinates sorted by q then r, so callers
// iterating the map get a reproducible order.
func (m *Map[T]) Coords() []hex.Axial {
	out := make([]hex.Axial, 0, len(m.tiles))
	for c := range m.tiles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Q != out[j].Q {
			return out[i].Q < out[j].Q
		}
		return out[i].R < out[j].R
	})
	return out
}

// ForEach calls fn for every populated cell in Coords order.
func (m *Map[T]) ForEach(fn func(hex.Axial, T)) {
	for _, c := range m.Coords() {
		fn(c, m.tiles[c])
	}
}
