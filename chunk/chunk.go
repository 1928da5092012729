// Package chunk tiles the hex plane with fixed-radius map regions. Chunks
// carry per-side passability signatures and deterministic portal cells so
// that regions generated independently still agree on where they connect.
package chunk

import (
	"github.com/gravitas-015/hexmap"
	"github.com/gravitas-015/hexmap/hex"
)

// EdgeMask records passability along one chunk side, one bit per edge cell
// in hex.Edge order. Holds sides up to radius 64.
type EdgeMask uint64

// Generator produces the tile for a coordinate within a chunk.
type Generator[T hexmap.Tile] func(c hex.Axial) T

// Chunk is a radius-R hex region of tiles centered on a cell, plus the
// passability signature of each of its six sides.
type Chunk[T hexmap.Tile] struct {
	Center  hex.Axial
	Radius  int
	Tiles   map[hex.Axial]T
	EdgeSig [6]EdgeMask
}

// Build generates a chunk at center and computes its edge signatures.
func Build[T hexmap.Tile](center hex.Axial, radius int, gen Generator[T]) Chunk[T] {
	tiles := make(map[hex.Axial]T, 1+3*radius*(radius+1))
	for _, c := range hex.Disk(center, radius) {
		tiles[c] = gen(c)
	}
	ch := Chunk[T]{Center: center, Radius: radius, Tiles: tiles}
	for side := 0; side < 6; side++ {
		var m EdgeMask
		for i, c := range hex.Edge(center, radius, side) {
			if t, ok := tiles[c]; ok && t.Passable() {
				m |= 1 << i
			}
		}
		ch.EdgeSig[side] = m
	}
	return ch
}

// NeighborCenter returns the center of the adjacent chunk across the given
// side. Chunk centers step by the diagonal of two consecutive directions
// scaled by the radius, placing neighbors at distance 2R so the chunk grid
// tiles without gaps.
func NeighborCenter(center hex.Axial, radius, side int) hex.Axial {
	d := hex.Directions[side]
	dprev := hex.Directions[(side+5)%6]
	v := hex.Axial{Q: d.Q + dprev.Q, R: d.R + dprev.R}
	return center.Add(v.Mul(radius))
}

// PortalOn picks a stable cell along the given side by hashing each edge
// coordinate with the seed and taking the minimum. The choice depends only
// on the coordinates and seed, so two chunks sharing a boundary select the
// same portal from either side. Returns the cell and its index on the edge.
func PortalOn(center hex.Axial, radius, side int, seed int64) (hex.Axial, int) {
	edge := hex.Edge(center, radius, side)
	bestIdx := 0
	best := ^uint64(0)
	for i, c := range edge {
		h := hashCoord(seed, c)
		if h < best {
			best = h
			bestIdx = i
		}
	}
	return edge[bestIdx], bestIdx
}

// BuildPocket generates the chunk at center together with its six neighbor
// chunks and merges them into a single map. Overlapping coordinates are
// generated identically by a pure Generator, so merge order does not matter.
func BuildPocket[T hexmap.Tile](center hex.Axial, radius int, gen Generator[T]) *hexmap.Map[T] {
	m := hexmap.New[T]()
	merge := func(ch Chunk[T]) {
		for c, t := range ch.Tiles {
			m.Insert(c, t)
		}
	}
	merge(Build(center, radius, gen))
	for side := 0; side < 6; side++ {
		merge(Build(NeighborCenter(center, radius, side), radius, gen))
	}
	return m
}

// hashCoord mixes a seed and an axial coordinate with splitmix-style
// constants into a well-distributed 64-bit value.
func hashCoord(seed int64, a hex.Axial) uint64 {
	x := uint64(seed)
	x ^= uint64(uint32(a.Q)) * 0x9E3779B97F4A7C15
	x ^= uint64(uint32(a.R)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}
