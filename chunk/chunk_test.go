package chunk

import (
	"testing"

	"github.com/gravitas-015/hexmap"
	"github.com/gravitas-015/hexmap/hex"
	"github.com/gravitas-015/hexmap/mapgen"
)

func plainsExcept(blocked map[hex.Axial]bool) Generator[hexmap.Terrain] {
	return func(c hex.Axial) hexmap.Terrain {
		if blocked[c] {
			return hexmap.Water
		}
		return hexmap.Plains
	}
}

func TestBuildChunkTilesAndEdges(t *testing.T) {
	center := hex.Axial{Q: 0, R: 0}
	radius := 3
	ch := Build(center, radius, plainsExcept(nil))
	if len(ch.Tiles) != 1+3*radius*(radius+1) {
		t.Fatalf("chunk has %d tiles, want %d", len(ch.Tiles), 1+3*radius*(radius+1))
	}
	full := EdgeMask(1<<radius) - 1
	for side := 0; side < 6; side++ {
		if ch.EdgeSig[side] != full {
			t.Fatalf("side %d of an open chunk has mask %b, want %b", side, ch.EdgeSig[side], full)
		}
	}
}

func TestBuildChunkEdgeMaskReflectsBlockedCells(t *testing.T) {
	center := hex.Axial{Q: 0, R: 0}
	radius := 2
	blockedCell := hex.Edge(center, radius, 1)[0]
	ch := Build(center, radius, plainsExcept(map[hex.Axial]bool{blockedCell: true}))
	if ch.EdgeSig[1]&1 != 0 {
		t.Fatalf("blocked edge cell still set in mask %b", ch.EdgeSig[1])
	}
	if ch.EdgeSig[1]>>1 != EdgeMask(1<<(radius-1))-1 {
		t.Fatalf("unexpected mask for partially blocked side: %b", ch.EdgeSig[1])
	}
	full := EdgeMask(1<<radius) - 1
	for side := 0; side < 6; side++ {
		if side != 1 && ch.EdgeSig[side] != full {
			t.Fatalf("unblocked side %d has mask %b", side, ch.EdgeSig[side])
		}
	}
}

func TestNeighborCenterSpacing(t *testing.T) {
	center := hex.Axial{Q: 1, R: -2}
	radius := 4
	for side := 0; side < 6; side++ {
		n := NeighborCenter(center, radius, side)
		if d := hex.DistanceAxial(center, n); d != 2*radius {
			t.Fatalf("side %d neighbor center at distance %d, want %d", side, d, 2*radius)
		}
	}
}

func TestPortalOnDeterministic(t *testing.T) {
	center := hex.Axial{Q: 0, R: 0}
	radius := 5
	for side := 0; side < 6; side++ {
		c1, i1 := PortalOn(center, radius, side, 99)
		c2, i2 := PortalOn(center, radius, side, 99)
		if c1 != c2 || i1 != i2 {
			t.Fatalf("portal selection not deterministic: %v/%d vs %v/%d", c1, i1, c2, i2)
		}
		if hex.DistanceAxial(center, c1) != radius {
			t.Fatalf("portal %v not on the ring", c1)
		}
		edge := hex.Edge(center, radius, side)
		if edge[i1] != c1 {
			t.Fatalf("portal index %d does not match cell %v", i1, c1)
		}
	}
	// a different seed may pick a different cell, but stays on the edge
	c, _ := PortalOn(center, radius, 0, 12345)
	if hex.DistanceAxial(center, c) != radius {
		t.Fatalf("portal %v not on the ring", c)
	}
}

func TestBuildWithGeneratedTerrain(t *testing.T) {
	p := mapgen.DefaultParams()
	p.Radius = 8
	gen := mapgen.TerrainAt(p)

	center := hex.Axial{Q: 0, R: 0}
	radius := 3
	ch := Build(center, radius, gen)
	if len(ch.Tiles) != 1+3*radius*(radius+1) {
		t.Fatalf("chunk has %d tiles, want %d", len(ch.Tiles), 1+3*radius*(radius+1))
	}
	// the chunk holds exactly what the generator produces, cell for cell
	for c, tile := range ch.Tiles {
		if tile != gen(c) {
			t.Fatalf("chunk tile at %v is %v, generator says %v", c, tile, gen(c))
		}
	}
	// edge signatures agree with the generated passability
	for side := 0; side < 6; side++ {
		for i, c := range hex.Edge(center, radius, side) {
			set := ch.EdgeSig[side]&(1<<i) != 0
			if set != gen(c).Passable() {
				t.Fatalf("side %d bit %d is %v, tile %v passable=%v", side, i, set, gen(c), gen(c).Passable())
			}
		}
	}

	// a neighbor chunk built from the same generator matches on the cells
	// the two chunks share
	nc := NeighborCenter(center, radius, 0)
	neighbor := Build(nc, radius, gen)
	shared := 0
	for c, tile := range neighbor.Tiles {
		if ours, ok := ch.Tiles[c]; ok {
			shared++
			if ours != tile {
				t.Fatalf("chunks disagree at shared cell %v: %v vs %v", c, ours, tile)
			}
		}
	}
	if shared == 0 {
		t.Fatalf("adjacent chunks at distance 2R should share boundary cells")
	}
}

func TestBuildPocket(t *testing.T) {
	center := hex.Axial{Q: 0, R: 0}
	radius := 2
	m := BuildPocket(center, radius, plainsExcept(nil))
	// every cell of the center chunk and each neighbor chunk is present
	for _, c := range hex.Disk(center, radius) {
		if !m.Contains(c) {
			t.Fatalf("pocket missing center chunk cell %v", c)
		}
	}
	for side := 0; side < 6; side++ {
		nc := NeighborCenter(center, radius, side)
		for _, c := range hex.Disk(nc, radius) {
			if !m.Contains(c) {
				t.Fatalf("pocket missing side %d cell %v", side, c)
			}
		}
	}
	perChunk := 1 + 3*radius*(radius+1)
	if m.Len() > 7*perChunk {
		t.Fatalf("pocket has %d cells, more than 7 chunks can hold", m.Len())
	}
}
