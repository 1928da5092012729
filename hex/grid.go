package hex

import "fmt"

// Ring returns the cells at exact distance radius from center, in walk
// order: starting from center+Directions[4]*radius, each of the six sides is
// walked in turn, side s stepping in Directions[s]. Radius 0 returns only the
// center. Negative radius is a contract violation and panics.
//
// The ordering is stable; Spiral and Edge build on it.
func Ring(center Axial, radius int) []Axial {
	if radius < 0 {
		panic(fmt.Sprintf("hex: ring radius must be >= 0, got %d", radius))
	}
	if radius == 0 {
		return []Axial{center}
	}
	out := make([]Axial, 0, 6*radius)
	cur := center.Add(Directions[4].Mul(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			out = append(out, cur)
			cur = cur.Add(Directions[side])
		}
	}
	return out
}

// Disk returns all cells at distance <= radius from center. The result has
// 1+3*radius*(radius+1) elements; no ordering is guaranteed beyond being
// deterministic for a given input. Negative radius panics.
func Disk(center Axial, radius int) []Axial {
	if radius < 0 {
		panic(fmt.Sprintf("hex: disk radius must be >= 0, got %d", radius))
	}
	out := make([]Axial, 0, 1+3*radius*(radius+1))
	for q := -radius; q <= radius; q++ {
		lo := maxInt(-radius, -q-radius)
		hi := minInt(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			out = append(out, center.Add(Axial{q, r}))
		}
	}
	return out
}

// Spiral returns the cells at distance <= radius from center ordered by
// concentric rings, innermost first, each ring in Ring order.
func Spiral(center Axial, radius int) []Axial {
	if radius < 0 {
		panic(fmt.Sprintf("hex: spiral radius must be >= 0, got %d", radius))
	}
	out := make([]Axial, 0, 1+3*radius*(radius+1))
	for i := 0; i <= radius; i++ {
		out = append(out, Ring(center, i)...)
	}
	return out
}

// Edge returns the radius cells of Ring(center, radius) belonging to the
// given side (0..5): the segment walked in Directions[side], starting at the
// corner center+Directions[(side+4)%6]*radius. The six sides partition the
// ring. Radius 0 returns only the center.
func Edge(center Axial, radius, side int) []Axial {
	if side < 0 || side > 5 {
		panic(fmt.Sprintf("hex: edge side must be in 0..5, got %d", side))
	}
	if radius == 0 {
		return []Axial{center}
	}
	ring := Ring(center, radius)
	return ring[side*radius : (side+1)*radius]
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
