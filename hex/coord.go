// Package hex implements hexagonal grid coordinates and the algebra over
// them: conversions, distance, neighbors, rotation, reflection, lines, rings
// and filled ranges. Cube coordinates (q+r+s=0) are the canonical form; axial
// coordinates are the compact two-component equivalent used for storage keys.
//
// Based on the constructions in the Red Blob Games hexagonal grids article.
package hex

import "fmt"

// Axial represents axial coordinates (q, r). The third cube component is
// implied as -q-r, so every Axial is a well-formed hex address.
type Axial struct {
	Q int
	R int
}

// Cube represents cube coordinates (q, r, s) with q+r+s=0.
type Cube struct {
	Q int
	R int
	S int
}

// NewCube builds a Cube and panics if the components do not sum to zero.
// Constructors are the only entry point for raw triples, so the rest of the
// algebra can assume the invariant holds.
func NewCube(q, r, s int) Cube {
	c := Cube{Q: q, R: r, S: s}
	if !c.Valid() {
		panic(fmt.Sprintf("hex: cube coordinates must sum to zero, got (%d, %d, %d)", q, r, s))
	}
	return c
}

// Valid reports whether the zero-sum invariant holds.
func (c Cube) Valid() bool { return c.Q+c.R+c.S == 0 }

// ToAxial converts cube to axial by dropping s.
func (c Cube) ToAxial() Axial { return Axial{Q: c.Q, R: c.R} }

// ToCube converts axial to cube, deriving s.
func (a Axial) ToCube() Cube {
	return Cube{Q: a.Q, R: a.R, S: -a.Q - a.R}
}

// Add returns a+b in axial space.
func (a Axial) Add(b Axial) Axial { return Axial{a.Q + b.Q, a.R + b.R} }

// Sub returns a-b in axial space.
func (a Axial) Sub(b Axial) Axial { return Axial{a.Q - b.Q, a.R - b.R} }

// Mul scales an axial vector by k.
func (a Axial) Mul(k int) Axial { return Axial{a.Q * k, a.R * k} }

// Neg returns the axial vector pointing the opposite way.
func (a Axial) Neg() Axial { return Axial{-a.Q, -a.R} }

// Add returns a+b in cube space. Component-wise sums of two zero-sum triples
// sum to zero themselves, so no revalidation is needed.
func (c Cube) Add(b Cube) Cube { return Cube{c.Q + b.Q, c.R + b.R, c.S + b.S} }

// Sub returns a-b in cube space.
func (c Cube) Sub(b Cube) Cube { return Cube{c.Q - b.Q, c.R - b.R, c.S - b.S} }

// Mul scales a cube vector by k.
func (c Cube) Mul(k int) Cube { return Cube{c.Q * k, c.R * k, c.S * k} }

// Neg returns the cube vector pointing the opposite way.
func (c Cube) Neg() Cube { return Cube{-c.Q, -c.R, -c.S} }

func (a Axial) String() string { return fmt.Sprintf("(%d, %d)", a.Q, a.R) }

func (c Cube) String() string { return fmt.Sprintf("(%d, %d, %d)", c.Q, c.R, c.S) }

// DistanceCube returns the hex distance between two cube coords: half the
// L1 norm of the component deltas. It is a metric (identity, symmetry,
// triangle inequality) by construction.
func DistanceCube(a, b Cube) int {
	d := a.Sub(b)
	return (abs(d.Q) + abs(d.R) + abs(d.S)) / 2
}

// DistanceAxial returns the hex distance between two axial coords.
func DistanceAxial(a, b Axial) int {
	return DistanceCube(a.ToCube(), b.ToCube())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
