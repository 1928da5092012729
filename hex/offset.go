package hex

// Orientation selects how hexes sit relative to the world axes: pointy-top
// rows shove horizontally, flat-top columns shove vertically.
type Orientation int

const (
	PointyTop Orientation = iota
	FlatTop
)

func (o Orientation) String() string {
	if o == FlatTop {
		return "flat-top"
	}
	return "pointy-top"
}

// Parity selects which rows (pointy-top) or columns (flat-top) are shoved
// when laying hexes on a rectangular grid.
type Parity int

const (
	OddShove Parity = iota
	EvenShove
)

func (p Parity) String() string {
	if p == EvenShove {
		return "even"
	}
	return "odd"
}

// Offset represents rectangular (col, row) hex addressing. Offset coords
// only have meaning relative to an Orientation and Parity pair; they are a
// boundary format (tile sheets, editors) and convert to Axial before any
// computation.
type Offset struct {
	Col int
	Row int
}

// ToOffset converts axial coordinates to offset coordinates under the given
// orientation and parity. Converting back with the same parameters restores
// the original coordinate exactly. Converting back with different parameters
// yields a valid but different coordinate; the library cannot detect that,
// it is the caller's contract to keep the parameters consistent.
func (a Axial) ToOffset(o Orientation, p Parity) Offset {
	if o == FlatTop {
		return Offset{Col: a.Q, Row: a.R + shove(a.Q, p)}
	}
	return Offset{Col: a.Q + shove(a.R, p), Row: a.R}
}

// ToAxial converts offset coordinates back to axial under the given
// orientation and parity. Inverse of Axial.ToOffset for matching parameters.
func (of Offset) ToAxial(o Orientation, p Parity) Axial {
	if o == FlatTop {
		return Axial{Q: of.Col, R: of.Row - shove(of.Col, p)}
	}
	return Axial{Q: of.Col - shove(of.Row, p), R: of.Row}
}

// shove computes the half-step displacement for the crosswise coordinate v.
// With odd parity, odd rows/columns are shoved; with even parity, even ones.
// v&1 is 1 for odd v of either sign in two's complement, so the mapping is
// closed-form over all integers.
func shove(v int, p Parity) int {
	if p == EvenShove {
		return (v + (v & 1)) / 2
	}
	return (v - (v & 1)) / 2
}
