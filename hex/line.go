package hex

// Line sampling nudges the start endpoint off exact cell boundaries so that
// midpoints falling precisely between two cells round the same way every
// time. The offsets sum to zero, keeping the fractional triple valid.
const (
	lineEpsQ = 1e-6
	lineEpsR = 1e-6
	lineEpsS = -2e-6
)

// Line returns the cells approximating the straight segment from a to b,
// inclusive of both endpoints. The result has DistanceCube(a, b)+1 elements
// and consecutive cells are adjacent. Boundary ties are resolved by a fixed
// epsilon bias, so the same endpoints always produce the same line.
func Line(a, b Cube) []Cube {
	n := DistanceCube(a, b)
	if n == 0 {
		return []Cube{a}
	}
	fa := a.Frac()
	fa.Q += lineEpsQ
	fa.R += lineEpsR
	fa.S += lineEpsS
	fb := b.Frac()
	out := make([]Cube, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		out = append(out, lerpFrac(fa, fb, t).Round())
	}
	return out
}

// LineAxial is Line over axial coordinates.
func LineAxial(a, b Axial) []Axial {
	cubes := Line(a.ToCube(), b.ToCube())
	out := make([]Axial, len(cubes))
	for i, c := range cubes {
		out[i] = c.ToAxial()
	}
	return out
}
