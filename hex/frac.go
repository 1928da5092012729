package hex

import "math"

// FracCube represents fractional cube coordinates produced by continuous
// operations such as interpolation or world-space conversion. The components
// sum to zero within floating tolerance; Round recovers an exact Cube.
type FracCube struct {
	Q float64
	R float64
	S float64
}

// Frac converts a cube coordinate to its fractional equivalent.
func (c Cube) Frac() FracCube {
	return FracCube{Q: float64(c.Q), R: float64(c.R), S: float64(c.S)}
}

// Round converts fractional coordinates to the nearest valid Cube. Plain
// per-component rounding can break the zero-sum invariant; when it does, the
// component with the largest rounding error is recomputed from the other two.
func (f FracCube) Round() Cube {
	c := Cube{
		Q: int(math.Round(f.Q)),
		R: int(math.Round(f.R)),
		S: int(math.Round(f.S)),
	}
	if c.Valid() {
		return c
	}
	dq := math.Abs(f.Q - float64(c.Q))
	dr := math.Abs(f.R - float64(c.R))
	ds := math.Abs(f.S - float64(c.S))
	if dq > dr && dq > ds {
		c.Q = -c.R - c.S
	} else if dr > ds {
		c.R = -c.Q - c.S
	} else {
		c.S = -c.Q - c.R
	}
	return c
}

// Lerp linearly interpolates between two cube coordinates. t=0 yields a,
// t=1 yields b. The result is fractional; use Round for a discrete cell.
func Lerp(a, b Cube, t float64) FracCube {
	return lerpFrac(a.Frac(), b.Frac(), t)
}

func lerpFrac(a, b FracCube, t float64) FracCube {
	return FracCube{
		Q: a.Q + (b.Q-a.Q)*t,
		R: a.R + (b.R-a.R)*t,
		S: a.S + (b.S-a.S)*t,
	}
}
