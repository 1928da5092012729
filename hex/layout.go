package hex

import "math"

// sqrt3 is the square root of 3, the width/height ratio constant of
// regular hexagons.
const sqrt3 = 1.7320508075688772

// Layout maps hex coordinates to a 2D world plane. Size is the hex radius
// (center to corner) in world units; Origin is the world position of the
// (0, 0) cell center.
type Layout struct {
	Orientation Orientation
	Size        float64
	OriginX     float64
	OriginY     float64
}

// ToWorld returns the world position of the center of cell a.
func (l Layout) ToWorld(a Axial) (x, y float64) {
	q, r := float64(a.Q), float64(a.R)
	if l.Orientation == FlatTop {
		x = l.Size * 1.5 * q
		y = l.Size * sqrt3 * (r + q/2)
	} else {
		x = l.Size * sqrt3 * (q + r/2)
		y = l.Size * 1.5 * r
	}
	return x + l.OriginX, y + l.OriginY
}

// FracFromWorld maps a world position to fractional cube coordinates, the
// exact continuous inverse of ToWorld.
func (l Layout) FracFromWorld(x, y float64) FracCube {
	x = (x - l.OriginX) / l.Size
	y = (y - l.OriginY) / l.Size
	var q, r float64
	if l.Orientation == FlatTop {
		q = 2.0 / 3.0 * x
		r = -1.0/3.0*x + sqrt3/3.0*y
	} else {
		q = sqrt3/3.0*x - 1.0/3.0*y
		r = 2.0 / 3.0 * y
	}
	return FracCube{Q: q, R: r, S: -q - r}
}

// FromWorld returns the cell containing the world position.
func (l Layout) FromWorld(x, y float64) Axial {
	return l.FracFromWorld(x, y).Round().ToAxial()
}

// Corners returns the world positions of the six corners of cell a, in
// counter-clockwise order starting from the corner in the +x direction
// (flat-top) or the one 30 degrees below it (pointy-top).
func (l Layout) Corners(a Axial) [6][2]float64 {
	cx, cy := l.ToWorld(a)
	var out [6][2]float64
	for i := 0; i < 6; i++ {
		angle := math.Pi / 3.0 * float64(i)
		if l.Orientation == PointyTop {
			angle -= math.Pi / 6.0
		}
		out[i] = [2]float64{
			cx + l.Size*math.Cos(angle),
			cy + l.Size*math.Sin(angle),
		}
	}
	return out
}
