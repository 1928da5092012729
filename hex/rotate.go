package hex

import "fmt"

// Axis identifies one of the three cube axes for reflection.
type Axis int

const (
	AxisQ Axis = iota
	AxisR
	AxisS
)

// Rotate rotates c around pivot by steps*60 degrees. Positive steps rotate
// in the same sense as the Directions ordering, i.e. rotating a direction
// vector by +1 yields the next entry in the table. Negative steps rotate the
// other way; steps are taken modulo 6, so any multiple of 6 is the identity.
func Rotate(c, pivot Cube, steps int) Cube {
	d := c.Sub(pivot)
	n := ((steps % 6) + 6) % 6
	for i := 0; i < n; i++ {
		d = Cube{Q: -d.S, R: -d.Q, S: -d.R}
	}
	return pivot.Add(d)
}

// Reflect mirrors c across the given cube axis through the origin: the axis
// component is kept and the other two are swapped.
func Reflect(c Cube, axis Axis) Cube {
	switch axis {
	case AxisQ:
		return Cube{Q: c.Q, R: c.S, S: c.R}
	case AxisR:
		return Cube{Q: c.S, R: c.R, S: c.Q}
	case AxisS:
		return Cube{Q: c.R, R: c.Q, S: c.S}
	default:
		panic(fmt.Sprintf("hex: unknown reflection axis %d", axis))
	}
}
