package hex

// Direction indexes one of the six hex directions, 0 through 5.
type Direction int

// Directions lists the six axial unit vectors in direction order: east,
// north-east, north-west, west, south-west, south-east for a pointy-top
// layout with r growing southwards. The same ordering backs Neighbor, Ring,
// Edge and Rotate; direction d and (d+3)%6 point opposite ways.
var Directions = [6]Axial{
	{+1, 0}, {+1, -1}, {0, -1}, {-1, 0}, {-1, +1}, {0, +1},
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return (d + 3) % 6 }

// Vector returns the axial unit vector for the direction.
func (d Direction) Vector() Axial { return Directions[((d%6)+6)%6] }

// Neighbor returns the cell one step from a in direction d.
func Neighbor(a Axial, d Direction) Axial { return a.Add(d.Vector()) }

// NeighborCube returns the cell one step from c in direction d.
func NeighborCube(c Cube, d Direction) Cube {
	return c.Add(d.Vector().ToCube())
}

// Adjacent returns the six cells surrounding a, in direction order.
func Adjacent(a Axial) []Axial {
	out := make([]Axial, 6)
	for i, d := range Directions {
		out[i] = a.Add(d)
	}
	return out
}
