package hex

import (
	"math"
	"testing"
)

func TestLayoutWorldRoundTrip(t *testing.T) {
	layouts := []Layout{
		{Orientation: PointyTop, Size: 1},
		{Orientation: FlatTop, Size: 1},
		{Orientation: PointyTop, Size: 12.5, OriginX: -40, OriginY: 7},
		{Orientation: FlatTop, Size: 0.25, OriginX: 3, OriginY: 3},
	}
	for _, l := range layouts {
		for _, a := range Disk(Axial{}, 5) {
			x, y := l.ToWorld(a)
			if got := l.FromWorld(x, y); got != a {
				t.Fatalf("layout %+v: cell center of %v mapped back to %v", l, a, got)
			}
		}
	}
}

func TestLayoutFromWorldNearCenter(t *testing.T) {
	l := Layout{Orientation: PointyTop, Size: 10}
	a := Axial{3, -2}
	x, y := l.ToWorld(a)
	// points well inside the hex still resolve to the same cell
	for _, off := range [][2]float64{{2, 0}, {-2, 1}, {0, -3}, {3, 3}} {
		if got := l.FromWorld(x+off[0], y+off[1]); got != a {
			t.Fatalf("offset %v from center of %v resolved to %v", off, a, got)
		}
	}
}

func TestLayoutCorners(t *testing.T) {
	for _, o := range []Orientation{PointyTop, FlatTop} {
		l := Layout{Orientation: o, Size: 4, OriginX: 1, OriginY: -1}
		a := Axial{-1, 2}
		cx, cy := l.ToWorld(a)
		corners := l.Corners(a)
		for i, c := range corners {
			d := math.Hypot(c[0]-cx, c[1]-cy)
			if math.Abs(d-l.Size) > 1e-9 {
				t.Fatalf("%v corner %d at distance %f, want %f", o, i, d, l.Size)
			}
		}
	}
}

func TestLayoutPointySpacing(t *testing.T) {
	// Pointy-top: stepping +1 in q moves exactly one hex width (size*sqrt3)
	// along x; stepping +1 in r moves 1.5*size along y.
	l := Layout{Orientation: PointyTop, Size: 2}
	x0, y0 := l.ToWorld(Axial{0, 0})
	x1, y1 := l.ToWorld(Axial{1, 0})
	if math.Abs((x1-x0)-2*sqrt3) > 1e-9 || math.Abs(y1-y0) > 1e-9 {
		t.Fatalf("q step moved by (%f, %f)", x1-x0, y1-y0)
	}
	x2, y2 := l.ToWorld(Axial{0, 1})
	if math.Abs((y2-y0)-3) > 1e-9 || math.Abs((x2-x0)-sqrt3) > 1e-9 {
		t.Fatalf("r step moved by (%f, %f)", x2-x0, y2-y0)
	}
}
