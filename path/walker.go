package path

import "github.com/gravitas-015/hexmap/hex"

// Walker advances a unit along a computed path by spending movement points.
// Unspent points carry over between calls, so a tile costing more than one
// tick's budget is entered once enough budget accumulates.
type Walker struct {
	route  []hex.Axial
	cost   func(hex.Axial) int
	idx    int
	budget int
}

// NewWalker wraps a search result for traversal. cost reports the price of
// entering each cell and should match what the search used; nil means every
// step costs 1. Returns nil when the result holds no path.
func NewWalker(r Result, cost func(hex.Axial) int) *Walker {
	if !r.Found || len(r.Path) == 0 {
		return nil
	}
	if cost == nil {
		cost = func(hex.Axial) int { return 1 }
	}
	return &Walker{route: r.Path, cost: cost}
}

// Position returns the cell the walker currently occupies.
func (w *Walker) Position() hex.Axial { return w.route[w.idx] }

// Done reports whether the walker has reached the end of the path.
func (w *Walker) Done() bool { return w.idx == len(w.route)-1 }

// Remaining returns the cells not yet entered, in order.
func (w *Walker) Remaining() []hex.Axial { return w.route[w.idx+1:] }

// Advance grants movement points and moves the walker forward while the
// next cell is affordable. It returns the position after moving.
func (w *Walker) Advance(points int) hex.Axial {
	if points > 0 {
		w.budget += points
	}
	for !w.Done() {
		step := w.cost(w.route[w.idx+1])
		if step <= 0 {
			step = 1
		}
		if step > w.budget {
			break
		}
		w.budget -= step
		w.idx++
	}
	return w.Position()
}
