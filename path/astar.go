// Package path implements cost-aware shortest-path search over hex maps:
// A* with deterministic tie-breaking, an unweighted BFS, and a Walker for
// consuming finished paths step by step.
//
// Searches hold only call-local state, so independent searches may run
// concurrently over the same map as long as the map is not mutated.
package path

import (
	"container/heap"

	"github.com/gravitas-015/hexmap"
	"github.com/gravitas-015/hexmap/hex"
)

// Result reports the outcome of a search.
type Result struct {
	// Path holds the route from start to goal inclusive; nil when no path
	// was found.
	Path []hex.Axial
	// Cost is the sum of step costs over the path, excluding the start cell.
	Cost int
	// Found is true when the goal was reached.
	Found bool
	// Bounded is true when the search stopped because the expansion ceiling
	// was hit rather than because the frontier emptied.
	Bounded bool
	// Expanded counts the nodes finalized during the search.
	Expanded int
}

// Options bounds a search.
type Options struct {
	// MaxExpansions caps how many nodes the search may finalize; zero means
	// unbounded. Exceeding the cap yields a not-found result with Bounded
	// set, indistinguishable from genuine unreachability otherwise.
	MaxExpansions int
}

// Option modifies search Options.
type Option func(*Options)

// WithMaxExpansions caps the number of node expansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// AStar computes a shortest path using the A* algorithm.
//   - h: heuristic estimate of remaining cost; hex distance to the goal is
//     admissible and consistent for costs >= 1.
//   - neighbors: adjacent coordinates to explore.
//   - cost: cost of stepping between two adjacent coordinates; non-positive
//     values are clamped to 1, since optimality is only defined for
//     non-negative costs.
//
// Ties between equal f-scores break in insertion order, so the returned
// path is deterministic for a given input.
func AStar(start, goal hex.Axial,
	h func(a hex.Axial) int,
	neighbors func(a hex.Axial) []hex.Axial,
	cost func(from, to hex.Axial) int,
	opts ...Option,
) Result {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	if start == goal {
		return Result{Path: []hex.Axial{start}, Found: true}
	}

	open := &nodePQ{}
	heap.Init(open)
	seq := 0
	push := func(a hex.Axial, f int) {
		heap.Push(open, &pqItem{coord: a, f: f, seq: seq})
		seq++
	}

	g := map[hex.Axial]int{start: 0}
	came := map[hex.Axial]hex.Axial{}
	closed := map[hex.Axial]bool{}
	push(start, h(start))

	expanded := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(*pqItem).coord
		if closed[cur] {
			continue
		}
		closed[cur] = true
		expanded++

		if cur == goal {
			return Result{
				Path:     reconstruct(came, start, goal),
				Cost:     g[goal],
				Found:    true,
				Expanded: expanded,
			}
		}
		if o.MaxExpansions > 0 && expanded >= o.MaxExpansions {
			return Result{Bounded: true, Expanded: expanded}
		}

		for _, nb := range neighbors(cur) {
			if closed[nb] {
				continue
			}
			step := cost(cur, nb)
			if step <= 0 {
				step = 1
			}
			tentative := g[cur] + step
			old, ok := g[nb]
			if !ok || tentative < old {
				g[nb] = tentative
				came[nb] = cur
				push(nb, tentative+h(nb))
			}
		}
	}
	return Result{Expanded: expanded}
}

// Find runs AStar over a map using its passable adjacency, its movement
// costs, and the hex distance heuristic. A start or goal that is absent or
// impassable is unreachable, reported as a not-found result.
func Find[T hexmap.Tile](m *hexmap.Map[T], start, goal hex.Axial, opts ...Option) Result {
	if !m.IsPassable(start) || !m.IsPassable(goal) {
		return Result{}
	}
	h := func(a hex.Axial) int { return hex.DistanceAxial(a, goal) }
	cost := func(_, to hex.Axial) int {
		c, ok := m.MovementCost(to)
		if !ok {
			return 1
		}
		return c
	}
	return AStar(start, goal, h, m.PassableNeighbors, cost, opts...)
}

func reconstruct(came map[hex.Axial]hex.Axial, start, goal hex.Axial) []hex.Axial {
	out := []hex.Axial{goal}
	cur := goal
	for cur != start {
		cur = came[cur]
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
